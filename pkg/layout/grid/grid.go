// Package grid lays out the time grid a chart is drawn on.
//
// [Layout] turns an ascending date sequence into one tick per column
// boundary, shaded columns for weekend days, and a marker for the current
// instant. [Rows] produces the horizontal row backgrounds and separators.
// Both are pure functions of their inputs.
package grid

import (
	"time"

	"github.com/matzehuels/ganttline/pkg/geom"
)

// NoShading is the weekend color that disables weekend columns.
const NoShading = "transparent"

const (
	markerWidth = 2
	dotRadius   = 4
)

// Options holds the grid geometry.
type Options struct {
	RowCount     int
	RowHeight    float64
	ColumnWidth  float64
	RTL          bool
	TodayColor   string
	WeekendColor string
}

// Height returns the height of the grid body.
func (o Options) Height() float64 { return float64(o.RowCount) * o.RowHeight }

// TodayMarker indicates the current instant: a vertical bar across the
// grid body with a dot at its top.
type TodayMarker struct {
	Bar geom.Rect   `json:"bar"`
	Dot geom.Circle `json:"dot"`
}

// Grid is the output of [Layout].
type Grid struct {
	Ticks    []geom.Line
	Weekends []geom.Rect
	Today    *TodayMarker // nil when now lies outside the sequence
}

// Layout computes ticks, weekend columns and the today marker for dates.
//
// Tick i sits at i*ColumnWidth. A weekend rect is emitted at column i+1
// whenever dates[i+1] falls on a Saturday or Sunday. The today marker is
// interpolated linearly inside the interval that contains now, using the
// spacing of the first two dates as the unit; the last date extends one
// interval past its own boundary. With fewer than two dates, or equal
// first dates, no marker is produced.
func Layout(dates []time.Time, opts Options, now time.Time) Grid {
	height := opts.Height()
	shade := opts.WeekendColor != NoShading

	var span time.Duration
	if len(dates) > 1 {
		span = dates[1].Sub(dates[0])
	}

	g := Grid{Ticks: make([]geom.Line, 0, len(dates))}
	tickX := 0.0
	for i, d := range dates {
		g.Ticks = append(g.Ticks, geom.Line{X1: tickX, Y1: 0, X2: tickX, Y2: height})

		if shade && i+1 < len(dates) && isWeekend(dates[i+1]) {
			g.Weekends = append(g.Weekends, geom.Rect{
				X:      tickX + opts.ColumnWidth,
				Width:  opts.ColumnWidth,
				Height: height,
				Fill:   opts.WeekendColor,
			})
		}

		if span != 0 {
			adj := opts.ColumnWidth * float64(d.Sub(now)) / float64(span)
			if containsNow(dates, i, now) {
				g.Today = &TodayMarker{
					Bar: geom.Rect{X: tickX - adj, Width: markerWidth, Height: height, Fill: opts.TodayColor},
					Dot: geom.Circle{CX: tickX - adj + 1, R: dotRadius, Fill: opts.TodayColor},
				}
			}
			if opts.RTL && i+1 < len(dates) && !d.Before(now) && dates[i+1].Before(now) {
				g.Today = &TodayMarker{
					Bar: geom.Rect{X: tickX + opts.ColumnWidth - adj, Width: opts.ColumnWidth, Height: height, Fill: opts.TodayColor},
					Dot: geom.Circle{CX: tickX - adj + 1, R: dotRadius, Fill: opts.TodayColor},
				}
			}
		}

		tickX += opts.ColumnWidth
	}
	return g
}

// containsNow reports whether now lies in (dates[i], dates[i+1]], or for
// the last date in (dates[i], dates[i]+(dates[i]-dates[i-1])].
func containsNow(dates []time.Time, i int, now time.Time) bool {
	d := dates[i]
	if !d.Before(now) {
		return false
	}
	if i+1 < len(dates) {
		return !dates[i+1].Before(now)
	}
	if i == 0 {
		return false
	}
	return !d.Add(d.Sub(dates[i-1])).Before(now)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RowSet is the output of [Rows].
type RowSet struct {
	Backgrounds []geom.Rect
	Lines       []geom.Line
}

// Rows lays out count row backgrounds of the given height and width. Lines
// holds the top border at y=0 followed by one separator under each row.
func Rows(count int, rowHeight, width float64) RowSet {
	rs := RowSet{
		Backgrounds: make([]geom.Rect, count),
		Lines:       make([]geom.Line, 0, count+1),
	}
	rs.Lines = append(rs.Lines, geom.Line{X2: width})

	y := 0.0
	for i := range rs.Backgrounds {
		rs.Backgrounds[i] = geom.Rect{Y: y, Width: width, Height: rowHeight}
		y += rowHeight
		rs.Lines = append(rs.Lines, geom.Line{Y1: y, X2: width, Y2: y})
	}
	return rs
}
