// Package scene assembles a complete chart drawing from the layout
// packages.
//
// [Build] calls the grid engine once, lays out one bar per task, and routes
// one connector per declared dependency. The result is plain geometry that
// the sinks in pkg/render/sink draw or export.
package scene

import (
	"slices"
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/layout/arrow"
	"github.com/matzehuels/ganttline/pkg/layout/bar"
	"github.com/matzehuels/ganttline/pkg/layout/grid"
)

// Options holds every geometric and color setting of a scene.
type Options struct {
	ColumnWidth  float64
	RowHeight    float64
	BarFill      float64 // percent of the row height
	ArrowIndent  float64
	HeaderHeight float64
	RTL          bool
	TodayColor   string
	WeekendColor string
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ColumnWidth:  60,
		RowHeight:    50,
		BarFill:      60,
		ArrowIndent:  20,
		HeaderHeight: 50,
		TodayColor:   "rgba(252, 248, 227, 0.5)",
		WeekendColor: "rgba(0, 0, 0, 0.04)",
	}
}

// Arrow is a routed dependency between two bars.
type Arrow struct {
	From string
	To   string
	Type chart.RelationType
	arrow.Connector
}

// Scene is a fully laid out chart. Coordinates of Rows, Grid, Bars and
// Arrows are relative to the top-left corner of the grid body; the header
// sits above it.
type Scene struct {
	Width        float64
	Height       float64 // grid body only
	HeaderHeight float64
	ColumnWidth  float64
	RowHeight    float64
	ViewMode     chart.ViewMode
	RTL          bool

	// Dates are the column boundaries in drawing order, so reversed in
	// right-to-left scenes.
	Dates []time.Time

	Rows   grid.RowSet
	Grid   grid.Grid
	Bars   []bar.Bar
	Arrows []Arrow
}

// Build lays out c on the ascending date sequence dates. Dependencies that
// name unknown tasks are skipped.
func Build(c *chart.Chart, dates []time.Time, opts Options, now time.Time) Scene {
	s := Scene{
		Width:        float64(len(dates)) * opts.ColumnWidth,
		Height:       float64(len(c.Tasks)) * opts.RowHeight,
		HeaderHeight: opts.HeaderHeight,
		ColumnWidth:  opts.ColumnWidth,
		RowHeight:    opts.RowHeight,
		ViewMode:     c.ViewMode,
		RTL:          opts.RTL,
		Dates:        slices.Clone(dates),
	}
	if opts.RTL {
		slices.Reverse(s.Dates)
	}

	s.Rows = grid.Rows(len(c.Tasks), opts.RowHeight, s.Width)
	s.Grid = grid.Layout(s.Dates, grid.Options{
		RowCount:     len(c.Tasks),
		RowHeight:    opts.RowHeight,
		ColumnWidth:  opts.ColumnWidth,
		RTL:          opts.RTL,
		TodayColor:   opts.TodayColor,
		WeekendColor: opts.WeekendColor,
	}, now)

	bopts := bar.Options{
		ColumnWidth: opts.ColumnWidth,
		RowHeight:   opts.RowHeight,
		BarFill:     opts.BarFill,
		RTL:         opts.RTL,
	}
	s.Bars = bar.Build(c.Tasks, dates, bopts)
	s.Arrows = route(s.Bars, arrow.Geometry{
		RowHeight: opts.RowHeight,
		BarHeight: bopts.BarHeight(),
		Indent:    opts.ArrowIndent,
	}, opts.RTL)
	return s
}

func route(bars []bar.Bar, g arrow.Geometry, rtl bool) []Arrow {
	byID := make(map[string]int, len(bars))
	for i, b := range bars {
		byID[b.ID] = i
	}

	var arrows []Arrow
	for _, to := range bars {
		for _, l := range to.Links {
			i, ok := byID[l.From]
			if !ok {
				continue
			}
			from := bars[i]
			rel := to.RelationFrom(from.ID)
			arrows = append(arrows, Arrow{
				From:      from.ID,
				To:        to.ID,
				Type:      rel,
				Connector: arrow.Route(from, to, rel, g, rtl),
			})
		}
	}
	return arrows
}

// Bar returns the bar laid out for the task with the given id.
func (s Scene) Bar(id string) (bar.Bar, bool) {
	for _, b := range s.Bars {
		if b.ID == id {
			return b, true
		}
	}
	return bar.Bar{}, false
}
