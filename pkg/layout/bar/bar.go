// Package bar positions tasks on the time grid.
//
// A [Bar] is the rectangle a task occupies: horizontal extent from the
// task's dates, vertical position from its row. Bars are the input of the
// arrow router and the source of the task shapes drawn by the sinks.
package bar

import (
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
)

// Link is a relation in which the owning bar is the target.
type Link struct {
	From string
	Type chart.RelationType
}

// Bar is a task laid out on the grid. X1 <= X2 always holds; Y is the top
// of the bar (not of the row), and Index is the row ordinal.
type Bar struct {
	ID            string
	Name          string
	Type          chart.TaskType
	X1, X2        float64
	Y             float64
	Height        float64
	Index         int
	ProgressWidth float64
	Links         []Link
}

// Width returns the horizontal span of the bar.
func (b Bar) Width() float64 { return b.X2 - b.X1 }

// CenterY returns the vertical center of the bar.
func (b Bar) CenterY() float64 { return b.Y + b.Height/2 }

// RelationFrom returns the type of the link from source, or EndToStart
// when the bar has no link from that source.
func (b Bar) RelationFrom(source string) chart.RelationType {
	for _, l := range b.Links {
		if l.From == source {
			return l.Type
		}
	}
	return chart.EndToStart
}

// Options holds the geometry bars are laid out with.
type Options struct {
	ColumnWidth float64
	RowHeight   float64
	BarFill     float64 // bar height as a percentage of the row height
	RTL         bool
}

// BarHeight returns the bar height the options imply.
func (o Options) BarHeight() float64 { return o.RowHeight * o.BarFill / 100 }

// Build lays out one bar per task, row i holding tasks[i]. dates must be
// ascending; in right-to-left mode the bars are mirrored about the last
// tick so they line up with a grid drawn from the reversed sequence.
func Build(tasks []chart.Task, dates []time.Time, opts Options) []Bar {
	height := opts.BarHeight()
	var last float64
	if len(dates) > 0 {
		last = float64(len(dates)-1) * opts.ColumnWidth
	}

	bars := make([]Bar, len(tasks))
	for i, t := range tasks {
		x1 := X(t.Start, dates, opts.ColumnWidth)
		x2 := X(t.End, dates, opts.ColumnWidth)
		if t.Type == chart.TypeMilestone {
			x2 = x1
		}
		if opts.RTL {
			x1, x2 = last-x2, last-x1
		}

		links := make([]Link, len(t.Dependencies))
		for j, d := range t.Dependencies {
			links[j] = Link{From: d.ID, Type: d.Type}
		}

		bars[i] = Bar{
			ID:            t.ID,
			Name:          t.Name,
			Type:          t.Type,
			X1:            x1,
			X2:            x2,
			Y:             float64(i)*opts.RowHeight + (opts.RowHeight-height)/2,
			Height:        height,
			Index:         i,
			ProgressWidth: (x2 - x1) * t.Progress / 100,
			Links:         links,
		}
	}
	return bars
}

// X maps an instant onto the horizontal axis of an ascending date
// sequence: the column it falls in plus the elapsed fraction of that
// column. Instants outside the sequence are clamped to its ends.
func X(t time.Time, dates []time.Time, columnWidth float64) float64 {
	n := len(dates)
	if n == 0 || !t.After(dates[0]) {
		return 0
	}
	if !t.Before(dates[n-1]) {
		return float64(n-1) * columnWidth
	}

	i := 0
	for i+1 < n && !dates[i+1].After(t) {
		i++
	}
	span := dates[i+1].Sub(dates[i])
	frac := float64(t.Sub(dates[i])) / float64(span)
	return (float64(i) + frac) * columnWidth
}
