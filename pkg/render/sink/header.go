package sink

import (
	"strconv"
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
)

type headerLabel struct {
	x    float64
	text string
	top  bool
}

// headerLabels names every column and, on the upper line, each run of
// columns sharing a coarser period.
func headerLabels(dates []time.Time, mode chart.ViewMode, columnWidth float64, rtl bool) []headerLabel {
	labels := make([]headerLabel, 0, len(dates))
	var group string
	for i, d := range dates {
		x := float64(i) * columnWidth
		labels = append(labels, headerLabel{x: x + columnWidth/2, text: columnLabel(d, mode)})

		if g := groupLabel(d, mode); g != "" && g != group {
			group = g
			pad := 4.0
			if rtl {
				pad = columnWidth / 4
			}
			labels = append(labels, headerLabel{x: x + pad, text: g, top: true})
		}
	}
	return labels
}

func columnLabel(d time.Time, mode chart.ViewMode) string {
	switch mode {
	case chart.ViewYear:
		return d.Format("2006")
	case chart.ViewMonth:
		return d.Format("January")
	case chart.ViewWeek:
		_, w := d.ISOWeek()
		return "W" + strconv.Itoa(w)
	case chart.ViewHour, chart.ViewQuarterDay, chart.ViewHalfDay:
		return d.Format("15:04")
	default:
		return d.Format("Mon 2")
	}
}

func groupLabel(d time.Time, mode chart.ViewMode) string {
	switch mode {
	case chart.ViewYear:
		return ""
	case chart.ViewMonth:
		return d.Format("2006")
	case chart.ViewHour, chart.ViewQuarterDay, chart.ViewHalfDay:
		return d.Format("Mon, Jan 2")
	default:
		return d.Format("January 2006")
	}
}
