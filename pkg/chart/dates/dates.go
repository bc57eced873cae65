// Package dates computes the column boundaries of the time grid.
//
// The grid draws one column per entry of an ascending date sequence. This
// package derives that sequence from a chart: [Range] pads the span of all
// tasks according to the view mode, and [Seed] walks from the padded start
// to the padded end in view-mode steps. [Add] and [StartOf] are the small
// calendar helpers both rely on.
//
// All arithmetic happens in the location of the input times; nothing here
// converts between zones.
package dates

import (
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/errors"
)

// MaxColumns bounds the date sequence of one chart.
const MaxColumns = 10000

// Unit is a calendar unit for [Add] and [StartOf].
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Month
	Year
)

// Add returns t shifted by n units. Month and year steps use calendar
// arithmetic, so adding a month to January 31 normalizes into March.
func Add(t time.Time, n int, unit Unit) time.Time {
	switch unit {
	case Millisecond:
		return t.Add(time.Duration(n) * time.Millisecond)
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Month:
		return t.AddDate(0, n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}

// StartOf truncates t to the beginning of the given unit.
func StartOf(t time.Time, unit Unit) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()
	switch unit {
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi, 0, 0, loc)
	case Second:
		return time.Date(y, mo, d, h, mi, s, 0, loc)
	default:
		return time.Date(y, mo, d, h, mi, s, t.Nanosecond()/int(time.Millisecond)*int(time.Millisecond), loc)
	}
}

// Monday returns the start of the Monday on or before t.
func Monday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOf(t, Day).AddDate(0, 0, -offset)
}

// Range pads [start, end] into the span the grid should cover. preSteps
// adds that many leading columns before the earliest task; the trailing
// padding is fixed per view mode.
func Range(start, end time.Time, mode chart.ViewMode, preSteps int) (time.Time, time.Time) {
	switch mode {
	case chart.ViewYear:
		start = StartOf(Add(start, -1, Year), Year)
		end = StartOf(Add(end, 1, Year), Year)
	case chart.ViewMonth:
		start = StartOf(Add(start, -preSteps, Month), Month)
		end = StartOf(Add(end, 1, Year), Year)
	case chart.ViewWeek:
		start = Add(Monday(start), -7*preSteps, Day)
		end = Add(Add(StartOf(end, Day), 1, Month), 15, Day)
	case chart.ViewQuarterDay:
		start = Add(StartOf(start, Day), -preSteps, Day)
		end = Add(StartOf(end, Day), 66, Hour)
	case chart.ViewHalfDay:
		start = Add(StartOf(start, Day), -preSteps, Day)
		end = Add(StartOf(end, Day), 108, Hour)
	case chart.ViewHour:
		start = Add(StartOf(start, Hour), -preSteps, Hour)
		end = Add(StartOf(end, Day), 1, Day)
	default:
		start = Add(StartOf(start, Day), -preSteps, Day)
		end = Add(StartOf(end, Day), 19, Day)
	}
	return start, end
}

// Next advances t by one column of the given view mode.
func Next(t time.Time, mode chart.ViewMode) time.Time {
	switch mode {
	case chart.ViewYear:
		return Add(t, 1, Year)
	case chart.ViewMonth:
		return Add(t, 1, Month)
	case chart.ViewWeek:
		return Add(t, 7, Day)
	case chart.ViewHalfDay:
		return Add(t, 12, Hour)
	case chart.ViewQuarterDay:
		return Add(t, 6, Hour)
	case chart.ViewHour:
		return Add(t, 1, Hour)
	default:
		return Add(t, 1, Day)
	}
}

// Seed returns the column boundaries from start up to and including the
// first boundary at or after end. The result always holds start.
func Seed(start, end time.Time, mode chart.ViewMode) []time.Time {
	out, _ := seed(start, end, mode, -1)
	return out
}

// seed is Seed that gives up once the sequence would exceed limit
// entries. A negative limit means no limit.
func seed(start, end time.Time, mode chart.ViewMode, limit int) ([]time.Time, bool) {
	out := []time.Time{start}
	for cur := start; cur.Before(end); {
		if limit >= 0 && len(out) >= limit {
			return nil, false
		}
		cur = Next(cur, mode)
		out = append(out, cur)
	}
	return out, true
}

// ForChart seeds the date sequence covering every task of c. A chart
// without tasks gets a sequence anchored at now. Sequences longer than
// [MaxColumns] are rejected with INVALID_INPUT.
func ForChart(c *chart.Chart, preSteps int, now time.Time) ([]time.Time, error) {
	start, end := c.Bounds()
	if len(c.Tasks) == 0 {
		start, end = now, now
	}
	start, end = Range(start, end, c.ViewMode, preSteps)
	ds, ok := seed(start, end, c.ViewMode, MaxColumns)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"chart spans more than %d %s columns (%s to %s); use a coarser view",
			MaxColumns, c.ViewMode, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return ds, nil
}
