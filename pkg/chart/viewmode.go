package chart

import (
	"strings"

	"github.com/matzehuels/ganttline/pkg/errors"
)

// ViewMode is the time span covered by one grid column.
type ViewMode string

const (
	ViewHour       ViewMode = "hour"
	ViewQuarterDay ViewMode = "quarter-day"
	ViewHalfDay    ViewMode = "half-day"
	ViewDay        ViewMode = "day"
	ViewWeek       ViewMode = "week"
	ViewMonth      ViewMode = "month"
	ViewYear       ViewMode = "year"
)

// ViewModes lists the supported view modes from finest to coarsest.
var ViewModes = []ViewMode{ViewHour, ViewQuarterDay, ViewHalfDay, ViewDay, ViewWeek, ViewMonth, ViewYear}

// ParseViewMode parses a view mode name case-insensitively. An empty
// string is ViewDay.
func ParseViewMode(s string) (ViewMode, error) {
	v := ViewMode(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return ViewDay, nil
	}
	for _, m := range ViewModes {
		if v == m {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidViewMode,
		"invalid view mode %q (must be one of: hour, quarter-day, half-day, day, week, month, year)", s)
}
