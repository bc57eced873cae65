package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/matzehuels/ganttline/pkg/chart"
)

// viewModeValue is a --view flag. The zero value means "use the chart's
// own view mode".
type viewModeValue chart.ViewMode

func (v *viewModeValue) String() string { return string(*v) }
func (v *viewModeValue) Type() string   { return "mode" }

func (v *viewModeValue) Set(s string) error {
	mode, err := chart.ParseViewMode(s)
	if err != nil {
		return err
	}
	*v = viewModeValue(mode)
	return nil
}

type relationValue chart.RelationType

func (r *relationValue) String() string { return chart.RelationType(*r).String() }
func (r *relationValue) Type() string   { return "relation" }

func (r *relationValue) Set(s string) error {
	rel, err := chart.ParseRelationType(s)
	if err != nil {
		return err
	}
	*r = relationValue(rel)
	return nil
}

// spanValue parses "x1,x2" into a horizontal extent.
type spanValue struct{ x1, x2 float64 }

func (s *spanValue) String() string {
	return strconv.FormatFloat(s.x1, 'f', -1, 64) + "," + strconv.FormatFloat(s.x2, 'f', -1, 64)
}

func (s *spanValue) Type() string { return "x1,x2" }

func (s *spanValue) Set(v string) error {
	a, b, ok := strings.Cut(v, ",")
	if !ok {
		return fmt.Errorf("want x1,x2, got %q", v)
	}
	x1, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return fmt.Errorf("x1: %w", err)
	}
	x2, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return fmt.Errorf("x2: %w", err)
	}
	if x2 < x1 {
		return fmt.Errorf("x2 %v is left of x1 %v", x2, x1)
	}
	s.x1, s.x2 = x1, x2
	return nil
}

// timeValue is a --now flag accepting RFC 3339 or a plain date.
type timeValue struct{ t time.Time }

func (v *timeValue) String() string {
	if v.t.IsZero() {
		return ""
	}
	return v.t.Format(time.RFC3339)
}

func (v *timeValue) Type() string { return "time" }

func (v *timeValue) Set(s string) error {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			v.t = t
			return nil
		}
	}
	return fmt.Errorf("want RFC 3339 or YYYY-MM-DD, got %q", s)
}

var (
	_ pflag.Value = (*viewModeValue)(nil)
	_ pflag.Value = (*relationValue)(nil)
	_ pflag.Value = (*spanValue)(nil)
	_ pflag.Value = (*timeValue)(nil)
)
