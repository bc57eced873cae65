package bar

import (
	"testing"
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
)

func days(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC)
	}
	return out
}

func at(d, h int) time.Time {
	return time.Date(2024, time.January, d, h, 0, 0, 0, time.UTC)
}

func TestX(t *testing.T) {
	ds := days(5) // Jan 1..5
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"first boundary", at(1, 0), 0},
		{"before sequence", at(1, 0).Add(-time.Hour), 0},
		{"exact boundary", at(3, 0), 120},
		{"half column", at(2, 12), 90},
		{"quarter column", at(4, 6), 195},
		{"last boundary", at(5, 0), 240},
		{"after sequence", at(9, 0), 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := X(tt.t, ds, 60); got != tt.want {
				t.Errorf("X() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := X(at(2, 0), nil, 60); got != 0 {
		t.Errorf("X() with no dates = %v, want 0", got)
	}
}

func TestBuild(t *testing.T) {
	tasks := []chart.Task{
		{ID: "a", Name: "Design", Start: at(1, 0), End: at(3, 0), Progress: 50},
		{ID: "b", Name: "Build", Start: at(3, 0), End: at(4, 12), Dependencies: []chart.Dependency{{ID: "a", Type: chart.StartToStart}}},
		{ID: "m", Name: "Launch", Start: at(5, 0), End: at(5, 0), Type: chart.TypeMilestone},
	}
	opts := Options{ColumnWidth: 60, RowHeight: 50, BarFill: 60}

	bars := Build(tasks, days(6), opts)
	if len(bars) != 3 {
		t.Fatalf("len = %d, want 3", len(bars))
	}

	a := bars[0]
	if a.X1 != 0 || a.X2 != 120 {
		t.Errorf("a x = [%v, %v], want [0, 120]", a.X1, a.X2)
	}
	if a.Height != 30 || a.Y != 10 {
		t.Errorf("a y = %v height = %v, want 10 and 30", a.Y, a.Height)
	}
	if a.ProgressWidth != 60 {
		t.Errorf("a progress = %v, want 60", a.ProgressWidth)
	}

	b := bars[1]
	if b.Index != 1 || b.Y != 60 {
		t.Errorf("b index = %d y = %v, want 1 and 60", b.Index, b.Y)
	}
	if b.X1 != 120 || b.X2 != 210 {
		t.Errorf("b x = [%v, %v], want [120, 210]", b.X1, b.X2)
	}
	if got := b.RelationFrom("a"); got != chart.StartToStart {
		t.Errorf("RelationFrom(a) = %v, want StartToStart", got)
	}
	if got := b.RelationFrom("m"); got != chart.EndToStart {
		t.Errorf("RelationFrom(m) = %v, want EndToStart default", got)
	}

	m := bars[2]
	if m.X1 != m.X2 || m.X1 != 240 {
		t.Errorf("milestone x = [%v, %v], want [240, 240]", m.X1, m.X2)
	}
}

func TestBuildRTL(t *testing.T) {
	tasks := []chart.Task{{ID: "a", Start: at(1, 0), End: at(3, 0)}}
	ltr := Build(tasks, days(6), Options{ColumnWidth: 60, RowHeight: 50, BarFill: 60})
	rtl := Build(tasks, days(6), Options{ColumnWidth: 60, RowHeight: 50, BarFill: 60, RTL: true})

	// The last of 6 ticks sits at 300.
	if rtl[0].X1 != 300-ltr[0].X2 || rtl[0].X2 != 300-ltr[0].X1 {
		t.Errorf("rtl x = [%v, %v], ltr x = [%v, %v]", rtl[0].X1, rtl[0].X2, ltr[0].X1, ltr[0].X2)
	}
	if rtl[0].X1 > rtl[0].X2 {
		t.Error("mirrored bar must keep X1 <= X2")
	}
}

func TestBarHelpers(t *testing.T) {
	b := Bar{X1: 10, X2: 70, Y: 10, Height: 30}
	if b.Width() != 60 {
		t.Errorf("Width() = %v", b.Width())
	}
	if b.CenterY() != 25 {
		t.Errorf("CenterY() = %v", b.CenterY())
	}
}
