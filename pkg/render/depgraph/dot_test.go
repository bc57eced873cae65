package depgraph

import (
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
)

func testChart() *chart.Chart {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	return &chart.Chart{Tasks: []chart.Task{
		{ID: "a", Name: "Design", Start: day(1), End: day(3), Progress: 40},
		{ID: "b", Start: day(3), End: day(5), Dependencies: []chart.Dependency{{ID: "a"}}},
		{ID: "c", Name: "Review", Start: day(3), End: day(6), Dependencies: []chart.Dependency{
			{ID: "a", Type: chart.StartToStart},
			{ID: "missing"},
		}},
		{ID: "m", Name: "Ship", Start: day(6), End: day(6), Type: chart.TypeMilestone},
	}}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testChart(), Options{})

	checks := []struct {
		name string
		want string
	}{
		{"declaration", "digraph G {"},
		{"direction", "rankdir=TB;"},
		{"named node", `"a" [label="Design"]`},
		{"unnamed node falls back to id", `"b" [label="b"]`},
		{"default edge unlabeled", `"a" -> "b";`},
		{"typed edge labeled", `"a" -> "c" [label="StartToStart"];`},
		{"milestone shape", "shape=diamond"},
	}
	for _, c := range checks {
		if !strings.Contains(dot, c.want) {
			t.Errorf("%s: ToDOT() output missing %q", c.name, c.want)
		}
	}
	if strings.Contains(dot, "missing") {
		t.Error("ToDOT() kept an edge from an unknown task")
	}
}

func TestToDOTOptions(t *testing.T) {
	dot := ToDOT(testChart(), Options{Detailed: true, Horizontal: true})

	if !strings.Contains(dot, "rankdir=LR;") {
		t.Error("Horizontal option not applied")
	}
	if !strings.Contains(dot, `Design\n2024-03-01 → 2024-03-03\n40%`) {
		t.Errorf("detailed label missing, got:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}
