package sink

import (
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/scene"
)

func at(d, h int) time.Time {
	return time.Date(2024, time.January, d, h, 0, 0, 0, time.UTC)
}

// testScene lays out three tasks over Jan 1..8 2024 with now on Jan 2 noon.
func testScene(rtl bool) scene.Scene {
	c := &chart.Chart{
		ViewMode: chart.ViewDay,
		Tasks: []chart.Task{
			{ID: "a", Name: "Design & spec", Start: at(1, 0), End: at(3, 0), Progress: 50},
			{ID: "b", Name: "Build", Start: at(3, 0), End: at(5, 0), Dependencies: []chart.Dependency{{ID: "a"}}},
			{ID: "m", Name: "Launch", Start: at(6, 0), End: at(6, 0), Type: chart.TypeMilestone,
				Dependencies: []chart.Dependency{{ID: "b", Type: chart.EndToEnd}}},
		},
	}
	dates := make([]time.Time, 8)
	for i := range dates {
		dates[i] = at(1+i, 0)
	}
	opts := scene.DefaultOptions()
	opts.RTL = rtl
	return scene.Build(c, dates, opts, at(2, 12))
}
