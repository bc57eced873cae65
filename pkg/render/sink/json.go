package sink

import (
	"encoding/json"
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/geom"
	"github.com/matzehuels/ganttline/pkg/layout/grid"
	"github.com/matzehuels/ganttline/pkg/scene"
)

type jsonOutput struct {
	Width        float64           `json:"width"`
	Height       float64           `json:"height"`
	HeaderHeight float64           `json:"header_height"`
	ColumnWidth  float64           `json:"column_width"`
	RowHeight    float64           `json:"row_height"`
	ViewMode     chart.ViewMode    `json:"view_mode,omitempty"`
	RTL          bool              `json:"rtl,omitempty"`
	Dates        []time.Time       `json:"dates"`
	Rows         jsonRows          `json:"rows"`
	Ticks        []geom.Line       `json:"ticks"`
	Weekends     []geom.Rect       `json:"weekends,omitempty"`
	Today        *grid.TodayMarker `json:"today,omitempty"`
	Bars         []jsonBar         `json:"bars"`
	Arrows       []jsonArrow       `json:"arrows"`
}

type jsonRows struct {
	Backgrounds []geom.Rect `json:"backgrounds"`
	Lines       []geom.Line `json:"lines"`
}

type jsonBar struct {
	ID            string         `json:"id"`
	Name          string         `json:"name,omitempty"`
	Type          chart.TaskType `json:"type,omitempty"`
	Index         int            `json:"index"`
	X1            float64        `json:"x1"`
	X2            float64        `json:"x2"`
	Y             float64        `json:"y"`
	Height        float64        `json:"height"`
	ProgressWidth float64        `json:"progress_width,omitempty"`
}

type jsonArrow struct {
	From     string             `json:"from"`
	To       string             `json:"to"`
	Relation chart.RelationType `json:"relation"`
	D        string             `json:"d"`
	Segments geom.Path          `json:"segments"`
	Points   []geom.Point       `json:"points"`
	Head     geom.Triangle      `json:"head"`
}

// RenderJSON exports the scene geometry as a pretty-printed JSON document:
// the grid, every bar, and every connector both as SVG path data and as
// resolved vertices. It does not modify s and is safe to call concurrently.
func RenderJSON(s scene.Scene) ([]byte, error) {
	out := jsonOutput{
		Width:        s.Width,
		Height:       s.Height,
		HeaderHeight: s.HeaderHeight,
		ColumnWidth:  s.ColumnWidth,
		RowHeight:    s.RowHeight,
		ViewMode:     s.ViewMode,
		RTL:          s.RTL,
		Dates:        s.Dates,
		Rows:         jsonRows{Backgrounds: s.Rows.Backgrounds, Lines: s.Rows.Lines},
		Ticks:        s.Grid.Ticks,
		Weekends:     s.Grid.Weekends,
		Today:        s.Grid.Today,
		Bars:         make([]jsonBar, len(s.Bars)),
		Arrows:       make([]jsonArrow, len(s.Arrows)),
	}

	for i, b := range s.Bars {
		out.Bars[i] = jsonBar{
			ID:            b.ID,
			Name:          b.Name,
			Type:          b.Type,
			Index:         b.Index,
			X1:            b.X1,
			X2:            b.X2,
			Y:             b.Y,
			Height:        b.Height,
			ProgressWidth: b.ProgressWidth,
		}
	}
	for i, a := range s.Arrows {
		out.Arrows[i] = jsonArrow{
			From:     a.From,
			To:       a.To,
			Relation: a.Type,
			D:        a.Path.String(),
			Segments: a.Path,
			Points:   a.Path.Points(),
			Head:     a.Head,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
