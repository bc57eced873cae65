package sink

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/ganttline/pkg/chart"
)

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testScene(false)))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 480 200"`) {
		t.Errorf("unexpected root element: %.100s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing svg tag")
	}

	checks := []struct {
		name string
		want string
	}{
		{"hover rule", ".arrow:hover { stroke-width: 2; }"},
		{"grid body offset", `transform="translate(0,50)"`},
		{"connector path", `<path d="M 120 25 h 20 v 25 H 100 V 75 h 20"/>`},
		{"arrowhead", `<polygon points="120,75 115,70 115,80"/>`},
		{"relation attribute", `data-relation="EndToEnd"`},
		{"today marker", `<rect x="90" y="0" width="2" height="150" fill="rgba(252, 248, 227, 0.5)"/>`},
		{"weekend column", `<rect x="300" y="0" width="60" height="150" fill="rgba(0, 0, 0, 0.04)"/>`},
		{"progress", `width="60" height="30" rx="3" fill="#a3a3ff"`},
		{"escaped label", "Design &amp; spec"},
		{"milestone diamond", `<polygon points="300,110 315,125 300,140 285,125"`},
		{"column label", ">Mon 1<"},
		{"month label", ">January 2024<"},
	}
	for _, c := range checks {
		if !strings.Contains(svg, c.want) {
			t.Errorf("%s: missing %q", c.name, c.want)
		}
	}

	if n := strings.Count(svg, `class="grid-tick"`); n != 8 {
		t.Errorf("tick count = %d, want 8", n)
	}
	if n := strings.Count(svg, `class="arrow"`); n != 2 {
		t.Errorf("arrow count = %d, want 2", n)
	}
}

func TestRenderSVGWellFormed(t *testing.T) {
	for _, rtl := range []bool{false, true} {
		data := RenderSVG(testScene(rtl))
		dec := xml.NewDecoder(strings.NewReader(string(data)))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("rtl=%v: invalid XML: %v", rtl, err)
			}
		}
	}
}

func TestRenderSVGOptions(t *testing.T) {
	colors := DefaultColors()
	colors.Arrow = "#ff0000"
	svg := string(RenderSVG(testScene(false), WithColors(colors), WithoutLabels(), WithFont("Inter")))

	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("custom arrow color not applied")
	}
	if strings.Contains(svg, "Build</text>") {
		t.Error("labels rendered despite WithoutLabels")
	}
	if !strings.Contains(svg, `font-family="Inter"`) {
		t.Error("font family not applied")
	}
}

func TestRenderSVGEscapesColors(t *testing.T) {
	const hostile = `red" onload="alert(1)`
	const escaped = `red&#34; onload=&#34;alert(1)`

	tests := []struct {
		name string
		set  func(*Colors)
	}{
		{"arrow", func(c *Colors) { c.Arrow = hostile }},
		{"bar", func(c *Colors) { c.Bar = hostile }},
		{"bar progress", func(c *Colors) { c.BarProgress = hostile }},
		{"project", func(c *Colors) { c.Project = hostile }},
		{"milestone", func(c *Colors) { c.Milestone = hostile }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScene(false)
			s.Bars[1].Type = chart.TypeProject
			colors := DefaultColors()
			tt.set(&colors)
			svg := string(RenderSVG(s, WithColors(colors)))

			if strings.Contains(svg, hostile) {
				t.Errorf("RenderSVG() wrote %s color unescaped", tt.name)
			}
			if !strings.Contains(svg, escaped) {
				t.Errorf("RenderSVG() missing escaped %s color %q", tt.name, escaped)
			}
			dec := xml.NewDecoder(strings.NewReader(svg))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("invalid XML: %v", err)
				}
			}
		})
	}
}

func TestColumnLabel(t *testing.T) {
	d := at(3, 14)
	tests := []struct {
		mode chart.ViewMode
		want string
	}{
		{chart.ViewYear, "2024"},
		{chart.ViewMonth, "January"},
		{chart.ViewWeek, "W1"},
		{chart.ViewDay, "Wed 3"},
		{chart.ViewHour, "14:00"},
		{chart.ViewHalfDay, "14:00"},
	}
	for _, tt := range tests {
		if got := columnLabel(d, tt.mode); got != tt.want {
			t.Errorf("columnLabel(%s) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestHeaderLabelsGroupOnce(t *testing.T) {
	s := testScene(false)
	var top int
	for _, l := range headerLabels(s.Dates, s.ViewMode, s.ColumnWidth, false) {
		if l.top {
			top++
		}
	}
	if top != 1 {
		t.Errorf("top labels = %d, want 1 for a single month", top)
	}
}
