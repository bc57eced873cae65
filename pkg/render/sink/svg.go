package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/geom"
	"github.com/matzehuels/ganttline/pkg/layout/bar"
	"github.com/matzehuels/ganttline/pkg/scene"
)

const chartCSS = `
    .grid-row { fill: #ffffff; }
    .grid-row:nth-child(even) { fill: #f5f5f5; }
    .grid-row-line { stroke: #ebeff2; }
    .grid-tick { stroke: #e6e4e4; stroke-width: 1.4; }
    .header-text { font-size: 12px; fill: #333; text-anchor: middle; }
    .header-top { font-size: 14px; fill: #555; text-anchor: start; }
    .bar-label { font-size: 12px; fill: #fff; text-anchor: middle; dominant-baseline: central; pointer-events: none; }
    .bar-label.outside { fill: #555; text-anchor: start; }
    .arrow { stroke-width: 1.5; transition: stroke-width 0.1s ease; }
    .arrow path { fill: none; }
    .arrow:hover { stroke-width: 2; }`

// Colors sets the fills of the task shapes and connectors.
type Colors struct {
	Bar         string
	BarProgress string
	Project     string
	Milestone   string
	Arrow       string
}

// DefaultColors returns the built-in palette.
func DefaultColors() Colors {
	return Colors{
		Bar:         "#b8c2cc",
		BarProgress: "#a3a3ff",
		Project:     "#fac465",
		Milestone:   "#f1c453",
		Arrow:       "grey",
	}
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	colors Colors
	font   string
	labels bool
}

func WithColors(c Colors) SVGOption    { return func(r *svgRenderer) { r.colors = c } }
func WithFont(family string) SVGOption { return func(r *svgRenderer) { r.font = family } }

// WithoutLabels omits task names from the bars.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// RenderSVG draws the scene: header, row backgrounds, grid, today marker,
// connectors, then the task bars on top.
func RenderSVG(s scene.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	total := s.HeaderHeight + s.Height

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" font-family="%s">`+"\n",
		num(s.Width), num(total), num(s.Width), num(total), escapeXML(r.font))
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", chartCSS)

	renderHeader(&buf, s)

	fmt.Fprintf(&buf, `  <g class="grid-body" transform="translate(0,%s)">`+"\n", num(s.HeaderHeight))
	renderRows(&buf, s)
	renderGrid(&buf, s)
	r.renderArrows(&buf, s.Arrows)
	r.renderBars(&buf, s.Bars)
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		colors: DefaultColors(),
		font:   "-apple-system, BlinkMacSystemFont, Segoe UI, Helvetica, Arial, sans-serif",
		labels: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderHeader(buf *bytes.Buffer, s scene.Scene) {
	h := s.HeaderHeight
	buf.WriteString(`  <g class="header">` + "\n")
	fmt.Fprintf(buf, `    <rect x="0" y="0" width="%s" height="%s" fill="#ffffff"/>`+"\n", num(s.Width), num(h))
	fmt.Fprintf(buf, `    <line x1="0" y1="%s" x2="%s" y2="%s" stroke="#e0e0e0"/>`+"\n", num(h), num(s.Width), num(h))

	for _, l := range headerLabels(s.Dates, s.ViewMode, s.ColumnWidth, s.RTL) {
		class, y := "header-text", h*0.8
		if l.top {
			class, y = "header-text header-top", h*0.4
		}
		fmt.Fprintf(buf, `    <text class="%s" x="%s" y="%s">%s</text>`+"\n", class, num(l.x), num(y), escapeXML(l.text))
	}
	buf.WriteString("  </g>\n")
}

func renderRows(buf *bytes.Buffer, s scene.Scene) {
	buf.WriteString(`    <g class="rows">` + "\n")
	for _, rc := range s.Rows.Backgrounds {
		fmt.Fprintf(buf, `      <rect class="grid-row" %s/>`+"\n", rectAttrs(rc))
	}
	buf.WriteString("    </g>\n")

	buf.WriteString(`    <g class="row-lines">` + "\n")
	for _, l := range s.Rows.Lines {
		fmt.Fprintf(buf, `      <line class="grid-row-line" %s/>`+"\n", lineAttrs(l))
	}
	buf.WriteString("    </g>\n")
}

func renderGrid(buf *bytes.Buffer, s scene.Scene) {
	buf.WriteString(`    <g class="ticks">` + "\n")
	for _, l := range s.Grid.Ticks {
		fmt.Fprintf(buf, `      <line class="grid-tick" %s/>`+"\n", lineAttrs(l))
	}
	buf.WriteString("    </g>\n")

	if len(s.Grid.Weekends) > 0 {
		buf.WriteString(`    <g class="weekends">` + "\n")
		for _, rc := range s.Grid.Weekends {
			fmt.Fprintf(buf, `      <rect %s/>`+"\n", rectAttrs(rc))
		}
		buf.WriteString("    </g>\n")
	}

	if t := s.Grid.Today; t != nil {
		buf.WriteString(`    <g class="today">` + "\n")
		fmt.Fprintf(buf, `      <rect %s/>`+"\n", rectAttrs(t.Bar))
		fmt.Fprintf(buf, `      <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(t.Dot.CX), num(t.Dot.CY), num(t.Dot.R), escapeXML(t.Dot.Fill))
		buf.WriteString("    </g>\n")
	}
}

func (r svgRenderer) renderArrows(buf *bytes.Buffer, arrows []scene.Arrow) {
	if len(arrows) == 0 {
		return
	}
	fmt.Fprintf(buf, `    <g class="arrows" fill="%s" stroke="%s">`+"\n", escapeXML(r.colors.Arrow), escapeXML(r.colors.Arrow))
	for _, a := range arrows {
		fmt.Fprintf(buf, `      <g class="arrow" data-from="%s" data-to="%s" data-relation="%s">`+"\n",
			escapeXML(a.From), escapeXML(a.To), a.Type)
		fmt.Fprintf(buf, `        <path d="%s"/>`+"\n", a.Path)
		fmt.Fprintf(buf, `        <polygon points="%s"/>`+"\n", a.Head)
		buf.WriteString("      </g>\n")
	}
	buf.WriteString("    </g>\n")
}

func (r svgRenderer) renderBars(buf *bytes.Buffer, bars []bar.Bar) {
	buf.WriteString(`    <g class="bars">` + "\n")
	for _, b := range bars {
		fmt.Fprintf(buf, `      <g class="bar" id="task-%s">`+"\n", escapeXML(b.ID))
		switch b.Type {
		case chart.TypeMilestone:
			r.renderMilestone(buf, b)
		default:
			r.renderTask(buf, b)
		}
		buf.WriteString("      </g>\n")
	}
	buf.WriteString("    </g>\n")
}

func (r svgRenderer) renderTask(buf *bytes.Buffer, b bar.Bar) {
	fill := r.colors.Bar
	if b.Type == chart.TypeProject {
		fill = r.colors.Project
	}
	fmt.Fprintf(buf, `        <rect x="%s" y="%s" width="%s" height="%s" rx="3" fill="%s"/>`+"\n",
		num(b.X1), num(b.Y), num(b.Width()), num(b.Height), escapeXML(fill))
	if b.ProgressWidth > 0 {
		fmt.Fprintf(buf, `        <rect x="%s" y="%s" width="%s" height="%s" rx="3" fill="%s"/>`+"\n",
			num(b.X1), num(b.Y), num(b.ProgressWidth), num(b.Height), escapeXML(r.colors.BarProgress))
	}
	if !r.labels || b.Name == "" {
		return
	}

	// Labels that do not fit inside the bar go to its right.
	if textWidth(b.Name) < b.Width() {
		fmt.Fprintf(buf, `        <text class="bar-label" x="%s" y="%s">%s</text>`+"\n",
			num(b.X1+b.Width()/2), num(b.CenterY()), escapeXML(b.Name))
		return
	}
	fmt.Fprintf(buf, `        <text class="bar-label outside" x="%s" y="%s">%s</text>`+"\n",
		num(b.X2+5), num(b.CenterY()), escapeXML(b.Name))
}

func (r svgRenderer) renderMilestone(buf *bytes.Buffer, b bar.Bar) {
	half := b.Height / 2
	cx, cy := b.X1, b.CenterY()
	fmt.Fprintf(buf, `        <polygon points="%s,%s %s,%s %s,%s %s,%s" fill="%s"/>`+"\n",
		num(cx), num(cy-half), num(cx+half), num(cy), num(cx), num(cy+half), num(cx-half), num(cy),
		escapeXML(r.colors.Milestone))
	if r.labels && b.Name != "" {
		fmt.Fprintf(buf, `        <text class="bar-label outside" x="%s" y="%s">%s</text>`+"\n",
			num(cx+half+5), num(cy), escapeXML(b.Name))
	}
}

// textWidth estimates the rendered width of a label at 12px.
func textWidth(s string) float64 {
	return float64(len([]rune(s))) * 12 * 0.55
}

func rectAttrs(rc geom.Rect) string {
	s := fmt.Sprintf(`x="%s" y="%s" width="%s" height="%s"`, num(rc.X), num(rc.Y), num(rc.Width), num(rc.Height))
	if rc.Fill != "" {
		s += fmt.Sprintf(` fill="%s"`, escapeXML(rc.Fill))
	}
	return s
}

func lineAttrs(l geom.Line) string {
	return fmt.Sprintf(`x1="%s" y1="%s" x2="%s" y2="%s"`, num(l.X1), num(l.Y1), num(l.X2), num(l.Y2))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
