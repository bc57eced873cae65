package depgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ganttline/pkg/chart"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds start and end dates and progress to node labels.
	Detailed bool
	// Horizontal lays the graph out left to right instead of top to bottom.
	Horizontal bool
}

// ToDOT converts the chart's dependency graph to Graphviz DOT source.
// Dependencies naming unknown tasks are dropped.
func ToDOT(c *chart.Chart, opts Options) string {
	rankdir := "TB"
	if opts.Horizontal {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=12, color=grey40];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	known := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		known[t.ID] = true
		fmt.Fprintf(&buf, "  %q [%s];\n", t.ID, strings.Join(fmtAttrs(t, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, t := range c.Tasks {
		for _, d := range t.Dependencies {
			if !known[d.ID] {
				continue
			}
			if d.Type == chart.EndToStart {
				fmt.Fprintf(&buf, "  %q -> %q;\n", d.ID, t.ID)
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", d.ID, t.ID, d.Type.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(t chart.Task, detailed bool) string {
	name := t.Name
	if name == "" {
		name = t.ID
	}
	if !detailed {
		return name
	}

	parts := []string{name, t.Start.Format("2006-01-02") + " → " + t.End.Format("2006-01-02")}
	if t.Progress > 0 {
		parts = append(parts, strconv.FormatFloat(t.Progress, 'f', -1, 64)+"%")
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(t chart.Task, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(t, detailed))}
	switch t.Type {
	case chart.TypeMilestone:
		attrs = append(attrs, "shape=diamond", "fillcolor=\"#f1c453\"")
	case chart.TypeProject:
		attrs = append(attrs, "fillcolor=\"#fac465\"")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one whose
// viewBox starts at the origin and whose size is in user units.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
