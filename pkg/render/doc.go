// Package render turns laid out charts into output files.
//
// The drawing itself lives in subpackages:
//
//   - [sink] draws a [scene.Scene] as SVG, or exports it as JSON, PNG or PDF
//   - [depgraph] draws the task dependency graph with Graphviz
//
// This package holds the format conversion both share. [ToPDF] and [ToPNG]
// pipe an SVG document through the external rsvg-convert tool (librsvg).
//
//	svg := sink.RenderSVG(s)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [sink]: github.com/matzehuels/ganttline/pkg/render/sink
// [depgraph]: github.com/matzehuels/ganttline/pkg/render/depgraph
// [scene.Scene]: github.com/matzehuels/ganttline/pkg/scene#Scene
package render
