// Package depgraph draws the dependency structure of a chart as a
// node-link diagram.
//
// Tasks become boxes and every dependency an arrow from source to target,
// labeled with its relation type unless it is the default EndToStart.
// Milestones are drawn as diamonds. Layout is left to Graphviz.
//
//	dot := depgraph.ToDOT(c, depgraph.Options{})
//	svg, err := depgraph.RenderSVG(ctx, dot)
//
// For PDF or PNG output pass the SVG to render.ToPDF or render.ToPNG.
package depgraph
