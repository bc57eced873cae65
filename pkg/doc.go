// Package pkg provides the core libraries of ganttline.
//
// # Overview
//
// ganttline turns a chart of tasks and dependencies into a timeline
// drawing. The pkg directory is organized by stage:
//
//  1. [chart] and [io] - the input model and its JSON, YAML and TOML files
//  2. [chart/dates], [layout/grid], [layout/bar], [layout/arrow] - geometry
//  3. [scene] - one complete laid out chart
//  4. [render] - SVG, JSON, PNG and PDF sinks plus the Graphviz dependency graph
//  5. [pipeline] - orchestration (layout, render, cache)
//  6. [cache], [config], [observability], [server] - infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	chart file (json, yaml, toml)
//	         ↓
//	    [io] package (decode and validate)
//	         ↓
//	    [chart/dates] package (column boundaries for the view mode)
//	         ↓
//	    [scene] package (grid, bars, routed arrows)
//	         ↓
//	    [render/sink] package
//	         ↓
//	    SVG/JSON/PNG/PDF output
//
// # Quick Start
//
//	c, err := io.ImportChart("plan.yaml")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, c, pipeline.DefaultOptions())
//	svg := res.Artifacts[pipeline.FormatSVG]
package pkg
