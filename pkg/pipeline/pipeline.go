// Package pipeline runs the layout and render stages for the CLI and the
// HTTP server.
//
// A chart goes through two stages:
//
//  1. Layout: seed the date sequence, build the scene (grid, bars, arrows)
//  2. Render: draw the scene in every requested format
//
// Both stages are cached through a [cache.Cache]. The scene is stored as
// JSON under a layout key derived from the chart and every layout option;
// each artifact is stored under a key derived from the layout key and the
// sink options.
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{pipeline.FormatSVG, pipeline.FormatJSON}
//	result, err := runner.Execute(ctx, c, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/render/sink"
	"github.com/matzehuels/ganttline/pkg/scene"
)

const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatJSON, FormatPNG, FormatPDF}

// DefaultPreSteps is the number of leading columns before the earliest task.
const DefaultPreSteps = 1

// Options configures one pipeline run.
type Options struct {
	// ViewMode overrides the chart's own view mode when set.
	ViewMode chart.ViewMode
	PreSteps int
	Scene    scene.Options
	Colors   sink.Colors
	Labels   bool
	Scale    float64 // PNG only

	Formats []string

	// Now positions the today marker. Zero means time.Now.
	Now time.Time

	// Refresh skips cache reads; results are still written.
	Refresh bool
}

// DefaultOptions returns options that render an SVG with the built-in
// geometry and palette.
func DefaultOptions() Options {
	return Options{
		PreSteps: DefaultPreSteps,
		Scene:    scene.DefaultOptions(),
		Colors:   sink.DefaultColors(),
		Labels:   true,
		Scale:    1,
		Formats:  []string{FormatSVG},
	}
}

// Result is the output of [Runner.Execute].
type Result struct {
	ChartHash string
	Scene     scene.Scene
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	Tasks      int
	Arrows     int
	Columns    int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which stages were served from the cache.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // every artifact came from the cache
}

// ValidateFormat checks that format is one of [Formats].
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format and rejects duplicates.
func ValidateFormats(formats []string) error {
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if seen[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "format %q requested twice", f)
		}
		seen[f] = true
	}
	return nil
}

// Validate checks the options and fills in defaults for zero values.
func (o *Options) Validate() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.ViewMode != "" {
		mode, err := chart.ParseViewMode(string(o.ViewMode))
		if err != nil {
			return err
		}
		o.ViewMode = mode
	}
	if o.Scale == 0 {
		o.Scale = 1
	}

	s := o.Scene
	switch {
	case s.ColumnWidth <= 0 || s.RowHeight <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "column width and row height must be positive")
	case s.BarFill <= 0 || s.BarFill > 100:
		return errors.New(errors.ErrCodeInvalidInput, "bar fill must be in (0, 100]")
	case o.PreSteps < 0:
		return errors.New(errors.ErrCodeInvalidInput, "pre-steps must not be negative")
	case o.Scale < 0:
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive")
	}
	return nil
}
