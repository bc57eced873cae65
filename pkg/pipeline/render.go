package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/ganttline/pkg/cache"
	"github.com/matzehuels/ganttline/pkg/render/sink"
	"github.com/matzehuels/ganttline/pkg/scene"
)

// Render draws s in one format.
func Render(ctx context.Context, s scene.Scene, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithColors(opts.Colors)}
	if !opts.Labels {
		svgOpts = append(svgOpts, sink.WithoutLabels())
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(s, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(s)
	case FormatPNG:
		return sink.RenderPNG(ctx, s, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(ctx, s, svgOpts...)
	default:
		return nil, ValidateFormat(format)
	}
}

func artifactKeyOpts(format string, opts Options) cache.ArtifactKeyOpts {
	ko := cache.ArtifactKeyOpts{Format: format, Labels: opts.Labels}
	if format != FormatJSON {
		c := opts.Colors
		ko.Colors = fmt.Sprintf("%s|%s|%s|%s|%s", c.Bar, c.BarProgress, c.Project, c.Milestone, c.Arrow)
	}
	if format == FormatPNG {
		ko.Scale = opts.Scale
	}
	return ko
}
