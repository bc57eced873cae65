package sink

import (
	"context"

	"github.com/matzehuels/ganttline/pkg/render"
	"github.com/matzehuels/ganttline/pkg/scene"
)

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s scene.Scene, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(s, opts...))
}
