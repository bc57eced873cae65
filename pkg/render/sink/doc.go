// Package sink draws a laid out [scene.Scene].
//
// [RenderSVG] writes a standalone SVG document. The grid body sits below a
// header of column labels; inside it row backgrounds come first, then the
// grid ticks, weekend columns and today marker, then the dependency
// connectors, and finally the task bars so that connectors never cover a
// bar. Connector hover emphasis is a CSS rule in the document.
//
// [RenderJSON] exports the same geometry for other tools. [RenderPNG] and
// [RenderPDF] convert the SVG with rsvg-convert.
//
// [scene.Scene]: github.com/matzehuels/ganttline/pkg/scene#Scene
package sink
