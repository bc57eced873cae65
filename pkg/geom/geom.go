// Package geom holds the plain drawing primitives produced by the layout
// packages: orthogonal paths, triangles, rectangles, lines and circles.
//
// Nothing here knows about SVG elements or any other drawing surface, with
// one exception: [Path.String] and [Triangle.String] format coordinates the
// way SVG path data and polygon points expect them, since that is the
// notation every sink in this module consumes.
package geom

import (
	"strconv"
	"strings"
)

// Point is a 2-D coordinate in user units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle with an optional fill.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill,omitempty"`
}

// Line is a straight segment between two endpoints.
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Circle is a filled dot.
type Circle struct {
	CX   float64 `json:"cx"`
	CY   float64 `json:"cy"`
	R    float64 `json:"r"`
	Fill string  `json:"fill,omitempty"`
}

// Triangle is three vertices; the first is the apex for arrowheads.
type Triangle [3]Point

// String formats the vertices as "x,y x,y x,y".
func (t Triangle) String() string {
	parts := make([]string, len(t))
	for i, p := range t {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
