package geom

import (
	"fmt"
	"strings"
)

// Command is a single orthogonal path instruction.
type Command byte

// Path commands. Upper case is absolute, lower case is relative to the
// current pen position.
const (
	MoveTo       Command = 'M'
	HorizontalTo Command = 'H'
	HorizontalBy Command = 'h'
	VerticalTo   Command = 'V'
	VerticalBy   Command = 'v'
)

// Segment is one command and its arguments. MoveTo takes x and y; every
// other command takes a single value.
type Segment struct {
	Cmd  Command   `json:"cmd"`
	Args []float64 `json:"args"`
}

// Path is an ordered list of segments forming a poly-line made only of
// horizontal and vertical runs.
type Path []Segment

// Move appends an absolute move.
func (p Path) Move(x, y float64) Path { return append(p, Segment{MoveTo, []float64{x, y}}) }

// H appends an absolute horizontal run to x.
func (p Path) H(x float64) Path { return append(p, Segment{HorizontalTo, []float64{x}}) }

// Dx appends a relative horizontal run.
func (p Path) Dx(dx float64) Path { return append(p, Segment{HorizontalBy, []float64{dx}}) }

// V appends an absolute vertical run to y.
func (p Path) V(y float64) Path { return append(p, Segment{VerticalTo, []float64{y}}) }

// Dy appends a relative vertical run.
func (p Path) Dy(dy float64) Path { return append(p, Segment{VerticalBy, []float64{dy}}) }

// String renders the path as SVG path data, e.g. "M 10 20 h 5 v 25".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(s.Cmd))
		for _, a := range s.Args {
			b.WriteByte(' ')
			b.WriteString(num(a))
		}
	}
	return b.String()
}

// Points resolves the path into absolute vertices. Each move and each run
// contributes one point, so zero-length runs show up as repeated points.
func (p Path) Points() []Point {
	pts := make([]Point, 0, len(p))
	var cur Point
	for _, s := range p {
		switch s.Cmd {
		case MoveTo:
			cur = Point{s.Args[0], s.Args[1]}
		case HorizontalTo:
			cur.X = s.Args[0]
		case HorizontalBy:
			cur.X += s.Args[0]
		case VerticalTo:
			cur.Y = s.Args[0]
		case VerticalBy:
			cur.Y += s.Args[0]
		}
		pts = append(pts, cur)
	}
	return pts
}

// Start returns the first vertex, or the zero point for an empty path.
func (p Path) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p.Points()[0]
}

// End returns the last vertex, or the zero point for an empty path.
func (p Path) End() Point {
	pts := p.Points()
	if len(pts) == 0 {
		return Point{}
	}
	return pts[len(pts)-1]
}

// MarshalText encodes the command as its single letter.
func (c Command) MarshalText() ([]byte, error) { return []byte{byte(c)}, nil }

// UnmarshalText decodes a single-letter command.
func (c *Command) UnmarshalText(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("invalid path command %q", b)
	}
	switch cmd := Command(b[0]); cmd {
	case MoveTo, HorizontalTo, HorizontalBy, VerticalTo, VerticalBy:
		*c = cmd
		return nil
	default:
		return fmt.Errorf("invalid path command %q", b)
	}
}
