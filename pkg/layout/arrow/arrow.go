// Package arrow routes dependency connectors between task bars.
//
// A connector is an orthogonal poly-line that leaves one vertical edge of
// the source bar, steps half a row toward the target row, runs along the
// gap between rows, and enters one vertical edge of the target bar, where a
// small triangle marks the arrowhead. Which edges are used depends on the
// relation type:
//
//	EndToStart    source right edge -> target left edge (default)
//	StartToStart  source left edge  -> target left edge
//	StartToEnd    source left edge  -> target right edge
//	EndToEnd      source right edge -> target right edge
//
// When the source's stand-off point (its right edge plus twice the indent)
// has not reached the target edge yet, the connector skips the long run
// along the row gap and drops straight to the target row. Otherwise it
// detours back along the gap so it never cuts through either bar. Either
// way the last run ends on the arrowhead apex.
//
// Right-to-left charts use a single shape for every relation type: out of
// the source's left edge and into the target's right edge.
//
// [Route] is a pure function of its inputs. Degenerate input (zero-width
// bars, equal coordinates) produces zero-length segments, never an error.
package arrow

import (
	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/geom"
	"github.com/matzehuels/ganttline/pkg/layout/bar"
)

const (
	// headSize is the horizontal and half-vertical extent of an arrowhead.
	headSize = 5

	// endToEndSlack is how far past the target's right stand-off an
	// EndToEnd source must reach before the gap run is dropped.
	endToEndSlack = 10
)

// Geometry holds the row metrics connectors are routed with.
type Geometry struct {
	RowHeight float64
	BarHeight float64
	Indent    float64 // horizontal stand-off before the first and last turn
}

// Connector is one routed dependency arrow.
type Connector struct {
	Path geom.Path
	Head geom.Triangle
}

// Route computes the connector from one bar to another.
func Route(from, to bar.Bar, rel chart.RelationType, g Geometry, rtl bool) Connector {
	if rtl {
		return routeRTL(from, to, g)
	}

	r := newRouter(from, to, g)
	switch rel {
	case chart.StartToEnd:
		return Connector{Path: r.startToEnd(), Head: headAtEnd(to, r.toY)}
	case chart.EndToEnd:
		return Connector{Path: r.endToEnd(), Head: headAtEnd(to, r.toY)}
	case chart.StartToStart:
		return Connector{Path: r.startToStart(), Head: headAtStart(to, r.toY)}
	default: // chart.EndToStart
		return Connector{Path: r.endToStart(), Head: headAtStart(to, r.toY)}
	}
}

// router carries the values every left-to-right shape shares.
type router struct {
	from, to bar.Bar
	indent   float64
	fromY    float64 // vertical center of the source bar
	toY      float64 // vertical center of the target bar
	step     float64 // signed half-row jog toward the target row
	reach    float64 // source right edge plus twice the indent
}

func newRouter(from, to bar.Bar, g Geometry) router {
	return router{
		from:   from,
		to:     to,
		indent: g.Indent,
		fromY:  from.Y + g.BarHeight/2,
		toY:    to.Y + g.BarHeight/2,
		step:   direction(from, to) * g.RowHeight / 2,
		reach:  from.X2 + g.Indent*2,
	}
}

// direction is +1 when the target row is below the source row, else -1.
func direction(from, to bar.Bar) float64 {
	if from.Index < to.Index {
		return 1
	}
	return -1
}

func (r router) endToStart() geom.Path {
	p := geom.Path{}.Move(r.from.X2, r.fromY).Dx(r.indent).Dy(r.step)
	if r.reach < r.to.X1 {
		return p.V(r.toY).Dx(r.to.X1 - r.from.X2 - r.indent)
	}
	return p.H(r.to.X1 - r.indent).V(r.toY).Dx(r.indent)
}

func (r router) startToEnd() geom.Path {
	return geom.Path{}.Move(r.from.X1, r.fromY).
		Dx(-r.indent).
		Dy(r.step).
		H(r.to.X2 + r.indent).
		V(r.toY).
		Dx(-r.indent)
}

func (r router) endToEnd() geom.Path {
	p := geom.Path{}.Move(r.from.X2, r.fromY).Dx(r.indent).Dy(r.step)
	if r.reach > r.to.X2+r.indent+endToEndSlack {
		return p.V(r.toY).Dx(r.to.X2 - r.from.X2 - r.indent)
	}
	return p.H(r.to.X2 + r.indent).V(r.toY).Dx(-r.indent)
}

func (r router) startToStart() geom.Path {
	p := geom.Path{}.Move(r.from.X1, r.fromY).Dx(-r.indent).Dy(r.step)
	if r.reach < r.to.X1 {
		return p.V(r.toY).Dx(r.to.X1 - r.from.X1 + r.indent)
	}
	return p.H(r.to.X1 - r.indent).V(r.toY).Dx(r.indent)
}

// routeRTL mirrors the default shape: out of the source's left edge, into
// the target's right edge.
func routeRTL(from, to bar.Bar, g Geometry) Connector {
	toY := to.Y + g.BarHeight/2
	reach := from.X1 - g.Indent*2

	p := geom.Path{}.Move(from.X1, from.Y+g.BarHeight/2).
		Dx(-g.Indent).
		Dy(direction(from, to) * g.RowHeight / 2)
	if reach > to.X2 {
		p = p.V(toY).Dx(to.X2 - from.X1 + g.Indent)
	} else {
		p = p.H(to.X2 + g.Indent).V(toY).Dx(-g.Indent)
	}
	return Connector{Path: p, Head: headAtEnd(to, toY)}
}

// headAtStart points right, into the target's left edge.
func headAtStart(to bar.Bar, y float64) geom.Triangle {
	return geom.Triangle{
		{X: to.X1, Y: y},
		{X: to.X1 - headSize, Y: y - headSize},
		{X: to.X1 - headSize, Y: y + headSize},
	}
}

// headAtEnd points left, into the target's right edge.
func headAtEnd(to bar.Bar, y float64) geom.Triangle {
	return geom.Triangle{
		{X: to.X2, Y: y},
		{X: to.X2 + headSize, Y: y + headSize},
		{X: to.X2 + headSize, Y: y - headSize},
	}
}
