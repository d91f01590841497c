package viz

import (
	"github.com/san-kum/gwviz/internal/demo"
	"gonum.org/v1/gonum/spatial/r2"
)

// ringExtent is the half-width of the square the ring demo is drawn in.
const ringExtent = 2.0

// ViewportFor returns the world rectangle a snapshot is drawn in. The
// interferometer view leaves a margin around the corner so the beam splitter
// and both end mirrors stay on screen.
func ViewportFor(s demo.Snapshot) Viewport {
	if s.Kind == demo.Ring {
		return Viewport{
			Min: r2.Vec{X: -ringExtent, Y: -ringExtent},
			Max: r2.Vec{X: ringExtent, Y: ringExtent},
		}
	}
	l := s.ArmLength
	return Viewport{
		Min: r2.Vec{X: -l / 8, Y: -l / 8},
		Max: r2.Vec{X: l * 1.25, Y: l * 1.25},
	}
}

// DrawSnapshot clears c and draws one frame.
func DrawSnapshot(c *Canvas, s demo.Snapshot) {
	c.Clear()
	v := ViewportFor(s)
	switch s.Kind {
	case demo.Ring:
		drawRing(c, v, s)
	case demo.Interferometer:
		drawArms(c, v, s)
	}
}

func drawRing(c *Canvas, v Viewport, s demo.Snapshot) {
	// rest positions as single sub-pixels, displaced particles as blobs
	for _, p := range s.Base {
		x, y := v.Project(c, p)
		c.Set(x, y)
	}
	for _, p := range s.Points {
		v.Dot(c, p, 1)
	}
}

func drawArms(c *Canvas, v Viewport, s demo.Snapshot) {
	v.Line(c, s.Arms.X.From, s.Arms.X.To)
	v.Line(c, s.Arms.Y.From, s.Arms.Y.To)

	// end mirrors, drawn across each arm
	m := s.ArmLength / 20
	xEnd, yEnd := s.Arms.X.To, s.Arms.Y.To
	v.Line(c, r2.Add(xEnd, r2.Vec{Y: -m}), r2.Add(xEnd, r2.Vec{Y: m}))
	v.Line(c, r2.Add(yEnd, r2.Vec{X: -m}), r2.Add(yEnd, r2.Vec{X: m}))

	// beam splitter at 45°
	v.Line(c, r2.Vec{X: -m, Y: m}, r2.Vec{X: m, Y: -m})
	v.Dot(c, s.Arms.X.From, 1)
}
