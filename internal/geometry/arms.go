package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Segment is a straight line between two points.
type Segment struct {
	From, To r2.Vec
}

// Len returns the segment length.
func (s Segment) Len() float64 { return r2.Norm(r2.Sub(s.To, s.From)) }

// Arms is an L-shaped interferometer with the beam splitter at the origin,
// one arm along +X and one along +Y.
type Arms struct {
	Length float64
}

// ArmFrame is the deformed interferometer for one frame.
type ArmFrame struct {
	X, Y   Segment
	DeltaX float64
	DeltaY float64
}

// Rest returns the undeformed arms.
func (a Arms) Rest() ArmFrame { return a.Deform(0) }

// Deform applies strain h (already visually scaled) to both arms.
//
// Both deltas are computed as +L·h/2. The differential signature comes from
// placement: the X mirror sits at L+ΔLx and the Y mirror at L−ΔLy, so one arm
// stretches while the other shrinks. Keep this convention; the drawn output
// depends on it.
func (a Arms) Deform(h float64) ArmFrame {
	dx := a.Length * h / 2
	dy := a.Length * h / 2
	return ArmFrame{
		X:      Segment{To: r2.Vec{X: a.Length + dx}},
		Y:      Segment{To: r2.Vec{Y: a.Length - dy}},
		DeltaX: dx,
		DeltaY: dy,
	}
}

// Differential returns Lx − Ly for the frame.
func (f ArmFrame) Differential() float64 { return f.X.Len() - f.Y.Len() }
