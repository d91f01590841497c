package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// UnitRing returns n points evenly spaced on the unit circle at angles
// 2πk/n. It returns nil for n <= 0.
func UnitRing(n int) []r2.Vec {
	if n <= 0 {
		return nil
	}
	pts := make([]r2.Vec, n)
	for k := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		pts[k] = r2.Vec{X: cos, Y: sin}
	}
	return pts
}

// Displace applies the linearized transverse-traceless strain to p:
//
//	x' = x + h+·x + h×·y
//	y' = y − h+·y + h×·x
func Displace(p r2.Vec, hPlus, hCross float64) r2.Vec {
	return r2.Vec{
		X: p.X + hPlus*p.X + hCross*p.Y,
		Y: p.Y - hPlus*p.Y + hCross*p.X,
	}
}

// DeformRing displaces every base point with the same strain and returns a
// new slice.
func DeformRing(base []r2.Vec, hPlus, hCross float64) []r2.Vec {
	out := make([]r2.Vec, len(base))
	for i, p := range base {
		out[i] = Displace(p, hPlus, hCross)
	}
	return out
}

// MaxStretch returns the largest |r'-r| over the ring, the distance each
// particle strays from its rest position.
func MaxStretch(base, deformed []r2.Vec) float64 {
	peak := 0.0
	for i := range base {
		if i >= len(deformed) {
			break
		}
		if d := r2.Norm(r2.Sub(deformed[i], base[i])); d > peak {
			peak = d
		}
	}
	return peak
}
