package waveform

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// StrainSample is the interferometer's view of the wave at time T.
// Scaled values carry the visual magnification; H and Phase are physical.
type StrainSample struct {
	T           float64
	H           float64
	Phase       float64
	ScaledH     float64
	ScaledPhase float64
}

// Strain evaluates h(t) = h0·sin(ωt) and the phase shift Δφ = (4πL/λ)·h.
//
// VisualScale multiplies both h and Δφ so that strains of order 1e-21 can be
// drawn. It is cosmetic and applies equally to both arms.
type Strain struct {
	Omega       float64
	H0          float64
	ArmLength   float64
	Wavelength  float64
	VisualScale float64
}

func NewStrain(freq, h0, armLength, wavelength, visualScale float64) Strain {
	return Strain{
		Omega:       AngularFrequency(freq),
		H0:          h0,
		ArmLength:   armLength,
		Wavelength:  wavelength,
		VisualScale: visualScale,
	}
}

// At returns the physical strain h(t).
func (s Strain) At(t float64) float64 {
	return s.H0 * math.Sin(s.Omega*t)
}

// PhaseFactor is 4πL/λ. The wavelength is assumed positive; config
// validation rejects anything else before a Strain is built.
func PhaseFactor(armLength, wavelength float64) float64 {
	return 4 * math.Pi * armLength / wavelength
}

// PhaseShift converts a strain to the interferometer phase shift.
func (s Strain) PhaseShift(h float64) float64 {
	return PhaseFactor(s.ArmLength, s.Wavelength) * h
}

func (s Strain) Evaluate(t float64) StrainSample {
	h := s.At(t)
	phase := s.PhaseShift(h)
	return StrainSample{
		T:           t,
		H:           h,
		Phase:       phase,
		ScaledH:     h * s.VisualScale,
		ScaledPhase: phase * s.VisualScale,
	}
}

func (s Strain) Period() float64 {
	return Period(s.Omega)
}

// Series holds a strain signal evaluated over a whole time grid, column-wise.
type Series struct {
	T           []float64
	H           []float64
	Phase       []float64
	ScaledH     []float64
	ScaledPhase []float64
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.T) }

// Sample reassembles row i.
func (s *Series) Sample(i int) StrainSample {
	return StrainSample{
		T:           s.T[i],
		H:           s.H[i],
		Phase:       s.Phase[i],
		ScaledH:     s.ScaledH[i],
		ScaledPhase: s.ScaledPhase[i],
	}
}

// StrainSeries evaluates s at every time in times. The result owns its
// slices; times is copied.
func (s Strain) StrainSeries(times []float64) *Series {
	n := len(times)
	out := &Series{
		T:           make([]float64, n),
		H:           make([]float64, n),
		Phase:       make([]float64, n),
		ScaledH:     make([]float64, n),
		ScaledPhase: make([]float64, n),
	}
	copy(out.T, times)
	for i, t := range times {
		out.H[i] = s.At(t)
	}
	f64.Scale(out.Phase, out.H, PhaseFactor(s.ArmLength, s.Wavelength))
	f64.Scale(out.ScaledH, out.H, s.VisualScale)
	f64.Scale(out.ScaledPhase, out.Phase, s.VisualScale)
	return out
}
