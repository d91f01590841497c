package waveform

import "math"

// PolarizationSample is the wave field seen by the particle ring at time T.
type PolarizationSample struct {
	T      float64
	HPlus  float64
	HCross float64
}

// Polarization is a circularly phased plus/cross wave:
// h+ = A+·cos(ωt), h× = A×·sin(ωt).
type Polarization struct {
	Omega    float64
	PlusAmp  float64
	CrossAmp float64
}

// NewPolarization builds a polarization wave from an ordinary frequency in Hz.
func NewPolarization(freq, plusAmp, crossAmp float64) Polarization {
	return Polarization{Omega: AngularFrequency(freq), PlusAmp: plusAmp, CrossAmp: crossAmp}
}

func (p Polarization) Evaluate(t float64) PolarizationSample {
	sin, cos := math.Sincos(p.Omega * t)
	return PolarizationSample{T: t, HPlus: p.PlusAmp * cos, HCross: p.CrossAmp * sin}
}

// Period returns 2π/ω, or +Inf for a static field.
func (p Polarization) Period() float64 {
	return Period(p.Omega)
}

// AngularFrequency converts Hz to rad/s.
func AngularFrequency(freq float64) float64 { return 2 * math.Pi * freq }

// Period returns 2π/omega, or +Inf when omega is zero.
func Period(omega float64) float64 {
	if omega == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(omega)
}
