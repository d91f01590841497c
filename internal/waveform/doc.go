// Package waveform evaluates plane gravitational waves at a time sample.
//
// Two evaluators are provided, one per demonstration:
//
//   - [Polarization]: plus/cross strain acting on a ring of free particles
//   - [Strain]: single-polarization strain and the optical phase shift it
//     induces in an interferometer
//
// Every evaluator is a pure function of time. Amplitudes are not validated;
// they are expected to stay well below 1 so the linearized metric holds.
//
// # Example
//
//	p := waveform.NewPolarization(1.0, 0.2, 0.2)
//	s := p.Evaluate(0.25)
//	// s.HPlus == 0.2*cos(π/2), s.HCross == 0.2*sin(π/2)
package waveform
