// Package analysis characterizes the sampled waveforms.
//
//   - [Spectrum]: one-sided amplitude spectrum of a uniformly sampled signal
//   - [DominantFrequency]: strongest non-DC spectral peak
//   - [ZeroCrossings]: upward zero crossings, interpolated in time
//   - [NewPortrait]: 2D portrait of two signals, e.g. h+ against h×
//
// # Polarization Check
//
// A circularly polarized wave traces a circle in the (h+, h×) plane, a pure
// plus wave a horizontal line:
//
//	p := analysis.NewPortrait(hPlus, hCross)
//	fmt.Print(analysis.PortraitToASCII(p, 40, 20))
package analysis
