package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum returns the one-sided amplitude spectrum of data sampled at
// sampleRate Hz, and the frequency of every bin. Amplitudes are scaled so a
// pure sinusoid of amplitude A on an exact bin reads A.
func Spectrum(data []float64, sampleRate float64) (freqs, amps []float64) {
	n := len(data)
	if n < 2 {
		return nil, nil
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, data)

	freqs = make([]float64, len(coeffs))
	amps = make([]float64, len(coeffs))
	for i, c := range coeffs {
		freqs[i] = fft.Freq(i) * sampleRate
		a := cmplx.Abs(c) / float64(n)
		if i != 0 && !(n%2 == 0 && i == n/2) {
			a *= 2
		}
		amps[i] = a
	}
	return freqs, amps
}

// DominantFrequency returns the frequency of the largest non-DC bin, or 0
// when the signal is flat.
func DominantFrequency(data []float64, sampleRate float64) float64 {
	freqs, amps := Spectrum(data, sampleRate)
	best, bestAmp := 0, 0.0
	for i := 1; i < len(amps); i++ {
		if amps[i] > bestAmp {
			best, bestAmp = i, amps[i]
		}
	}
	if best == 0 {
		return 0
	}
	return freqs[best]
}
