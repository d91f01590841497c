package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(n int, rate, freq, amp float64) (times, data []float64) {
	times = make([]float64, n)
	data = make([]float64, n)
	for i := range data {
		times[i] = float64(i) / rate
		data[i] = amp * math.Sin(2*math.Pi*freq*times[i])
	}
	return times, data
}

func TestSpectrum_PureTone(t *testing.T) {
	// 0.4 Hz over 5 s at 30 fps is exactly two cycles: bin 2.
	_, data := sine(150, 30, 0.4, 3)

	freqs, amps := Spectrum(data, 30)
	require.Len(t, freqs, 76)
	require.Len(t, amps, 76)

	assert.InDelta(t, 0.4, freqs[2], 1e-12)
	assert.InDelta(t, 3.0, amps[2], 1e-9)
	assert.InDelta(t, 0.0, amps[0], 1e-9)
	assert.InDelta(t, 15.0, freqs[75], 1e-12)
}

func TestSpectrum_Short(t *testing.T) {
	f, a := Spectrum([]float64{1}, 30)
	assert.Nil(t, f)
	assert.Nil(t, a)
}

func TestDominantFrequency(t *testing.T) {
	_, data := sine(150, 30, 0.4, 1e-21)
	assert.InDelta(t, 0.4, DominantFrequency(data, 30), 1e-12)

	_, data = sine(200, 20, 1.0, 0.2)
	assert.InDelta(t, 1.0, DominantFrequency(data, 20), 1e-12)

	assert.Equal(t, 0.0, DominantFrequency(make([]float64, 64), 30))
}

func TestZeroCrossings(t *testing.T) {
	times, data := sine(301, 30, 0.5, 1)
	// Shift so crossings fall between samples.
	for i := range data {
		data[i] = math.Sin(2*math.Pi*0.5*times[i] - 0.3)
	}

	zc := ZeroCrossings(times, data)
	require.Len(t, zc, 5)
	for k, z := range zc {
		want := (0.3 / math.Pi) + 2*float64(k)
		assert.InDelta(t, want, z, 2e-3)
	}
	assert.InDelta(t, 0.5, CrossingFrequency(times, data), 1e-3)
}

func TestCrossingFrequency_Flat(t *testing.T) {
	assert.Equal(t, 0.0, CrossingFrequency([]float64{0, 1, 2}, []float64{1, 1, 1}))
}

func TestPortrait(t *testing.T) {
	n := 64
	x := make([]float64, n)
	y := make([]float64, n+3)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x[i] = 0.2 * math.Cos(a)
		y[i] = 0.2 * math.Sin(a)
	}

	p := NewPortrait(x, y)
	require.Len(t, p.Points, n)

	minX, maxX, minY, maxY := p.Bounds()
	assert.InDelta(t, -0.2, minX, 1e-12)
	assert.InDelta(t, 0.2, maxX, 1e-12)
	assert.InDelta(t, -0.2, minY, 1e-2)
	assert.InDelta(t, 0.2, maxY, 1e-2)

	out := PortraitToASCII(p, 40, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 20)
	assert.Contains(t, out, "•")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "─")

	assert.Empty(t, PortraitToASCII(nil, 40, 20))
	assert.Empty(t, PortraitToASCII(&Portrait{}, 40, 20))
}
