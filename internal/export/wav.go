package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"
)

const (
	DefaultSampleRate = 44100
	DefaultCarrier    = 440.0
	DefaultDepth      = 0.5
	DefaultSpeedup    = 1.0

	bitDepth  = 16
	maxInt16  = math.MaxInt16
	amplitude = 0.8
	pcmFormat = 1
)

var ErrEmptySignal = errors.New("export: empty signal")

// WAVOptions configures sonification. Zero values pick the defaults, except
// SignalRate which must be set.
type WAVOptions struct {
	// SignalRate is the rate the input signal was sampled at (frames per second).
	SignalRate float64
	SampleRate int
	// Carrier is the tone in Hz heard when the signal is zero.
	Carrier float64
	// Depth is the fractional pitch swing at the signal's peak.
	Depth float64
	// Speedup compresses playback time.
	Speedup float64
}

func (o *WAVOptions) defaults() {
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Carrier <= 0 {
		o.Carrier = DefaultCarrier
	}
	if o.Depth == 0 {
		o.Depth = DefaultDepth
	}
	if o.Speedup <= 0 {
		o.Speedup = DefaultSpeedup
	}
}

// Sonify frequency-modulates a carrier with the signal, normalized to its
// peak magnitude. The result lasts len(signal)/SignalRate/Speedup seconds and
// is returned as samples in [-amplitude, amplitude].
func Sonify(signal []float64, opts WAVOptions) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if opts.SignalRate <= 0 {
		return nil, fmt.Errorf("export: signal rate must be positive, got %g", opts.SignalRate)
	}
	opts.defaults()

	peak := math.Max(math.Abs(floats.Min(signal)), math.Abs(floats.Max(signal)))
	seconds := float64(len(signal)) / opts.SignalRate / opts.Speedup
	n := int(math.Round(seconds * float64(opts.SampleRate)))
	out := make([]float64, n)

	dt := 1 / float64(opts.SampleRate)
	var phase float64
	for i := range out {
		// position in the signal, linearly interpolated
		pos := float64(i) * dt * opts.Speedup * opts.SignalRate
		k := int(pos)
		v := signal[min(k, len(signal)-1)]
		if k+1 < len(signal) {
			v += (signal[k+1] - v) * (pos - float64(k))
		}
		norm := 0.0
		if peak > 0 {
			norm = v / peak
		}
		out[i] = amplitude * math.Sin(phase)
		phase += 2 * math.Pi * opts.Carrier * (1 + opts.Depth*norm) * dt
	}
	return out, nil
}

// WriteWAV sonifies signal and writes it as 16-bit mono PCM.
func WriteWAV(w io.WriteSeeker, signal []float64, opts WAVOptions) error {
	samples, err := Sonify(signal, opts)
	if err != nil {
		return err
	}
	opts.defaults()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(s * maxInt16))
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: opts.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, opts.SampleRate, bitDepth, 1, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav: %w", err)
	}
	return nil
}
