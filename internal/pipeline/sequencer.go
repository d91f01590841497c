package pipeline

import (
	"fmt"
	"math"
)

// Sequencer is the time grid t_i = i/fps for i in [0, duration·fps).
// It carries no state; every call recomputes the same values.
type Sequencer struct {
	duration float64
	fps      int
	n        int
}

func NewSequencer(duration float64, fps int) (Sequencer, error) {
	if fps <= 0 {
		return Sequencer{}, fmt.Errorf("%w, got %d", ErrInvalidRate, fps)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		return Sequencer{}, fmt.Errorf("%w, got %v", ErrInvalidDuration, duration)
	}
	n := int(math.Round(duration * float64(fps)))
	if n < 1 {
		return Sequencer{}, fmt.Errorf("%w, got %vs at %d fps", ErrInvalidDuration, duration, fps)
	}
	return Sequencer{duration: duration, fps: fps, n: n}, nil
}

func (s Sequencer) Len() int          { return s.n }
func (s Sequencer) FPS() int          { return s.fps }
func (s Sequencer) Duration() float64 { return s.duration }

// Interval is the spacing between samples in seconds.
func (s Sequencer) Interval() float64 { return 1 / float64(s.fps) }

// Time returns t_i without bounds checking.
func (s Sequencer) Time(i int) float64 { return float64(i) / float64(s.fps) }

// Times returns the full grid as a new slice. Each entry equals Time(i)
// exactly.
func (s Sequencer) Times() []float64 {
	times := make([]float64, s.n)
	for i := range times {
		times[i] = s.Time(i)
	}
	return times
}

// Contains reports whether i is a valid frame index.
func (s Sequencer) Contains(i int) bool { return i >= 0 && i < s.n }
