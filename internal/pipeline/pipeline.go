package pipeline

import (
	"context"
	"fmt"
)

// renderChunk is the smallest slice of frames handed to one worker.
const renderChunk = 32

// Pipeline couples a precomputed sample sequence with a geometry mapper.
type Pipeline[S, G any] struct {
	seq       Sequencer
	mapper    Mapper[S, G]
	times     []float64
	samples   []S
	observers []Observer[S, G]
}

// New evaluates eval at every grid time and returns a pipeline serving
// frames from those samples.
func New[S, G any](seq Sequencer, eval Evaluator[S], mapper Mapper[S, G]) *Pipeline[S, G] {
	times := seq.Times()
	samples := make([]S, len(times))
	for i, t := range times {
		samples[i] = eval.Evaluate(t)
	}
	return &Pipeline[S, G]{seq: seq, mapper: mapper, times: times, samples: samples}
}

// NewWithSamples wraps samples computed elsewhere, for example by a
// vectorized series evaluator. samples must have one entry per grid time.
func NewWithSamples[S, G any](seq Sequencer, samples []S, mapper Mapper[S, G]) (*Pipeline[S, G], error) {
	if len(samples) != seq.Len() {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrSampleCount, len(samples), seq.Len())
	}
	own := make([]S, len(samples))
	copy(own, samples)
	return &Pipeline[S, G]{seq: seq, mapper: mapper, times: seq.Times(), samples: own}, nil
}

func (p *Pipeline[S, G]) AddObserver(o Observer[S, G]) { p.observers = append(p.observers, o) }

func (p *Pipeline[S, G]) Len() int             { return len(p.samples) }
func (p *Pipeline[S, G]) Sequencer() Sequencer { return p.seq }

// Samples returns the full precomputed sequence as a read-only view.
func (p *Pipeline[S, G]) Samples() []S { return p.samples[:len(p.samples):len(p.samples)] }

// Frame computes frame i.
func (p *Pipeline[S, G]) Frame(i int) (Frame[S, G], error) {
	if !p.seq.Contains(i) {
		return Frame[S, G]{}, &FrameError{Index: i, Len: p.Len(), Wrapped: ErrFrameRange}
	}
	return p.frame(i), nil
}

func (p *Pipeline[S, G]) frame(i int) Frame[S, G] {
	s := p.samples[i]
	return Frame[S, G]{
		Index:    i,
		Time:     p.times[i],
		Sample:   s,
		Geometry: p.mapper.Map(s),
		History:  p.samples[: i+1 : i+1],
	}
}

// Run delivers frames in increasing order until the last frame, fn returns
// false, or ctx is done.
func (p *Pipeline[S, G]) Run(ctx context.Context, fn func(Frame[S, G]) bool) error {
	for i := range p.samples {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := p.frame(i)
		for _, obs := range p.observers {
			obs.OnFrame(f)
		}
		if fn != nil && !fn(f) {
			return nil
		}
	}
	return nil
}

// Render computes every frame concurrently. The result is identical to
// calling Frame for each index in order. Observers are not notified.
func (p *Pipeline[S, G]) Render(ctx context.Context) ([]Frame[S, G], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	frames := make([]Frame[S, G], len(p.samples))
	ParallelFor(len(frames), renderChunk, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			frames[i] = p.frame(i)
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return frames, nil
}
