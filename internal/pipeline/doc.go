// Package pipeline drives a waveform evaluator and a geometry mapper over a
// fixed time grid.
//
// The package defines the pieces shared by every demonstration:
//
//   - [Sequencer]: the finite, restartable grid t_i = i/fps
//   - [Evaluator]: time sample to wave quantities
//   - [Mapper]: wave quantities to frame geometry
//   - [Pipeline]: precomputes samples and serves frames by index
//
// # Example
//
//	seq, _ := pipeline.NewSequencer(5, 30)
//	p := pipeline.New(seq, evaluator, mapper)
//	err := p.Run(ctx, func(f pipeline.Frame[S, G]) bool {
//	    draw(f.Geometry)
//	    return true
//	})
//
// # Thread Safety
//
// A Pipeline is immutable after construction except for its observer list.
// Frame and Render may be called concurrently; AddObserver and Run may not.
package pipeline
