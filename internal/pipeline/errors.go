package pipeline

import (
	"errors"
	"fmt"
)

// Domain errors for sequencing.
var (
	// ErrInvalidRate indicates a non-positive frame rate.
	ErrInvalidRate = errors.New("pipeline: frame rate must be positive")

	// ErrInvalidDuration indicates a duration that yields no frames.
	ErrInvalidDuration = errors.New("pipeline: duration must cover at least one frame")

	// ErrFrameRange indicates a frame index outside the sequence.
	ErrFrameRange = errors.New("pipeline: frame index out of range")

	// ErrSampleCount indicates precomputed samples that do not match the grid.
	ErrSampleCount = errors.New("pipeline: sample count does not match sequencer")
)

// FrameError wraps an error with the offending frame index.
type FrameError struct {
	Index   int
	Len     int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d of %d: %v", e.Index, e.Len, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
