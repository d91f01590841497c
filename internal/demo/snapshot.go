package demo

import (
	"github.com/san-kum/gwviz/internal/geometry"
	"github.com/san-kum/gwviz/internal/waveform"
	"gonum.org/v1/gonum/spatial/r2"
)

// Snapshot is one frame of either demonstration. Kind says which group of
// fields is populated.
type Snapshot struct {
	Kind  Kind
	Index int
	Time  float64

	// Ring.
	HPlus  float64
	HCross float64
	Base   []r2.Vec
	Points []r2.Vec

	// Interferometer. Phase is the visually scaled Δφ prefix [0, Index] and
	// PhaseTimes its time axis; both are read-only views of one series.
	Strain     waveform.StrainSample
	Arms       geometry.ArmFrame
	ArmLength  float64
	PhaseTimes []float64
	Phase      []float64
}

// Metric accumulates a scalar over a run of snapshots.
type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}
