package metrics

import (
	"math"

	"github.com/san-kum/gwviz/internal/demo"
	"github.com/san-kum/gwviz/internal/geometry"
)

// RingStretch tracks how far any particle strays from its rest position.
type RingStretch struct {
	name string
	peak float64
}

func NewRingStretch() *RingStretch {
	return &RingStretch{name: "ring_stretch"}
}

func (r *RingStretch) Name() string { return r.name }

func (r *RingStretch) Observe(s demo.Snapshot) {
	if s.Kind != demo.Ring {
		return
	}
	if v := geometry.MaxStretch(s.Base, s.Points); v > r.peak {
		r.peak = v
	}
}

func (r *RingStretch) Value() float64 { return r.peak }
func (r *RingStretch) Reset()         { r.peak = 0 }

// RMSStrain is the root-mean-square of the primary strain over the run:
// h+ for the ring, physical h for the interferometer.
type RMSStrain struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMSStrain() *RMSStrain {
	return &RMSStrain{name: "rms_strain"}
}

func (r *RMSStrain) Name() string { return r.name }

func (r *RMSStrain) Observe(s demo.Snapshot) {
	h := s.HPlus
	if s.Kind == demo.Interferometer {
		h = s.Strain.H
	}
	r.sumSq += h * h
	r.samples++
}

func (r *RMSStrain) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMSStrain) Reset() {
	r.sumSq = 0
	r.samples = 0
}
