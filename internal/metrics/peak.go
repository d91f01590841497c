package metrics

import (
	"math"

	"github.com/san-kum/gwviz/internal/demo"
)

// PeakPhase tracks the largest |Δφ| (visually scaled) seen by the
// interferometer.
type PeakPhase struct {
	name string
	peak float64
}

func NewPeakPhase() *PeakPhase {
	return &PeakPhase{name: "peak_phase"}
}

func (p *PeakPhase) Name() string { return p.name }

func (p *PeakPhase) Observe(s demo.Snapshot) {
	if s.Kind != demo.Interferometer {
		return
	}
	if v := math.Abs(s.Strain.ScaledPhase); v > p.peak {
		p.peak = v
	}
}

func (p *PeakPhase) Value() float64 { return p.peak }
func (p *PeakPhase) Reset()         { p.peak = 0 }

// ArmDifferential tracks the largest |Lx − Ly| in drawn units.
type ArmDifferential struct {
	name string
	peak float64
}

func NewArmDifferential() *ArmDifferential {
	return &ArmDifferential{name: "arm_differential"}
}

func (a *ArmDifferential) Name() string { return a.name }

func (a *ArmDifferential) Observe(s demo.Snapshot) {
	if s.Kind != demo.Interferometer {
		return
	}
	if v := math.Abs(s.Arms.Differential()); v > a.peak {
		a.peak = v
	}
}

func (a *ArmDifferential) Value() float64 { return a.peak }
func (a *ArmDifferential) Reset()         { a.peak = 0 }
