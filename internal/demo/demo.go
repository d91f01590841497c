// Package demo assembles the ring and interferometer pipelines behind a single
// tagged type that a renderer can drive without knowing which one it holds.
package demo

import (
	"context"
	"fmt"

	"github.com/san-kum/gwviz/internal/config"
	"github.com/san-kum/gwviz/internal/geometry"
	"github.com/san-kum/gwviz/internal/pipeline"
	"github.com/san-kum/gwviz/internal/waveform"
	"gonum.org/v1/gonum/spatial/r2"
)

type (
	RingPipeline = pipeline.Pipeline[waveform.PolarizationSample, []r2.Vec]
	RingFrame    = pipeline.Frame[waveform.PolarizationSample, []r2.Vec]
	ArmPipeline  = pipeline.Pipeline[waveform.StrainSample, geometry.ArmFrame]
	ArmFrame     = pipeline.Frame[waveform.StrainSample, geometry.ArmFrame]
	ringMapperFn = pipeline.MapperFunc[waveform.PolarizationSample, []r2.Vec]
	armMapperFn  = pipeline.MapperFunc[waveform.StrainSample, geometry.ArmFrame]
)

// NewRing builds the particle-ring pipeline. The base ring is generated once
// and shared read-only by every frame.
func NewRing(cfg config.RingConfig) (*RingPipeline, []r2.Vec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	seq, err := pipeline.NewSequencer(cfg.Duration, cfg.FPS)
	if err != nil {
		return nil, nil, err
	}
	base := geometry.UnitRing(cfg.Particles)
	wave := waveform.NewPolarization(cfg.Frequency, cfg.PlusAmplitude, cfg.CrossAmplitude)
	mapper := ringMapperFn(func(s waveform.PolarizationSample) []r2.Vec {
		return geometry.DeformRing(base, s.HPlus, s.HCross)
	})
	return pipeline.New[waveform.PolarizationSample, []r2.Vec](seq, wave, mapper), base, nil
}

// NewInterferometer builds the interferometer pipeline. Strain and phase are
// evaluated for the whole grid up front so the phase strip chart can be served
// as a prefix of one series.
func NewInterferometer(cfg config.InterferometerConfig) (*ArmPipeline, *waveform.Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	seq, err := pipeline.NewSequencer(cfg.Duration, cfg.FPS)
	if err != nil {
		return nil, nil, err
	}
	wave := waveform.NewStrain(cfg.Frequency, cfg.StrainAmplitude, cfg.ArmLength, cfg.Wavelength, cfg.VisualScale)
	series := wave.StrainSeries(seq.Times())

	samples := make([]waveform.StrainSample, series.Len())
	for i := range samples {
		samples[i] = series.Sample(i)
	}

	arms := geometry.Arms{Length: cfg.ArmLength}
	mapper := armMapperFn(func(s waveform.StrainSample) geometry.ArmFrame {
		return arms.Deform(s.ScaledH)
	})
	p, err := pipeline.NewWithSamples[waveform.StrainSample, geometry.ArmFrame](seq, samples, mapper)
	if err != nil {
		return nil, nil, err
	}
	return p, series, nil
}

// Demo holds exactly one of the two pipelines, selected by Kind.
type Demo struct {
	kind Kind

	ring     *RingPipeline
	ringBase []r2.Vec
	ringCfg  config.RingConfig

	ifo    *ArmPipeline
	series *waveform.Series
	ifoCfg config.InterferometerConfig
}

func New(kind Kind, cfg *config.Config) (*Demo, error) {
	d := &Demo{kind: kind, ringCfg: cfg.Ring, ifoCfg: cfg.Interferometer}
	var err error
	switch kind {
	case Ring:
		d.ring, d.ringBase, err = NewRing(cfg.Ring)
	case Interferometer:
		d.ifo, d.series, err = NewInterferometer(cfg.Interferometer)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Demo) Kind() Kind { return d.kind }

func (d *Demo) Sequencer() pipeline.Sequencer {
	if d.kind == Ring {
		return d.ring.Sequencer()
	}
	return d.ifo.Sequencer()
}

func (d *Demo) Len() int { return d.Sequencer().Len() }
func (d *Demo) FPS() int { return d.Sequencer().FPS() }

// RingConfig and InterferometerConfig return the parameters the demo was built with.
func (d *Demo) RingConfig() config.RingConfig                     { return d.ringCfg }
func (d *Demo) InterferometerConfig() config.InterferometerConfig { return d.ifoCfg }

// Snapshot computes frame i.
func (d *Demo) Snapshot(i int) (Snapshot, error) {
	if d.kind == Ring {
		f, err := d.ring.Frame(i)
		if err != nil {
			return Snapshot{}, err
		}
		return d.fromRing(f), nil
	}
	f, err := d.ifo.Frame(i)
	if err != nil {
		return Snapshot{}, err
	}
	return d.fromArms(f), nil
}

// Run delivers snapshots in increasing time order. See [pipeline.Pipeline.Run].
func (d *Demo) Run(ctx context.Context, fn func(Snapshot) bool) error {
	if d.kind == Ring {
		return d.ring.Run(ctx, func(f RingFrame) bool { return fn(d.fromRing(f)) })
	}
	return d.ifo.Run(ctx, func(f ArmFrame) bool { return fn(d.fromArms(f)) })
}

// Render precomputes every snapshot concurrently.
func (d *Demo) Render(ctx context.Context) ([]Snapshot, error) {
	if d.kind == Ring {
		frames, err := d.ring.Render(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]Snapshot, len(frames))
		for i, f := range frames {
			out[i] = d.fromRing(f)
		}
		return out, nil
	}
	frames, err := d.ifo.Render(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Snapshot, len(frames))
	for i, f := range frames {
		out[i] = d.fromArms(f)
	}
	return out, nil
}

// Measure runs every frame through the given metrics and returns their
// final values keyed by name.
func (d *Demo) Measure(ctx context.Context, metrics ...Metric) (map[string]float64, error) {
	for _, m := range metrics {
		m.Reset()
	}
	err := d.Run(ctx, func(s Snapshot) bool {
		for _, m := range metrics {
			m.Observe(s)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		out[m.Name()] = m.Value()
	}
	return out, nil
}

func (d *Demo) fromRing(f RingFrame) Snapshot {
	return Snapshot{
		Kind:   Ring,
		Index:  f.Index,
		Time:   f.Time,
		HPlus:  f.Sample.HPlus,
		HCross: f.Sample.HCross,
		Base:   d.ringBase,
		Points: f.Geometry,
	}
}

func (d *Demo) fromArms(f ArmFrame) Snapshot {
	n := f.Index + 1
	return Snapshot{
		Kind:       Interferometer,
		Index:      f.Index,
		Time:       f.Time,
		Strain:     f.Sample,
		Arms:       f.Geometry,
		ArmLength:  d.ifoCfg.ArmLength,
		PhaseTimes: d.series.T[:n:n],
		Phase:      d.series.ScaledPhase[:n:n],
	}
}
