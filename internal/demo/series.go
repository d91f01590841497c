package demo

// Column is one named signal sampled on the demo's time grid.
type Column struct {
	Name   string
	Values []float64
}

// Columns returns the full precomputed waveform, time first. The slices
// are copies.
func (d *Demo) Columns() []Column {
	if d.kind == Ring {
		samples := d.ring.Samples()
		t := make([]float64, len(samples))
		hp := make([]float64, len(samples))
		hx := make([]float64, len(samples))
		for i, s := range samples {
			t[i], hp[i], hx[i] = s.T, s.HPlus, s.HCross
		}
		return []Column{{"t", t}, {"h_plus", hp}, {"h_cross", hx}}
	}
	return []Column{
		{"t", clone(d.series.T)},
		{"h", clone(d.series.H)},
		{"delta_phi", clone(d.series.Phase)},
		{"h_scaled", clone(d.series.ScaledH)},
		{"delta_phi_scaled", clone(d.series.ScaledPhase)},
	}
}

// Signal returns the demo's primary physical signal: h+ for the ring,
// h for the interferometer.
func (d *Demo) Signal() []float64 {
	cols := d.Columns()
	return cols[1].Values
}

func clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}
