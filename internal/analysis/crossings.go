package analysis

// ZeroCrossings returns the times at which data crosses zero going upward,
// linearly interpolated between samples. times and data must be the same
// length.
func ZeroCrossings(times, data []float64) []float64 {
	var out []float64
	for i := 1; i < len(data) && i < len(times); i++ {
		prev, curr := data[i-1], data[i]
		if prev < 0 && curr >= 0 {
			frac := -prev / (curr - prev)
			out = append(out, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}
	return out
}

// CrossingFrequency estimates frequency from the mean spacing of upward
// zero crossings. It needs at least two crossings and returns 0 otherwise.
func CrossingFrequency(times, data []float64) float64 {
	zc := ZeroCrossings(times, data)
	if len(zc) < 2 {
		return 0
	}
	return float64(len(zc)-1) / (zc[len(zc)-1] - zc[0])
}
