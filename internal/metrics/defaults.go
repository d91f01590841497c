package metrics

import "github.com/san-kum/gwviz/internal/demo"

// Default returns the metrics reported for a demonstration.
func Default(kind demo.Kind) []demo.Metric {
	if kind == demo.Ring {
		return []demo.Metric{NewRingStretch(), NewRMSStrain()}
	}
	return []demo.Metric{NewPeakPhase(), NewArmDifferential(), NewRMSStrain()}
}
