package config

import "sort"

// RingPresets and InterferometerPresets are named parameter sets selectable
// with --preset.
var RingPresets = map[string]RingConfig{
	"circular": DefaultRing(),
	"plus": {
		Frequency: 1.0, PlusAmplitude: 0.2, CrossAmplitude: 0,
		Particles: 20, Duration: 10, FPS: 20,
	},
	"cross": {
		Frequency: 1.0, PlusAmplitude: 0, CrossAmplitude: 0.2,
		Particles: 20, Duration: 10, FPS: 20,
	},
	"gentle": {
		Frequency: 0.5, PlusAmplitude: 0.05, CrossAmplitude: 0.05,
		Particles: 32, Duration: 8, FPS: 30,
	},
	"dense": {
		Frequency: 1.0, PlusAmplitude: 0.2, CrossAmplitude: 0.1,
		Particles: 72, Duration: 4, FPS: 30,
	},
}

var InterferometerPresets = map[string]InterferometerConfig{
	"ligo": DefaultInterferometer(),
	"virgo": {
		Frequency: 0.4, StrainAmplitude: 1e-21, ArmLength: 3000, Wavelength: 1064e-9,
		LightSpeed: DefaultLightSpeed, VisualScale: 1e20, Duration: 5, FPS: 30,
	},
	"geo600": {
		Frequency: 0.4, StrainAmplitude: 1e-21, ArmLength: 600, Wavelength: 1064e-9,
		LightSpeed: DefaultLightSpeed, VisualScale: 5e20, Duration: 5, FPS: 30,
	},
	"slow": {
		Frequency: 0.1, StrainAmplitude: 1e-21, ArmLength: 4000, Wavelength: 1064e-9,
		LightSpeed: DefaultLightSpeed, VisualScale: 1e20, Duration: 20, FPS: 30,
	},
}

// GetRingPreset returns the named ring preset.
func GetRingPreset(name string) (RingConfig, bool) {
	p, ok := RingPresets[name]
	return p, ok
}

func GetInterferometerPreset(name string) (InterferometerConfig, bool) {
	p, ok := InterferometerPresets[name]
	return p, ok
}

// ListPresets returns the preset names for a demo, or nil for an unknown demo.
func ListPresets(demo string) []string {
	var names []string
	switch demo {
	case "ring":
		for name := range RingPresets {
			names = append(names, name)
		}
	case "interferometer":
		for name := range InterferometerPresets {
			names = append(names, name)
		}
	default:
		return nil
	}
	sort.Strings(names)
	return names
}
