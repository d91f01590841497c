package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Values from the reference demonstrations.
const (
	DefaultRingFrequency = 1.0
	DefaultPlusAmplitude = 0.2
	DefaultCrossAmp      = 0.2
	DefaultParticles     = 20
	DefaultRingFPS       = 20
	DefaultRingDuration  = 10.0

	DefaultStrainFrequency = 0.4
	DefaultStrainAmplitude = 1e-21
	DefaultArmLength       = 4000.0
	DefaultWavelength      = 1064e-9
	DefaultLightSpeed      = 1e6
	DefaultVisualScale     = 1e18 * 100
	DefaultIfoFPS          = 30
	DefaultIfoDuration     = 5.0

	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"
)

// ErrInvalidParameter is wrapped by every validation failure.
var ErrInvalidParameter = errors.New("config: invalid parameter")

type Config struct {
	Ring           RingConfig           `yaml:"ring"`
	Interferometer InterferometerConfig `yaml:"interferometer"`
	Theme          string               `yaml:"theme"`
	LogLevel       string               `yaml:"log_level"`
}

// RingConfig parameterizes the free-particle ring demonstration.
type RingConfig struct {
	Frequency      float64 `yaml:"frequency"`
	PlusAmplitude  float64 `yaml:"plus_amplitude"`
	CrossAmplitude float64 `yaml:"cross_amplitude"`
	Particles      int     `yaml:"particles"`
	Duration       float64 `yaml:"duration"`
	FPS            int     `yaml:"fps"`
}

// InterferometerConfig parameterizes the L-shaped interferometer demonstration.
type InterferometerConfig struct {
	Frequency       float64 `yaml:"frequency"`
	StrainAmplitude float64 `yaml:"strain_amplitude"`
	ArmLength       float64 `yaml:"arm_length"`
	Wavelength      float64 `yaml:"wavelength"`
	LightSpeed      float64 `yaml:"light_speed"`
	VisualScale     float64 `yaml:"visual_scale"`
	Duration        float64 `yaml:"duration"`
	FPS             int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Ring:           DefaultRing(),
		Interferometer: DefaultInterferometer(),
		Theme:          DefaultTheme,
		LogLevel:       DefaultLogLevel,
	}
}

func DefaultRing() RingConfig {
	return RingConfig{
		Frequency:      DefaultRingFrequency,
		PlusAmplitude:  DefaultPlusAmplitude,
		CrossAmplitude: DefaultCrossAmp,
		Particles:      DefaultParticles,
		Duration:       DefaultRingDuration,
		FPS:            DefaultRingFPS,
	}
}

func DefaultInterferometer() InterferometerConfig {
	return InterferometerConfig{
		Frequency:       DefaultStrainFrequency,
		StrainAmplitude: DefaultStrainAmplitude,
		ArmLength:       DefaultArmLength,
		Wavelength:      DefaultWavelength,
		LightSpeed:      DefaultLightSpeed,
		VisualScale:     DefaultVisualScale,
		Duration:        DefaultIfoDuration,
		FPS:             DefaultIfoFPS,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Ring.Validate(); err != nil {
		return err
	}
	return c.Interferometer.Validate()
}

func (r RingConfig) Validate() error {
	if r.Particles <= 0 {
		return invalid("ring.particles", float64(r.Particles))
	}
	if r.FPS <= 0 {
		return invalid("ring.fps", float64(r.FPS))
	}
	if !positive(r.Duration) {
		return invalid("ring.duration", r.Duration)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"ring.frequency", r.Frequency},
		{"ring.plus_amplitude", r.PlusAmplitude},
		{"ring.cross_amplitude", r.CrossAmplitude},
	} {
		if !finite(f.v) {
			return notFinite(f.name, f.v)
		}
	}
	return nil
}

func (c InterferometerConfig) Validate() error {
	if !positive(c.ArmLength) {
		return invalid("interferometer.arm_length", c.ArmLength)
	}
	if !positive(c.Wavelength) {
		return invalid("interferometer.wavelength", c.Wavelength)
	}
	if !positive(c.LightSpeed) {
		return invalid("interferometer.light_speed", c.LightSpeed)
	}
	if c.FPS <= 0 {
		return invalid("interferometer.fps", float64(c.FPS))
	}
	if !positive(c.Duration) {
		return invalid("interferometer.duration", c.Duration)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"interferometer.frequency", c.Frequency},
		{"interferometer.strain_amplitude", c.StrainAmplitude},
		{"interferometer.visual_scale", c.VisualScale},
	} {
		if !finite(f.v) {
			return notFinite(f.name, f.v)
		}
	}
	return nil
}

// RoundTrip is the light travel time 2L/c along one arm.
func (c InterferometerConfig) RoundTrip() float64 {
	return 2 * c.ArmLength / c.LightSpeed
}

func invalid(field string, v float64) error {
	return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidParameter, field, v)
}

func notFinite(field string, v float64) error {
	return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidParameter, field, v)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// positive rejects NaN, which compares false against everything.
func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
