package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Ring.Particles != 20 {
		t.Errorf("expected 20 particles, got %d", cfg.Ring.Particles)
	}
	if cfg.Interferometer.VisualScale != 1e20 {
		t.Errorf("expected visual scale 1e20, got %g", cfg.Interferometer.VisualScale)
	}
	if cfg.Interferometer.Wavelength != 1064e-9 {
		t.Errorf("expected wavelength 1064nm, got %g", cfg.Interferometer.Wavelength)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero wavelength", func(c *Config) { c.Interferometer.Wavelength = 0 }},
		{"negative wavelength", func(c *Config) { c.Interferometer.Wavelength = -1064e-9 }},
		{"zero arm length", func(c *Config) { c.Interferometer.ArmLength = 0 }},
		{"negative arm length", func(c *Config) { c.Interferometer.ArmLength = -4000 }},
		{"zero light speed", func(c *Config) { c.Interferometer.LightSpeed = 0 }},
		{"zero interferometer fps", func(c *Config) { c.Interferometer.FPS = 0 }},
		{"negative interferometer duration", func(c *Config) { c.Interferometer.Duration = -5 }},
		{"no particles", func(c *Config) { c.Ring.Particles = 0 }},
		{"zero ring fps", func(c *Config) { c.Ring.FPS = 0 }},
		{"zero ring duration", func(c *Config) { c.Ring.Duration = 0 }},
		{"NaN arm length", func(c *Config) { c.Interferometer.ArmLength = math.NaN() }},
		{"infinite arm length", func(c *Config) { c.Interferometer.ArmLength = math.Inf(1) }},
		{"NaN wavelength", func(c *Config) { c.Interferometer.Wavelength = math.NaN() }},
		{"infinite wavelength", func(c *Config) { c.Interferometer.Wavelength = math.Inf(1) }},
		{"NaN light speed", func(c *Config) { c.Interferometer.LightSpeed = math.NaN() }},
		{"infinite light speed", func(c *Config) { c.Interferometer.LightSpeed = math.Inf(1) }},
		{"NaN interferometer duration", func(c *Config) { c.Interferometer.Duration = math.NaN() }},
		{"infinite interferometer duration", func(c *Config) { c.Interferometer.Duration = math.Inf(1) }},
		{"NaN ring duration", func(c *Config) { c.Ring.Duration = math.NaN() }},
		{"infinite ring duration", func(c *Config) { c.Ring.Duration = math.Inf(1) }},
		{"NaN strain frequency", func(c *Config) { c.Interferometer.Frequency = math.NaN() }},
		{"infinite visual scale", func(c *Config) { c.Interferometer.VisualScale = math.Inf(-1) }},
		{"NaN plus amplitude", func(c *Config) { c.Ring.PlusAmplitude = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestValidate_AllowsStaticWave(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ring.Frequency = 0
	cfg.Ring.PlusAmplitude = 0
	cfg.Interferometer.StrainAmplitude = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero amplitudes should be accepted: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gw.yaml")
	data := []byte(`
ring:
  particles: 36
  plus_amplitude: 0.1
interferometer:
  arm_length: 3000
theme: ocean
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Ring.Particles != 36 {
		t.Errorf("expected 36 particles, got %d", cfg.Ring.Particles)
	}
	if cfg.Ring.PlusAmplitude != 0.1 {
		t.Errorf("expected plus amplitude 0.1, got %g", cfg.Ring.PlusAmplitude)
	}
	if cfg.Ring.CrossAmplitude != DefaultCrossAmp {
		t.Errorf("unset field lost its default: %g", cfg.Ring.CrossAmplitude)
	}
	if cfg.Interferometer.ArmLength != 3000 {
		t.Errorf("expected arm length 3000, got %g", cfg.Interferometer.ArmLength)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", cfg.Theme)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("interferometer:\n  wavelength: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	for _, body := range []string{
		"interferometer:\n  wavelength: .nan\n",
		"interferometer:\n  arm_length: .inf\n",
		"ring:\n  duration: .nan\n",
	} {
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%q: expected ErrInvalidParameter, got %v", body, err)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Ring.Particles = 12
	cfg.Interferometer.Frequency = 0.25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, cfg)
	}
}

func TestRoundTrip(t *testing.T) {
	ifo := DefaultInterferometer()
	if got := ifo.RoundTrip(); got != 2*4000/1e6 {
		t.Errorf("RoundTrip() = %g", got)
	}
}

func TestPresets(t *testing.T) {
	p, ok := GetRingPreset("plus")
	if !ok {
		t.Fatal("expected plus preset")
	}
	if p.CrossAmplitude != 0 {
		t.Errorf("plus preset should have no cross polarization, got %g", p.CrossAmplitude)
	}

	if _, ok := GetInterferometerPreset("virgo"); !ok {
		t.Error("expected virgo preset")
	}
	if _, ok := GetInterferometerPreset("nonexistent"); ok {
		t.Error("expected no preset")
	}

	for name, r := range RingPresets {
		if err := r.Validate(); err != nil {
			t.Errorf("ring preset %s invalid: %v", name, err)
		}
	}
	for name, c := range InterferometerPresets {
		if err := c.Validate(); err != nil {
			t.Errorf("interferometer preset %s invalid: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("ring")
	if len(names) != len(RingPresets) {
		t.Errorf("expected %d ring presets, got %d", len(RingPresets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for unknown demo")
	}
}
