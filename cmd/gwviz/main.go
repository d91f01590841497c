package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/san-kum/gwviz/internal/config"
	"github.com/san-kum/gwviz/internal/demo"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	preset     string
	theme      string

	// shared by both demos
	freq     float64
	duration float64
	fps      int

	// ring
	plusAmp   float64
	crossAmp  float64
	particles int

	// interferometer
	strainAmp   float64
	armLength   float64
	wavelength  float64
	lightSpeed  float64
	visualScale float64

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gwviz"})
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// newRootCmd registers every command and flag. With no subcommand the ring
// demo plays in the terminal.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gwviz [demo]",
		Short: "gravitational wave visualizations: particle ring and interferometer",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
		RunE:          runLive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.Float64Var(&freq, "freq", 0, "wave frequency in Hz")
	pf.Float64Var(&duration, "duration", 0, "animation length in seconds")
	pf.IntVar(&fps, "fps", 0, "frames per second")
	pf.Float64Var(&plusAmp, "plus", config.DefaultPlusAmplitude, "plus polarization amplitude (ring)")
	pf.Float64Var(&crossAmp, "cross", config.DefaultCrossAmp, "cross polarization amplitude (ring)")
	pf.IntVar(&particles, "particles", config.DefaultParticles, "number of particles (ring)")
	pf.Float64Var(&strainAmp, "h0", config.DefaultStrainAmplitude, "strain amplitude (interferometer)")
	pf.Float64Var(&armLength, "arm-length", config.DefaultArmLength, "arm length in m (interferometer)")
	pf.Float64Var(&wavelength, "wavelength", config.DefaultWavelength, "laser wavelength in m (interferometer)")
	pf.Float64Var(&lightSpeed, "light-speed", config.DefaultLightSpeed, "speed-of-light constant (interferometer)")
	pf.Float64Var(&visualScale, "visual-scale", config.DefaultVisualScale, "display exaggeration of h and Δφ (interferometer)")
	addLiveFlags(rootCmd)

	rootCmd.AddCommand(
		liveCommand(),
		framesCommand(),
		plotCommand(),
		analyzeCommand(),
		exportCSVCommand(),
		exportSVGCommand(),
		exportGIFCommand(),
		sonifyCommand(),
		benchCommand(),
		presetsCommand(),
		initConfigCommand(),
	)
	return rootCmd
}

func setupLogger(cmd *cobra.Command) error {
	level := logLevel
	if !cmd.Flags().Changed("log-level") && configFile != "" {
		if cfg, err := config.Load(configFile); err == nil && cfg.LogLevel != "" {
			level = cfg.LogLevel
		}
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// parseDemo reads the optional demo argument, defaulting to the ring.
func parseDemo(args []string) (demo.Kind, error) {
	if len(args) == 0 {
		return demo.Ring, nil
	}
	return demo.ParseKind(args[0])
}

// resolveConfig layers the parameter sources: defaults or --config, then
// --preset for the chosen demo, then any flag set on the command line.
func resolveConfig(cmd *cobra.Command, kind demo.Kind) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	if preset != "" {
		switch kind {
		case demo.Ring:
			p, ok := config.GetRingPreset(preset)
			if !ok {
				return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kind.String()))
			}
			cfg.Ring = p
		case demo.Interferometer:
			p, ok := config.GetInterferometerPreset(preset)
			if !ok {
				return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kind.String()))
			}
			cfg.Interferometer = p
		}
		logger.Debug("applied preset", "demo", kind, "preset", preset)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	r := &cfg.Ring
	if flags.Changed("freq") && kind == demo.Ring {
		r.Frequency = freq
	}
	if flags.Changed("duration") && kind == demo.Ring {
		r.Duration = duration
	}
	if flags.Changed("fps") && kind == demo.Ring {
		r.FPS = fps
	}
	if flags.Changed("plus") {
		r.PlusAmplitude = plusAmp
	}
	if flags.Changed("cross") {
		r.CrossAmplitude = crossAmp
	}
	if flags.Changed("particles") {
		r.Particles = particles
	}

	ifo := &cfg.Interferometer
	if flags.Changed("freq") && kind == demo.Interferometer {
		ifo.Frequency = freq
	}
	if flags.Changed("duration") && kind == demo.Interferometer {
		ifo.Duration = duration
	}
	if flags.Changed("fps") && kind == demo.Interferometer {
		ifo.FPS = fps
	}
	if flags.Changed("h0") {
		ifo.StrainAmplitude = strainAmp
	}
	if flags.Changed("arm-length") {
		ifo.ArmLength = armLength
	}
	if flags.Changed("wavelength") {
		ifo.Wavelength = wavelength
	}
	if flags.Changed("light-speed") {
		ifo.LightSpeed = lightSpeed
	}
	if flags.Changed("visual-scale") {
		ifo.VisualScale = visualScale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildDemo resolves the configuration for the demo named in args and
// constructs it.
func buildDemo(cmd *cobra.Command, args []string) (*demo.Demo, *config.Config, error) {
	kind, err := parseDemo(args)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := resolveConfig(cmd, kind)
	if err != nil {
		return nil, nil, err
	}
	d, err := demo.New(kind, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("demo ready", "demo", kind, "frames", d.Len(), "fps", d.FPS())
	return d, cfg, nil
}
