package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gwviz/internal/analysis"
	"github.com/san-kum/gwviz/internal/config"
	"github.com/san-kum/gwviz/internal/demo"
	"github.com/san-kum/gwviz/internal/export"
	"github.com/san-kum/gwviz/internal/geometry"
	"github.com/san-kum/gwviz/internal/metrics"
	"github.com/san-kum/gwviz/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

var (
	loop      bool
	gifPath   string
	every     int
	points    bool
	portrait  bool
	csvOut    string
	svgOut    string
	gifOut    string
	wavOut    string
	frameIdx  int
	seriesSVG bool
	svgSize   int
	gifWidth  int
	gifHeight int
	carrier   float64
	depth     float64
	speedup   float64
	audioRate int
	runs      int
)

func liveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live [demo]",
		Short: "play a demo in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addLiveFlags(cmd)
	return cmd
}

// addLiveFlags registers the playback flags. Both the root command and live
// run runLive, so both carry them.
func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&loop, "loop", false, "restart from frame 0 after the last frame")
	cmd.Flags().StringVar(&gifPath, "gif", viz.DefaultGIFPath, "file written by the G key")
}

func runLive(cmd *cobra.Command, args []string) error {
	d, cfg, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	m := viz.NewModel(d, viz.Options{
		Theme:   viz.GetTheme(cfg.Theme),
		Loop:    loop,
		GIFPath: gifPath,
	})

	p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func framesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames [demo]",
		Short: "print per-frame wave values and geometry",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printFrames,
	}
	cmd.Flags().IntVar(&every, "every", 1, "print every n-th frame")
	cmd.Flags().BoolVar(&points, "points", false, "print particle coordinates (ring)")
	return cmd
}

func printFrames(cmd *cobra.Command, args []string) error {
	d, _, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	if every < 1 {
		every = 1
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if d.Kind() == demo.Ring {
		fmt.Fprintln(w, "FRAME\tT\tH+\tH×\tSTRETCH")
	} else {
		fmt.Fprintln(w, "FRAME\tT\tH\tΔΦ\tΔΦ SCALED\tLX\tLY")
	}

	err = d.Run(cmd.Context(), func(s demo.Snapshot) bool {
		if s.Index%every != 0 {
			return true
		}
		switch s.Kind {
		case demo.Ring:
			fmt.Fprintf(w, "%d\t%.3f\t%+.4f\t%+.4f\t%.4f\n",
				s.Index, s.Time, s.HPlus, s.HCross, geometry.MaxStretch(s.Base, s.Points))
			if points {
				for k, p := range s.Points {
					fmt.Fprintf(w, "\t\tp%d\t%+.4f\t%+.4f\n", k, p.X, p.Y)
				}
			}
		case demo.Interferometer:
			fmt.Fprintf(w, "%d\t%.3f\t%+.3e\t%+.3e\t%+.4f\t%.2f\t%.2f\n",
				s.Index, s.Time, s.Strain.H, s.Strain.Phase, s.Strain.ScaledPhase,
				s.Arms.X.Len(), s.Arms.Y.Len())
		}
		return true
	})
	if err != nil {
		return err
	}
	return w.Flush()
}

func plotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [demo]",
		Short: "plot the waveform series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSeries,
	}
	cmd.Flags().BoolVar(&portrait, "portrait", false, "plot h+ against h× instead (ring)")
	return cmd
}

func plotSeries(cmd *cobra.Command, args []string) error {
	d, _, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	cols := d.Columns()

	fmt.Printf("demo: %s\n", d.Kind())
	fmt.Printf("frames: %d @ %d fps\n\n", d.Len(), d.FPS())

	if portrait && d.Kind() == demo.Ring {
		p := analysis.NewPortrait(cols[1].Values, cols[2].Values)
		fmt.Println(analysis.PortraitToASCII(p, 60, 24))
		fmt.Println("h+ (x) vs h× (y)")
		return nil
	}

	for _, c := range cols[1:] {
		graph := asciigraph.Plot(c.Values,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(c.Name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [demo]",
		Short: "frequency analysis and frame metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeDemo,
	}
}

func analyzeDemo(cmd *cobra.Command, args []string) error {
	d, _, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	cols := d.Columns()
	times, signal := cols[0].Values, cols[1].Values
	rate := float64(d.FPS())

	fmt.Printf("frequency analysis: %s (%s)\n\n", d.Kind(), cols[1].Name)

	freqs, amps := analysis.Spectrum(signal, rate)
	if len(amps) > 1 {
		graph := asciigraph.Plot(amps,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("amplitude spectrum, 0..%.1f hz", freqs[len(freqs)-1])),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	dom := analysis.DominantFrequency(signal, rate)
	fmt.Printf("dominant frequency: %.3f hz\n", dom)
	if dom > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/dom)
	}
	if f := analysis.CrossingFrequency(times, signal); f > 0 {
		fmt.Printf("zero-crossing frequency: %.3f hz\n", f)
	}
	fmt.Printf("peak |%s|: %.4g\n\n", cols[1].Name, floats.Norm(signal, math.Inf(1)))

	values, err := d.Measure(cmd.Context(), metrics.Default(d.Kind())...)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6g\n", name, values[name])
	}
	return w.Flush()
}

func exportCSVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-csv [demo]",
		Short: "export the waveform series to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	cmd.Flags().StringVarP(&csvOut, "output", "o", "", "output file (default stdout)")
	return cmd
}

func exportCSV(cmd *cobra.Command, args []string) error {
	d, _, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	return withOutput(csvOut, func(w io.Writer) error {
		return export.WriteCSV(w, d.Columns())
	})
}

func exportSVGCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-svg [demo]",
		Short: "export one frame, or the waveform series, as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	cmd.Flags().StringVarP(&svgOut, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&frameIdx, "frame", 0, "frame index")
	cmd.Flags().BoolVar(&seriesSVG, "series", false, "plot the primary signal against time instead")
	cmd.Flags().IntVar(&svgSize, "size", 480, "image size in pixels")
	return cmd
}

func exportSVG(cmd *cobra.Command, args []string) error {
	d, _, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	cols := d.Columns()

	var svg string
	if seriesSVG {
		svg = export.SeriesSVG(cols[0].Values, cols[1].Values, svgSize, svgSize/2, "#1f77b4")
	} else {
		s, err := d.Snapshot(frameIdx)
		if err != nil {
			return err
		}
		opts := export.SVGOptions{Size: svgSize, Duration: d.Sequencer().Duration()}
		if d.Kind() == demo.Interferometer {
			phase := cols[len(cols)-1].Values
			opts.PhaseMin, opts.PhaseMax = 1.1*floats.Min(phase), 1.1*floats.Max(phase)
		}
		svg = export.FrameSVG(s, opts)
	}
	return withOutput(svgOut, func(w io.Writer) error {
		_, err := io.WriteString(w, svg)
		return err
	})
}

func exportGIFCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-gif [demo]",
		Short: "render every frame to an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportGIF,
	}
	cmd.Flags().StringVarP(&gifOut, "output", "o", viz.DefaultGIFPath, "output file")
	cmd.Flags().IntVar(&gifWidth, "width", 60, "canvas width in cells")
	cmd.Flags().IntVar(&gifHeight, "height", 24, "canvas height in cells")
	return cmd
}

func exportGIF(cmd *cobra.Command, args []string) error {
	d, cfg, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	snaps, err := d.Render(cmd.Context())
	if err != nil {
		return err
	}
	canvas := viz.NewCanvas(gifWidth, gifHeight)
	rec := viz.NewRecorder(viz.GetTheme(cfg.Theme), d.FPS())
	for _, s := range snaps {
		viz.DrawSnapshot(canvas, s)
		rec.Capture(canvas)
	}

	f, err := os.Create(gifOut)
	if err != nil {
		return err
	}
	if err := rec.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote gif", "path", gifOut, "frames", rec.Len(), "elapsed", time.Since(start))
	return nil
}

func sonifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sonify [demo]",
		Short: "write the strain signal as audio",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sonify,
	}
	cmd.Flags().StringVarP(&wavOut, "output", "o", "gwviz.wav", "output file")
	cmd.Flags().Float64Var(&carrier, "carrier", export.DefaultCarrier, "carrier tone in Hz")
	cmd.Flags().Float64Var(&depth, "depth", export.DefaultDepth, "fractional pitch swing at peak strain")
	cmd.Flags().Float64Var(&speedup, "speedup", export.DefaultSpeedup, "playback speed factor")
	cmd.Flags().IntVar(&audioRate, "rate", export.DefaultSampleRate, "audio sample rate")
	return cmd
}

func sonify(cmd *cobra.Command, args []string) error {
	d, _, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	f, err := os.Create(wavOut)
	if err != nil {
		return err
	}
	err = export.WriteWAV(f, d.Signal(), export.WAVOptions{
		SignalRate: float64(d.FPS()),
		SampleRate: audioRate,
		Carrier:    carrier,
		Depth:      depth,
		Speedup:    speedup,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("wrote wav", "path", wavOut, "rate", audioRate)
	return nil
}

func benchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [demo]",
		Short: "time serial and parallel frame rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchDemo,
	}
	cmd.Flags().IntVar(&runs, "runs", 20, "repetitions per mode")
	return cmd
}

func benchDemo(cmd *cobra.Command, args []string) error {
	d, _, err := buildDemo(cmd, args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	fmt.Printf("benchmarking %s (%d frames)\n\n", d.Kind(), d.Len())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tRUNS\tTIME/RUN\tFRAMES/SEC")

	modes := []struct {
		name string
		run  func() error
	}{
		{"serial", func() error {
			return d.Run(ctx, func(demo.Snapshot) bool { return true })
		}},
		{"parallel", func() error {
			_, err := d.Render(ctx)
			return err
		}},
	}
	for _, m := range modes {
		start := time.Now()
		for i := 0; i < runs; i++ {
			if err := m.run(); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)
		perRun := elapsed / time.Duration(max(runs, 1))
		rate := float64(d.Len()*runs) / elapsed.Seconds()
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n", m.name, runs, perRun, rate)
	}
	return w.Flush()
}

func presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [demo]",
		Short: "list available presets for a demo",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := demo.Kinds()
			if len(args) == 1 {
				k, err := demo.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []demo.Kind{k}
			}
			for _, k := range kinds {
				fmt.Printf("presets for %s:\n", k)
				for _, p := range config.ListPresets(k.String()) {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}
}

func initConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			logger.Info("wrote config", "path", args[0])
			return nil
		},
	}
}

// withOutput runs fn against the named file, or stdout when path is empty.
func withOutput(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
