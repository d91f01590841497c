package viz

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gwviz/internal/demo"
	"github.com/san-kum/gwviz/internal/geometry"
	"gonum.org/v1/gonum/floats"
)

const (
	width       = 60
	height      = 24
	chartWidth  = 48
	chartHeight = 8

	DefaultGIFPath = "gwviz.gif"
)

type TickMsg time.Time

// gifSavedMsg reports the outcome of writing a recording.
type gifSavedMsg struct {
	path   string
	frames int
	err    error
}

// Options configures a live Model. Zero values pick the defaults.
type Options struct {
	Width, Height int
	Theme         Theme
	Loop          bool
	GIFPath       string
}

// Model animates a demo.Demo at its own frame rate. The only state carried
// between frames is the frame index.
type Model struct {
	demo     *demo.Demo
	frame    int
	interval time.Duration

	running, loop, done bool
	showHelp            bool

	canvas  *Canvas
	theme   Theme
	styles  styles
	gifPath string
	rec     *Recorder
	notice  string

	// full signal for the strip chart and its fixed y-range
	signal           []float64
	caption          string
	chartLo, chartHi float64
}

func NewModel(d *demo.Demo, opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = width
	}
	if opts.Height <= 0 {
		opts.Height = height
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeCyberpunk
	}
	if opts.GIFPath == "" {
		opts.GIFPath = DefaultGIFPath
	}

	m := Model{
		demo:     d,
		interval: time.Second / time.Duration(d.FPS()),
		running:  true,
		loop:     opts.Loop,
		canvas:   NewCanvas(opts.Width, opts.Height),
		theme:    opts.Theme,
		styles:   stylesFor(opts.Theme),
		gifPath:  opts.GIFPath,
	}

	cols := d.Columns()
	if d.Kind() == demo.Ring {
		m.signal, m.caption = cols[1].Values, "h+(t)"
	} else {
		m.signal, m.caption = cols[4].Values, "Δφ(t), scaled [rad]"
	}
	m.chartLo, m.chartHi = 1.1*floats.Min(m.signal), 1.1*floats.Max(m.signal)
	if m.chartHi-m.chartLo == 0 {
		m.chartLo, m.chartHi = -1, 1
	}
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Frame is the index currently displayed.
func (m Model) Frame() int { return m.frame }

func (m Model) Running() bool { return m.running }
func (m Model) Done() bool    { return m.done }

// Recording reports whether frames are being captured for a GIF.
func (m Model) Recording() bool { return m.rec != nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.done {
				m.restart()
			} else {
				m.running = !m.running
			}
		case "r":
			m.restart()
		case "l":
			m.loop = !m.loop
		case "right", ".":
			if !m.running {
				m.seek(m.frame + 1)
			}
		case "left", ",":
			if !m.running {
				m.seek(m.frame - 1)
			}
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = stylesFor(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		case "g":
			if m.rec == nil {
				m.rec = NewRecorder(m.theme, m.demo.FPS())
				m.notice = ""
				m.capture()
				return m, nil
			}
			rec := m.rec
			m.rec = nil
			return m, saveGIF(rec, m.gifPath)
		}
	case TickMsg:
		if m.running {
			m.advance()
			if m.rec != nil {
				m.capture()
			}
		}
		return m, m.tick()
	case gifSavedMsg:
		if msg.err != nil {
			m.notice = "gif: " + msg.err.Error()
		} else {
			m.notice = fmt.Sprintf("saved %s (%d frames)", msg.path, msg.frames)
		}
	}
	return m, nil
}

func (m *Model) advance() {
	next := m.frame + 1
	if next >= m.demo.Len() {
		if !m.loop {
			m.running, m.done = false, true
			return
		}
		next = 0
	}
	m.frame = next
}

func (m *Model) restart() {
	m.frame = 0
	m.running, m.done = true, false
}

func (m *Model) seek(i int) {
	if i < 0 || i >= m.demo.Len() {
		return
	}
	m.frame = i
	m.done = false
}

func (m *Model) capture() {
	s, err := m.demo.Snapshot(m.frame)
	if err != nil {
		return
	}
	DrawSnapshot(m.canvas, s)
	m.rec.Capture(m.canvas)
}

func saveGIF(rec *Recorder, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return gifSavedMsg{path: path, err: err}
		}
		err = rec.Encode(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return gifSavedMsg{path: path, frames: rec.Len(), err: err}
	}
}

func (m Model) View() string {
	snap, err := m.demo.Snapshot(m.frame)
	if err != nil {
		return err.Error() + "\n"
	}
	DrawSnapshot(m.canvas, snap)
	canvasView := m.styles.canvas.Render(m.canvas.String())

	var s strings.Builder
	st := m.styles
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}

	if snap.Kind == demo.Ring {
		s.WriteString(st.header.Render("RING OF TEST MASSES") + "\n")
	} else {
		s.WriteString(st.header.Render("LASER INTERFEROMETER") + "\n")
	}
	s.WriteString(m.status() + "\n")
	n := m.demo.Len()
	s.WriteString(st.value.Render(ProgressBar(float64(m.frame+1)/float64(n), 30)) + "\n\n")

	s.WriteString(st.graph.Render(m.chart()) + "\n")

	row("Time", fmt.Sprintf("%.3fs", snap.Time))
	row("Frame", fmt.Sprintf("%d / %d", m.frame+1, n))
	switch snap.Kind {
	case demo.Ring:
		cfg := m.demo.RingConfig()
		row("h+", fmt.Sprintf("%+.4f", snap.HPlus))
		row("h×", fmt.Sprintf("%+.4f", snap.HCross))
		row("Max stretch", fmt.Sprintf("%.4f", geometry.MaxStretch(snap.Base, snap.Points)))
		row("Frequency", fmt.Sprintf("%g Hz", cfg.Frequency))
		row("Particles", fmt.Sprintf("%d", cfg.Particles))
	case demo.Interferometer:
		cfg := m.demo.InterferometerConfig()
		row("h", fmt.Sprintf("%+.3e", snap.Strain.H))
		row("Δφ", fmt.Sprintf("%+.3e rad", snap.Strain.Phase))
		row("Δφ scaled", fmt.Sprintf("%+.4f rad", snap.Strain.ScaledPhase))
		row("ΔL (drawn)", fmt.Sprintf("%+.1f m", snap.Arms.DeltaX))
		row("Lx / Ly", fmt.Sprintf("%.1f / %.1f", snap.Arms.X.Len(), snap.Arms.Y.Len()))
		row("2L/c", fmt.Sprintf("%.4g s", cfg.RoundTrip()))
	}
	loop := "off"
	if m.loop {
		loop = "on"
	}
	row("Loop", loop)
	row("Theme", m.theme.Name)
	if m.notice != "" {
		s.WriteString("\n" + st.value.Render(m.notice) + "\n")
	}
	s.WriteString(st.help.Render("SP:Pause R:Restart L:Loop Q:Quit\nT:Theme G:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}

func (m Model) status() string {
	var parts []string
	switch {
	case m.done:
		parts = append(parts, m.styles.paused.Render("DONE"))
	case m.running:
		parts = append(parts, m.styles.running.Render("RUNNING"))
	default:
		parts = append(parts, m.styles.paused.Render("PAUSED"))
	}
	if m.rec != nil {
		parts = append(parts, m.styles.recording.Render(fmt.Sprintf("● REC %d", m.rec.Len())))
	}
	return strings.Join(parts, "  ")
}

// chart plots the signal up to the current frame on a time axis fixed to the
// full run, so the trace grows left to right.
func (m Model) chart() string {
	data := Downsample(m.signal[:m.frame+1], len(m.signal), chartWidth)
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.LowerBound(m.chartLo),
		asciigraph.UpperBound(m.chartHi),
		asciigraph.Caption(m.caption),
	)
}

// Downsample picks the samples of prefix that fall on a width-column grid
// spanning total samples. Prefixes of series shorter than width are returned
// as they are.
func Downsample(prefix []float64, total, width int) []float64 {
	if total <= width || width < 2 {
		return prefix
	}
	out := make([]float64, 0, width)
	for j := 0; j < width; j++ {
		idx := int(math.Round(float64(j) * float64(total-1) / float64(width-1)))
		if idx >= len(prefix) {
			break
		}
		out = append(out, prefix[idx])
	}
	return out
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart from frame 0     ║
║  L        - Toggle looping           ║
║  ← / →    - Step one frame (paused)  ║
║  G        - Start/stop GIF recording ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
