package viz

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/gwviz/internal/config"
	"github.com/san-kum/gwviz/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, kind demo.Kind, opts Options) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Ring.Duration, cfg.Ring.FPS = 1, 10
	cfg.Interferometer.Duration, cfg.Interferometer.FPS = 1, 10
	d, err := demo.New(kind, cfg)
	require.NoError(t, err)
	return NewModel(d, opts)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ticks(n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = TickMsg(time.Time{})
	}
	return out
}

func TestModel_PlaysToEnd(t *testing.T) {
	m := newTestModel(t, demo.Interferometer, Options{})
	require.NotNil(t, m.Init())
	assert.True(t, m.Running())

	m = send(m, ticks(3)...)
	assert.Equal(t, 3, m.Frame())

	m = send(m, ticks(20)...)
	assert.Equal(t, 9, m.Frame())
	assert.True(t, m.Done())
	assert.False(t, m.Running())

	// space after the end starts over
	m = send(m, key(" "))
	assert.Equal(t, 0, m.Frame())
	assert.True(t, m.Running())
}

func TestModel_Loop(t *testing.T) {
	m := newTestModel(t, demo.Ring, Options{Loop: true})
	m = send(m, ticks(10)...)
	assert.Equal(t, 0, m.Frame())
	assert.False(t, m.Done())

	m = send(m, key("l"))
	m = send(m, ticks(12)...)
	assert.True(t, m.Done())
}

func TestModel_PauseAndStep(t *testing.T) {
	m := newTestModel(t, demo.Interferometer, Options{})
	m = send(m, ticks(2)...)
	m = send(m, key(" "))
	require.False(t, m.Running())

	m = send(m, ticks(5)...)
	assert.Equal(t, 2, m.Frame(), "paused model must not advance")

	m = send(m, key("right"), key("right"))
	assert.Equal(t, 4, m.Frame())
	m = send(m, key("left"), key("left"), key("left"), key("left"), key("left"))
	assert.Equal(t, 0, m.Frame())

	m = send(m, key("r"))
	assert.True(t, m.Running())
	assert.Equal(t, 0, m.Frame())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, demo.Interferometer, Options{})
	m = send(m, ticks(4)...)
	v := m.View()
	assert.Contains(t, v, "LASER INTERFEROMETER")
	assert.Contains(t, v, "2L/c")
	assert.Contains(t, v, "5 / 10")
	assert.Contains(t, v, "cyberpunk")

	m = send(m, key("t"), key("?"))
	v = m.View()
	assert.Contains(t, v, "lab")
	assert.Contains(t, v, "KEYBOARD SHORTCUTS")

	r := newTestModel(t, demo.Ring, Options{})
	assert.Contains(t, r.View(), "RING OF TEST MASSES")
}

func TestModel_RecordGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	m := newTestModel(t, demo.Ring, Options{GIFPath: path, Width: 20, Height: 10})

	m = send(m, key("g"))
	require.True(t, m.Recording())
	m = send(m, ticks(3)...)
	assert.Contains(t, m.View(), "REC 4")

	next, cmd := m.Update(key("g"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.False(t, m.Recording())

	msg := cmd()
	saved, ok := msg.(gifSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, 4, saved.frames)

	m = send(m, msg)
	assert.Contains(t, m.View(), "saved "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 4)
	assert.Equal(t, 10, anim.Delay[0])
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(ThemeLab, 30)
	assert.Equal(t, 3, r.Delay())
	assert.ErrorIs(t, r.Encode(&bytes.Buffer{}), ErrNoFrames)

	c := NewCanvas(3, 2)
	c.Set(0, 0)
	r.Capture(c)
	c.Set(5, 7)
	r.Capture(c)
	require.Equal(t, 2, r.Len())

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, 2)

	img := anim.Image[1]
	assert.Equal(t, 3*cellW, img.Bounds().Dx())
	assert.Equal(t, 2*cellH, img.Bounds().Dy())
	assert.Equal(t, uint8(1), img.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), img.ColorIndexAt(5*cellW/2, 7*cellH/4))
	assert.Equal(t, uint8(0), img.ColorIndexAt(cellW, 0))

	r.Reset()
	assert.Equal(t, 0, r.Len())
}

func TestDownsample(t *testing.T) {
	full := make([]float64, 150)
	for i := range full {
		full[i] = float64(i)
	}

	got := Downsample(full, 150, 48)
	require.Len(t, got, 48)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 149.0, got[47])

	got = Downsample(full[:1], 150, 48)
	assert.Equal(t, []float64{0}, got)

	half := Downsample(full[:75], 150, 48)
	assert.Less(t, len(half), 48)
	assert.Greater(t, len(half), 20)

	short := full[:30]
	assert.Equal(t, short, Downsample(short, 30, 48))
}
