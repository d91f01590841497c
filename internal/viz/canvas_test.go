package viz

import (
	"testing"

	"github.com/san-kum/gwviz/internal/config"
	"github.com/san-kum/gwviz/internal/demo"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	if got := c.String(); got != "\u2800\u2800\n" {
		t.Fatalf("empty canvas = %q", got)
	}

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("Set(0,0) cell = %#x, want 0x2801", c.Grid[0][0])
	}
	c.Set(3, 3)
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("Set(3,3) cell = %#x, want 0x2880", c.Grid[0][1])
	}
	if !c.Pixel(0, 0) || c.Pixel(1, 0) {
		t.Error("Pixel disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != brailleBase {
		t.Errorf("Unset left %#x", c.Grid[0][0])
	}

	// out of range is ignored
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	if c.Pixel(-1, 0) || c.Pixel(4, 0) {
		t.Error("out-of-range pixel reported lit")
	}

	c.Clear()
	if c.Pixel(3, 3) {
		t.Error("Clear left a pixel lit")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i < 8; i++ {
		if !c.Pixel(i, i) {
			t.Errorf("diagonal pixel (%d,%d) not set", i, i)
		}
	}
	c.Clear()
	c.DrawLine(6, 2, 0, 2)
	for x := 0; x <= 6; x++ {
		if !c.Pixel(x, 2) {
			t.Errorf("horizontal pixel (%d,2) not set", x)
		}
	}
}

func TestViewportProject(t *testing.T) {
	c := NewCanvas(10, 5) // 20x20 sub-pixels
	v := Viewport{Min: r2.Vec{X: -2, Y: -2}, Max: r2.Vec{X: 2, Y: 2}}

	tests := []struct {
		p    r2.Vec
		x, y int
	}{
		{r2.Vec{X: -2, Y: -2}, 0, 19},
		{r2.Vec{X: 2, Y: 2}, 19, 0},
		{r2.Vec{X: -2, Y: 2}, 0, 0},
		{r2.Vec{X: 2, Y: -2}, 19, 19},
	}
	for _, tt := range tests {
		x, y := v.Project(c, tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("Project(%v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestDrawSnapshot(t *testing.T) {
	cfg := config.DefaultConfig()

	ring, err := demo.New(demo.Ring, cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, err := ring.Snapshot(0)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(40, 20)
	DrawSnapshot(c, s)
	v := ViewportFor(s)
	for i, p := range s.Points {
		if x, y := v.Project(c, p); !c.Pixel(x, y) {
			t.Errorf("particle %d at %v not drawn", i, p)
		}
	}

	ifo, err := demo.New(demo.Interferometer, cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, err = ifo.Snapshot(10)
	if err != nil {
		t.Fatal(err)
	}
	DrawSnapshot(c, s)
	v = ViewportFor(s)
	for _, p := range []r2.Vec{s.Arms.X.From, s.Arms.X.To, s.Arms.Y.To} {
		if x, y := v.Project(c, p); !c.Pixel(x, y) {
			t.Errorf("arm point %v not drawn", p)
		}
	}
	// nothing left over from the ring frame at the far corner
	if c.Pixel(0, 0) {
		t.Error("canvas not cleared between frames")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("lab").Name != "lab" {
		t.Error("GetTheme(lab)")
	}
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Errorf("NextTheme did not cycle through all themes: %v", seen)
	}
	if r, g, b := parseHex("#1f77b4"); r != 0x1f || g != 0x77 || b != 0xb4 {
		t.Errorf("parseHex = %d %d %d", r, g, b)
	}
}
