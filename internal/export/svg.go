package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gwviz/internal/demo"
	"github.com/san-kum/gwviz/internal/viz"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// matplotlib default palette.
const (
	colorBlue  = "#1f77b4"
	colorRed   = "#d62728"
	colorBlack = "#000000"
	colorGrid  = "#cccccc"
)

// SVGOptions controls FrameSVG. Zero values pick the defaults.
type SVGOptions struct {
	// Size is the side of the geometry panel in pixels.
	Size int
	// Duration fixes the time axis of the phase panel. Zero uses the
	// snapshot's own prefix.
	Duration float64
	// PhaseMin and PhaseMax fix the y-range of the phase panel.
	PhaseMin, PhaseMax float64
}

// FrameSVG draws one frame as a standalone SVG document. The interferometer
// gets a second panel below the arms with the Δφ trace so far.
func FrameSVG(s demo.Snapshot, opts SVGOptions) string {
	if opts.Size <= 0 {
		opts.Size = 480
	}
	size := float64(opts.Size)
	v := viz.ViewportFor(s)

	height := size
	if s.Kind == demo.Interferometer {
		height = size * 1.5
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, size, height, size, height)

	pt := func(p r2.Vec) (float64, float64) {
		x := (p.X - v.Min.X) / (v.Max.X - v.Min.X) * size
		y := size - (p.Y-v.Min.Y)/(v.Max.Y-v.Min.Y)*size
		return x, y
	}

	switch s.Kind {
	case demo.Ring:
		fmt.Fprintf(&sb, "<title>Gravitational wave effect on particles, t=%.3fs</title>\n", s.Time)
		sb.WriteString(`<g fill="none" stroke="` + colorGrid + `">` + "\n")
		for _, p := range s.Base {
			x, y := pt(p)
			fmt.Fprintf(&sb, `<circle cx="%.2f" cy="%.2f" r="2"/>`+"\n", x, y)
		}
		sb.WriteString("</g>\n")
		sb.WriteString(`<g fill="` + colorBlue + `">` + "\n")
		for _, p := range s.Points {
			x, y := pt(p)
			fmt.Fprintf(&sb, `<circle cx="%.2f" cy="%.2f" r="5"/>`+"\n", x, y)
		}
		sb.WriteString("</g>\n")

	case demo.Interferometer:
		fmt.Fprintf(&sb, "<title>Interferometer arm deformation, t=%.3fs</title>\n", s.Time)
		for _, arm := range []struct {
			seg   [2]r2.Vec
			color string
			id    string
		}{
			{[2]r2.Vec{s.Arms.X.From, s.Arms.X.To}, colorBlue, "x-arm"},
			{[2]r2.Vec{s.Arms.Y.From, s.Arms.Y.To}, colorRed, "y-arm"},
		} {
			x0, y0 := pt(arm.seg[0])
			x1, y1 := pt(arm.seg[1])
			fmt.Fprintf(&sb, `<line id="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="3"/>`+"\n",
				arm.id, x0, y0, x1, y1, arm.color)
		}
		bx, by := pt(r2.Vec{})
		fmt.Fprintf(&sb, `<circle cx="%.2f" cy="%.2f" r="4" fill="%s"/>`+"\n", bx, by, colorBlack)

		writePhasePanel(&sb, s, opts, size)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePhasePanel(sb *strings.Builder, s demo.Snapshot, opts SVGOptions, size float64) {
	top, h := size*1.05, size*0.4
	fmt.Fprintf(sb, `<rect x="0" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s"/>`+"\n",
		top, size, h, colorGrid)
	if len(s.Phase) < 2 {
		return
	}

	tMax := opts.Duration
	if tMax <= 0 {
		tMax = s.PhaseTimes[len(s.PhaseTimes)-1]
	}
	lo, hi := opts.PhaseMin, opts.PhaseMax
	if lo == hi {
		lo, hi = 1.1*floats.Min(s.Phase), 1.1*floats.Max(s.Phase)
	}
	if lo == hi {
		lo, hi = -1, 1
	}

	pts := make([]r2.Vec, len(s.Phase))
	for i := range s.Phase {
		pts[i] = r2.Vec{
			X: s.PhaseTimes[i] / tMax * size,
			Y: top + h - (s.Phase[i]-lo)/(hi-lo)*h,
		}
	}
	fmt.Fprintf(sb, `<path id="phase" fill="none" stroke="%s" stroke-width="2" d="%s"/>`+"\n",
		colorBlue, pathData(pts))
}

// SeriesSVG plots y against x as a polyline with 10% padding on each axis.
func SeriesSVG(x, y []float64, width, height int, stroke string) string {
	n := min(len(x), len(y))
	if n < 2 {
		return ""
	}
	x, y = x[:n], y[:n]

	minX, maxX := floats.Min(x), floats.Max(x)
	minY, maxY := floats.Min(y), floats.Max(y)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{
			X: (x[i] - minX) / rangeX * float64(width),
			Y: float64(height) - (y[i]-minY)/rangeY*float64(height),
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
</svg>
`, width, height, width, height, stroke, pathData(pts))
	return sb.String()
}

func pathData(pts []r2.Vec) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&sb, "M%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", p.X, p.Y)
		}
	}
	return sb.String()
}
