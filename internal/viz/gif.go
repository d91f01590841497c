package viz

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
)

// Size in image pixels of one braille cell in a recording.
const (
	cellW = 8
	cellH = 16
)

var ErrNoFrames = errors.New("viz: no frames recorded")

// Recorder accumulates canvas frames into an animated GIF.
type Recorder struct {
	palette color.Palette
	delay   int
	frames  []*image.Paletted
}

// NewRecorder returns a recorder that plays back at fps, coloured with the
// theme's background and primary colours.
func NewRecorder(t Theme, fps int) *Recorder {
	delay := 1
	if fps > 0 {
		delay = int(math.Max(1, math.Round(100/float64(fps))))
	}
	return &Recorder{
		palette: color.Palette{rgba(t.Background), rgba(t.Primary)},
		delay:   delay,
	}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Delay is the per-frame delay in hundredths of a second.
func (r *Recorder) Delay() int { return r.delay }

// Capture rasterizes the current canvas contents. Each lit sub-pixel becomes
// a cellW/2 x cellH/4 block.
func (r *Recorder) Capture(c *Canvas) {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*cellW, c.Height*cellH), r.palette)
	dotW, dotH := cellW/2, cellH/4
	for y := 0; y < c.SubHeight(); y++ {
		for x := 0; x < c.SubWidth(); x++ {
			if !c.Pixel(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Encode writes the recording as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Reset() { r.frames = r.frames[:0] }
