package framebuffer

import (
	"image"
	"image/draw"

	"github.com/clktmr/agbrtc/debug"
)

const (
	Width  = 240
	Height = 160
)

// Framebuffer draws into a buffer in work RAM and copies it to the visible
// image on Flush. Implements draw.Image, so all the drawing tools from the
// standard library can be used. All rendering is done by the CPU.
type Framebuffer struct {
	back  *RGB15
	front *RGB15
	fill  image.Uniform
	vsync func()
	dirty bool
}

// New returns a framebuffer presenting to front. vsync is called by Flush
// before the copy and may be nil.
func New(front *RGB15, vsync func()) *Framebuffer {
	debug.Assert(len(front.Pix) >= front.Stride*front.Rect.Dy(), "framebuffer: front buffer too small")
	return &Framebuffer{
		back:  NewRGB15(front.Rect),
		front: front,
		vsync: vsync,
	}
}

func (fb *Framebuffer) Bounds() image.Rectangle {
	return fb.back.Bounds()
}

// Image returns the buffer drawn into.
func (fb *Framebuffer) Image() draw.Image { return fb.back }

// Front returns the visible image.
func (fb *Framebuffer) Front() *RGB15 { return fb.front }
