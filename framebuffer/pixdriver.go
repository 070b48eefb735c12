package framebuffer

import (
	"image"
	"image/color"
	"image/draw"
)

func (fb *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point,
	mask image.Image, mp image.Point, op draw.Op) {
	draw.DrawMask(fb.back, r, src, sp, mask, mp, op)
	fb.dirty = true
}

func (fb *Framebuffer) Fill(rect image.Rectangle) {
	fb.Draw(rect, &fb.fill, image.Point{}, nil, image.Point{}, draw.Src)
}

func (fb *Framebuffer) SetColor(c color.Color) {
	fb.fill.C = c
}

func (fb *Framebuffer) SetDir(dir int) image.Rectangle {
	return fb.back.Bounds()
}

// Flush waits for the vertical blank and presents the frame if anything was
// drawn since the last call.
func (fb *Framebuffer) Flush() {
	if fb.vsync != nil {
		fb.vsync()
	}
	if fb.dirty {
		copy(fb.front.Pix, fb.back.Pix)
		fb.dirty = false
	}
}

func (fb *Framebuffer) Err(clear bool) error {
	return nil
}
