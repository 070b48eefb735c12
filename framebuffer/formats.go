package framebuffer

import (
	"image"
	"image/color"
)

// RGB15 stores pixels as 16-bit xBBBBBGGGGGRRRRR, the layout of the LCD
// controller. Pixels are accessed as halfwords because video memory ignores
// byte writes.
type RGB15 struct {
	Pix    []uint16
	Stride int // in pixels
	Rect   image.Rectangle
}

func NewRGB15(r image.Rectangle) *RGB15 {
	return &RGB15{
		Pix:    make([]uint16, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// Color15 is a color in RGB15 layout. It is always opaque.
type Color15 uint16

func (c Color15) RGBA() (r, g, b, a uint32) {
	return expand5(uint32(c)), expand5(uint32(c >> 5)), expand5(uint32(c >> 10)), 0xffff
}

// expand5 scales the low 5 bits of v to 16 bits.
func expand5(v uint32) uint32 {
	v &= 0x1f
	return v<<11 | v<<6 | v<<1 | v>>4
}

var RGB15Model color.Model = color.ModelFunc(rgb15Model)

func rgb15Model(c color.Color) color.Color {
	if _, ok := c.(Color15); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color15(r>>11 | g>>11<<5 | b>>11<<10)
}

func (p *RGB15) ColorModel() color.Model { return RGB15Model }

func (p *RGB15) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB15) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	return Color15(p.Pix[p.PixOffset(x, y)])
}

func (p *RGB15) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = uint16(rgb15Model(c).(Color15))
}

func (p *RGB15) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
