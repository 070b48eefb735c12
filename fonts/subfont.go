package fonts

import "image"

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// StripData implements [subfont.Data] for monospaced glyphs stacked on top
// of each other in a single mask image.
type StripData struct {
	Mask   image.Image
	Width  int // glyph width
	Height int // glyph height, also the vertical distance of glyphs
	Ascent int // baseline offset from the top of a glyph
	Adv    int // horizontal advance of every glyph
}

func (d *StripData) rect(i int) image.Rectangle {
	min := d.Mask.Bounds().Min
	return image.Rect(min.X, min.Y+i*d.Height, min.X+d.Width, min.Y+(i+1)*d.Height)
}

func (d *StripData) Advance(i int) int { return d.Adv }

func (d *StripData) Glyph(i int) (img image.Image, origin image.Point, advance int) {
	r := d.rect(i)
	img = d.Mask.(subImager).SubImage(r)
	origin = image.Pt(r.Min.X, r.Min.Y+d.Ascent)
	return img, origin, d.Adv
}
