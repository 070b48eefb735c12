package framebuffer

import (
	"image"
	"image/color"
	"testing"
)

func TestRGB15(t *testing.T) {
	img := NewRGB15(image.Rect(0, 0, 4, 4))
	tests := map[string]struct {
		c    color.Color
		want uint16
	}{
		"red":   {color.RGBA{0xff, 0, 0, 0xff}, 0x001f},
		"green": {color.RGBA{0, 0xff, 0, 0xff}, 0x03e0},
		"blue":  {color.RGBA{0, 0, 0xff, 0xff}, 0x7c00},
		"white": {color.White, 0x7fff},
	}
	for name, tc := range tests {
		img.Set(1, 2, tc.c)
		if got := img.Pix[2*img.Stride+1]; got != tc.want {
			t.Errorf("%s: expected %#04x, got %#04x", name, tc.want, got)
		}
		r, g, b, a := img.At(1, 2).RGBA()
		wr, wg, wb, _ := tc.c.RGBA()
		if r != wr || g != wg || b != wb || a != 0xffff {
			t.Errorf("%s: round trip gave %x %x %x %x", name, r, g, b, a)
		}
	}
	img.Set(10, 10, color.White) // out of bounds is ignored
}

func TestFlush(t *testing.T) {
	front := NewRGB15(image.Rect(0, 0, Width, Height))
	vsyncs := 0
	fb := New(front, func() { vsyncs++ })

	fb.SetColor(color.White)
	fb.Fill(image.Rect(0, 0, 2, 2))
	if front.Pix[0] != 0 {
		t.Fatal("front buffer written before flush")
	}
	fb.Flush()
	if front.Pix[0] != 0x7fff {
		t.Fatalf("expected white, got %#04x", front.Pix[0])
	}

	front.Pix[0] = 0
	fb.Flush()
	if front.Pix[0] != 0 {
		t.Fatal("clean frame copied again")
	}
	if vsyncs != 2 {
		t.Fatalf("expected 2 vsyncs, got %d", vsyncs)
	}
}
