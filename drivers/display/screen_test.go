package display

import (
	"image"
	"testing"

	"github.com/clktmr/agbrtc/drivers/rtc"
	"github.com/clktmr/agbrtc/fonts/basicfont"
	"github.com/clktmr/agbrtc/framebuffer"
)

func newScreen() (*Screen, *framebuffer.RGB15) {
	front := framebuffer.NewRGB15(image.Rect(0, 0, framebuffer.Width, framebuffer.Height))
	return NewScreen(framebuffer.New(front, nil), basicfont.NewFace()), front
}

func TestPrint(t *testing.T) {
	s, _ := newScreen()
	s.Print(0, "RTC Diagnostics")
	s.Print(5, "ignored")
	s.Print(-5, "ignored")
	if got := s.Row(0); got != "RTC Diagnostics" {
		t.Fatalf("expected %q, got %q", "RTC Diagnostics", got)
	}
	if got := s.Row(5); got != "" {
		t.Fatalf("expected empty row, got %q", got)
	}
	s.Clear()
	if got := s.Row(0); got != "" {
		t.Fatalf("expected empty row, got %q", got)
	}
}

func TestFlush(t *testing.T) {
	s, front := newScreen()
	s.SetIcon(rtc.IconFull)
	s.Print(0, "MMMMMMMM")
	s.Flush()

	bg := framebuffer.RGB15Model.Convert(Background)
	if got := front.At(framebuffer.Width-1, framebuffer.Height-1); got != bg {
		t.Fatalf("expected %v, got %v", bg, got)
	}
	icon := framebuffer.RGB15Model.Convert(iconColors[rtc.IconFull])
	if got := front.At(iconRect.Min.X, iconRect.Min.Y); got != icon {
		t.Fatalf("expected %v, got %v", icon, got)
	}

	fg := framebuffer.RGB15Model.Convert(Foreground)
	inked := 0
	for y := framebuffer.Height/2 - RowHeight; y < framebuffer.Height/2+RowHeight; y++ {
		for x := range framebuffer.Width {
			if front.At(x, y) == fg {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatalf("expected text pixels in row 0")
	}

	s.SetIcon(rtc.IconNone)
	s.Flush()
	if got := front.At(iconRect.Min.X, iconRect.Min.Y); got != bg {
		t.Fatalf("expected %v, got %v", bg, got)
	}
}
