// Package basicfont provides the 7x13 fixed font of
// golang.org/x/image/font/basicfont as a subfont face.
package basicfont

import (
	"github.com/clktmr/agbrtc/fonts"
	"github.com/embeddedgo/display/font/subfont"
	"golang.org/x/image/font/basicfont"
)

const (
	Height = 13
	Ascent = 11
)

// NewFace returns a face covering printable ASCII.
func NewFace() *fonts.Face {
	src := basicfont.Face7x13
	return &fonts.Face{Face: subfont.Face{
		Height: Height,
		Ascent: Ascent,
		Subfonts: []*subfont.Subfont{{
			First: ' ',
			Last:  '~',
			Data: &fonts.StripData{
				Mask:   src.Mask,
				Width:  src.Width,
				Height: src.Height,
				Ascent: src.Ascent,
				Adv:    src.Advance,
			},
		}},
	}}
}
