// Package fonts provides fonts for the text writer of
// github.com/embeddedgo/display/pix.
package fonts

import "github.com/embeddedgo/display/font/subfont"

type Face struct {
	subfont.Face
}

// Width returns the advance of s in pixels.
func (f *Face) Width(s string) (w int) {
	for _, r := range s {
		w += f.Advance(r)
	}
	return
}
