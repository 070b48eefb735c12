//go:build !gameboyadvance

package framebuffer

import "image"

var vram = NewRGB15(image.Rect(0, 0, Width, Height))

// VRAM returns the bitmap of video mode 3.
func VRAM() *RGB15 { return vram }
