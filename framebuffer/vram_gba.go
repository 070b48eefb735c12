//go:build gameboyadvance

package framebuffer

import (
	"image"
	"unsafe"

	"github.com/clktmr/agbrtc/agb"
)

// VRAM returns the bitmap of video mode 3.
func VRAM() *RGB15 {
	pix := unsafe.Slice((*uint16)(unsafe.Pointer(uintptr(agb.VRAM))), Width*Height)
	return &RGB15{Pix: pix, Stride: Width, Rect: image.Rect(0, 0, Width, Height)}
}
