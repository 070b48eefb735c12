// Package video sets up the LCD for a 240x160 direct color bitmap.
package video

import "github.com/clktmr/agbrtc/agb"

const (
	DispCnt  = agb.IO + 0x0
	DispStat = agb.IO + 0x4
	VCount   = agb.IO + 0x6
)

// DISPCNT flags
const (
	Mode3 = 3
	BG2   = 1 << 10
)

// Lines of the visible area, VCOUNT counts up to 227 during vertical blank.
const VisibleLines = 160

// Setup switches to mode 3 with background 2 enabled. The framebuffer then
// lives at the start of VRAM.
func Setup() {
	agb.Reg(DispCnt).Store(Mode3 | BG2)
}

// InVBlank reports whether the current scanline is in the vertical blank.
func InVBlank() bool {
	return agb.Reg(VCount).Load() >= VisibleLines
}
