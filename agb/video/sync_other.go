//go:build !gameboyadvance

package video

// WaitVBlank returns immediately, nothing advances the scanline counter on
// the host.
func WaitVBlank() {}
