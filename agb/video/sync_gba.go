//go:build gameboyadvance

package video

// WaitVBlank blocks until the start of the next vertical blank.
func WaitVBlank() {
	for InVBlank() {
	}
	for !InVBlank() {
	}
}
