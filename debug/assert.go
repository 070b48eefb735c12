//go:build debug

package debug

import "strconv"

// Guard assertions that do work beyond a comparison with `if debug.Enabled
// {...}`, otherwise they stay in release builds.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertInRange(v, lo, hi int, what string) {
	if v < lo || v > hi {
		panic(what + " out of range: " + strconv.Itoa(v))
	}
}
