//go:build !debug

// Package debug provides assertions that are compiled in with the debug build
// tag and are no-ops otherwise.
//
// They guard preconditions of hardware facing code, where a bad value would
// otherwise be written to a device without complaint.
package debug

// Guard assertions that do work beyond a comparison with `if debug.Enabled
// {...}`, otherwise they stay in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertInRange panics if v is not within [lo, hi].
func AssertInRange(v, lo, hi int, what string) {}
