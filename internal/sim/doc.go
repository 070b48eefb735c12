// Package sim simulates the cartridge hardware this module talks to, so the
// drivers and the diagnostic screens can run on a host.
//
// The models react to register writes only, the same way the real devices
// latch bus activity. Nothing is timed.
package sim
