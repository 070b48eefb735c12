// Package agb provides a hardware abstraction layer for the Game Boy Advance.
//
// It implements low-level access to the memory mapped registers the rest of
// this module needs. All unsafe pointer access is confined to this package and
// its subpackages. Files tagged gameboyadvance talk to the hardware, the other
// files provide a memory image so everything above can run on a host.
package agb

// GBATEK
// https://problemkaputt.de/gbatek.htm
