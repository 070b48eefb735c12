// Package cart reads the header of the inserted cartridge.
//
// The header is read through the bus each time, so a cartridge swapped while
// the program runs from work RAM is noticed.
package cart

import (
	"errors"

	"github.com/clktmr/agbrtc/agb"
)

// Header layout relative to the start of the ROM.
const (
	titleOff      = 0xa0
	gameCodeOff   = 0xac
	makerCodeOff  = 0xb0
	fixedOff      = 0xb2
	versionOff    = 0xbc
	complementOff = 0xbd
	headerEnd     = 0xc0

	fixedValue = 0x96
)

// ChecksumAddr is the halfword holding version and complement check. It
// identifies which ROM image is mapped.
const ChecksumAddr = agb.ROM + versionOff

// Identifier returns the printable part of the 12 character title of the
// cartridge behind mem. The title ends at the first byte outside 0x20-0x7e.
// An empty slot reads as open bus, which yields "P" on most consoles.
func Identifier(mem agb.Memory) string {
	var words [6]uint16
	agb.ReadHalfwords(mem, agb.ROM+titleOff, words[:])
	var title [12]byte
	for i, w := range words {
		title[2*i] = byte(w)
		title[2*i+1] = byte(w >> 8)
	}
	return printablePrefix(title[:])
}

func printablePrefix(b []byte) string {
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			return string(b[:i])
		}
	}
	return string(b)
}

// Slot reads identifiers from a memory bus.
type Slot struct {
	Mem agb.Memory
}

func (s Slot) Identifier() string { return Identifier(s.Mem) }

var (
	ErrShortROM = errors.New("cart: ROM shorter than header")
	ErrTitle    = errors.New("cart: title longer than 12 characters")
	ErrGameCode = errors.New("cart: game code must have 4 characters")
)

type Header struct {
	Title     string // up to 12 characters
	GameCode  string // 4 characters
	MakerCode string // 2 characters
	Version   byte
}

// ParseHeader reads the header of a ROM image.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerEnd {
		return nil, ErrShortROM
	}
	return &Header{
		Title:     printablePrefix(rom[titleOff:gameCodeOff]),
		GameCode:  string(rom[gameCodeOff:makerCodeOff]),
		MakerCode: string(rom[makerCodeOff:fixedOff]),
		Version:   rom[versionOff],
	}, nil
}

// Put writes h into rom and updates the complement check.
func (h *Header) Put(rom []byte) error {
	if len(rom) < headerEnd {
		return ErrShortROM
	}
	if len(h.Title) > gameCodeOff-titleOff {
		return ErrTitle
	}
	if len(h.GameCode) != makerCodeOff-gameCodeOff {
		return ErrGameCode
	}
	clear(rom[titleOff:gameCodeOff])
	copy(rom[titleOff:], h.Title)
	copy(rom[gameCodeOff:], h.GameCode)
	maker := h.MakerCode
	if maker == "" {
		maker = "00"
	}
	copy(rom[makerCodeOff:fixedOff], maker)
	rom[fixedOff] = fixedValue
	rom[versionOff] = h.Version
	rom[complementOff] = Complement(rom)
	return nil
}

// Complement returns the header check byte the BIOS verifies at boot.
func Complement(rom []byte) byte {
	var sum byte
	for _, b := range rom[titleOff:complementOff] {
		sum += b
	}
	return -(sum + 0x19)
}
