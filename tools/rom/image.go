package rom

import (
	"debug/elf"
	"errors"
	"strings"
	"unicode"

	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/cart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSize is the size of the cartridge ROM window.
const MaxSize = 32 << 20

// headerSize covers the entry branch, the logo and the header.
const headerSize = 0xc0

var (
	ErrBeforeROM = errors.New("section below cartridge ROM")
	ErrTooLarge  = errors.New("image exceeds cartridge ROM")
)

// Segment is data placed at a bus address.
type Segment struct {
	Addr uint64
	Data []byte
}

// Segments returns the allocated sections of f that have contents.
func Segments(f *elf.File) ([]Segment, error) {
	var segs []Segment
	for _, s := range f.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, err
		}
		segs = append(segs, Segment{Addr: s.Addr, Data: data})
	}
	return segs, nil
}

// Image lays out segs as a cartridge ROM and writes the header h. Sections
// the linker placed in RAM are expected to be loaded by the startup code and
// are not part of segs.
func Image(segs []Segment, h cart.Header) ([]byte, error) {
	size := headerSize
	for _, s := range segs {
		if s.Addr < uint64(agb.ROM) {
			return nil, ErrBeforeROM
		}
		end := int(s.Addr-uint64(agb.ROM)) + len(s.Data)
		if end > MaxSize {
			return nil, ErrTooLarge
		}
		size = max(size, end)
	}
	rom := make([]byte, size)
	for _, s := range segs {
		copy(rom[s.Addr-uint64(agb.ROM):], s.Data)
	}
	h.Title = FoldTitle(h.Title)
	if err := h.Put(rom); err != nil {
		return nil, err
	}
	return rom, nil
}

var titleFolding = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldTitle maps s to what fits the header title: upper case ASCII, accents
// stripped, other characters dropped, at most 12 bytes.
func FoldTitle(s string) string {
	s, _, _ = transform.String(titleFolding, s)
	s = cases.Upper(language.Und).String(s)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, s)
	return s[:min(len(s), 12)]
}
