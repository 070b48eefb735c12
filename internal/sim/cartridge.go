package sim

import (
	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/cart"
	"github.com/clktmr/agbrtc/agb/gpio"
)

const (
	titleAddr = agb.ROM + 0xa0
	titleLen  = 12
)

// Cartridge is a game cartridge with an optional clock and an optional paging
// controller in front of it.
type Cartridge struct {
	Title    string
	Checksum uint16
	Chip     *Chip
	Flash    *FlashCart
}

func (c *Cartridge) Load16(addr agb.Addr) uint16 {
	switch {
	case c.gpio() && addr >= gpio.DataAddr && addr <= gpio.ControlAddr && c.Chip.ctl&1 != 0:
		return c.Chip.Load16(addr)
	case addr == cart.ChecksumAddr:
		if c.Flash != nil {
			return c.Flash.Checksum()
		}
		return c.Checksum
	case addr >= titleAddr && addr < titleAddr+titleLen:
		i := int(addr - titleAddr)
		return uint16(c.titleByte(i)) | uint16(c.titleByte(i+1))<<8
	}
	return 0
}

func (c *Cartridge) titleByte(i int) byte {
	if i < len(c.Title) {
		return c.Title[i]
	}
	return 0
}

// gpio reports whether the clock is wired to the bus. A paging controller
// only passes it through with the RTC enabled.
func (c *Cartridge) gpio() bool {
	return c.Chip != nil && (c.Flash == nil || c.Flash.RTCEnabled)
}

func (c *Cartridge) Store16(addr agb.Addr, v uint16) {
	if c.gpio() {
		c.Chip.Store16(addr, v)
	}
	if c.Flash != nil {
		c.Flash.Store16(addr, v)
	}
}

// Slot is the cartridge slot. Its cartridge can be swapped while the program
// runs; an empty slot reads as open bus.
type Slot struct {
	Cart *Cartridge
}

func (s *Slot) Load16(addr agb.Addr) uint16 {
	if s.Cart == nil {
		return uint16(addr >> 1)
	}
	return s.Cart.Load16(addr)
}

func (s *Slot) Store16(addr agb.Addr, v uint16) {
	if s.Cart != nil {
		s.Cart.Store16(addr, v)
	}
}
