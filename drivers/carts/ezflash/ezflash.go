// Package ezflash detects EZ-Flash Omega cartridges and switches them into
// the mode that passes the RTC through to the running game.
//
// Detection relies on ROM mirroring: the header checksum of the running image
// is compared against the image the paging controller maps for each page.
package ezflash

import (
	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/cart"
)

type EZFlash struct {
	mem agb.Memory
}

// Probe returns the cartridge behind mem if it is an EZ-Flash running a game
// from PSRAM or flash, otherwise nil.
func Probe(mem agb.Memory, irq agb.Interrupts) *EZFlash {
	if !Detect(mem, irq) {
		return nil
	}
	return &EZFlash{mem: mem}
}

func (c *EZFlash) String() string { return "EZ-Flash" }

// EnableRTC switches the controller into kernel mode and turns on the RTC
// passthrough.
func (c *EZFlash) EnableRTC() { EnableRTC(c.mem) }

func unlock(mem agb.Memory) {
	mem.Store16(regUnlock1, keyA)
	mem.Store16(regUnlock2, keyB)
	mem.Store16(regUnlock3, keyA)
	mem.Store16(regUnlock4, keyB)
}

// SelectPage maps page into the ROM window.
func SelectPage(mem agb.Memory, page uint16) {
	unlock(mem)
	mem.Store16(regPage, page)
	mem.Store16(regCommit, keyB)
}

func mirrors(mem agb.Memory, page uint16, checksum uint16) bool {
	SelectPage(mem, page)
	return mem.Load16(cart.ChecksumAddr) == checksum
}

// Detect reports whether the running image is mapped from PSRAM or flash by
// a paging controller. A match on the bootloader page means the cartridge
// booted normally and is not running a game through the controller.
// Interrupts are masked while foreign pages are mapped.
func Detect(mem agb.Memory, irq agb.Interrupts) bool {
	defer irq.Restore(irq.Disable())

	checksum := mem.Load16(cart.ChecksumAddr)
	if mirrors(mem, PageBootloader, checksum) {
		return false
	}
	if mirrors(mem, PagePSRAM, checksum) {
		return true
	}
	for page := range uint16(FlashPages) {
		if mirrors(mem, page, checksum) {
			return true
		}
	}
	return false
}

// EnableRTC switches the controller into kernel mode and turns on the RTC
// passthrough.
func EnableRTC(mem agb.Memory) {
	SelectPage(mem, PageKernel)
	unlock(mem)
	mem.Store16(regRTC, rtcEnable)
	mem.Store16(regCommit, keyB)
}
