package ezflash

import "github.com/clktmr/agbrtc/agb"

// Control registers of the paging controller. They live in ROM space and only
// react while the unlock sequence is in progress.
const (
	regUnlock1 = agb.ROM + 0x1fe_0000
	regUnlock2 = agb.ROM + 0x000_0000
	regUnlock3 = agb.ROM + 0x002_0000
	regUnlock4 = agb.ROM + 0x004_0000
	regPage    = agb.ROM + 0x188_0000
	regRTC     = agb.ROM + 0x16a_0000
	regCommit  = agb.ROM + 0x1fc_0000
)

const (
	keyA uint16 = 0xd200
	keyB uint16 = 0x1500
)

// Pages the ROM window can be mapped to.
const (
	PageBootloader uint16 = 0x8000
	PageKernel     uint16 = 0x8002 // exposes the RTC passthrough
	PagePSRAM      uint16 = 0x0200
	FlashPages            = 0x200
)

const rtcEnable uint16 = 0x0001
