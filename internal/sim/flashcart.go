package sim

import "github.com/clktmr/agbrtc/agb"

// Paging controller registers of an EZ-Flash Omega.
const (
	ezUnlock1 = agb.ROM + 0x1fe_0000
	ezUnlock2 = agb.ROM + 0x000_0000
	ezUnlock3 = agb.ROM + 0x002_0000
	ezUnlock4 = agb.ROM + 0x004_0000
	ezPage    = agb.ROM + 0x188_0000
	ezRTC     = agb.ROM + 0x16a_0000
	ezCommit  = agb.ROM + 0x1fc_0000

	ezKernelPage = 0x8002
)

var ezUnlock = [...]struct {
	addr agb.Addr
	v    uint16
}{
	{ezUnlock1, 0xd200},
	{ezUnlock2, 0x1500},
	{ezUnlock3, 0xd200},
	{ezUnlock4, 0x1500},
}

// Blank is the checksum read from pages holding no image.
const Blank uint16 = 0xffff

// FlashCart models the paging controller of an EZ-Flash. Only the header
// checksum of each page is modelled.
type FlashCart struct {
	// Pages maps page numbers to the header checksum of the image stored
	// there.
	Pages map[uint16]uint16
	// Mapped is the page currently visible in the ROM window.
	Mapped uint16

	Kernel     bool
	RTCEnabled bool

	// PageSelects counts committed page changes.
	PageSelects int

	step      int
	page      uint16
	pageSet   bool
	rtcSet    bool
	rtcEnable bool
}

// Checksum returns the header checksum of the mapped image.
func (f *FlashCart) Checksum() uint16 {
	if v, ok := f.Pages[f.Mapped]; ok {
		return v
	}
	return Blank
}

// Store16 feeds a bus write to the controller. Writes outside an unlock
// sequence are ignored, as is any sequence broken by a stray write.
func (f *FlashCart) Store16(addr agb.Addr, v uint16) {
	if f.step < len(ezUnlock) {
		switch {
		case ezUnlock[f.step].addr == addr && ezUnlock[f.step].v == v:
			f.step++
		case ezUnlock[0].addr == addr && ezUnlock[0].v == v:
			f.step = 1
		default:
			f.step = 0
		}
		return
	}

	switch addr {
	case ezPage:
		f.page, f.pageSet = v, true
	case ezRTC:
		f.rtcEnable, f.rtcSet = v&1 != 0, true
	case ezCommit:
		if v == 0x1500 {
			f.commit()
		}
		f.step, f.pageSet, f.rtcSet = 0, false, false
	default:
		f.step, f.pageSet, f.rtcSet = 0, false, false
	}
}

func (f *FlashCart) commit() {
	if f.pageSet {
		f.Mapped = f.page
		f.Kernel = f.page == ezKernelPage
		f.PageSelects++
	}
	if f.rtcSet && f.Kernel {
		f.RTCEnabled = f.rtcEnable
	}
}
