// Package gpio drives the three pin general purpose port found on cartridges
// with a real time clock.
//
// The port is bit-banged: every clock edge is a separate register write. There
// is no acknowledge signal, so nothing here can fail. A missing or misbehaving
// device shows up as garbage data, usually all ones.
package gpio

import "github.com/clktmr/agbrtc/agb"

// Port registers in cartridge space.
const (
	DataAddr      = agb.ROM + 0xc4
	DirectionAddr = agb.ROM + 0xc6
	ControlAddr   = agb.ROM + 0xc8
)

// Pins of the data and direction registers.
const (
	SCK uint16 = 1 << iota // serial clock, active low
	SIO                    // serial data
	CS                     // chip select
)

// Direction register values.
const (
	DirWrite = SCK | SIO | CS // all pins driven by the console
	DirRead  = SCK | CS       // SIO driven by the device
)

// Number of identical writes before each clock edge. They only add setup time
// for slow devices and emulated buses.
const (
	CommandKnocks = 2
	ReadKnocks    = 2
	WriteKnocks   = 5
)

type Port struct {
	data agb.Register16
	dir  agb.Register16
	ctl  agb.Register16
}

// NewPort returns a port over the given registers.
func NewPort(data, dir, ctl agb.Register16) *Port {
	return &Port{data: data, dir: dir, ctl: ctl}
}

// Cartridge returns the port of the cartridge behind mem.
func Cartridge(mem agb.Memory) *Port {
	return NewPort(
		agb.BusRegister{Mem: mem, Addr: DataAddr},
		agb.BusRegister{Mem: mem, Addr: DirectionAddr},
		agb.BusRegister{Mem: mem, Addr: ControlAddr},
	)
}

// Enable makes the port registers readable. Until then reads from the port
// addresses return ROM contents.
func (p *Port) Enable() { p.ctl.Store(1) }

// Disable hands the port addresses back to the ROM.
func (p *Port) Disable() { p.ctl.Store(0) }

// Wake starts a transaction by raising chip select while the clock is idle
// high, then takes control of all pins.
func (p *Port) Wake() {
	p.data.Store(SCK)
	p.data.Store(SCK | CS)
	p.dir.Store(DirWrite)
}

// Release turns SIO into an input so the device can answer.
func (p *Port) Release() { p.dir.Store(DirRead) }

// End drops chip select.
func (p *Port) End() { p.data.Store(SCK) }

// SendCommand shifts out cmd most significant bit first.
func (p *Port) SendCommand(cmd byte) {
	c := uint16(cmd) << 1
	for bit := 7; bit >= 0; bit-- {
		v := (c>>bit)&SIO | CS
		p.knock(v, CommandKnocks)
		p.data.Store(v | SCK)
	}
}

// RecvByte clocks in one byte, least significant bit first. The port must be
// released with Release beforehand.
func (p *Port) RecvByte() byte {
	var acc uint16
	for bit := 0; bit < 8; bit++ {
		p.knock(CS, ReadKnocks)
		p.data.Store(CS | SCK)
		acc |= (p.data.Load() & SIO) << bit
	}
	return byte(acc >> 1)
}

// SendByte shifts out b least significant bit first.
func (p *Port) SendByte(b byte) {
	c := uint16(b) << 1
	for bit := 0; bit < 8; bit++ {
		v := (c>>bit)&SIO | CS
		p.knock(v, WriteKnocks)
		p.data.Store(v | SCK)
	}
}

func (p *Port) knock(v uint16, n int) {
	for range n {
		p.data.Store(v)
	}
}
