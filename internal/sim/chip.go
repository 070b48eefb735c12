package sim

import (
	"time"

	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/gpio"
	"github.com/clktmr/agbrtc/drivers/rtc"
)

// Status bits the chip lets software change.
const writableStatus = 0x6a

// Factory contents of the date and time registers: 2000-01-01 00:00:00.
var factoryDateTime = [7]byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}

type xferState uint8

const (
	idle xferState = iota
	command
	reading // chip to console
	writing // console to chip
)

// Chip models an S-3511 real time clock on the cartridge GPIO port.
type Chip struct {
	// Present is false for cartridges without a clock. The data line then
	// floats high.
	Present bool

	// RejectStatusWrites makes the chip ignore status writes, like a broken
	// or half emulated clock does.
	RejectStatusWrites bool

	Status   byte
	DateTime [7]byte

	// Commands logs every command byte received.
	Commands []byte
	// Resets counts executed reset commands.
	Resets int

	latch, dir, ctl uint16
	sck, cs         bool
	out             uint16

	state xferState
	shift byte
	nbits int
	reg   byte
	buf   [7]byte
	idx   int
	n     int
}

// NewChip returns a present chip in factory state after a battery change.
func NewChip() *Chip {
	return &Chip{
		Present:  true,
		Status:   byte(rtc.StatusFactory),
		DateTime: factoryDateTime,
	}
}

type chipReg struct {
	c    *Chip
	addr agb.Addr
}

func (r chipReg) Load() uint16   { return r.c.Load16(r.addr) }
func (r chipReg) Store(v uint16) { r.c.Store16(r.addr, v) }

// Port returns a GPIO port wired to the chip.
func (c *Chip) Port() *gpio.Port {
	return gpio.NewPort(
		chipReg{c, gpio.DataAddr},
		chipReg{c, gpio.DirectionAddr},
		chipReg{c, gpio.ControlAddr},
	)
}

// Load16 reads one of the port registers. The registers read as zero while
// the port is disabled.
func (c *Chip) Load16(addr agb.Addr) uint16 {
	if c.ctl&1 == 0 {
		return 0
	}
	switch addr {
	case gpio.DataAddr:
		v := c.latch & c.dir
		if c.dir&gpio.SIO == 0 {
			v |= c.sio()
		}
		return v
	case gpio.DirectionAddr:
		return c.dir
	case gpio.ControlAddr:
		return c.ctl
	}
	return 0
}

// Store16 writes one of the port registers.
func (c *Chip) Store16(addr agb.Addr, v uint16) {
	switch addr {
	case gpio.DataAddr:
		c.latch = v & 7
	case gpio.DirectionAddr:
		c.dir = v & 7
	case gpio.ControlAddr:
		c.ctl = v & 1
		return
	default:
		return
	}
	c.update()
}

func (c *Chip) sio() uint16 {
	if !c.Present || c.state != reading {
		return gpio.SIO
	}
	return c.out
}

// pin returns the level the chip sees on a console driven pin. Undriven pins
// are pulled low.
func (c *Chip) pin(p uint16) bool {
	return c.latch&c.dir&p != 0
}

func (c *Chip) update() {
	sck, cs := c.pin(gpio.SCK), c.pin(gpio.CS)
	if c.Present {
		switch {
		case cs && !c.cs:
			c.state, c.shift, c.nbits = command, 0, 0
		case !cs && c.cs:
			c.state = idle
		case cs && sck && !c.sck:
			c.clock(c.pin(gpio.SIO))
		}
	}
	c.sck, c.cs = sck, cs
}

func (c *Chip) clock(sio bool) {
	var bit byte
	if sio {
		bit = 1
	}
	switch c.state {
	case command:
		c.shift = c.shift<<1 | bit
		if c.nbits++; c.nbits == 8 {
			c.command(c.shift)
		}
	case reading:
		c.out = uint16(c.buf[c.idx]>>c.nbits&1) << 1
		if c.nbits++; c.nbits == 8 {
			c.nbits, c.idx = 0, (c.idx+1)%c.n
		}
	case writing:
		c.shift |= bit << c.nbits
		if c.nbits++; c.nbits == 8 {
			c.buf[c.idx] = c.shift
			c.shift, c.nbits = 0, 0
			if c.idx++; c.idx == c.n {
				c.commit()
				c.state = idle
			}
		}
	}
}

func (c *Chip) command(b byte) {
	c.Commands = append(c.Commands, b)
	c.state, c.shift, c.nbits, c.idx = idle, 0, 0, 0
	if b>>4 != 0x6 {
		return
	}
	c.reg = b >> 1 & 7
	switch c.reg {
	case rtc.CmdReset:
		c.reset()
		return
	case rtc.CmdStatus:
		c.n = 1
		c.buf[0] = c.Status
	case rtc.CmdDateTime:
		c.n = 7
		copy(c.buf[:], c.DateTime[:])
	case rtc.CmdTime:
		c.n = 3
		copy(c.buf[:], c.DateTime[4:])
	default:
		return
	}
	if b&1 != 0 {
		c.state = reading
	} else {
		c.state = writing
	}
}

func (c *Chip) commit() {
	switch c.reg {
	case rtc.CmdStatus:
		if !c.RejectStatusWrites {
			c.Status = c.Status&^writableStatus | c.buf[0]&writableStatus
		}
	case rtc.CmdDateTime:
		copy(c.DateTime[:], c.buf[:7])
	case rtc.CmdTime:
		copy(c.DateTime[4:], c.buf[:3])
	}
}

func (c *Chip) reset() {
	c.Status = 0
	c.DateTime = factoryDateTime
	c.Resets++
}

// Tick advances the clock by one second. Clocks holding garbage don't run.
func (c *Chip) Tick() {
	if !c.Present {
		return
	}
	dt, ok := rtc.Decode(c.DateTime)
	if !ok || dt.Month < 1 || dt.Month > 12 || dt.Day < 1 {
		return
	}
	t := time.Date(2000+dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
	next := t.Add(time.Second)
	if next.Day() != t.Day() {
		dt.Weekday = (dt.Weekday + 1) % 7
	}
	dt.Year = (next.Year() - 2000) % 100
	dt.Month, dt.Day = int(next.Month()), next.Day()
	dt.Hour, dt.Minute, dt.Second = next.Hour(), next.Minute(), next.Second()
	dt.Afternoon = dt.Hour >= 12
	c.DateTime = dt.Encode(rtc.Status(c.Status).Is24h())
}
