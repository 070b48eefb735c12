// Package rtc implements the command set of the Seiko S-3511 real time clock
// found on cartridges, talking to it through the cartridge GPIO port.
//
// All registers are packed BCD. Reads and writes cannot fail as far as the
// bus is concerned, so the Chip methods return plain values. Whether the chip
// is actually there is decided by looking at the data, see Classify.
package rtc

import (
	"errors"

	"github.com/clktmr/agbrtc/agb/gpio"
)

// Register addresses of the command byte.
const (
	CmdReset    byte = 0
	CmdStatus   byte = 1
	CmdDateTime byte = 2
	CmdTime     byte = 3
)

// ReadCommand returns the command byte reading register x.
func ReadCommand(x byte) byte { return x<<1 | 0x61 }

// WriteCommand returns the command byte writing register x.
func WriteCommand(x byte) byte { return x<<1 | 0x60 }

var ErrWriteRejected = errors.New("rtc: status write rejected")

type Chip struct {
	port *gpio.Port
}

func New(port *gpio.Port) *Chip {
	return &Chip{port: port}
}

// Port returns the port the chip is attached to.
func (c *Chip) Port() *gpio.Port { return c.port }

func (c *Chip) begin(cmd byte) {
	c.port.Enable()
	c.port.Wake()
	c.port.SendCommand(cmd)
}

// ReadStatus reads the status register. An absent chip reads as StatusNoise.
func (c *Chip) ReadStatus() Status {
	c.begin(ReadCommand(CmdStatus))
	c.port.Release()
	return Status(c.port.RecvByte())
}

// WriteStatus writes the status register. Only the mode and interrupt bits
// are writable, the power flag is cleared by Reset.
func (c *Chip) WriteStatus(s Status) {
	c.begin(WriteCommand(CmdStatus))
	c.port.SendByte(byte(s))
}

// WriteStatusVerified writes s and reads the status back. It returns the
// value read and ErrWriteRejected if it differs from s.
func (c *Chip) WriteStatusVerified(s Status) (Status, error) {
	c.WriteStatus(s)
	got := c.ReadStatus()
	if got != s {
		return got, ErrWriteRejected
	}
	return got, nil
}

// WriteDateTime sets date and time. The hour is encoded for the mode given by
// h24, which must match the chip's current mode.
func (c *Chip) WriteDateTime(dt DateTime, h24 bool) {
	raw := dt.Encode(h24)
	c.begin(WriteCommand(CmdDateTime))
	for _, b := range raw {
		c.port.SendByte(b)
	}
}

// Reset puts the chip into its factory state: 2000-01-01 00:00:00, 12 hour
// mode, power flag cleared.
func (c *Chip) Reset() {
	c.port.Wake()
	c.port.SendCommand(ReadCommand(CmdReset))
	c.port.End()
}

// ReadDateTimeRaw reads the seven date and time registers undecoded.
func (c *Chip) ReadDateTimeRaw() (raw [7]byte) {
	c.begin(ReadCommand(CmdDateTime))
	c.port.Release()
	for i := range raw {
		raw[i] = c.port.RecvByte()
	}
	return
}
