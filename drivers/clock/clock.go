// Package clock reads the current date and time from a cartridge clock.
//
// It is deliberately independent of the status register: a status byte can
// look fine on a cartridge without a clock, but the date registers of a
// missing chip never contain valid BCD.
package clock

import (
	"github.com/clktmr/agbrtc/agb/gpio"
	"github.com/clktmr/agbrtc/drivers/rtc"
)

type Clock struct {
	chip *rtc.Chip
}

func New(port *gpio.Port) *Clock {
	return &Clock{chip: rtc.New(port)}
}

// Now returns the current date and time. It returns false if the chip
// answered with nothing usable.
func (c *Clock) Now() (rtc.DateTime, bool) {
	return rtc.Decode(c.chip.ReadDateTimeRaw())
}

// Active reports whether the clock currently delivers data.
func (c *Clock) Active() bool {
	_, ok := c.Now()
	return ok
}
