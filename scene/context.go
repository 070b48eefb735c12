package scene

import (
	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/cart"
	"github.com/clktmr/agbrtc/agb/gpio"
	"github.com/clktmr/agbrtc/drivers/clock"
	"github.com/clktmr/agbrtc/drivers/rtc"
)

// Attach returns a context with the chip, clock and identifier of the
// cartridge behind mem. Input and Screen are left to the caller.
func Attach(mem agb.Memory) Context {
	port := gpio.Cartridge(mem)
	return Context{
		Chip:  rtc.New(port),
		Clock: clock.New(port),
		Cart:  cart.Slot{Mem: mem},
	}
}
