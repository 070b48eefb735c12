package controller

import (
	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/keypad"
)

// Poll samples the key register once. Call it once per frame.
func (c *Controller) Poll() {
	c.last = c.current
	c.current = keypad.Read(c.src)
}

// Keypad returns a controller on the console's own buttons.
func Keypad() *Controller {
	return New(agb.Reg(keypad.KeyInput))
}
