// Package controller tracks button state across frames.
package controller

import (
	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/keypad"
)

type Controller struct {
	src           agb.Register16
	current, last keypad.ButtonMask
}

// New returns a controller reading the key register src.
func New(src agb.Register16) *Controller {
	return &Controller{src: src}
}

// Down returns the buttons held this frame.
func (c *Controller) Down() keypad.ButtonMask {
	return c.current
}

func (c *Controller) Changed() keypad.ButtonMask {
	return c.current ^ c.last
}

// Pressed returns the buttons that went down this frame.
func (c *Controller) Pressed() keypad.ButtonMask {
	return c.Changed() & c.current
}

// Released returns the buttons that went up this frame.
func (c *Controller) Released() keypad.ButtonMask {
	return c.Changed() & c.last
}
