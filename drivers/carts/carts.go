// Package carts provides probing for flashcarts.
//
// They are not required to run this program. Some of them hide the RTC of
// the running game behind a mode switch, which the returned Cart performs.
//
// See the subdirectories for supported flashcarts.
package carts

import (
	"fmt"

	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/drivers/carts/ezflash"
)

type Cart interface {
	fmt.Stringer
	EnableRTC()
}

// Probe returns the first detected flashcart or nil.
func Probe(mem agb.Memory, irq agb.Interrupts) Cart {
	if ez := ezflash.Probe(mem, irq); ez != nil {
		return ez
	}
	return nil
}
