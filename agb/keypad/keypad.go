// Package keypad decodes the KEYINPUT register.
package keypad

import (
	"strings"

	"github.com/clktmr/agbrtc/agb"
)

// KeyInput is the address of the key status register. Its bits are low while
// a button is held.
const KeyInput = agb.IO + 0x130

type ButtonMask uint16

const (
	ButtonA ButtonMask = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL

	AllButtons ButtonMask = 1<<iota - 1
)

var buttonNames = [...]string{
	"A",
	"B",
	"Select",
	"Start",
	"→",
	"←",
	"↑",
	"↓",
	"R",
	"L",
}

func (b ButtonMask) String() string {
	var sb strings.Builder
	for i, v := range buttonNames {
		if b&(1<<i) != 0 {
			if sb.Len() != 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString(v)
		}
	}
	return sb.String()
}

var buttonKeys = map[string]ButtonMask{
	"a":      ButtonA,
	"b":      ButtonB,
	"select": ButtonSelect,
	"start":  ButtonStart,
	"right":  ButtonRight,
	"left":   ButtonLeft,
	"up":     ButtonUp,
	"down":   ButtonDown,
	"r":      ButtonR,
	"l":      ButtonL,
}

// Parse parses a "+" separated list of button names like "select+start".
// Names are case insensitive. It returns false for unknown names.
func Parse(s string) (ButtonMask, bool) {
	var m ButtonMask
	for _, name := range strings.Split(s, "+") {
		b, ok := buttonKeys[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, false
		}
		m |= b
	}
	return m, true
}

// Read returns the buttons currently held according to r.
func Read(r agb.Register16) ButtonMask {
	return ^ButtonMask(r.Load()) & AllButtons
}

// Encode returns the register value for the held buttons b.
func Encode(b ButtonMask) uint16 {
	return uint16(^b & AllButtons)
}
