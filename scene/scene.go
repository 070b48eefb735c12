// Package scene implements the diagnostic screens as a state machine.
//
// The screens form a closed set of states. Which screen follows is decided by
// Next, a pure function of the current state, the buttons pressed this frame
// and a few facts about the clock. Everything with side effects lives in
// Machine.
package scene

import (
	"fmt"

	"github.com/clktmr/agbrtc/agb/keypad"
	"github.com/clktmr/agbrtc/drivers/rtc"
)

type State uint8

const (
	Welcome State = iota
	Status
	WallClock
	Edit
	Reset
)

var stateNames = [...]string{
	Welcome:   "welcome",
	Status:    "status",
	WallClock: "wall clock",
	Edit:      "edit",
	Reset:     "reset",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Action is a side effect performed when leaving a state.
type Action uint8

const (
	None Action = iota
	SaveDateTime
	ResetChip
)

func (a Action) String() string {
	switch a {
	case SaveDateTime:
		return "save date and time"
	case ResetChip:
		return "reset chip"
	}
	return "none"
}

// Conditions are the facts transitions depend on besides buttons.
type Conditions struct {
	PowerFlag   bool // status reports lost power
	Fail        bool // last clock or status access failed
	ClockActive bool // the clock delivered a date this visit
	WorkedOnce  bool // the clock worked since the welcome screen
}

type Transition struct {
	To     State
	Action Action
}

// Next returns the transition taken from s. It returns s itself and None if
// the machine stays.
func Next(s State, pressed keypad.ButtonMask, c Conditions) Transition {
	start := pressed&keypad.ButtonStart != 0
	sel := pressed&keypad.ButtonSelect != 0

	switch s {
	case Welcome:
		if start {
			return Transition{To: Status}
		}
	case Status:
		switch {
		case sel:
			return Transition{To: Welcome}
		case start && (c.PowerFlag || c.Fail):
			return Transition{To: Reset}
		case start:
			return Transition{To: WallClock}
		}
	case WallClock:
		switch {
		case c.Fail && c.WorkedOnce:
			return Transition{To: Welcome}
		case c.Fail:
			return Transition{To: Status}
		case sel:
			return Transition{To: Reset}
		case start && c.ClockActive:
			return Transition{To: Edit}
		}
	case Edit:
		switch {
		case start:
			return Transition{To: WallClock, Action: SaveDateTime}
		case sel:
			return Transition{To: WallClock}
		}
	case Reset:
		switch {
		case sel:
			return Transition{To: Status, Action: ResetChip}
		case start:
			return Transition{To: WallClock}
		}
	}
	return Transition{To: s}
}

// Rows of the screen, relative to its vertical center.
const (
	TopRow    = -4
	BottomRow = 4
)

// Input reports button edges.
type Input interface {
	Pressed() keypad.ButtonMask
	Down() keypad.ButtonMask
}

// Clock is the live clock probe.
type Clock interface {
	Now() (rtc.DateTime, bool)
}

// Chip is the RTC command set used by the screens.
type Chip interface {
	ReadStatus() rtc.Status
	WriteStatusVerified(rtc.Status) (rtc.Status, error)
	WriteDateTime(dt rtc.DateTime, h24 bool)
	Reset()
}

// Cartridge identifies the inserted cartridge.
type Cartridge interface {
	Identifier() string
}

// Screen shows centered text rows and a status icon.
type Screen interface {
	Clear()
	// Print replaces the text of row. Rows outside TopRow to BottomRow are
	// ignored.
	Print(row int, s string)
	SetIcon(rtc.Icon)
	// Flush presents the frame and waits for the next vertical blank.
	Flush()
}
