package scene

import (
	"testing"

	"github.com/clktmr/agbrtc/agb/keypad"
)

func TestNext(t *testing.T) {
	const (
		start = keypad.ButtonStart
		sel   = keypad.ButtonSelect
	)
	tests := map[string]struct {
		from    State
		pressed keypad.ButtonMask
		cond    Conditions
		want    Transition
	}{
		"welcome idle":         {Welcome, 0, Conditions{}, Transition{To: Welcome}},
		"welcome start":        {Welcome, start, Conditions{}, Transition{To: Status}},
		"status select":        {Status, sel, Conditions{PowerFlag: true}, Transition{To: Welcome}},
		"status start power":   {Status, start, Conditions{PowerFlag: true}, Transition{To: Reset}},
		"status start fail":    {Status, start, Conditions{Fail: true}, Transition{To: Reset}},
		"status start ok":      {Status, start, Conditions{}, Transition{To: WallClock}},
		"clock fail":           {WallClock, 0, Conditions{Fail: true}, Transition{To: Status}},
		"clock fail hot-swap":  {WallClock, start, Conditions{Fail: true, WorkedOnce: true}, Transition{To: Welcome}},
		"clock select":         {WallClock, sel, Conditions{ClockActive: true}, Transition{To: Reset}},
		"clock start":          {WallClock, start, Conditions{ClockActive: true}, Transition{To: Edit}},
		"clock start inactive": {WallClock, start, Conditions{}, Transition{To: WallClock}},
		"edit start":           {Edit, start, Conditions{}, Transition{To: WallClock, Action: SaveDateTime}},
		"edit select":          {Edit, sel, Conditions{}, Transition{To: WallClock}},
		"edit arrows":          {Edit, keypad.ButtonUp, Conditions{}, Transition{To: Edit}},
		"reset select":         {Reset, sel, Conditions{}, Transition{To: Status, Action: ResetChip}},
		"reset start":          {Reset, start, Conditions{}, Transition{To: WallClock}},
	}
	for name, tc := range tests {
		if got := Next(tc.from, tc.pressed, tc.cond); got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", name, tc.want, got)
		}
	}
}

func TestStateString(t *testing.T) {
	if s := WallClock.String(); s != "wall clock" {
		t.Fatalf("expected %q, got %q", "wall clock", s)
	}
	if s := State(9).String(); s != "State(9)" {
		t.Fatalf("expected %q, got %q", "State(9)", s)
	}
}
