package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/clktmr/agbrtc/agb/keypad"
)

// event happens at the start of a frame of a key script.
type event struct {
	frame   int
	buttons keypad.ButtonMask
	eject   bool
	insert  bool
}

// parseScript parses comma separated frame:action pairs. Actions are buttons
// joined by '+', held for that single frame, or one of eject and insert.
//
//	10:start,20:start,30:r,40:select
func parseScript(s string) ([]event, error) {
	var events []event
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		frame, action, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("script item %q: missing ':'", item)
		}
		n, err := strconv.Atoi(frame)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("script item %q: bad frame number", item)
		}
		ev := event{frame: n}
		switch action = strings.ToLower(action); action {
		case "eject":
			ev.eject = true
		case "insert":
			ev.insert = true
		default:
			b, ok := keypad.Parse(action)
			if !ok {
				return nil, fmt.Errorf("script item %q: unknown buttons", item)
			}
			ev.buttons = b
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].frame < events[j].frame })
	return events, nil
}

// run steps frames frames of w, applying the script events.
func run(w *world, events []event, frames int) {
	for frame := range frames {
		var down keypad.ButtonMask
		for len(events) > 0 && events[0].frame <= frame {
			ev := events[0]
			events = events[1:]
			switch {
			case ev.eject:
				w.eject()
			case ev.insert:
				w.insert()
			default:
				down |= ev.buttons
			}
		}
		w.step(down)
	}
}
