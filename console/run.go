// Package console runs the per frame loop of a program.
package console

// Gamelooper is advanced once per frame.
type Gamelooper interface {
	Update()
}

// Poller samples input, once per frame.
type Poller interface {
	Poll()
}

// Presenter shows the frame and waits for the next one.
type Presenter interface {
	Flush()
}

// Loop ties input, logic and presentation of one program together.
type Loop struct {
	Input  Poller
	Game   Gamelooper
	Screen Presenter

	Frame int // frames stepped so far
}

// Step runs a single frame.
func (l *Loop) Step() {
	l.Input.Poll()
	l.Game.Update()
	l.Screen.Flush()
	l.Frame++
}

// Run steps frames frames, forever if frames is negative.
func Run(l *Loop, frames int) {
	for frames != 0 {
		l.Step()
		if frames > 0 {
			frames--
		}
	}
}
