package scene

import (
	"errors"
	"io"
	"log"

	"github.com/clktmr/agbrtc/agb/keypad"
	"github.com/clktmr/agbrtc/drivers/rtc"
	"github.com/clktmr/agbrtc/timefmt"
)

// Context holds the collaborators of a Machine.
type Context struct {
	Chip   Chip
	Clock  Clock
	Cart   Cartridge
	Input  Input
	Screen Screen

	// Log receives transitions and actions. May be nil.
	Log *log.Logger
	// Note is an extra line on the welcome screen.
	Note string
}

// Session is the state carried between screens.
type Session struct {
	Status     rtc.Status
	Diagnosis  rtc.Diagnosis
	Fail       bool
	Identifier string
	WorkedOnce bool

	polled bool
}

type Machine struct {
	ctx   Context
	state State
	sess  Session

	// wall clock
	clockActive bool
	clockLine   string
	toggled     rtc.Status
	rejected    bool

	// edit
	edit      rtc.DateTime
	dowOffset int
	cursor    timefmt.Component
	editLine  string
}

// New returns a machine showing the welcome screen.
func New(ctx Context) *Machine {
	if ctx.Log == nil {
		ctx.Log = log.New(io.Discard, "", 0)
	}
	m := &Machine{ctx: ctx, state: Welcome}
	m.enter(Welcome)
	return m
}

func (m *Machine) State() State          { return m.state }
func (m *Machine) Session() Session      { return m.sess }
func (m *Machine) Editing() rtc.DateTime { return m.edit }

func (m *Machine) conditions() Conditions {
	return Conditions{
		PowerFlag:   m.sess.Status.PowerLost(),
		Fail:        m.sess.Fail,
		ClockActive: m.clockActive,
		WorkedOnce:  m.sess.WorkedOnce,
	}
}

// Update advances the machine by one frame: first transitions, then the
// current screen's per frame work.
func (m *Machine) Update() {
	t := Next(m.state, m.ctx.Input.Pressed(), m.conditions())
	if t.To != m.state || t.Action != None {
		m.perform(t.Action)
		m.exit(m.state)
		m.ctx.Log.Printf("scene: %v -> %v", m.state, t.To)
		m.state = t.To
		m.enter(t.To)
	}
	m.update()
}

func (m *Machine) perform(a Action) {
	switch a {
	case SaveDateTime:
		dt := m.edit.WithWeekdayOffset(m.dowOffset)
		m.ctx.Log.Printf("scene: save %v", dt)
		m.ctx.Chip.WriteDateTime(dt, m.sess.Status.Is24h())
	case ResetChip:
		m.ctx.Log.Print("scene: reset chip")
		m.ctx.Chip.Reset()
		m.sess.polled = false
	}
}

func (m *Machine) enter(s State) {
	m.ctx.Screen.Clear()
	switch s {
	case Welcome:
		m.enterWelcome()
	case Status:
		m.enterStatus()
	case WallClock:
		m.enterWallClock()
	case Edit:
		m.enterEdit()
	case Reset:
		m.enterReset()
	}
}

func (m *Machine) update() {
	switch m.state {
	case Status:
		if m.pollStatus() {
			m.ctx.Screen.Clear()
			m.renderStatus()
		}
	case WallClock:
		m.updateWallClock()
	case Edit:
		m.updateEdit()
		m.pollStatus()
	default:
		m.pollStatus()
	}
}

func (m *Machine) exit(s State) {
	if s == WallClock {
		m.sess.Fail = false
	}
	m.ctx.Screen.Flush()
}

// pollStatus reads the status register again if the cartridge changed since
// the last read and reports whether it did. The power flag counts as failure
// until a screen decides otherwise.
func (m *Machine) pollStatus() bool {
	id := m.ctx.Cart.Identifier()
	if m.sess.polled && id == m.sess.Identifier {
		return false
	}
	m.sess.polled = true
	m.sess.Identifier = id
	m.classify(m.ctx.Chip.ReadStatus())
	m.sess.Fail = m.sess.Status.PowerLost()
	m.ctx.Log.Printf("scene: cart %q status %#02x: %v", id, uint8(m.sess.Status), m.sess.Diagnosis)
	return true
}

func (m *Machine) classify(s rtc.Status) {
	m.sess.Status = s
	probe := false
	if s.NeedsProbe() {
		_, probe = m.ctx.Clock.Now()
	}
	m.sess.Diagnosis = rtc.Classify(s, probe)
	m.ctx.Screen.SetIcon(m.sess.Diagnosis.Icon())
}

func (m *Machine) enterWelcome() {
	m.sess.WorkedOnce = false
	m.ctx.Screen.Print(-4, "RTC Diagnostics")
	m.ctx.Screen.Print(-2, "You can hot-swap on this screen.")
	m.ctx.Screen.Print(0, "Insert your desired hardware!")
	m.ctx.Screen.Print(2, m.ctx.Note)
	m.ctx.Screen.Print(4, "START: query RTC module")
}

func (m *Machine) enterStatus() {
	m.pollStatus()
	m.renderStatus()
}

func (m *Machine) renderStatus() {
	scr := m.ctx.Screen
	scr.Print(-4, "Negotiation with RTC module")

	code := m.sess.Identifier
	gameCode, additional, additional2, hint := "Game code: "+code, "", "", ""
	if code == "" || code == "P" { // "P" is open bus
		gameCode = ""
		additional = "Cart not plugged?"
	}

	var text string
	m.sess.Fail = false
	switch m.sess.Diagnosis {
	case rtc.NoSignal:
		text = "Cart bus returned only noise."
		additional2 = "Inaccurate/misconfigured emu?"
		hint = "START: proceed to attempt reset"
	case rtc.FactoryState:
		text = "RTC chip is in factory state."
		hint = "START: proceed to initialize"
	case rtc.BatteryDead:
		text = "Battery reports dead; chip works."
		hint = "START: proceed to attempt init"
	case rtc.Mode24h:
		text = "RTC chip is in 24 hour mode."
		hint = "START: proceed to read date & time"
	case rtc.NoData:
		text = "RTC chip sent no data."
		additional = "Cart has no RTC?"
		additional2 = "Inaccurate/misconfigured emu?"
		hint = "START: proceed to attempt init"
		m.sess.Fail = true
	case rtc.Mode12h:
		text = "RTC chip is in 12 hour mode."
		hint = "START: proceed to read date & time"
	}
	if m.sess.Status.PowerLost() {
		scr.Print(-2, "Power flag high: battery dead?")
	}
	scr.Print(-1, gameCode)
	scr.Print(0, text)
	scr.Print(1, additional)
	scr.Print(2, additional2)
	scr.Print(3, "SELECT: back to hot-swap screen")
	scr.Print(4, hint)
}

func (m *Machine) enterWallClock() {
	m.toggled = m.sess.Status
	m.rejected = false
	m.clockLine = ""
	_, m.clockActive = m.ctx.Clock.Now()
	if !m.clockActive {
		m.sess.Fail = true
		return
	}
	m.renderWallClock()
}

func (m *Machine) renderWallClock() {
	scr := m.ctx.Screen
	scr.Print(-4, "Read Date and Time")
	if m.clockActive {
		scr.Print(-2, "You can hot-swap on this screen!")
		scr.Print(3, "SELECT: reset (will confirm first)")
		scr.Print(4, "START: edit (saves current time)")
	} else {
		scr.Print(-2, "")
		m.clockLine = ""
		scr.Print(0, "")
		scr.Print(2, "")
		scr.Print(3, "")
		scr.Print(4, "SELECT: proceed to attempt reset")
	}
}

func (m *Machine) updateWallClock() {
	scr := m.ctx.Screen
	m.sess.Fail = false

	if m.ctx.Input.Pressed()&keypad.ButtonR != 0 {
		m.toggled = 0
		if !m.sess.Status.Is24h() {
			m.toggled = rtc.Mode24
		}
		got, err := m.ctx.Chip.WriteStatusVerified(m.toggled)
		m.classify(got)
		rejected := errors.Is(err, rtc.ErrWriteRejected)
		if rejected != m.rejected {
			m.rejected = rejected
			if rejected {
				scr.Print(1, "Module rejected status write...")
			} else {
				scr.Print(1, "")
			}
		}
		m.ctx.Log.Printf("scene: status write %#02x, read %#02x", uint8(m.toggled), uint8(got))
	}

	dt, ok := m.ctx.Clock.Now()
	if ok != m.clockActive {
		m.clockActive = ok
		m.renderWallClock()
	}
	if !ok {
		m.sess.Fail = true
		return
	}
	m.sess.WorkedOnce = true

	mode := "12h"
	if m.sess.Status.Is24h() {
		mode = "24h"
	}
	scr.Print(2, "R: toggle 12/24h (currently: "+mode+")")
	if line := dt.Format(m.sess.Status.Is24h()); line != m.clockLine {
		m.clockLine = line
		scr.Print(0, line)
	}
	m.pollStatus()
}

func (m *Machine) enterEdit() {
	dt, ok := m.ctx.Clock.Now()
	if !ok {
		dt = rtc.DateTime{}
	}
	m.edit = dt
	m.dowOffset = 0
	if ok {
		m.dowOffset = dt.WeekdayOffset()
	}
	m.cursor = timefmt.Year
	m.editLine = ""
	m.classify(m.ctx.Chip.ReadStatus())

	m.ctx.Screen.Print(-4, "RTC Edit")
	m.ctx.Screen.Print(3, "SELECT: return")
	m.ctx.Screen.Print(4, "START: save")
	m.renderEdit()
}

func (m *Machine) renderEdit() {
	line := timefmt.Render(m.edit, m.cursor, m.sess.Status.Is24h())
	if line != m.editLine {
		m.editLine = line
		m.ctx.Screen.Print(0, line)
	}
}

func (m *Machine) updateEdit() {
	pressed := m.ctx.Input.Pressed()
	switch {
	case pressed&keypad.ButtonLeft != 0:
		m.cursor = m.cursor.Prev()
	case pressed&keypad.ButtonRight != 0:
		m.cursor = m.cursor.Next()
	}
	switch {
	case pressed&keypad.ButtonUp != 0:
		m.edit = timefmt.Increment(m.edit, m.cursor)
	case pressed&keypad.ButtonDown != 0:
		m.edit = timefmt.Decrement(m.edit, m.cursor)
	}
	m.renderEdit()
}

func (m *Machine) enterReset() {
	scr := m.ctx.Screen
	factory := m.sess.Status == rtc.StatusFactory

	var description string
	switch {
	case m.sess.Diagnosis == rtc.NoSignal || m.sess.Fail && !m.sess.Status.PowerLost():
		description = "RTC not found: attempt reset?"
	case m.sess.Status.PowerLost():
		description = "RTC power flag raised: init?"
	default:
		description = "RTC ready: confirm reset?"
	}

	if factory {
		scr.Print(-4, "RTC Initialize")
		scr.Print(3, "SELECT: send init")
	} else {
		scr.Print(-4, "RTC Reset")
		scr.Print(3, "SELECT: send reset")
	}
	scr.Print(0, description)
	scr.Print(4, "START: force read RTC")
}
