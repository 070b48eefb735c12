package scene_test

import (
	"strings"
	"testing"

	"github.com/clktmr/agbrtc/agb/cart"
	"github.com/clktmr/agbrtc/agb/gpio"
	"github.com/clktmr/agbrtc/agb/keypad"
	"github.com/clktmr/agbrtc/drivers/clock"
	"github.com/clktmr/agbrtc/drivers/rtc"
	"github.com/clktmr/agbrtc/internal/sim"
	"github.com/clktmr/agbrtc/scene"
)

type screen struct {
	rows    map[int]string
	icon    rtc.Icon
	flushes int
}

func (s *screen) Clear()                { clear(s.rows) }
func (s *screen) SetIcon(icon rtc.Icon) { s.icon = icon }
func (s *screen) Flush()                { s.flushes++ }

func (s *screen) Print(row int, text string) {
	if text == "" {
		delete(s.rows, row)
		return
	}
	s.rows[row] = text
}

func (s *screen) has(text string) bool {
	for _, r := range s.rows {
		if strings.Contains(r, text) {
			return true
		}
	}
	return false
}

type input struct {
	pressed keypad.ButtonMask
}

func (in *input) Pressed() keypad.ButtonMask { return in.pressed }
func (in *input) Down() keypad.ButtonMask    { return in.pressed }

type countingChip struct {
	*rtc.Chip
	reads, resets int
}

func (c *countingChip) ReadStatus() rtc.Status {
	c.reads++
	return c.Chip.ReadStatus()
}

func (c *countingChip) Reset() {
	c.resets++
	c.Chip.Reset()
}

type rig struct {
	t    *testing.T
	m    *scene.Machine
	scr  *screen
	in   *input
	chip *countingChip
	sim  *sim.Chip
	slot *sim.Slot
}

func newRig(t *testing.T, chip *sim.Chip, title string) *rig {
	slot := &sim.Slot{Cart: &sim.Cartridge{Title: title, Chip: chip}}
	port := gpio.Cartridge(slot)
	r := &rig{
		t:    t,
		scr:  &screen{rows: make(map[int]string)},
		in:   &input{},
		chip: &countingChip{Chip: rtc.New(port)},
		sim:  chip,
		slot: slot,
	}
	r.m = scene.New(scene.Context{
		Chip:   r.chip,
		Clock:  clock.New(port),
		Cart:   cart.Slot{Mem: slot},
		Input:  r.in,
		Screen: r.scr,
	})
	return r
}

func (r *rig) press(b keypad.ButtonMask) {
	r.in.pressed = b
	r.m.Update()
	r.in.pressed = 0
}

func (r *rig) frame() { r.m.Update() }

func (r *rig) expectState(s scene.State) {
	r.t.Helper()
	if got := r.m.State(); got != s {
		r.t.Fatalf("expected state %v, got %v", s, got)
	}
}

func (r *rig) expectText(texts ...string) {
	r.t.Helper()
	for _, text := range texts {
		if !r.scr.has(text) {
			r.t.Fatalf("%q not on screen: %q", text, r.scr.rows)
		}
	}
}

func newClock24h() *sim.Chip {
	c := sim.NewChip()
	c.Status = byte(rtc.Mode24)
	c.DateTime = [7]byte{0x24, 0x01, 0x15, 0x04, 0x09, 0x30, 0x45}
	return c
}

func TestFactoryStateInit(t *testing.T) {
	r := newRig(t, sim.NewChip(), "RTCGAME")
	r.expectText("START: query RTC module")

	r.press(keypad.ButtonStart)
	r.expectState(scene.Status)
	r.expectText("RTC chip is in factory state.", "START: proceed to initialize", "Game code: RTCGAME")
	if r.scr.icon != rtc.IconFull {
		t.Fatalf("expected full icon, got %v", r.scr.icon)
	}

	r.press(keypad.ButtonStart)
	r.expectState(scene.Reset)
	r.expectText("RTC Initialize", "SELECT: send init")

	r.press(keypad.ButtonSelect)
	r.expectState(scene.Status)
	if r.chip.resets != 1 || r.sim.Resets != 1 {
		t.Fatalf("expected one reset, got %d (chip saw %d)", r.chip.resets, r.sim.Resets)
	}
	r.expectText("RTC chip is in 12 hour mode.")
	if r.scr.flushes != 3 {
		t.Fatalf("expected 3 flushes, got %d", r.scr.flushes)
	}
}

func TestNoSignalReset(t *testing.T) {
	absent := sim.NewChip()
	absent.Present = false
	r := newRig(t, absent, "NORTC")

	r.press(keypad.ButtonStart)
	r.expectState(scene.Status)
	if d := r.m.Session().Diagnosis; d != rtc.NoSignal {
		t.Fatalf("expected %v, got %v", rtc.NoSignal, d)
	}
	r.expectText("Cart bus returned only noise.", "START: proceed to attempt reset")
	if r.scr.icon != rtc.IconMissing {
		t.Fatalf("expected missing icon, got %v", r.scr.icon)
	}

	r.press(keypad.ButtonStart)
	r.expectState(scene.Reset)
	r.expectText("attempt reset", "SELECT: send reset")

	r.press(keypad.ButtonSelect)
	r.expectState(scene.Status)
	if r.chip.resets != 1 {
		t.Fatalf("expected one reset, got %d", r.chip.resets)
	}
}

func TestStatusCachedWhileCartUnchanged(t *testing.T) {
	r := newRig(t, newClock24h(), "FIRST")
	r.press(keypad.ButtonStart)
	r.expectState(scene.Status)
	if r.chip.reads != 1 {
		t.Fatalf("expected 1 status read, got %d", r.chip.reads)
	}

	r.sim.Status = 0x00 // not visible until the cart changes
	r.frame()
	r.frame()
	if r.chip.reads != 1 {
		t.Fatalf("status re-read with unchanged cart: %d reads", r.chip.reads)
	}
	if s := r.m.Session().Status; s != rtc.Mode24 {
		t.Fatalf("expected cached %#x, got %#x", rtc.Mode24, s)
	}

	r.slot.Cart.Title = "SECOND"
	r.frame()
	if r.chip.reads != 2 {
		t.Fatalf("expected a re-read after swap, got %d reads", r.chip.reads)
	}
	r.expectText("Game code: SECOND", "RTC chip is in 12 hour mode.")
}

func TestNoData(t *testing.T) {
	c := sim.NewChip()
	c.Status = 0x00
	c.DateTime = [7]byte{}
	r := newRig(t, c, "BLANK")

	r.press(keypad.ButtonStart)
	r.expectText("RTC chip sent no data.", "Cart has no RTC?")
	if !r.m.Session().Fail {
		t.Fatal("no data must set the failure flag")
	}

	r.press(keypad.ButtonStart)
	r.expectState(scene.Reset)
	r.expectText("RTC Reset", "RTC not found: attempt reset?")
}

func TestWallClockToggle(t *testing.T) {
	r := newRig(t, newClock24h(), "CLOCK")
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.expectState(scene.WallClock)
	r.expectText("Monday(4) 2024/1/15 09:30:45", "currently: 24h", "START: edit (saves current time)")

	r.press(keypad.ButtonR)
	r.expectState(scene.WallClock)
	r.expectText("currently: 12h", "09:30:45 AM")
	if r.sim.Status != 0 {
		t.Fatalf("expected status 0, got %#x", r.sim.Status)
	}

	r.sim.RejectStatusWrites = true
	r.press(keypad.ButtonR)
	r.expectState(scene.WallClock)
	r.expectText("Module rejected status write...", "currently: 12h")
}

func TestEditSave(t *testing.T) {
	r := newRig(t, newClock24h(), "CLOCK")
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.expectState(scene.Edit)
	r.expectText("<24>/01/15 09:30:45")

	r.press(keypad.ButtonUp)
	r.press(keypad.ButtonRight)
	r.press(keypad.ButtonUp)
	r.expectText("25/<02>/15 09:30:45")

	r.press(keypad.ButtonStart)
	r.expectState(scene.WallClock)
	off := 4 - rtc.Weekday(2024, 1, 15)
	wd := (rtc.Weekday(2025, 2, 15) + off + 7) % 7
	want := [7]byte{0x25, 0x02, 0x15, rtc.ToBCD(wd), 0x09, 0x30, 0x45}
	if r.sim.DateTime != want {
		t.Fatalf("expected % x, got % x", want, r.sim.DateTime)
	}
}

func TestEditDiscard(t *testing.T) {
	r := newRig(t, newClock24h(), "CLOCK")
	before := r.sim.DateTime
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonUp)
	r.press(keypad.ButtonSelect)
	r.expectState(scene.WallClock)
	if r.sim.DateTime != before {
		t.Fatalf("discarded edit was written: % x", r.sim.DateTime)
	}

	r.press(keypad.ButtonStart)
	r.expectState(scene.Edit)
	r.expectText("<24>/01/15 09:30:45")
}

func TestHotSwapRoutes(t *testing.T) {
	r := newRig(t, newClock24h(), "CLOCK")
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.expectState(scene.WallClock)

	r.slot.Cart = nil
	r.frame()
	r.frame()
	r.expectState(scene.Welcome)

	// a clock that never worked leads back to the status screen
	absent := sim.NewChip()
	absent.Present = false
	r = newRig(t, absent, "NORTC")
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.expectState(scene.Reset)
	r.press(keypad.ButtonStart)
	r.expectState(scene.WallClock)
	r.frame()
	r.expectState(scene.Status)
	if r.m.Session().WorkedOnce {
		t.Fatal("clock never worked")
	}
}

func TestWallClockToggleHint(t *testing.T) {
	r := newRig(t, newClock24h(), "CLOCK")
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.expectState(scene.WallClock)
	r.expectText("R: toggle 12/24h (currently: 24h)")

	r.slot.Cart = nil
	r.frame()
	r.expectState(scene.WallClock)
	if row, ok := r.scr.rows[2]; ok {
		t.Fatalf("expected no toggle hint without a clock, got %q", row)
	}
	if row, ok := r.scr.rows[0]; ok {
		t.Fatalf("expected stale time cleared, got %q", row)
	}

	absent := sim.NewChip()
	absent.Present = false
	r = newRig(t, absent, "NORTC")
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.press(keypad.ButtonStart)
	r.expectState(scene.WallClock)
	if row, ok := r.scr.rows[2]; ok {
		t.Fatalf("expected no toggle hint without a clock, got %q", row)
	}
}

func TestAttach(t *testing.T) {
	chip := sim.NewChip()
	slot := &sim.Slot{Cart: &sim.Cartridge{Title: "POKEMON", Chip: chip}}
	ctx := scene.Attach(slot)
	scr := &screen{rows: make(map[int]string)}
	in := &input{}
	ctx.Screen, ctx.Input = scr, in
	m := scene.New(ctx)

	in.pressed = keypad.ButtonStart
	m.Update()
	if m.State() != scene.Status {
		t.Fatalf("expected %v, got %v", scene.Status, m.State())
	}
	if got := m.Session().Diagnosis; got != rtc.FactoryState {
		t.Fatalf("expected %v, got %v", rtc.FactoryState, got)
	}
	if got := m.Session().Identifier; got != "POKEMON" {
		t.Fatalf("expected %v, got %v", "POKEMON", got)
	}
}
