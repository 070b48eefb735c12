package main

import (
	"log"

	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/keypad"
	"github.com/clktmr/agbrtc/console"
	"github.com/clktmr/agbrtc/drivers/carts"
	"github.com/clktmr/agbrtc/drivers/controller"
	"github.com/clktmr/agbrtc/drivers/display"
	"github.com/clktmr/agbrtc/fonts/basicfont"
	"github.com/clktmr/agbrtc/framebuffer"
	"github.com/clktmr/agbrtc/internal/sim"
	"github.com/clktmr/agbrtc/scene"
)

// Frames per second of the console, the simulated clock ticks once per
// second of frames.
const frameRate = 60

// world is the console with a simulated cartridge slot.
type world struct {
	slot    *sim.Slot
	cart    *sim.Cartridge // kept while ejected
	keys    agb.U16
	fb      *framebuffer.Framebuffer
	screen  *display.Screen
	machine *scene.Machine
	loop    *console.Loop
}

func newWorld(cart *sim.Cartridge, logger *log.Logger) *world {
	w := &world{slot: &sim.Slot{Cart: cart}, cart: cart}
	w.keys.Store(keypad.Encode(0))

	var note string
	if fc := carts.Probe(w.slot, &agb.SoftInterrupts{}); fc != nil {
		fc.EnableRTC()
		note = fc.String() + " RTC enabled"
		logger.Println(note)
	}

	front := framebuffer.NewRGB15(framebuffer.VRAM().Rect)
	w.fb = framebuffer.New(front, nil)
	w.screen = display.NewScreen(w.fb, basicfont.NewFace())
	input := controller.New(&w.keys)

	ctx := scene.Attach(w.slot)
	ctx.Input = input
	ctx.Screen = w.screen
	ctx.Log = logger
	ctx.Note = note
	w.machine = scene.New(ctx)
	w.loop = &console.Loop{Input: input, Game: w.machine, Screen: w.screen}
	return w
}

// step runs one frame with the buttons in down held.
func (w *world) step(down keypad.ButtonMask) {
	w.keys.Store(keypad.Encode(down))
	w.loop.Step()
	if w.loop.Frame%frameRate == 0 && w.cart != nil {
		w.cart.Chip.Tick()
	}
}

// eject pulls the cartridge, the slot reads as open bus afterwards.
func (w *world) eject() { w.slot.Cart = nil }

// insert puts the cartridge back.
func (w *world) insert() { w.slot.Cart = w.cart }

func (w *world) inserted() bool { return w.slot.Cart != nil }

// rows returns the non-empty rows of the screen from top to bottom.
func (w *world) rows() []string {
	var rows []string
	for row := scene.TopRow; row <= scene.BottomRow; row++ {
		if s := w.screen.Row(row); s != "" {
			rows = append(rows, s)
		}
	}
	return rows
}
