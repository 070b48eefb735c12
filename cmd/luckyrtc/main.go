//go:build gameboyadvance

// Luckyrtc checks and sets the real time clock of the inserted cartridge.
//
// Build with
//
//	tinygo build -target gameboy-advance -o luckyrtc.elf ./cmd/luckyrtc
//	go tool gbago rom -title LUCKYRTC luckyrtc.elf
package main

import (
	"io"
	"log"

	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/agb/video"
	"github.com/clktmr/agbrtc/console"
	"github.com/clktmr/agbrtc/drivers/carts"
	"github.com/clktmr/agbrtc/drivers/controller"
	"github.com/clktmr/agbrtc/drivers/display"
	"github.com/clktmr/agbrtc/fonts/basicfont"
	"github.com/clktmr/agbrtc/framebuffer"
	"github.com/clktmr/agbrtc/machine"
	"github.com/clktmr/agbrtc/scene"
)

func main() {
	logger := log.New(io.Discard, "", 0)
	if machine.DefaultWriter.Enable() {
		logger = log.New(machine.DefaultWriter, "", 0)
	}

	var note string
	if fc := carts.Probe(agb.Bus, agb.IRQ); fc != nil {
		fc.EnableRTC()
		note = fc.String() + " RTC enabled"
		logger.Println(note)
	}

	video.Setup()
	screen := display.NewScreen(framebuffer.New(framebuffer.VRAM(), video.WaitVBlank), basicfont.NewFace())
	input := controller.Keypad()

	ctx := scene.Attach(agb.Bus)
	ctx.Input = input
	ctx.Screen = screen
	ctx.Log = logger
	ctx.Note = note

	console.Run(&console.Loop{Input: input, Game: scene.New(ctx), Screen: screen}, -1)
}
