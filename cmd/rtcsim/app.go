package main

import (
	"github.com/clktmr/agbrtc/agb/keypad"
	"github.com/clktmr/agbrtc/framebuffer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keymap = []struct {
	key    ebiten.Key
	button keypad.ButtonMask
}{
	{ebiten.KeyArrowRight, keypad.ButtonRight},
	{ebiten.KeyArrowLeft, keypad.ButtonLeft},
	{ebiten.KeyArrowUp, keypad.ButtonUp},
	{ebiten.KeyArrowDown, keypad.ButtonDown},
	{ebiten.KeyX, keypad.ButtonA},
	{ebiten.KeyZ, keypad.ButtonB},
	{ebiten.KeyA, keypad.ButtonL},
	{ebiten.KeyS, keypad.ButtonR},
	{ebiten.KeyEnter, keypad.ButtonStart},
	{ebiten.KeyBackspace, keypad.ButtonSelect},
}

// app shows the world in a window. F1 pulls or inserts the cartridge.
type app struct {
	w   *world
	tex *ebiten.Image
	pix []byte
}

func newApp(w *world, title string, scale int) *app {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(framebuffer.Width*scale, framebuffer.Height*scale)
	return &app{w: w, pix: make([]byte, 4*framebuffer.Width*framebuffer.Height)}
}

func (a *app) Run() error { return ebiten.RunGame(a) }

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if a.w.inserted() {
			a.w.eject()
		} else {
			a.w.insert()
		}
	}

	var down keypad.ButtonMask
	for _, m := range keymap {
		if ebiten.IsKeyPressed(m.key) {
			down |= m.button
		}
	}
	a.w.step(down)
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(framebuffer.Width, framebuffer.Height)
	}
	front := a.w.fb.Front()
	for i, p := range front.Pix {
		r, g, b, _ := framebuffer.Color15(p).RGBA()
		a.pix[4*i+0] = byte(r >> 8)
		a.pix[4*i+1] = byte(g >> 8)
		a.pix[4*i+2] = byte(b >> 8)
		a.pix[4*i+3] = 0xff
	}
	a.tex.WritePixels(a.pix)
	screen.DrawImage(a.tex, nil)
}

func (a *app) Layout(outW, outH int) (int, int) {
	return framebuffer.Width, framebuffer.Height
}
