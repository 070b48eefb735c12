// Rtcsim runs the RTC diagnostics on a simulated cartridge.
//
// Usage:
//
//	rtcsim [-scenario cart.yaml] [-snapshot rtc.sav] [-headless -frames n -keys script]
//
// In the window the arrow keys, X (A), Z (B), A (L), S (R), Enter (START)
// and Backspace (SELECT) are the buttons. F1 pulls or inserts the
// cartridge, Escape quits.
//
// With -headless the key script is played and the final screen is printed.
// See parseScript for the script format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/clktmr/agbrtc/internal/sim"
)

var (
	scenarioPath = flag.String("scenario", "", "YAML `file` describing the cartridge, a factory fresh one if empty")
	snapshotPath = flag.String("snapshot", "", "restore the clock from `file` if it exists and save it on exit")
	headless     = flag.Bool("headless", false, "run without a window")
	frames       = flag.Int("frames", 600, "frames to run in headless mode")
	keys         = flag.String("keys", "", "key script for headless mode")
	pngPath      = flag.String("outpng", "", "write the final frame of headless mode to `file`")
	scale        = flag.Int("scale", 3, "window scale")
	verbose      = flag.Bool("v", false, "log screen transitions")
)

func loadCartridge() (*sim.Cartridge, error) {
	if *scenarioPath == "" {
		return (&sim.Scenario{Title: "RTCSIM"}).Build(), nil
	}
	s, err := sim.Load(*scenarioPath)
	if err != nil {
		return nil, err
	}
	return s.Build(), nil
}

func main() {
	log.Default().SetFlags(0)
	flag.Parse()

	cart, err := loadCartridge()
	if err != nil {
		log.Fatalln(err)
	}
	if cart != nil && *snapshotPath != "" {
		err := sim.LoadSnapshot(*snapshotPath, cart.Chip)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatalln(err)
		}
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "scene: ", 0)
	}
	w := newWorld(cart, logger)

	if *headless {
		events, err := parseScript(*keys)
		if err != nil {
			log.Fatalln(err)
		}
		run(w, events, *frames)
		for _, row := range w.rows() {
			fmt.Println(row)
		}
		if *pngPath != "" {
			if err := writePNG(w, *pngPath); err != nil {
				log.Fatalln(err)
			}
		}
	} else if err := newApp(w, "rtcsim", *scale).Run(); err != nil {
		log.Fatalln(err)
	}

	if cart != nil && *snapshotPath != "" {
		if err := sim.SaveSnapshot(*snapshotPath, cart.Chip); err != nil {
			log.Fatalln(err)
		}
	}
}

func writePNG(w *world, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, w.fb.Front()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
