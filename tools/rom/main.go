// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"debug/elf"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clktmr/agbrtc/agb/cart"
)

const usageString = `ELF to GBA ROM converter.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("rom", flag.ExitOnError)

	infile   string
	title    = flags.String("title", "", "header title, defaults to the file name")
	gameCode = flags.String("code", "ALRE", "four character game code")
	maker    = flags.String("maker", "00", "two character maker code")
	version  = flags.Uint("version", 0, "ROM version")
	run      = flags.String("run", "", "Run the ROM with command")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "rom")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	outfile, _ := strings.CutSuffix(infile, ".elf")
	outfile += ".gba"
	if *title == "" {
		*title = strings.TrimSuffix(filepath.Base(outfile), ".gba")
	}

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()

	segs, err := Segments(elffile)
	if err != nil {
		log.Fatalln("objcopy:", err)
	}
	rom, err := Image(segs, cart.Header{
		Title:     *title,
		GameCode:  *gameCode,
		MakerCode: *maker,
		Version:   byte(*version),
	})
	if err != nil {
		log.Fatalln("write rom header:", err)
	}
	if err := os.WriteFile(outfile, rom, 0o644); err != nil {
		log.Fatalln(err)
	}

	if *run != "" {
		code, err := runROM(*run, outfile, os.Stdout)
		if err != nil {
			log.Fatalln("run:", err)
		}
		os.Exit(code)
	}
}
