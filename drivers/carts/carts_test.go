package carts_test

import (
	"testing"

	"github.com/clktmr/agbrtc/agb"
	"github.com/clktmr/agbrtc/drivers/carts"
	"github.com/clktmr/agbrtc/drivers/carts/ezflash"
	"github.com/clktmr/agbrtc/internal/sim"
)

func TestProbe(t *testing.T) {
	plain := &sim.Cartridge{Checksum: 0x1234}
	if c := carts.Probe(plain, &agb.SoftInterrupts{}); c != nil {
		t.Fatalf("expected no flashcart, got %v", c)
	}

	ez := &sim.Cartridge{Flash: &sim.FlashCart{
		Pages:  map[uint16]uint16{ezflash.PagePSRAM: 0x1234},
		Mapped: ezflash.PagePSRAM,
	}}
	c := carts.Probe(ez, &agb.SoftInterrupts{})
	if c == nil {
		t.Fatal("expected EZ-Flash, got nil")
	}
	if c.String() != "EZ-Flash" {
		t.Fatalf("expected EZ-Flash, got %v", c)
	}
}
