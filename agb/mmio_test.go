package agb_test

import (
	"testing"

	"github.com/clktmr/agbrtc/agb"
)

func TestBusRegister(t *testing.T) {
	var ram agb.RAM
	r := agb.BusRegister{Mem: &ram, Addr: agb.ROM + 0xc4}
	r.Store(0x5)
	if v := ram.Load16(agb.ROM + 0xc4); v != 0x5 {
		t.Fatalf("expected %#x, got %#x", 0x5, v)
	}
	if v := ram.Load16(agb.ROM + 0xc6); v != 0 {
		t.Fatalf("neighbour modified: %#x", v)
	}
}

func TestReadHalfwords(t *testing.T) {
	var ram agb.RAM
	for i := range 6 {
		ram.Store16(agb.ROM+0xa0+agb.Addr(i*2), uint16(i+1))
	}
	p := make([]uint16, 6)
	agb.ReadHalfwords(&ram, agb.ROM+0xa0, p)
	for i, v := range p {
		if v != uint16(i+1) {
			t.Fatalf("word %d: expected %d, got %d", i, i+1, v)
		}
	}
}

func TestSoftInterruptsNested(t *testing.T) {
	irq := &agb.SoftInterrupts{}
	func() {
		defer irq.Restore(irq.Disable())
		func() {
			defer irq.Restore(irq.Disable())
		}()
		if !irq.Disabled {
			t.Fatal("inner guard enabled interrupts")
		}
	}()
	if irq.Disabled {
		t.Fatal("interrupts not restored")
	}
}
