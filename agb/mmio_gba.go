//go:build gameboyadvance

package agb

import (
	"runtime/volatile"
	"unsafe"
)

// U16 is a memory mapped 16-bit register.
type U16 struct {
	r volatile.Register16
}

func (r *U16) Load() uint16   { return r.r.Get() }
func (r *U16) Store(v uint16) { r.r.Set(v) }

// Reg returns the register at addr.
func Reg(addr Addr) *U16 {
	return (*U16)(unsafe.Pointer(uintptr(addr)))
}

type sysBus struct{}

func (sysBus) Load16(addr Addr) uint16     { return Reg(addr).Load() }
func (sysBus) Store16(addr Addr, v uint16) { Reg(addr).Store(v) }

// Bus is the system bus.
var Bus Memory = sysBus{}
