//go:build !gameboyadvance

package agb

// U16 is a 16-bit register backed by host memory.
type U16 struct {
	v uint16
}

func (r *U16) Load() uint16   { return r.v }
func (r *U16) Store(v uint16) { r.v = v }

// RAM is a sparse halfword memory image. The zero value is empty and usable.
type RAM struct {
	regs map[Addr]*U16
}

// Reg returns the register at addr, allocating it on first use.
func (m *RAM) Reg(addr Addr) *U16 {
	if m.regs == nil {
		m.regs = make(map[Addr]*U16)
	}
	r, ok := m.regs[addr]
	if !ok {
		r = &U16{}
		m.regs[addr] = r
	}
	return r
}

func (m *RAM) Load16(addr Addr) uint16     { return m.Reg(addr).Load() }
func (m *RAM) Store16(addr Addr, v uint16) { m.Reg(addr).Store(v) }

var bus RAM

// Bus is the system bus. On the host it is a memory image that nothing but
// the program itself writes to.
var Bus Memory = &bus

// Reg returns the register at addr.
func Reg(addr Addr) *U16 { return bus.Reg(addr) }
