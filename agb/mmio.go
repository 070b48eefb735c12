package agb

// Addr is an address on the system bus.
type Addr uint32

// Memory regions used by this module.
const (
	IO   Addr = 0x0400_0000 // I/O registers
	VRAM Addr = 0x0600_0000 // video memory
	ROM  Addr = 0x0800_0000 // cartridge ROM, wait state 0
)

// Register16 is a single 16-bit register. Implementations compile to one
// volatile access per call.
type Register16 interface {
	Load() uint16
	Store(uint16)
}

// Memory is a 16-bit wide view of the system bus. Cartridge space only
// tolerates halfword accesses, which is why there is no byte or word variant.
type Memory interface {
	Load16(addr Addr) uint16
	Store16(addr Addr, v uint16)
}

// BusRegister adapts a single address of mem to a Register16.
type BusRegister struct {
	Mem  Memory
	Addr Addr
}

func (r BusRegister) Load() uint16   { return r.Mem.Load16(r.Addr) }
func (r BusRegister) Store(v uint16) { r.Mem.Store16(r.Addr, v) }

// ReadHalfwords fills p with consecutive halfwords starting at addr.
func ReadHalfwords(mem Memory, addr Addr, p []uint16) {
	for i := range p {
		p[i] = mem.Load16(addr + Addr(i*2))
	}
}
