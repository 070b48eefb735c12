//go:build gameboyadvance

package agb

import "runtime/interrupt"

type cpuInterrupts struct{}

func (cpuInterrupts) Disable() IntrState  { return IntrState(interrupt.Disable()) }
func (cpuInterrupts) Restore(s IntrState) { interrupt.Restore(interrupt.State(s)) }

// IRQ controls the CPU's interrupt master enable.
var IRQ Interrupts = cpuInterrupts{}
