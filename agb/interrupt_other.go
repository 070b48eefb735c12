//go:build !gameboyadvance

package agb

// SoftInterrupts tracks an interrupt enable flag in software.
type SoftInterrupts struct {
	Disabled bool
}

func (s *SoftInterrupts) Disable() IntrState {
	prev := IntrState(0)
	if s.Disabled {
		prev = 1
	}
	s.Disabled = true
	return prev
}

func (s *SoftInterrupts) Restore(prev IntrState) {
	s.Disabled = prev != 0
}

// IRQ controls the CPU's interrupt master enable.
var IRQ Interrupts = &SoftInterrupts{}
