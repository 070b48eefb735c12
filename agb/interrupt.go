package agb

// IntrState is the interrupt master enable state returned by Disable.
type IntrState uintptr

// Interrupts masks CPU interrupts. Use it as a scoped guard:
//
//	defer irq.Restore(irq.Disable())
type Interrupts interface {
	// Disable masks all interrupts and returns the previous state.
	Disable() IntrState
	// Restore reinstates a state returned by Disable.
	Restore(IntrState)
}
