package timer

// Syscaller is the boundary to the interval timer slots of the operating
// system. Failures are surfaced as ErrSyscall with the OS cause wrapped; they
// are never retried here.
type Syscaller interface {
	// Arm programs the slot of kind and returns its previous state.
	Arm(Kind, IntervalValue) (IntervalValue, error)
	// Disarm clears the slot of kind and returns its state at disarm.
	Disarm(Kind) (IntervalValue, error)
	// Query reads the slot of kind without modifying it.
	Query(Kind) (IntervalValue, error)
}

// set by the platform implementation; nil where the process has no interval
// timer facility.
var defaultSyscaller Syscaller
