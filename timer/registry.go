package timer

import (
	"sync"
)

// Registry enforces the one-live-Timer-per-kind rule. The zero value is
// ready to use; constructing a Timer occupies the slot of its kind and
// Close vacates it.
type Registry struct {
	occupied [numKinds]bool
	sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (rg *Registry) Acquire(k Kind) error {
	if err := k.IsValid(nil); err != nil {
		return err
	}

	rg.Lock()
	defer rg.Unlock()

	if rg.occupied[k] {
		return ErrInstanceExists.Errorf("kind=%q", k)
	}

	rg.occupied[k] = true

	return nil
}

func (rg *Registry) Release(k Kind) {
	if k.IsValid(nil) != nil {
		return
	}

	rg.Lock()
	defer rg.Unlock()

	rg.occupied[k] = false
}

func (rg *Registry) IsOccupied(k Kind) bool {
	if k.IsValid(nil) != nil {
		return false
	}

	rg.Lock()
	defer rg.Unlock()

	return rg.occupied[k]
}

// defaultRegistry backs NewTimer and NewTimerWithValue; it lives for the
// whole process.
var defaultRegistry = NewRegistry()
