package timer

import (
	"sync"
)

// TestSyscaller simulates the interval timer slots in memory; tests and
// platforms without the OS facility use it through NewTimerWithSyscaller.
// Simulated time does not pass on its own, drive it with Advance.
type TestSyscaller struct {
	err   error
	armed [numKinds]*IntervalValue
	sync.Mutex
}

func NewTestSyscaller() *TestSyscaller {
	return &TestSyscaller{}
}

func (s *TestSyscaller) Arm(k Kind, iv IntervalValue) (IntervalValue, error) {
	s.Lock()
	defer s.Unlock()

	if s.err != nil {
		return IntervalValue{}, ErrSyscall.Wrapf(s.err, "setitimer, kind=%q", k)
	}

	prev := s.state(k)

	v := iv
	s.armed[k] = &v

	return prev, nil
}

func (s *TestSyscaller) Disarm(k Kind) (IntervalValue, error) {
	s.Lock()
	defer s.Unlock()

	if s.err != nil {
		return IntervalValue{}, ErrSyscall.Wrapf(s.err, "setitimer, kind=%q", k)
	}

	prev := s.state(k)
	s.armed[k] = nil

	return prev, nil
}

func (s *TestSyscaller) Query(k Kind) (IntervalValue, error) {
	s.Lock()
	defer s.Unlock()

	if s.err != nil {
		return IntervalValue{}, ErrSyscall.Wrapf(s.err, "getitimer, kind=%q", k)
	}

	return s.state(k), nil
}

// SetError makes every following call fail with ErrSyscall wrapping err;
// reset with nil.
func (s *TestSyscaller) SetError(err error) {
	s.Lock()
	defer s.Unlock()

	s.err = err
}

// Advance counts d down from the armed value of kind, rearming at the
// interval on expiry like the OS does.
func (s *TestSyscaller) Advance(k Kind, d TimeValue) {
	s.Lock()
	defer s.Unlock()

	a := s.armed[k]
	if a == nil {
		return
	}

	remain := a.Value.Seconds() - d.Seconds()

	for remain <= 0 {
		if a.Interval.IsZero() {
			remain = 0

			break
		}

		remain += a.Interval.Seconds()
	}

	a.Value = TimeValueFromSeconds(remain)
}

func (s *TestSyscaller) IsArmed(k Kind) bool {
	s.Lock()
	defer s.Unlock()

	return s.armed[k] != nil
}

func (s *TestSyscaller) state(k Kind) IntervalValue {
	a := s.armed[k]
	if a == nil {
		return IntervalValue{}
	}

	return *a
}
