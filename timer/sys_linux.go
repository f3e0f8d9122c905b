//go:build linux
// +build linux

package timer

import (
	"time"

	"golang.org/x/sys/unix"
)

func init() { //nolint:gochecknoinits //.
	defaultSyscaller = Itimer{}
}

// Itimer is the Syscaller over setitimer(2)/getitimer(2).
type Itimer struct{}

func (Itimer) Arm(k Kind, iv IntervalValue) (IntervalValue, error) {
	which, err := k.itimerWhich()
	if err != nil {
		return IntervalValue{}, err
	}

	prev, err := unix.Setitimer(which, itimervalFromIntervalValue(iv))
	if err != nil {
		return IntervalValue{}, ErrSyscall.Wrapf(err, "setitimer, kind=%q", k)
	}

	return intervalValueFromItimerval(prev), nil
}

func (Itimer) Disarm(k Kind) (IntervalValue, error) {
	which, err := k.itimerWhich()
	if err != nil {
		return IntervalValue{}, err
	}

	prev, err := unix.Setitimer(which, unix.Itimerval{})
	if err != nil {
		return IntervalValue{}, ErrSyscall.Wrapf(err, "setitimer, kind=%q", k)
	}

	return intervalValueFromItimerval(prev), nil
}

func (Itimer) Query(k Kind) (IntervalValue, error) {
	which, err := k.itimerWhich()
	if err != nil {
		return IntervalValue{}, err
	}

	cur, err := unix.Getitimer(which)
	if err != nil {
		return IntervalValue{}, ErrSyscall.Wrapf(err, "getitimer, kind=%q", k)
	}

	return intervalValueFromItimerval(cur), nil
}

func (k Kind) itimerWhich() (unix.ItimerWhich, error) {
	switch k {
	case Real:
		return unix.ItimerReal, nil
	case Virtual:
		return unix.ItimerVirtual, nil
	case Prof:
		return unix.ItimerProf, nil
	default:
		return 0, ErrInvalidKind.Errorf("kind=%d", k)
	}
}

// conversion goes through nanoseconds, so it works for every linux arch
// regardless of the width of the timeval fields.
func timeValueFromUnix(tv unix.Timeval) TimeValue {
	return TimeValueFromDuration(time.Duration(tv.Nano()))
}

func itimervalFromIntervalValue(iv IntervalValue) unix.Itimerval {
	return unix.MakeItimerval(iv.Interval.Duration(), iv.Value.Duration())
}

func intervalValueFromItimerval(it unix.Itimerval) IntervalValue {
	return IntervalValue{
		Interval: timeValueFromUnix(it.Interval),
		Value:    timeValueFromUnix(it.Value),
	}
}
