package timer

import (
	"math"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/spikeekips/itimer/util/logging"
)

// exit code of the unrecoverable teardown path; EX_OSERR of sysexits.h.
const exitCodeOSErr = 71

// fatalLogging receives the report when Close cannot disarm a live timer
// slot; replace it with SetFatalLogging before constructing timers.
var fatalLogging = logging.Setup(os.Stderr, zerolog.ErrorLevel, "json", false)

func SetFatalLogging(l *logging.Logging) {
	fatalLogging = l
}

// Timer owns one interval timer slot of the process. interval and value hold
// nominal durations, expressed as if the speed factor was 1.0; while running,
// the OS slot holds the authoritative remaining value in scaled units.
//
// All operations lock the instance; the one-instance-per-kind rule is
// enforced through Registry.
type Timer struct {
	*logging.Logging
	sys         Syscaller
	registry    *Registry
	interval    TimeValue
	value       TimeValue
	speedFactor float64
	kind        Kind
	running     bool
	closed      bool
	sync.Mutex
}

// NewTimer creates a stopped Timer; the first expiry comes after one full
// interval.
func NewTimer(k Kind, interval TimeValue) (*Timer, error) {
	return NewTimerWithValue(k, interval, interval)
}

// NewTimerWithValue creates a stopped Timer with a separate time until the
// first expiry.
func NewTimerWithValue(k Kind, interval, value TimeValue) (*Timer, error) {
	if defaultSyscaller == nil {
		return nil, ErrSyscall.Errorf("no interval timer facility on this platform")
	}

	return NewTimerWithSyscaller(k, interval, value, defaultSyscaller, defaultRegistry)
}

// NewTimerWithSyscaller creates a Timer over the given Syscaller and
// Registry; the plain constructors use the OS syscalls and the process-wide
// registry.
func NewTimerWithSyscaller(
	k Kind,
	interval, value TimeValue,
	sys Syscaller,
	registry *Registry,
) (*Timer, error) {
	switch {
	case sys == nil:
		return nil, errors.Errorf("nil Syscaller")
	case registry == nil:
		return nil, errors.Errorf("nil Registry")
	}

	if err := k.IsValid(nil); err != nil {
		return nil, err
	}

	if err := (IntervalValue{Interval: interval, Value: value}).IsValid(nil); err != nil {
		return nil, err
	}

	if err := registry.Acquire(k); err != nil {
		return nil, err
	}

	return &Timer{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "itimer").Stringer("kind", k)
		}),
		sys:         sys,
		registry:    registry,
		kind:        k,
		interval:    interval,
		value:       value,
		speedFactor: 1.0,
	}, nil
}

func (t *Timer) Kind() Kind {
	return t.kind
}

func (t *Timer) IsRunning() bool {
	t.Lock()
	defer t.Unlock()

	return t.running
}

func (t *Timer) SpeedFactor() float64 {
	t.Lock()
	defer t.Unlock()

	return t.speedFactor
}

// Interval returns the nominal repeat interval.
func (t *Timer) Interval() TimeValue {
	t.Lock()
	defer t.Unlock()

	return t.interval
}

// Start arms the OS slot with the speed-scaled interval and value.
func (t *Timer) Start() error {
	t.Lock()
	defer t.Unlock()

	return t.start()
}

// Stop disarms the OS slot and keeps the remaining value, de-scaled back to
// nominal units. When the disarm syscall fails, the timer stays flagged
// running but its real state is indeterminate; treat the instance as dead.
func (t *Timer) Stop() error {
	t.Lock()
	defer t.Unlock()

	return t.stop()
}

// SetSpeedFactor applies the factor immediately, even while running; a
// running timer is stopped, rescaled and restarted without losing the
// accumulated progress.
func (t *Timer) SetSpeedFactor(f float64) error {
	if err := checkSpeedFactor(f); err != nil {
		return err
	}

	t.Lock()
	defer t.Unlock()

	running := t.running

	if running {
		// checked before disarming, so an over-large factor cannot leave
		// the timer stopped halfway
		if t.interval.ScaleInverse(f).IsZero() {
			return ErrInvalidTimerValue.Errorf(
				"scaled interval truncates to zero; speed factor=%v", f)
		}

		if err := t.stop(); err != nil {
			return err
		}
	}

	t.speedFactor = f

	if running {
		if err := t.start(); err != nil {
			return err
		}
	}

	t.Log().Debug().Float64("speed_factor", f).Msg("speed factor set")

	return nil
}

// SetSpeedToNormal resets the factor to 1.0; a running timer is rescaled in
// place through the armed remaining value instead of a stop and start.
func (t *Timer) SetSpeedToNormal() error {
	t.Lock()
	defer t.Unlock()

	if t.running {
		if err := t.adjustSpeed(1.0); err != nil {
			return err
		}
	}

	t.speedFactor = 1.0

	return nil
}

// Value returns the stored nominal value when stopped. While running it
// returns the remaining value as armed, which is in scaled units; compare
// across speed changes with care.
func (t *Timer) Value() (TimeValue, error) {
	t.Lock()
	defer t.Unlock()

	if !t.running {
		return t.value, nil
	}

	cur, err := t.sys.Query(t.kind)
	if err != nil {
		return TimeValue{}, err
	}

	return cur.Value, nil
}

// Close stops the timer if running and vacates the registry slot; it must be
// called on every constructed Timer and may be called more than once. A
// failing disarm terminates the process: a live OS timer slot without an
// owner cannot be taken back for the rest of the process's life.
func (t *Timer) Close() error {
	t.Lock()
	defer t.Unlock()

	if t.closed {
		return nil
	}

	if t.running {
		if err := t.stop(); err != nil {
			fatalLogging.Log().Error().Err(err).
				Stringer("kind", t.kind).
				Msg("cannot disarm running timer on close; terminating process")

			os.Exit(exitCodeOSErr)
		}
	}

	t.registry.Release(t.kind)
	t.closed = true

	return nil
}

func (t *Timer) start() error {
	if t.running {
		return ErrAlreadyStarted.Errorf("kind=%q", t.kind)
	}

	scaled := IntervalValue{Interval: t.interval, Value: t.value}.ScaleInverse(t.speedFactor)

	if scaled.Interval.IsZero() {
		return ErrInvalidTimerValue.Errorf(
			"scaled interval truncates to zero; speed factor=%v", t.speedFactor)
	}

	if _, err := t.sys.Arm(t.kind, scaled); err != nil {
		return err
	}

	t.running = true

	t.Log().Debug().
		Stringer("interval", scaled.Interval).
		Stringer("value", scaled.Value).
		Msg("timer started")

	return nil
}

func (t *Timer) stop() error {
	if !t.running {
		return ErrAlreadyStopped.Errorf("kind=%q", t.kind)
	}

	last, err := t.sys.Disarm(t.kind)
	if err != nil {
		return err
	}

	t.value = last.Value.Scale(t.speedFactor)
	t.running = false

	t.Log().Debug().Stringer("value", t.value).Msg("timer stopped")

	return nil
}

// adjustSpeed rescales the armed slot in place: the remaining value is
// de-scaled by the old factor and re-scaled by the new one in a single
// multiply, between disarm and rearm.
func (t *Timer) adjustSpeed(newFactor float64) error {
	if !t.running {
		return ErrAlreadyStopped.Errorf("kind=%q", t.kind)
	}

	cur, err := t.sys.Disarm(t.kind)
	if err != nil {
		return err
	}

	next := IntervalValue{
		Interval: t.interval.ScaleInverse(newFactor),
		Value:    cur.Value.Scale(t.speedFactor / newFactor),
	}

	if _, err := t.sys.Arm(t.kind, next); err != nil {
		return err
	}

	return nil
}

func checkSpeedFactor(f float64) error {
	switch {
	case math.IsNaN(f):
		return ErrInvalidSpeedFactor.Errorf("NaN")
	case math.IsInf(f, 0):
		return ErrInvalidSpeedFactor.Errorf("infinite")
	case f <= 0:
		return ErrInvalidSpeedFactor.Errorf("not positive, %v", f)
	default:
		return nil
	}
}
