package timer

import (
	"fmt"
	"math"
	"time"
)

const usecPerSec = 1_000_000

// TimeValue is a fixed-point duration with microsecond resolution, the same
// shape as the timeval of getitimer(2). Valid values keep 0 <= Usec <
// 1_000_000 and Sec >= 0.
type TimeValue struct {
	Sec  int64 `json:"sec" yaml:"sec"`
	Usec int64 `json:"usec" yaml:"usec"`
}

func NewTimeValue(sec, usec int64) TimeValue {
	return TimeValue{Sec: sec, Usec: usec}
}

// TimeValueFromSeconds truncates toward the microsecond grid; the caller
// keeps the input finite and non-negative.
func TimeValueFromSeconds(f float64) TimeValue {
	return TimeValue{
		Sec:  int64(f),
		Usec: int64(math.Floor(math.Mod(f, 1.0) * usecPerSec)),
	}
}

func TimeValueFromDuration(d time.Duration) TimeValue {
	return TimeValue{
		Sec:  int64(d / time.Second),
		Usec: int64(d % time.Second / time.Microsecond),
	}
}

func (tv TimeValue) Seconds() float64 {
	return float64(tv.Sec) + float64(tv.Usec)/usecPerSec
}

func (tv TimeValue) Duration() time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}

// Scale multiplies by a positive finite factor; the arithmetic round-trips
// through float seconds, so behavior is uniform for any factor magnitude.
func (tv TimeValue) Scale(f float64) TimeValue {
	return TimeValueFromSeconds(tv.Seconds() * f)
}

func (tv TimeValue) ScaleInverse(f float64) TimeValue {
	return TimeValueFromSeconds(tv.Seconds() / f)
}

func (tv TimeValue) IsZero() bool {
	return tv.Sec == 0 && tv.Usec == 0
}

func (tv TimeValue) IsValid([]byte) error {
	switch {
	case tv.Sec < 0:
		return ErrInvalidTimerValue.Errorf("negative seconds, %d", tv.Sec)
	case tv.Usec < 0 || tv.Usec >= usecPerSec:
		return ErrInvalidTimerValue.Errorf("microseconds out of range, %d", tv.Usec)
	default:
		return nil
	}
}

func (tv TimeValue) String() string {
	return fmt.Sprintf("%d.%06ds", tv.Sec, tv.Usec)
}

// IntervalValue pairs the repeat interval with the time remaining until the
// next expiry, the same shape as the itimerval of getitimer(2).
type IntervalValue struct {
	Interval TimeValue `json:"interval" yaml:"interval"`
	Value    TimeValue `json:"value" yaml:"value"`
}

func (iv IntervalValue) Scale(f float64) IntervalValue {
	return IntervalValue{
		Interval: iv.Interval.Scale(f),
		Value:    iv.Value.Scale(f),
	}
}

func (iv IntervalValue) ScaleInverse(f float64) IntervalValue {
	return IntervalValue{
		Interval: iv.Interval.ScaleInverse(f),
		Value:    iv.Value.ScaleInverse(f),
	}
}

func (iv IntervalValue) IsValid(b []byte) error {
	if err := iv.Interval.IsValid(b); err != nil {
		return err
	}

	return iv.Value.IsValid(b)
}
