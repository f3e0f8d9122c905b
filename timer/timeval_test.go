package timer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testTimeValue struct {
	suite.Suite
}

func (t *testTimeValue) TestRoundTrip() {
	cases := []TimeValue{
		{Sec: 0, Usec: 0},
		{Sec: 0, Usec: 1},
		{Sec: 0, Usec: 999999},
		{Sec: 1, Usec: 0},
		{Sec: 2, Usec: 500000},
		{Sec: 3, Usec: 141592},
		{Sec: 86400, Usec: 1},
		{Sec: 1 << 20, Usec: 333333},
	}

	for i := range cases {
		tv := cases[i]

		back := TimeValueFromSeconds(tv.Seconds())

		// within one microsecond, with headroom for the float representation
		diff := math.Abs(back.Seconds() - tv.Seconds())
		t.True(diff <= 1.5/usecPerSec, "case %d: %v != %v", i, tv, back)
	}
}

func (t *testTimeValue) TestFromSeconds() {
	tv := TimeValueFromSeconds(2.5)
	t.Equal(int64(2), tv.Sec)
	t.Equal(int64(500000), tv.Usec)

	tv = TimeValueFromSeconds(0.0)
	t.True(tv.IsZero())

	// fractional part lands on the grid with floor
	tv = TimeValueFromSeconds(1.9999999)
	t.Equal(int64(1), tv.Sec)
	t.Equal(int64(999999), tv.Usec)
}

func (t *testTimeValue) TestScale() {
	tv := TimeValue{Sec: 10, Usec: 0}

	t.Equal(TimeValue{Sec: 5, Usec: 0}, tv.ScaleInverse(2.0))
	t.Equal(TimeValue{Sec: 20, Usec: 0}, tv.Scale(2.0))
	t.Equal(TimeValue{Sec: 2, Usec: 500000}, tv.Scale(0.25))

	tv = TimeValue{Sec: 2, Usec: 500000}
	t.Equal(TimeValue{Sec: 5, Usec: 0}, tv.Scale(2.0))
	t.Equal(TimeValue{Sec: 1, Usec: 250000}, tv.ScaleInverse(2.0))
}

func (t *testTimeValue) TestScalePair() {
	iv := IntervalValue{
		Interval: TimeValue{Sec: 10, Usec: 0},
		Value:    TimeValue{Sec: 4, Usec: 0},
	}

	scaled := iv.ScaleInverse(2.0)
	t.Equal(TimeValue{Sec: 5, Usec: 0}, scaled.Interval)
	t.Equal(TimeValue{Sec: 2, Usec: 0}, scaled.Value)

	back := scaled.Scale(2.0)
	t.Equal(iv, back)
}

func (t *testTimeValue) TestIsValid() {
	t.NoError(TimeValue{Sec: 1, Usec: 999999}.IsValid(nil))
	t.NoError(TimeValue{}.IsValid(nil))

	err := TimeValue{Sec: -1, Usec: 0}.IsValid(nil)
	t.ErrorIs(err, ErrInvalidTimerValue)

	err = TimeValue{Sec: 0, Usec: usecPerSec}.IsValid(nil)
	t.ErrorIs(err, ErrInvalidTimerValue)

	err = TimeValue{Sec: 0, Usec: -1}.IsValid(nil)
	t.ErrorIs(err, ErrInvalidTimerValue)
}

func (t *testTimeValue) TestDuration() {
	tv := TimeValueFromDuration(time.Millisecond * 1500)
	t.Equal(TimeValue{Sec: 1, Usec: 500000}, tv)

	t.Equal(time.Millisecond*1500, tv.Duration())
}

func (t *testTimeValue) TestString() {
	t.Equal("2.000050s", TimeValue{Sec: 2, Usec: 50}.String())
	t.Equal("0.000000s", TimeValue{}.String())
}

func TestTimeValue(t *testing.T) {
	suite.Run(t, new(testTimeValue))
}
