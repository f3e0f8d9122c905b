package timer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// persisted layout of one time value: two fixed-width fields in native byte
// order, matching the OS timeval layout on 64-bit platforms. Kind and speed
// factor are never persisted.
type codecRecord struct {
	Sec  int64
	Usec int64
}

// StateSize is the byte length of one serialized timer state: interval
// record then value record, no header, no length prefix.
const StateSize = 32

// WriteTo writes the nominal (interval, value) pair at the current stream
// position. A running timer is queried, not disarmed, and the armed
// remaining value is re-scaled to nominal units first.
func (t *Timer) WriteTo(w io.Writer) (int64, error) {
	t.Lock()
	defer t.Unlock()

	value := t.value

	if t.running {
		cur, err := t.sys.Query(t.kind)
		if err != nil {
			return 0, err
		}

		value = cur.Value.Scale(t.speedFactor)
	}

	recs := [2]codecRecord{
		{Sec: t.interval.Sec, Usec: t.interval.Usec},
		{Sec: value.Sec, Usec: value.Usec},
	}

	if err := binary.Write(w, binary.NativeEndian, recs[:]); err != nil {
		return 0, errors.Wrap(err, "write timer state")
	}

	return StateSize, nil
}

// ReadFrom overwrites interval and value from the stream; speed factor and
// the running flag are untouched. The timer must be stopped, a running timer
// would desynchronize the stored state from the armed one.
func (t *Timer) ReadFrom(r io.Reader) (int64, error) {
	t.Lock()
	defer t.Unlock()

	if t.running {
		return 0, ErrNotStopped.Errorf("deserialize into running timer, kind=%q", t.kind)
	}

	var recs [2]codecRecord

	if err := binary.Read(r, binary.NativeEndian, recs[:]); err != nil {
		return 0, errors.Wrap(err, "read timer state")
	}

	t.interval = TimeValue{Sec: recs[0].Sec, Usec: recs[0].Usec}
	t.value = TimeValue{Sec: recs[1].Sec, Usec: recs[1].Usec}

	return StateSize, nil
}
