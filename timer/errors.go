package timer

import (
	"github.com/spikeekips/itimer/util"
)

var (
	ErrAlreadyStarted     = util.NewError("timer already started")
	ErrAlreadyStopped     = util.NewError("timer already stopped")
	ErrInvalidKind        = util.NewError("invalid timer kind")
	ErrInvalidSpeedFactor = util.NewError("invalid speed factor")
	ErrInvalidTimerValue  = util.NewError("invalid timer value")
	ErrNotStopped         = util.NewError("timer must be stopped")
	ErrInstanceExists     = util.NewError("only one interval timer of each kind per process")
	ErrSyscall            = util.NewError("interval timer syscall failed")
)
