package logging

import (
	"sync"

	"github.com/rs/zerolog"
)

type SetLogging interface {
	SetLogging(*Logging) *Logging
}

// Logging wraps zerolog.Logger for sharing one root logger between
// components; each component attaches its own context with contextFunc.
type Logging struct {
	log         *zerolog.Logger
	contextFunc func(zerolog.Context) zerolog.Context
	orig        *zerolog.Logger
	sync.RWMutex
}

func NewLogging(f func(zerolog.Context) zerolog.Context) *Logging {
	nop := zerolog.Nop()

	return &Logging{
		log:         &nop,
		contextFunc: f,
	}
}

func (lg *Logging) Log() *zerolog.Logger {
	lg.RLock()
	defer lg.RUnlock()

	return lg.log
}

func (lg *Logging) SetLogger(l zerolog.Logger) *Logging {
	lg.Lock()
	defer lg.Unlock()

	lg.orig = &l

	if lg.contextFunc != nil {
		nl := l.With().Logger()
		nl.UpdateContext(lg.contextFunc)
		lg.log = &nl

		return lg
	}

	lg.log = &l

	return lg
}

func (lg *Logging) SetLogging(l *Logging) *Logging {
	return lg.SetLogger(*l.Logger())
}

// Logger returns the original logger without the component context.
func (lg *Logging) Logger() *zerolog.Logger {
	lg.RLock()
	defer lg.RUnlock()

	if lg.orig == nil {
		return lg.log
	}

	return lg.orig
}

func (lg *Logging) IsTraceLog() bool {
	return lg.Log().GetLevel() == zerolog.TraceLevel
}
