package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Error is the base error of itimer; every sentinel error of this module is an
// Error. Identity is fixed at the creation site, so copies made by Errorf or
// Wrap still match the original with errors.Is.
type Error struct {
	stack   stack
	wrapped error
	id      string
	msg     string
	extra   string
}

func NewError(s string, a ...interface{}) Error {
	var pcs [1]uintptr
	_ = runtime.Callers(2, pcs[:])
	f := errors.Frame(pcs[0])

	return Error{
		id:  fmt.Sprintf("%n:%d", f, f),
		msg: strings.TrimSpace(fmt.Sprintf(s, a...)),
	}
}

func (er Error) Unwrap() error {
	return er.wrapped
}

func (er Error) Is(err error) bool {
	e, ok := err.(Error) //nolint:errorlint //.
	if !ok {
		if er.wrapped == nil {
			return false
		}

		return errors.Is(er.wrapped, err)
	}

	return e.id == er.id
}

// Call attaches the caller stack; use it when a sentinel is returned as-is.
func (er Error) Call() Error {
	er.stack = callers(3)

	return er
}

func (er Error) Wrap(err error) Error {
	er.stack = callers(3)
	er.wrapped = err

	return er
}

func (er Error) Wrapf(err error, s string, a ...interface{}) Error {
	er.stack = callers(3)
	er.extra = fmt.Sprintf(s, a...)
	er.wrapped = err

	return er
}

// Errorf formats extra message; `%w` is not supported, use Wrapf.
func (er Error) Errorf(s string, a ...interface{}) Error {
	er.stack = callers(3)
	er.extra = fmt.Sprintf(s, a...)

	return er
}

func (er Error) Error() string {
	s := er.message()
	if er.wrapped != nil {
		if e := er.wrapped.Error(); len(e) > 0 {
			s += "; " + e
		}
	}

	return s
}

func (er Error) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			_, _ = fmt.Fprintf(st, "> %s", er.message())

			if er.stack != nil {
				er.stack.Format(st, verb)
			}

			if er.wrapped != nil {
				_, _ = fmt.Fprintf(st, "\n%+v", er.wrapped)
			}

			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(st, er.Error())
	case 'q':
		_, _ = fmt.Fprintf(st, "%q", er.Error())
	}
}

func (er Error) StackTrace() errors.StackTrace {
	if er.stack != nil {
		return er.stack.StackTrace()
	}

	if er.wrapped == nil {
		return nil
	}

	i, ok := er.wrapped.(stackTracer) //nolint:errorlint //.
	if !ok {
		return nil
	}

	return i.StackTrace()
}

func (er Error) message() string {
	s := er.msg
	if len(er.extra) > 0 {
		s += " - " + er.extra
	}

	return s
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// callers is from
// https://github.com/pkg/errors/blob/856c240a51a2bf8fb8269ea7f3f9b046aadde36e/stack.go#L163
func callers(skip int) stack {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])

	return stack(pcs[0:n])
}

type stack []uintptr

func (s stack) Format(st fmt.State, verb rune) {
	if verb == 'v' && st.Flag('+') {
		for _, pc := range s {
			_, _ = fmt.Fprintf(st, "\n%+v", errors.Frame(pc))
		}
	}
}

func (s stack) StackTrace() errors.StackTrace {
	f := make([]errors.Frame, len(s))
	for i := range f {
		f[i] = errors.Frame(s[i])
	}

	return f
}
