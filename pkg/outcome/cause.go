package outcome

import (
	"fmt"
	"runtime"
)

// CauseKind discriminates the direct cause stored on a failing record.
type CauseKind int

const (
	// CauseNone marks successful records and failures reported without a reason.
	CauseNone CauseKind = iota
	// CauseText is a plain message, see TextError.
	CauseText
	// CauseError is any other error value.
	CauseError
	// CausePanic is a panic recovered from a wrapped callable.
	CausePanic
	// CauseResult marks a failure caused only by a nested record.
	CauseResult
)

func (k CauseKind) String() string {
	switch k {
	case CauseNone:
		return "none"
	case CauseText:
		return "text"
	case CauseError:
		return "error"
	case CausePanic:
		return "panic"
	case CauseResult:
		return "result"
	default:
		return fmt.Sprintf("CauseKind(%d)", int(k))
	}
}

func kindOf(err error, inner Outcome) CauseKind {
	if err == nil {
		if inner != nil {
			return CauseResult
		}
		return CauseNone
	}

	switch err.(type) {
	case TextError:
		return CauseText
	case *PanicError:
		return CausePanic
	default:
		return CauseError
	}
}

// TextError is a failure reason given as a bare message. It renders verbatim.
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// PanicError wraps a value recovered from a panic together with the
// goroutine stack captured at that point.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns the panic value only. The stack stays out of rendered chains.
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NewPanicError captures the current goroutine stack. Call it from the
// deferred function that recovered v.
func NewPanicError(v any) *PanicError {
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
