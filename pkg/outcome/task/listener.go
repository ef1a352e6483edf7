package task

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Event is what a listener receives. Channel is the channel the listener was
// registered on; Fault is set only for ChannelError deliveries.
type Event[T any] struct {
	Channel Channel
	Record  *outcome.Record[T]
	Fault   error
}

// Listener is a registration handle around a callback. Identity is the
// handle pointer: Off removes registrations of this exact handle.
type Listener[T any] struct {
	fn func(Event[T]) error
}

// NewListener wraps fn. A non-nil error or a panic from fn is a listener
// fault.
func NewListener[T any](fn func(Event[T]) error) *Listener[T] {
	return &Listener[T]{fn: fn}
}

// ListenerFunc wraps a callback that cannot fail.
func ListenerFunc[T any](fn func(Event[T])) *Listener[T] {
	if fn == nil {
		return &Listener[T]{}
	}
	return NewListener(func(e Event[T]) error {
		fn(e)
		return nil
	})
}

func (l *Listener[T]) callable() bool {
	return l != nil && l.fn != nil
}

// invoke runs the callback, converting a panic into a *outcome.PanicError.
func (l *Listener[T]) invoke(e Event[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = outcome.NewPanicError(r)
		}
	}()
	return l.fn(e)
}

// ListenerError attributes a fault to the channel of the listener that
// raised it.
type ListenerError struct {
	Channel Channel
	Err     error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("%s listener failed: %v", e.Channel, e.Err)
}

func (e *ListenerError) Unwrap() error {
	return e.Err
}

type registration[T any] struct {
	channel  Channel
	listener *Listener[T]
}
