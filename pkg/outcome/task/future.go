package task

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Future is the eventual outcome of RunAsync.
type Future[T any] struct {
	done  chan struct{}
	rec   *outcome.Record[T]
	fault error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) complete(rec *outcome.Record[T], fault error) {
	f.rec = rec
	f.fault = fault
	close(f.done)
}

// Done returns a channel that is closed once the record is built and every
// listener has returned.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future completes. The error is the listener fault
// that aborted dispatch, if any; the record is returned either way.
func (f *Future[T]) Wait() (*outcome.Record[T], error) {
	<-f.done
	return f.rec, f.fault
}

// RunAsync is Run with fn executed on its own goroutine. The goroutine waits
// for fn, builds the record and then calls the listeners one after another
// in registration order. Listener faults that no error listener handles are
// reported by Wait instead of panicking.
func (t *Task[T]) RunAsync(fn func() (T, error), opts ...RunOption) *Future[T] {
	rc := newRunConfig(opts)
	f := newFuture[T]()

	go func() {
		rec, channel := t.settle(fn, rc)
		f.complete(rec, t.dispatch(rec, channel))
	}()

	return f
}

// TryAsync is the former name of RunAsync.
//
// Deprecated: use RunAsync.
func (t *Task[T]) TryAsync(fn func() (T, error), opts ...RunOption) *Future[T] {
	return t.RunAsync(fn, opts...)
}
