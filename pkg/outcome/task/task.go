package task

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Task produces records tagged with its namespace and method and notifies
// the listeners registered on it. Listeners are consumed by the dispatch
// they fire in: each registration is notified of at most one outcome.
type Task[T any] struct {
	namespace string
	method    string
	logger    logr.Logger

	mu          sync.Mutex
	listeners   []registration[T]
	failureHook func(*outcome.Record[T])
}

// New returns a Task whose records carry namespace and method. Either may be
// empty.
func New[T any](namespace, method string, opts ...Option) *Task[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := cfg.logger
	if namespace != "" {
		logger = logger.WithValues("namespace", namespace)
	}
	if method != "" {
		logger = logger.WithValues("method", method)
	}

	return &Task[T]{
		namespace: namespace,
		method:    method,
		logger:    logger,
	}
}

func (t *Task[T]) Namespace() string {
	return t.namespace
}

func (t *Task[T]) Method() string {
	return t.method
}

// Success builds a successful record and notifies success and complete
// listeners. It panics with a *ListenerError when a listener fails and no
// error listener is registered.
func (t *Task[T]) Success(value T) *outcome.Record[T] {
	return t.emit(outcome.Succeed(t.namespace, t.method, value), ChannelSuccess)
}

// Failure builds a failing record caused by err. When err is itself a
// failing record it becomes the inner link and the new record carries no
// direct error. Failure and complete listeners are notified; listener faults
// are handled as in Success.
func (t *Task[T]) Failure(err error) *outcome.Record[T] {
	return t.emit(outcome.Fail[T](t.namespace, t.method, err, nil), ChannelFailure)
}

// FailureWith stores err as the immediate cause and inner as the deeper one.
func (t *Task[T]) FailureWith(err error, inner outcome.Outcome) *outcome.Record[T] {
	return t.emit(outcome.Fail[T](t.namespace, t.method, err, inner), ChannelFailure)
}

// Failf reports a failure with a formatted message.
func (t *Task[T]) Failf(format string, args ...any) *outcome.Record[T] {
	return t.Failure(outcome.TextError(fmt.Sprintf(format, args...)))
}

// On registers l on channel and returns t for chaining. Registering the same
// pair twice yields two independent registrations. On panics when channel is
// unknown or l has no callback.
func (t *Task[T]) On(channel Channel, l *Listener[T]) *Task[T] {
	if !channel.Valid() {
		panic(fmt.Errorf("task: %w %q", ErrUnknownChannel, channel))
	}
	if !l.callable() {
		panic(fmt.Errorf("task: %w", ErrNilListener))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, registration[T]{channel: channel, listener: l})
	return t
}

// Listen registers fn on channel and returns its handle for a later Off.
func (t *Task[T]) Listen(channel Channel, fn func(Event[T]) error) *Listener[T] {
	l := NewListener(fn)
	t.On(channel, l)
	return l
}

// Off removes every registration of l on channel. Nothing happens when none
// match.
func (t *Task[T]) Off(channel Channel, l *Listener[T]) *Task[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.listeners[:0]
	for _, reg := range t.listeners {
		if reg.channel == channel && reg.listener == l {
			continue
		}
		kept = append(kept, reg)
	}
	// drop references held past the new length
	for i := len(kept); i < len(t.listeners); i++ {
		t.listeners[i] = registration[T]{}
	}
	t.listeners = kept
	return t
}

// Listeners reports how many registrations are waiting for the next outcome.
func (t *Task[T]) Listeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}

// OnFailure sets a callback run once, before the listeners, on the next
// failure. Its panics are logged and swallowed.
//
// Deprecated: use On(ChannelFailure, ...) instead.
func (t *Task[T]) OnFailure(fn func(*outcome.Record[T])) *Task[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failureHook = fn
	return t
}
