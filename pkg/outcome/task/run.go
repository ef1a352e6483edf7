package task

import (
	"reflect"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Run calls fn and reports its outcome:
//   - a panic or a non-nil error becomes a failure; a failing record returned
//     as the error is chained as the inner cause
//   - a successful record returned as the value is re-wrapped: its value is
//     reported under this task's tag and the record itself is dropped
//   - a failing record returned as the value is chained as the inner cause
//   - any other value, or any value at all with DirectReturn, is a success
//
// A successful record whose value does not fit T is kept as an opaque value.
// Operational failures never escape Run; unhandled listener faults panic as
// in Success.
func (t *Task[T]) Run(fn func() (T, error), opts ...RunOption) *outcome.Record[T] {
	rec, channel := t.settle(fn, newRunConfig(opts))
	return t.emit(rec, channel)
}

// Try is the former name of Run.
//
// Deprecated: use Run.
func (t *Task[T]) Try(fn func() (T, error), opts ...RunOption) *outcome.Record[T] {
	return t.Run(fn, opts...)
}

// settle builds the record for fn's outcome without dispatching it.
func (t *Task[T]) settle(fn func() (T, error), rc runConfig) (*outcome.Record[T], Channel) {
	v, err := call(fn)
	if !outcome.IsNil(err) {
		return outcome.Fail[T](t.namespace, t.method, err, nil), ChannelFailure
	}

	if !rc.directReturn {
		if o, ok := any(v).(outcome.Outcome); ok && !outcome.IsNil(o) {
			if !o.IsSuccess() {
				return outcome.Fail[T](t.namespace, t.method, o, nil), ChannelFailure
			}
			if inner, ok := valueAs[T](o.Any()); ok {
				return outcome.Succeed(t.namespace, t.method, inner), ChannelSuccess
			}
		}
	}

	return outcome.Succeed(t.namespace, t.method, v), ChannelSuccess
}

func call[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = outcome.NewPanicError(r)
		}
	}()
	if fn == nil {
		return v, ErrNilCallable
	}
	return fn()
}

// valueAs converts an unwrapped record value to T. A nil value fits only
// when T is an interface type.
func valueAs[T any](v any) (T, bool) {
	var zero T
	if v == nil {
		return zero, reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface
	}
	out, ok := v.(T)
	return out, ok
}
