package outcome

import (
	"time"

	"github.com/google/uuid"
)

type Record[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	namespace string
	method    string
	value     T
	err       error
	inner     Outcome
	kind      CauseKind
	isSuccess bool
}

// Succeed builds a successful record tagged with namespace and method.
func Succeed[T any](namespace, method string, value T) *Record[T] {
	return &Record[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		namespace: namespace,
		method:    method,
		value:     value,
		kind:      CauseNone,
		isSuccess: true,
	}
}

// Fail builds a failing record. A failing record passed as err with no
// explicit inner becomes the inner link and the record carries no direct
// error. Typed nil values count as absent.
func Fail[T any](namespace, method string, err error, inner Outcome) *Record[T] {
	if IsNil(err) {
		err = nil
	}
	if IsNil(inner) {
		inner = nil
	}

	if inner == nil {
		if o, ok := err.(Outcome); ok && !o.IsSuccess() {
			inner, err = o, nil
		}
	}

	return &Record[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		namespace: namespace,
		method:    method,
		err:       err,
		inner:     inner,
		kind:      kindOf(err, inner),
		isSuccess: false,
	}
}

func (r *Record[T]) Value() T {
	return r.value
}

// Any returns the value boxed as any.
func (r *Record[T]) Any() any {
	return r.value
}

func (r *Record[T]) Err() error {
	return r.err
}

func (r *Record[T]) Inner() Outcome {
	return r.inner
}

func (r *Record[T]) Kind() CauseKind {
	return r.kind
}

func (r *Record[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r *Record[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r *Record[T]) Namespace() string {
	return r.namespace
}

func (r *Record[T]) Method() string {
	return r.method
}

func (r *Record[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record[T]) ID() uuid.UUID {
	return r.id
}

// Error renders the whole chain so a record can travel as a plain error.
func (r *Record[T]) Error() string {
	return r.Render(0)
}

// Unwrap exposes the direct error and the inner record to errors.Is and
// errors.As.
func (r *Record[T]) Unwrap() []error {
	errs := make([]error, 0, 2)
	if r.err != nil {
		errs = append(errs, r.err)
	}
	if r.inner != nil {
		errs = append(errs, r.inner)
	}
	return errs
}
