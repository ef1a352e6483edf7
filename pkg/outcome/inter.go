package outcome

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Tagged is implemented by anything stamped with an owning namespace and method.
type Tagged interface {
	Namespace() string
	Method() string
}

// WithCause exposes the failure side of a record
type WithCause interface {
	// Err returns the direct cause, nil when the failure only links a nested record
	Err() error
	// Inner returns the nested failing record, if any
	Inner() Outcome
	// Kind reports the shape of the direct cause
	Kind() CauseKind
}

// Outcome is the type-erased view of a Record. It lets records with
// different value types link into one cause chain.
type Outcome interface {
	error
	Tagged
	WithCause
	IsSuccess() bool
	// Any returns the successful value boxed as any
	Any() any
	Render(depth int) string
	ID() uuid.UUID
	CreatedAt() time.Time
}

var (
	_ Outcome            = (*Record[int])(nil)
	_ ValueProvider[int] = (*Record[int])(nil)
)
