package task

import (
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Handler binds a namespace so a component can mint tasks for each of its
// methods without repeating its own name.
type Handler struct {
	name string
	opts []Option
}

// NewHandler returns a Handler for namespace name. Options are applied to
// every task it creates.
func NewHandler(name string, opts ...Option) Handler {
	return Handler{name: name, opts: opts}
}

// NewHandlerFor derives the namespace from target: the short name of a
// function, or the type name of any other value. It panics with
// ErrInvalidTarget when no name can be derived.
func NewHandlerFor(target any, opts ...Option) Handler {
	name := targetName(target)
	if name == "" {
		panic(fmt.Errorf("task: %w", ErrInvalidTarget))
	}
	return NewHandler(name, opts...)
}

func (h Handler) Name() string {
	return h.name
}

// Of returns a task of h tagged with method.
func Of[T any](h Handler, method string) *Task[T] {
	return New[T](h.name, method, h.opts...)
}

// OfFunc returns a task of h tagged with the short name of fn.
func OfFunc[T any](h Handler, fn any) *Task[T] {
	return Of[T](h, outcome.FuncName(fn))
}

func targetName(target any) string {
	if outcome.IsNil(target) {
		return ""
	}
	if reflect.TypeOf(target).Kind() == reflect.Func {
		return outcome.FuncName(target)
	}

	rt := reflect.TypeOf(target)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return rt.Name()
}
