package task

import "github.com/ib-77/outcome/pkg/outcome"

// Success reports value through an untagged task.
func Success[T any](value T) *outcome.Record[T] {
	return New[T]("", "").Success(value)
}

// Failure reports err through an untagged task.
func Failure[T any](err error) *outcome.Record[T] {
	return New[T]("", "").Failure(err)
}

// Run runs fn through an untagged task.
func Run[T any](fn func() (T, error), opts ...RunOption) *outcome.Record[T] {
	return New[T]("", "").Run(fn, opts...)
}

// RunAsync runs fn through an untagged task on its own goroutine.
func RunAsync[T any](fn func() (T, error), opts ...RunOption) *Future[T] {
	return New[T]("", "").RunAsync(fn, opts...)
}
