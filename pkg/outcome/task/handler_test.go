package task

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userService struct{}

func (s *userService) Create() {}

func TestHandler(t *testing.T) {
	t.Parallel()

	h := NewHandler("foo")
	assert.Equal(t, "foo", h.Name())

	rec := Of[bool](h, "bar").Success(true)
	assert.True(t, rec.Value())
	assert.Equal(t, "foo.bar()", rec.Render(0))

	failed := Of[int](h, "baz").Failf("baz failure")
	assert.False(t, failed.IsSuccess())
	assert.Equal(t, "foo.baz() - baz failure", failed.Render(0))
}

func TestHandlerFor(t *testing.T) {
	t.Parallel()

	svc := &userService{}

	assert.Equal(t, "userService", NewHandlerFor(svc).Name())
	assert.Equal(t, "userService", NewHandlerFor(userService{}).Name())
	assert.Equal(t, "TestHandlerFor", NewHandlerFor(TestHandlerFor).Name())

	rec := OfFunc[int](NewHandlerFor(svc), svc.Create).Success(1)
	assert.Equal(t, "userService.Create()", rec.Render(0))
}

func TestHandlerFor_RejectsUnnamedTarget(t *testing.T) {
	t.Parallel()

	for _, target := range []any{nil, (*userService)(nil), struct{}{}} {
		v := recovered(func() { NewHandlerFor(target) })
		err, ok := v.(error)
		require.True(t, ok, "expected an error panic for %T, got %v", target, v)
		assert.ErrorIs(t, err, ErrInvalidTarget)
	}
}

func TestHandler_AppliesOptions(t *testing.T) {
	t.Parallel()

	var logged bool
	h := NewHandler("foo", WithLogger(funcr.New(func(_, _ string) { logged = true }, funcr.Options{})))
	task := Of[int](h, "bar")
	task.Listen(ChannelSuccess, func(Event[int]) error { return assert.AnError })
	task.Listen(ChannelError, func(Event[int]) error { return nil })

	task.Success(1)
	assert.True(t, logged)
}
