package tests

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

// repository -> service -> api, each layer reporting through its own tag.
type repository struct {
	h    task.Handler
	rows map[string]string
}

func (r *repository) Find(id string) *outcome.Record[string] {
	t := task.Of[string](r.h, "Find")
	row, ok := r.rows[id]
	if !ok {
		return t.Failure(errNotFound)
	}
	return t.Success(row)
}

type service struct {
	h    task.Handler
	repo *repository
}

func (s *service) Age(id string) *outcome.Record[int] {
	return task.Of[int](s.h, "Age").Run(func() (int, error) {
		row := s.repo.Find(id)
		if row.IsFailure() {
			return 0, row
		}
		return strconv.Atoi(row.Value())
	})
}

func api(svc *service, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		age := svc.Age(id)
		rec := task.New[int]("api", "age").Run(func() (int, error) {
			if age.IsFailure() {
				return 0, age
			}
			return age.Value(), nil
		})
		out = append(out, outcome.Finally(rec,
			func(v int) string { return fmt.Sprintf("age: %d", v) },
			func(failed *outcome.Record[int]) string { return failed.Render(0) }))
	}
	return out
}

func newService() *service {
	repo := &repository{
		h:    task.NewHandler("repository"),
		rows: map[string]string{"ann": "31", "bob": "forty"},
	}
	return &service{h: task.NewHandler("service"), repo: repo}
}

func TestLayeredChain(t *testing.T) {
	svc := newService()

	got := api(svc, []string{"ann", "bob", "eve"})
	require.Len(t, got, 3)

	assert.Equal(t, "age: 31", got[0])
	assert.Equal(t, strings.Join([]string{
		"api.age()",
		`    service.Age() - strconv.Atoi: parsing "forty": invalid syntax`,
	}, "\n"), got[1])
	assert.Equal(t, strings.Join([]string{
		"api.age()",
		"    service.Age()",
		"        repository.Find() - not found",
	}, "\n"), got[2])
}

func TestLayeredChain_ErrorsIs(t *testing.T) {
	svc := newService()

	rec := svc.Age("eve")
	assert.ErrorIs(t, rec, errNotFound)
	assert.Equal(t, 1, outcome.Depth(rec))

	root := outcome.Root(rec)
	assert.Equal(t, "repository", root.Namespace())
	assert.Equal(t, "Find", root.Method())
}

func TestLayeredChain_ObserversSeeEveryLayer(t *testing.T) {
	var seen []string
	observe := func(name string) *task.Listener[int] {
		return task.ListenerFunc(func(e task.Event[int]) {
			seen = append(seen, fmt.Sprintf("%s:%s", name, e.Channel))
		})
	}

	outer := task.New[int]("api", "age").
		On(task.ChannelFailure, observe("api")).
		On(task.ChannelComplete, observe("api"))

	svc := newService()
	rec := outer.Run(func() (int, error) { return 0, svc.Age("eve") })

	assert.True(t, rec.IsFailure())
	assert.Equal(t, []string{"api:failure", "api:complete"}, seen)
}
