package main

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/task"
)

type demo struct {
	layers int
	failAt int
	logger logr.Logger
}

// layer runs layer i, which wraps layer i+1. The innermost layer returns its
// depth as the value.
func (d demo) layer(i int) *outcome.Record[int] {
	t := task.New[int](fmt.Sprintf("layer%d", i), "run", task.WithLogger(d.logger))
	return t.Run(d.body(i))
}

func (d demo) body(i int) func() (int, error) {
	return func() (int, error) {
		if i == d.failAt {
			return 0, outcome.TextError(fmt.Sprintf("layer %d gave up", i))
		}
		if i == d.layers-1 {
			return i, nil
		}
		inner := d.layer(i + 1)
		if inner.IsFailure() {
			return 0, inner
		}
		return inner.Value(), nil
	}
}

func (d demo) run(async bool) (string, error) {
	if d.layers < 1 {
		return "", fmt.Errorf("layers must be at least 1, got %d", d.layers)
	}
	if d.failAt >= d.layers {
		return "", fmt.Errorf("fail-at %d is outside %d layers", d.failAt, d.layers)
	}

	var rec *outcome.Record[int]
	if async {
		t := task.New[int]("layer0", "run", task.WithLogger(d.logger))
		var err error
		if rec, err = t.RunAsync(d.body(0)).Wait(); err != nil {
			return "", err
		}
	} else {
		rec = d.layer(0)
	}

	if rec.IsSuccess() {
		return fmt.Sprintf("%s = %d", rec.Render(0), rec.Value()), nil
	}
	return rec.Render(0), nil
}
