package task

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// emit dispatches synchronously and re-raises an unhandled listener fault.
func (t *Task[T]) emit(rec *outcome.Record[T], channel Channel) *outcome.Record[T] {
	if err := t.dispatch(rec, channel); err != nil {
		panic(err)
	}
	return rec
}

// dispatch notifies the listeners registered before the call. The live list
// is swapped out first, so listeners registered while dispatching wait for
// the next outcome and re-entrant calls on t start from an empty list.
//
// Listeners on channel and on ChannelComplete run in registration order. A
// fault is handed to every error listener and dispatch goes on; without
// error listeners the fault aborts dispatch and is returned.
func (t *Task[T]) dispatch(rec *outcome.Record[T], channel Channel) error {
	t.mu.Lock()
	snapshot := t.listeners
	t.listeners = nil
	var hook func(*outcome.Record[T])
	if channel == ChannelFailure {
		hook = t.failureHook
		t.failureHook = nil
	}
	t.mu.Unlock()

	if hook != nil {
		t.runFailureHook(hook, rec)
	}

	var errorListeners, others []registration[T]
	for _, reg := range snapshot {
		if reg.channel == ChannelError {
			errorListeners = append(errorListeners, reg)
		} else {
			others = append(others, reg)
		}
	}

	t.logger.V(1).Info("dispatching outcome",
		"channel", channel,
		"record_id", rec.ID(),
		"listener_count", len(others),
		"error_listener_count", len(errorListeners))

	for i, reg := range others {
		if reg.channel != channel && reg.channel != ChannelComplete {
			continue
		}

		err := reg.listener.invoke(Event[T]{Channel: reg.channel, Record: rec})
		if err == nil {
			continue
		}

		fault := &ListenerError{Channel: reg.channel, Err: err}
		if len(errorListeners) == 0 {
			t.logger.Error(fault, "listener failed with no error listener registered",
				"channel", channel,
				"listener_index", i,
				"record_id", rec.ID())
			return fault
		}

		t.logger.Error(fault, "listener failed, routing to error listeners",
			"channel", channel,
			"listener_index", i,
			"record_id", rec.ID())

		for _, el := range errorListeners {
			if elErr := el.listener.invoke(Event[T]{Channel: ChannelError, Record: rec, Fault: fault}); elErr != nil {
				return errors.Join(fault, &ListenerError{Channel: ChannelError, Err: elErr})
			}
		}
	}

	return nil
}

func (t *Task[T]) runFailureHook(hook func(*outcome.Record[T]), rec *outcome.Record[T]) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error(outcome.NewPanicError(r), "failure hook panicked",
				"record_id", rec.ID())
		}
	}()
	hook(rec)
}
