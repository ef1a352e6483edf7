package task

import (
	"errors"
	"fmt"
)

// Channel names an event category a Listener subscribes to.
type Channel string

const (
	// ChannelSuccess fires when the task produced a successful record.
	ChannelSuccess Channel = "success"
	// ChannelFailure fires when the task produced a failing record.
	ChannelFailure Channel = "failure"
	// ChannelComplete fires for every outcome.
	ChannelComplete Channel = "complete"
	// ChannelError receives faults raised by other listeners.
	ChannelError Channel = "error"
)

var (
	ErrUnknownChannel = errors.New("unknown channel")
	ErrNilListener    = errors.New("listener is not callable")
	ErrInvalidTarget  = errors.New("handler target has no name")
	ErrNilCallable    = errors.New("callable is nil")
)

// Channels lists every recognized channel.
func Channels() []Channel {
	return []Channel{ChannelSuccess, ChannelFailure, ChannelComplete, ChannelError}
}

func (c Channel) Valid() bool {
	switch c {
	case ChannelSuccess, ChannelFailure, ChannelComplete, ChannelError:
		return true
	default:
		return false
	}
}

func (c Channel) String() string {
	return string(c)
}

// ParseChannel maps a channel name to its Channel.
func ParseChannel(name string) (Channel, error) {
	c := Channel(name)
	if !c.Valid() {
		return "", fmt.Errorf("task: %w %q", ErrUnknownChannel, name)
	}
	return c, nil
}
