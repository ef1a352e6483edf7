package task

import "github.com/go-logr/logr"

type config struct {
	logger logr.Logger
}

// Option configures a Task.
type Option func(*config)

func defaultConfig() config {
	return config{
		logger: logr.Discard(),
	}
}

// WithLogger sets the logger used for dispatch diagnostics. Dispatch is
// logged at V(1); listener faults at error level.
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

type runConfig struct {
	directReturn bool
}

// RunOption configures a single Run or RunAsync call.
type RunOption func(*runConfig)

// DirectReturn keeps a record returned by the callable as an opaque value
// instead of unwrapping or chaining it.
func DirectReturn() RunOption {
	return func(c *runConfig) {
		c.directReturn = true
	}
}

func newRunConfig(opts []RunOption) runConfig {
	var rc runConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&rc)
		}
	}
	return rc
}
