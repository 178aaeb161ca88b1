package dispatch

import (
	"io"
	"log/slog"
)

// Config holds StoreWithMiddleware construction options.
type Config[A any] struct {
	// Limits bounds every top-level call. The zero value selects DefaultLimits.
	Limits Limits

	// Terminator reports whether an action ends the session. A terminal action
	// stops the call as soon as it is dequeued, before any middleware sees it.
	// Nil means no action is terminal.
	Terminator func(A) bool

	// Hooks receive dispatch events for logging, metrics and tracing.
	Hooks Hooks[A]

	// Logger receives aborted-dispatch reports from Dispatch.
	// Nil selects a discarding logger.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with DefaultLimits and no terminator.
func DefaultConfig[A any]() Config[A] {
	return Config[A]{Limits: DefaultLimits()}
}

// WithLimits returns a copy of the config with the given limits.
func (c Config[A]) WithLimits(limits Limits) Config[A] {
	c.Limits = limits
	return c
}

// WithTerminator returns a copy of the config with the given terminator.
func (c Config[A]) WithTerminator(fn func(A) bool) Config[A] {
	c.Terminator = fn
	return c
}

// WithHooks returns a copy of the config with the given hooks.
func (c Config[A]) WithHooks(hooks Hooks[A]) Config[A] {
	c.Hooks = hooks
	return c
}

// WithLogger returns a copy of the config with the given logger.
func (c Config[A]) WithLogger(logger *slog.Logger) Config[A] {
	c.Logger = logger
	return c
}

func (c Config[A]) resolve() (Config[A], error) {
	if c.Limits == (Limits{}) {
		c.Limits = DefaultLimits()
	}
	if err := c.Limits.Validate(); err != nil {
		return c, err
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}
