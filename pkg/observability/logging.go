package observability

import (
	"errors"
	"log/slog"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
)

// LoggingHooks logs the pipeline at debug level and limit errors at warn.
func LoggingHooks(logger *slog.Logger) dispatch.Hooks[domain.Action] {
	return dispatch.Hooks[domain.Action]{
		OnCancel: func(a domain.Action, depth int) {
			logger.Debug("action cancelled", "action", a, "depth", depth)
		},
		OnApply: func(a domain.Action, depth int, changed bool) {
			logger.Debug("action applied", "action", a, "depth", depth, "changed", changed)
		},
		OnInject: func(a domain.Action, depth, n int) {
			logger.Debug("actions injected", "action", a, "depth", depth, "count", n)
		},
		OnComplete: func(a domain.Action, o dispatch.Outcome, err error) {
			var limitErr *dispatch.LimitError
			if errors.As(err, &limitErr) {
				logger.Warn("dispatch limit exceeded",
					"action", a,
					"limit", string(limitErr.Limit),
					"bound", limitErr.Bound,
					"applied", o.Applied,
				)
				return
			}
			if o.Terminated {
				logger.Info("session terminated", "action", a)
			}
		},
	}
}
