package dispatch

import (
	"errors"
	"fmt"
)

// ErrLimitExceeded is matched by every *LimitError.
var ErrLimitExceeded = errors.New("dispatch limit exceeded")

// ErrInvalidLimits is returned when Limits cannot bound a dispatch.
var ErrInvalidLimits = errors.New("invalid dispatch limits")

// ErrNilReducer is returned (or panicked by NewStore) for a missing reducer.
var ErrNilReducer = errors.New("reducer must not be nil")

// ErrNilMiddleware is returned when a middleware store is built without middleware.
var ErrNilMiddleware = errors.New("middleware must not be nil")

// LimitError reports which bound aborted a dispatch call.
type LimitError struct {
	Limit Limit
	// Bound is the configured value that was crossed.
	Bound int
	// Applied is the number of actions the reducer saw before the abort.
	Applied int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s exceeded: limit %d (applied %d actions)", e.Limit, e.Bound, e.Applied)
}

func (e *LimitError) Unwrap() error {
	return ErrLimitExceeded
}
