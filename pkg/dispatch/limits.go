package dispatch

import "fmt"

// Limit identifies one of the bounds in Limits.
type Limit string

const (
	LimitDepth   Limit = "max_depth"
	LimitActions Limit = "max_actions"
)

// Limits bounds a single top-level dispatch call.
type Limits struct {
	// MaxDepth is the deepest nesting level an injected action may be queued at.
	// Zero forbids injection entirely.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// MaxActions is the number of allowed actions (cancelled ones excluded)
	// the reducer may see during one call.
	MaxActions int `yaml:"max_actions" json:"max_actions"`
}

// DefaultLimits returns bounds sized for interactive use: comfortably above the
// largest single cascade of any standard board.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:   4096,
		MaxActions: 200_000,
	}
}

// Validate reports whether the limits can bound a dispatch.
func (l Limits) Validate() error {
	if l.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be >= 0, got %d", ErrInvalidLimits, l.MaxDepth)
	}
	if l.MaxActions < 1 {
		return fmt.Errorf("%w: max_actions must be >= 1, got %d", ErrInvalidLimits, l.MaxActions)
	}
	return nil
}
