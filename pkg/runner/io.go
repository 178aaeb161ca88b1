package runner

import (
	"context"
	"io"

	"github.com/aretw0/cascade/pkg/domain"
)

// Source produces the actions of a session, one per input event.
// It returns io.EOF when no more input will arrive.
type Source interface {
	Next(ctx context.Context) (domain.Action, error)
}

// Sink presents a snapshot to the user.
type Sink interface {
	Draw(snapshot domain.Snapshot) error
}

// Notifier is implemented by sinks that can show a transient message, such as
// a dispatch that stopped at a limit.
type Notifier interface {
	Notify(message string)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (domain.Action, error)

// Next implements Source.
func (f SourceFunc) Next(ctx context.Context) (domain.Action, error) {
	return f(ctx)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(snapshot domain.Snapshot) error

// Draw implements Sink.
func (f SinkFunc) Draw(snapshot domain.Snapshot) error {
	return f(snapshot)
}

// SliceSource replays a fixed list of actions and then reports io.EOF.
type SliceSource struct {
	actions []domain.Action
	next    int
}

// NewSliceSource returns a source over actions.
func NewSliceSource(actions ...domain.Action) *SliceSource {
	return &SliceSource{actions: actions}
}

// Next implements Source.
func (s *SliceSource) Next(ctx context.Context) (domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return domain.Action{}, err
	}
	if s.next >= len(s.actions) {
		return domain.Action{}, io.EOF
	}
	a := s.actions[s.next]
	s.next++
	return a, nil
}

// DiscardSink drops every snapshot.
var DiscardSink Sink = SinkFunc(func(domain.Snapshot) error { return nil })
