package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
)

// Game is the engine surface the runner needs.
type Game interface {
	TryDispatch(action domain.Action) (dispatch.Outcome, error)
	Snapshot() domain.Snapshot
}

// Stats accumulates what a Run dispatched.
type Stats struct {
	Dispatched  int `json:"dispatched"`
	Applied     int `json:"applied"`
	Cancelled   int `json:"cancelled"`
	Injected    int `json:"injected"`
	LimitErrors int `json:"limit_errors"`
}

// Runner handles the session loop of a game using the provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	game   Game
	source Source
	sink   Sink

	// Board, if set, receives every snapshot before it is drawn.
	Board *SnapshotBoard

	// Logger is used for limit reports and debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	stats Stats
}

// NewRunner creates a runner. A nil sink selects DiscardSink.
func NewRunner(game Game, source Source, sink Sink, opts ...Option) *Runner {
	if sink == nil {
		sink = DiscardSink
	}
	r := &Runner{
		game:   game,
		source: source,
		sink:   sink,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the loop until the source is exhausted, a terminal action is
// dispatched or ctx is cancelled.
//
// A dispatch that stops at a limit is reported and the loop goes on with the
// state it left behind. io.EOF from the source and termination end the run
// with a nil error; cancellation returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.present(); err != nil {
			return err
		}

		action, err := r.source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("source exhausted")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("input error: %w", err)
		}

		outcome, err := r.game.TryDispatch(action)
		r.record(outcome)
		if err != nil {
			var limitErr *dispatch.LimitError
			if !errors.As(err, &limitErr) {
				return fmt.Errorf("dispatch %s: %w", action, err)
			}
			r.stats.LimitErrors++
			r.Logger.Debug("dispatch stopped at limit", "action", action, "err", err)
			if n, ok := r.sink.(Notifier); ok {
				n.Notify(err.Error())
			}
		}

		if outcome.Terminated {
			r.Logger.Debug("session terminated", "action", action)
			return nil
		}
	}
}

// Stats returns the totals of every dispatch run so far.
func (r *Runner) Stats() Stats {
	return r.stats
}

func (r *Runner) present() error {
	snap := r.game.Snapshot()
	if r.Board != nil {
		r.Board.Publish(snap)
	}
	if err := r.sink.Draw(snap); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

func (r *Runner) record(o dispatch.Outcome) {
	r.stats.Dispatched++
	r.stats.Applied += o.Applied
	r.stats.Cancelled += o.Cancelled
	r.stats.Injected += o.Injected
}
