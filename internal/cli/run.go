package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/cascade/internal/config"
	"github.com/aretw0/cascade/internal/presentation/tui"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/runner"
)

// RunOptions contains the configuration of the play and script commands.
type RunOptions struct {
	Config config.Config

	// ScriptPath is the script to replay; empty or "-" reads Stdin.
	ScriptPath string
	// Trace prints the board after every scripted action.
	Trace bool
	// JSON switches script output to JSON lines.
	JSON bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// RunPlay runs an interactive session on the terminal until the player quits
// or a signal arrives.
func RunPlay(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	signals := runner.NewSignalManager(ctx)
	defer signals.Stop()
	ctx = signals.Context()

	s, err := openSession(ctx, opts.Config, opts.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	game, err := createGame(opts.Config, s.logger, s.registry)
	if err != nil {
		return err
	}

	screen, err := tui.OpenScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Close()

	r := runner.NewRunner(game, screen, screen, runner.WithLogger(s.logger), runner.WithBoard(s.board))
	return handleExecutionError(r.Run(ctx))
}

// RunScript replays a script headlessly and prints the final board and a
// summary line.
func RunScript(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	signals := runner.NewSignalManager(ctx)
	defer signals.Stop()
	ctx = signals.Context()

	actions, err := readScript(opts)
	if err != nil {
		return err
	}

	s, err := openSession(ctx, opts.Config, opts.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	game, err := createGame(opts.Config, s.logger, s.registry)
	if err != nil {
		return err
	}

	var sink runner.Sink
	if opts.JSON {
		sink = runner.NewJSONSink(opts.Stdout)
	} else {
		sink = runner.NewTextSink(opts.Stdout, tui.BoardRenderer(colorProfile(opts.Stdout)))
	}
	traced := sink
	if !opts.Trace {
		traced = quietSink{notifier: sink}
	}

	r := runner.NewRunner(game, runner.NewSliceSource(actions...), traced, runner.WithLogger(s.logger), runner.WithBoard(s.board))
	if err := handleExecutionError(r.Run(ctx)); err != nil {
		return err
	}

	final := game.Snapshot()
	if !opts.Trace {
		if err := sink.Draw(final); err != nil {
			return err
		}
	}
	return printSummary(opts, final, r.Stats())
}

func readScript(opts RunOptions) ([]domain.Action, error) {
	if opts.ScriptPath == "" || opts.ScriptPath == "-" {
		return ParseScript(opts.Stdin)
	}
	f, err := os.Open(opts.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

func printSummary(opts RunOptions, snap domain.Snapshot, stats runner.Stats) error {
	if opts.JSON {
		return runner.NewJSONSink(opts.Stdout).Encoder.Encode(map[string]any{
			"phase":    snap.Phase,
			"revealed": snap.Revealed,
			"safe":     snap.TotalSafe,
			"stats":    stats,
		})
	}
	_, err := fmt.Fprintf(opts.Stdout, "%s after %d actions (%d applied, %d cancelled, %d injected, %d limit errors)\n",
		snap.Phase, stats.Dispatched, stats.Applied, stats.Cancelled, stats.Injected, stats.LimitErrors)
	return err
}

// quietSink drops intermediate boards but still forwards notices.
type quietSink struct {
	notifier runner.Sink
}

func (quietSink) Draw(domain.Snapshot) error { return nil }

func (q quietSink) Notify(message string) {
	if n, ok := q.notifier.(runner.Notifier); ok {
		n.Notify(message)
	}
}

// handleExecutionError treats an interrupted session as a clean exit.
func handleExecutionError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
