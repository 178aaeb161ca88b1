/*
Package runner drives a game session from an input source to an output sink.

The runner is the only loop in the process. Each iteration it takes a snapshot
of the game, publishes it on an optional SnapshotBoard for concurrent readers,
draws it on the Sink, reads the next action from the Source and dispatches it.

# Key Components

  - Runner: the session loop.
  - Source: where actions come from (terminal keys, scripts, tests).
  - Sink: where snapshots go (terminal screen, text, JSON lines).
  - SnapshotBoard: the latest snapshot, safe to read from other goroutines.

# Usage

	r := runner.NewRunner(game, source, runner.NewTextSink(os.Stdout, render),
		runner.WithLogger(logger),
		runner.WithBoard(board),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
