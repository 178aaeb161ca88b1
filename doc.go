/*
Package cascade is a deterministic action-dispatch engine with a minesweeper
style game as its reference domain.

Every change to the game goes through a single pipeline: middleware may veto
an action before the reducer sees it, and may inject follow-up actions after
it. Injected actions are drained breadth-first from a work queue, never by
recursion, and every call is bounded by a maximum nesting depth and a maximum
number of applied actions.

# Concept

Revealing an empty cell opens the whole connected empty region plus its
numbered border. The rules middleware computes that region once and feeds it
back through the pipeline as a flat batch of reveals, so each cell still
passes the same guards and the same reducer as a direct player action.

# Key Features

  - Deterministic: the same seed and the same actions give the same game.
  - Bounded: a runaway cascade stops with a *dispatch.LimitError instead of
    exhausting the stack; what was applied before the limit is kept.
  - Observable: dispatch hooks feed logs, prometheus metrics and traces.

# Usage

	game, err := cascade.New(
		cascade.WithDifficulty(domain.Beginner),
		cascade.WithSeed(42),
	)
	if err != nil {
		log.Fatal(err)
	}

	game.Dispatch(domain.Reveal(4, 4))
	snap := game.Snapshot()
	fmt.Println(snap.Phase, snap.Revealed, "/", snap.TotalSafe)
*/
package cascade
