/*
Package dispatch implements a deterministic, single-threaded action pipeline.

Actions are applied to a State by a Reducer. A Middleware intercepts every
action twice: Before may veto it (the reducer is skipped and nothing else
happens), After may return follow-up actions that are fed back through the
same pipeline.

Injected actions never recurse. StoreWithMiddleware drains an explicit FIFO
queue in which every entry carries the nesting depth at which it was produced,
so cascades stay ordered and bounded by Limits even though the call stack does
not grow.

# Usage

	cfg := dispatch.DefaultConfig[Action]().
		WithLimits(dispatch.Limits{MaxDepth: 4096, MaxActions: 200_000}).
		WithTerminator(isQuit)
	store, err := dispatch.NewStoreWithMiddleware(state, reducer, rules, cfg)
	if err != nil {
		log.Fatal(err)
	}

	outcome, err := store.TryDispatch(action)
	if errors.Is(err, dispatch.ErrLimitExceeded) {
		// State keeps whatever was applied before the limit tripped.
	}
	if outcome.Terminated {
		return
	}

Store is the unmediated form for callers that need neither cancellation nor
injection.
*/
package dispatch
