package dispatch

// Outcome summarises one top-level dispatch call.
type Outcome struct {
	// Changed is true if any reducer call during the dispatch changed state.
	Changed bool
	// Terminated is true if a terminal action was dequeued.
	Terminated bool
	// Applied counts actions the reducer saw.
	Applied int
	// Cancelled counts actions vetoed by Before.
	Cancelled int
	// Injected counts actions returned by After.
	Injected int
	// Depth is the deepest nesting level that was processed.
	Depth int
}

type queued[A any] struct {
	action A
	depth  int
}

// StoreWithMiddleware runs every action through Before, the reducer and After,
// then drains the injected actions in FIFO order under Limits.
type StoreWithMiddleware[S, A any] struct {
	store      *Store[S, A]
	middleware Middleware[S, A]
	config     Config[A]
}

// NewStoreWithMiddleware creates a mediated store. It fails on a nil reducer,
// nil middleware or limits that cannot bound a dispatch.
func NewStoreWithMiddleware[S, A any](initial S, reducer Reducer[S, A], mw Middleware[S, A], cfg Config[A]) (*StoreWithMiddleware[S, A], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}
	if mw == nil {
		return nil, ErrNilMiddleware
	}
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	return &StoreWithMiddleware[S, A]{
		store:      NewStore(initial, reducer),
		middleware: mw,
		config:     resolved,
	}, nil
}

// State returns the owned state. Callers must treat it as read-only.
func (s *StoreWithMiddleware[S, A]) State() S {
	return s.store.State()
}

// Limits returns the bounds applied to every call.
func (s *StoreWithMiddleware[S, A]) Limits() Limits {
	return s.config.Limits
}

// Dispatch runs the pipeline and reports whether state changed.
// A tripped limit is logged; mutations applied before it are kept.
func (s *StoreWithMiddleware[S, A]) Dispatch(action A) bool {
	outcome, err := s.TryDispatch(action)
	if err != nil {
		s.config.Logger.Warn("dispatch aborted", "action", action, "applied", outcome.Applied, "err", err)
	}
	return outcome.Changed
}

// TryDispatch runs the pipeline for action and every action it injects.
//
// Cancellation is not an error. A *LimitError aborts the call and discards the
// remaining queue without rolling back what was already applied.
func (s *StoreWithMiddleware[S, A]) TryDispatch(action A) (Outcome, error) {
	hooks := s.config.Hooks
	if hooks.OnDispatch != nil {
		hooks.OnDispatch(action)
	}

	outcome, err := s.drain(action)

	if hooks.OnComplete != nil {
		hooks.OnComplete(action, outcome, err)
	}
	return outcome, err
}

func (s *StoreWithMiddleware[S, A]) drain(action A) (Outcome, error) {
	var (
		outcome   Outcome
		processed int
		limits    = s.config.Limits
		hooks     = s.config.Hooks
	)

	queue := []queued[A]{{action: action}}
	for head := 0; head < len(queue); head++ {
		item := queue[head]
		queue[head] = queued[A]{}

		if s.config.Terminator != nil && s.config.Terminator(item.action) {
			outcome.Terminated = true
			if head < len(queue)-1 {
				s.abort()
			}
			return outcome, nil
		}

		if !s.middleware.Before(item.action, s.store.State()) {
			outcome.Cancelled++
			if hooks.OnCancel != nil {
				hooks.OnCancel(item.action, item.depth)
			}
			continue
		}

		processed++
		if processed > limits.MaxActions {
			s.abort()
			return outcome, &LimitError{Limit: LimitActions, Bound: limits.MaxActions, Applied: outcome.Applied}
		}

		changed := s.store.Dispatch(item.action)
		outcome.Applied++
		outcome.Changed = outcome.Changed || changed
		if item.depth > outcome.Depth {
			outcome.Depth = item.depth
		}
		if hooks.OnApply != nil {
			hooks.OnApply(item.action, item.depth, changed)
		}

		injected := s.middleware.After(item.action, changed, s.store.State())
		if len(injected) == 0 {
			continue
		}
		next := item.depth + 1
		if next > limits.MaxDepth {
			s.abort()
			return outcome, &LimitError{Limit: LimitDepth, Bound: limits.MaxDepth, Applied: outcome.Applied}
		}
		outcome.Injected += len(injected)
		if hooks.OnInject != nil {
			hooks.OnInject(item.action, item.depth, len(injected))
		}
		for _, a := range injected {
			queue = append(queue, queued[A]{action: a, depth: next})
		}
	}
	return outcome, nil
}

func (s *StoreWithMiddleware[S, A]) abort() {
	if a, ok := s.middleware.(Aborter); ok {
		a.Abort()
	}
}
