package dispatch

// Hooks are optional observability callbacks invoked by StoreWithMiddleware.
// They run synchronously inside the dispatch loop and must not dispatch.
type Hooks[A any] struct {
	// OnDispatch runs once at the start of every top-level call.
	OnDispatch func(action A)
	// OnCancel runs when Before vetoes an action.
	OnCancel func(action A, depth int)
	// OnApply runs after the reducer has seen an action.
	OnApply func(action A, depth int, changed bool)
	// OnInject runs when After returned a non-empty batch.
	OnInject func(action A, depth int, injected int)
	// OnComplete runs once at the end of every top-level call.
	OnComplete func(action A, outcome Outcome, err error)
}
