package dispatch

// Middleware intercepts every dispatched action, including injected ones.
//
// Middleware reads state but never writes it; the reducer is the only writer.
type Middleware[S, A any] interface {
	// Before decides whether the action reaches the reducer.
	// Returning false drops the action: no state change and no After call.
	Before(action A, state S) bool

	// After is called once Before allowed the action, whether or not the reducer
	// changed anything. The returned actions are processed in order through the
	// same pipeline.
	After(action A, changed bool, state S) []A
}

// Aborter is implemented by middleware that keeps per-call bookkeeping.
// Abort is called when a dispatch call discards queued actions it never
// processed, so the bookkeeping can be reset.
type Aborter interface {
	Abort()
}

// MiddlewareFuncs adapts plain functions to the Middleware interface.
// A nil BeforeFunc allows everything; a nil AfterFunc injects nothing.
type MiddlewareFuncs[S, A any] struct {
	BeforeFunc func(action A, state S) bool
	AfterFunc  func(action A, changed bool, state S) []A
}

// Before implements Middleware.
func (m MiddlewareFuncs[S, A]) Before(action A, state S) bool {
	if m.BeforeFunc == nil {
		return true
	}
	return m.BeforeFunc(action, state)
}

// After implements Middleware.
func (m MiddlewareFuncs[S, A]) After(action A, changed bool, state S) []A {
	if m.AfterFunc == nil {
		return nil
	}
	return m.AfterFunc(action, changed, state)
}

// Chain composes middleware. Before stops at the first veto; After collects
// the injections of every member in member order.
type Chain[S, A any] []Middleware[S, A]

// NewChain creates a chain from the given middleware.
func NewChain[S, A any](mws ...Middleware[S, A]) Chain[S, A] {
	return Chain[S, A](mws)
}

// Before implements Middleware.
func (c Chain[S, A]) Before(action A, state S) bool {
	for _, m := range c {
		if !m.Before(action, state) {
			return false
		}
	}
	return true
}

// After implements Middleware.
func (c Chain[S, A]) After(action A, changed bool, state S) []A {
	var out []A
	for _, m := range c {
		out = append(out, m.After(action, changed, state)...)
	}
	return out
}

// Abort forwards to every member that implements Aborter.
func (c Chain[S, A]) Abort() {
	for _, m := range c {
		if a, ok := m.(Aborter); ok {
			a.Abort()
		}
	}
}
