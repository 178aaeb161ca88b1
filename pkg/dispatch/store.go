package dispatch

// Reducer mutates state in place and reports whether anything changed.
// Actions that match no branch are no-ops and return false.
type Reducer[S, A any] func(state S, action A) bool

// Store owns a State and applies actions to it through a Reducer.
type Store[S, A any] struct {
	state   S
	reducer Reducer[S, A]
}

// NewStore creates a store around the initial state.
// It panics if reducer is nil.
func NewStore[S, A any](initial S, reducer Reducer[S, A]) *Store[S, A] {
	if reducer == nil {
		panic(ErrNilReducer)
	}
	return &Store[S, A]{state: initial, reducer: reducer}
}

// Dispatch applies the action and returns the reducer's changed flag.
func (s *Store[S, A]) Dispatch(action A) bool {
	return s.reducer(s.state, action)
}

// State returns the owned state. Callers must treat it as read-only.
func (s *Store[S, A]) State() S {
	return s.state
}
