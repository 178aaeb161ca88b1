package sweeper

import (
	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
)

// Rules is the game middleware.
//
// Before cancels reveals of revealed, marked or off-grid cells, marks on
// revealed cells, and both once the game is over.
//
// After turns a reveal of an empty cell into a single flat batch of reveals
// computed by FloodFill. The reveals of that batch are counted as they come
// back through Before so that After does not start a new flood fill for each
// of them.
type Rules struct {
	// pendingCascade is the number of injected reveals of the current batch
	// that have not passed through Before yet.
	pendingCascade int
	// inCascade is set by Before while handling one of those reveals.
	inCascade bool
}

var (
	_ dispatch.Middleware[*domain.State, domain.Action] = (*Rules)(nil)
	_ dispatch.Aborter                                  = (*Rules)(nil)
)

// NewRules returns rules with no cascade in flight.
func NewRules() *Rules {
	return &Rules{}
}

// Before implements dispatch.Middleware.
func (r *Rules) Before(action domain.Action, state *domain.State) bool {
	r.inCascade = false
	if action.Kind == domain.ActionReveal && r.pendingCascade > 0 {
		r.pendingCascade--
		r.inCascade = true
	}

	switch action.Kind {
	case domain.ActionReveal:
		cell, ok := state.Cell(action.X, action.Y)
		return ok && state.Phase == domain.Playing && !cell.Revealed && !cell.Marked
	case domain.ActionToggleMark:
		cell, ok := state.Cell(action.X, action.Y)
		return ok && state.Phase == domain.Playing && !cell.Revealed
	}
	return true
}

// After implements dispatch.Middleware.
func (r *Rules) After(action domain.Action, _ bool, state *domain.State) []domain.Action {
	if r.inCascade {
		r.inCascade = false
		return nil
	}
	if action.Kind != domain.ActionReveal {
		return nil
	}

	cell, ok := state.Cell(action.X, action.Y)
	if !ok || state.Phase != domain.Playing || cell.Hazard || cell.Adjacent != 0 {
		return nil
	}

	reveals := FloodFill(state, domain.Point{X: action.X, Y: action.Y})
	r.pendingCascade = len(reveals)
	return reveals
}

// Abort implements dispatch.Aborter. It forgets a cascade whose remaining
// reveals were discarded by the dispatch loop.
func (r *Rules) Abort() {
	r.pendingCascade = 0
	r.inCascade = false
}

// Pending reports how many reveals of the current cascade are still queued.
func (r *Rules) Pending() int {
	return r.pendingCascade
}
