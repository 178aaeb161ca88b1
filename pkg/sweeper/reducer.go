package sweeper

import (
	"math/rand"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
)

// NewReducer returns the game reducer. rng places hazards whenever a new grid
// is generated; passing a seeded source makes whole sessions reproducible.
//
// The reducer trusts Rules for gameplay guards, but stays safe without them:
// out-of-bounds targets and repeated reveals are no-ops.
func NewReducer(rng *rand.Rand) dispatch.Reducer[*domain.State, domain.Action] {
	return func(state *domain.State, action domain.Action) bool {
		switch action.Kind {
		case domain.ActionReveal:
			return reveal(state, action.X, action.Y)
		case domain.ActionToggleMark:
			return toggleMark(state, action.X, action.Y)
		case domain.ActionCursorUp:
			return moveCursor(state, 0, -1)
		case domain.ActionCursorDown:
			return moveCursor(state, 0, 1)
		case domain.ActionCursorLeft:
			return moveCursor(state, -1, 0)
		case domain.ActionCursorRight:
			return moveCursor(state, 1, 0)
		case domain.ActionSetDifficulty:
			return reset(state, action.Difficulty.Board(), rng)
		case domain.ActionNewGame:
			return reset(state, state.Board, rng)
		}
		return false
	}
}

func reveal(state *domain.State, x, y int) bool {
	if !state.InBounds(x, y) {
		return false
	}
	cell := &state.Cells[y][x]
	if cell.Revealed {
		return false
	}
	cell.Revealed = true

	if cell.Hazard {
		state.Phase = domain.Lost
		return true
	}
	state.Revealed++
	if state.Revealed == state.TotalSafe {
		state.Phase = domain.Won
	}
	return true
}

func toggleMark(state *domain.State, x, y int) bool {
	if !state.InBounds(x, y) {
		return false
	}
	cell := &state.Cells[y][x]
	if cell.Revealed {
		return false
	}
	if cell.Marked {
		cell.Marked = false
		if state.Marked > 0 {
			state.Marked--
		}
	} else {
		cell.Marked = true
		state.Marked++
	}
	return true
}

func moveCursor(state *domain.State, dx, dy int) bool {
	next := domain.Point{X: state.Cursor.X + dx, Y: state.Cursor.Y + dy}
	if !state.InBounds(next.X, next.Y) {
		return false
	}
	state.Cursor = next
	return true
}

// reset replaces the state in place. An invalid board leaves it untouched.
func reset(state *domain.State, board domain.Board, rng *rand.Rand) bool {
	fresh, err := domain.NewState(board, rng)
	if err != nil {
		return false
	}
	*state = *fresh
	return true
}
