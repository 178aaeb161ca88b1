package sweeper_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/sweeper"
	"github.com/stretchr/testify/require"
)

type game struct {
	store *dispatch.StoreWithMiddleware[*domain.State, domain.Action]
	rules *sweeper.Rules
}

func newGame(t *testing.T, state *domain.State, limits dispatch.Limits) game {
	t.Helper()
	rules := sweeper.NewRules()
	cfg := dispatch.DefaultConfig[domain.Action]().
		WithLimits(limits).
		WithTerminator(domain.Action.IsQuit)
	store, err := dispatch.NewStoreWithMiddleware(state, sweeper.NewReducer(rand.New(rand.NewSource(1))), rules, cfg)
	require.NoError(t, err)
	return game{store: store, rules: rules}
}

func layout(t *testing.T, rows ...string) *domain.State {
	t.Helper()
	s, err := domain.ParseLayout(rows...)
	require.NoError(t, err)
	return s
}

// singleHazard is a 9x9 board whose only hazard sits in the top-left corner.
func singleHazard(t *testing.T) *domain.State {
	return layout(t,
		"*........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	)
}

func countRevealedSafe(s *domain.State) int {
	n := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Revealed && !c.Hazard {
				n++
			}
		}
	}
	return n
}

func countMarked(s *domain.State) int {
	n := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Marked {
				n++
			}
		}
	}
	return n
}
