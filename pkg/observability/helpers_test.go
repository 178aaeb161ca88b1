package observability

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/sweeper"
)

func newStore(t *testing.T, limits dispatch.Limits, hooks dispatch.Hooks[domain.Action]) *dispatch.StoreWithMiddleware[*domain.State, domain.Action] {
	t.Helper()
	state, err := domain.ParseLayoutText(strings.Join([]string{
		"*........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	}, "\n"))
	require.NoError(t, err)

	cfg := dispatch.DefaultConfig[domain.Action]().
		WithLimits(limits).
		WithTerminator(domain.Action.IsQuit).
		WithHooks(hooks)
	store, err := dispatch.NewStoreWithMiddleware(state, sweeper.NewReducer(rand.New(rand.NewSource(1))), sweeper.NewRules(), cfg)
	require.NoError(t, err)
	return store
}
