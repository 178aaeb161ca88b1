package cascade

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/sweeper"
)

// Game is the high-level entry point of the library.
// It owns the state, the rules middleware and the dispatch store.
type Game struct {
	store *dispatch.StoreWithMiddleware[*domain.State, domain.Action]
	rules *sweeper.Rules
	seed  int64

	board  domain.Board
	state  *domain.State
	limits dispatch.Limits
	hooks  dispatch.Hooks[domain.Action]
	logger *slog.Logger
}

// Option defines a functional option for configuring the Game.
type Option func(*Game)

// WithDifficulty selects one of the preset boards.
func WithDifficulty(d domain.Difficulty) Option {
	return func(g *Game) {
		g.board = d.Board()
	}
}

// WithBoard selects an arbitrary board, preset or custom.
func WithBoard(b domain.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// WithSeed fixes the hazard placement of the first and every later grid.
// Zero picks a random seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithState starts from a prepared state instead of a generated grid, for
// example one built by domain.ParseLayout. The board option is ignored.
func WithState(state *domain.State) Option {
	return func(g *Game) {
		g.state = state
	}
}

// WithLimits bounds every dispatch call.
func WithLimits(limits dispatch.Limits) Option {
	return func(g *Game) {
		g.limits = limits
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks dispatch.Hooks[domain.Action]) Option {
	return func(g *Game) {
		g.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the game.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a game. Without options it plays a beginner board with a
// random seed under the default limits.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		board:  domain.Beginner.Board(),
		limits: dispatch.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.seed == 0 {
		seed, err := randomSeed()
		if err != nil {
			return nil, err
		}
		g.seed = seed
	}
	rng := rand.New(rand.NewSource(g.seed))

	state := g.state
	if state == nil {
		var err error
		state, err = domain.NewState(g.board, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to create grid: %w", err)
		}
	}

	g.rules = sweeper.NewRules()
	cfg := dispatch.DefaultConfig[domain.Action]().
		WithLimits(g.limits).
		WithTerminator(domain.Action.IsQuit).
		WithHooks(g.hooks).
		WithLogger(g.logger)

	store, err := dispatch.NewStoreWithMiddleware(state, sweeper.NewReducer(rng), g.rules, cfg)
	if err != nil {
		return nil, err
	}
	g.store = store
	g.state = nil
	g.logger.Debug("game created", "board", state.Board.Difficulty, "width", state.Width, "height", state.Height, "hazards", state.Hazards, "seed", g.seed)
	return g, nil
}

// Dispatch applies action and everything it cascades into, and reports
// whether the state changed. A tripped limit is logged, not returned.
func (g *Game) Dispatch(action domain.Action) bool {
	return g.store.Dispatch(action)
}

// TryDispatch is Dispatch with the full outcome and the limit error, if any.
func (g *Game) TryDispatch(action domain.Action) (dispatch.Outcome, error) {
	return g.store.TryDispatch(action)
}

// Snapshot returns a copy of the current state for rendering.
func (g *Game) Snapshot() domain.Snapshot {
	return g.store.State().Snapshot()
}

// Limits returns the bounds applied to every dispatch call.
func (g *Game) Limits() dispatch.Limits {
	return g.store.Limits()
}

// Seed returns the seed of the random source, for reproducing a session.
func (g *Game) Seed() int64 {
	return g.seed
}

func randomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
