package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cascade"
	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/runner"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Next(ctx context.Context) (domain.Action, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Action), args.Error(1)
}

func newGame(t *testing.T, limits dispatch.Limits, rows ...string) *cascade.Game {
	t.Helper()
	state, err := domain.ParseLayout(rows...)
	require.NoError(t, err)
	game, err := cascade.New(cascade.WithState(state), cascade.WithLimits(limits))
	require.NoError(t, err)
	return game
}

func TestRunner_Run_PlaysUntilEOF(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*....", ".....", ".....")
	var drawn []domain.Snapshot
	sink := runner.SinkFunc(func(s domain.Snapshot) error {
		drawn = append(drawn, s)
		return nil
	})

	r := runner.NewRunner(game, runner.NewSliceSource(domain.ToggleMark(0, 0), domain.Reveal(4, 2)), sink)
	require.NoError(t, r.Run(context.Background()))

	require.Len(t, drawn, 3, "one draw before every read")
	assert.Equal(t, 0, drawn[0].Marked)
	assert.Equal(t, 1, drawn[1].Marked)
	assert.Equal(t, domain.Won, drawn[2].Phase)

	assert.Equal(t, runner.Stats{Dispatched: 2, Applied: 15, Injected: 13}, r.Stats())
}

func TestRunner_Run_StopsOnQuit(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*..", "...")
	src := new(mockSource)
	src.On("Next", mock.Anything).Return(domain.CursorLeft(), nil).Once()
	src.On("Next", mock.Anything).Return(domain.Quit(), nil).Once()

	r := runner.NewRunner(game, src, nil)
	require.NoError(t, r.Run(context.Background()))

	src.AssertExpectations(t)
	assert.Equal(t, 2, r.Stats().Dispatched)
}

func TestRunner_Run_LimitErrorContinues(t *testing.T) {
	game := newGame(t, dispatch.Limits{MaxDepth: 4, MaxActions: 3}, "*.........", "..........", "..........")
	var out bytes.Buffer
	sink := runner.NewTextSink(&out, nil)

	r := runner.NewRunner(game, runner.NewSliceSource(domain.Reveal(9, 2), domain.ToggleMark(0, 0)), sink)
	require.NoError(t, r.Run(context.Background()))

	stats := r.Stats()
	assert.Equal(t, 1, stats.LimitErrors)
	assert.Equal(t, 2, stats.Dispatched)
	assert.Equal(t, 3, game.Snapshot().Revealed, "partial cascade is kept")
	assert.Equal(t, 1, game.Snapshot().Marked, "the session went on")
	assert.Contains(t, out.String(), "! max_actions exceeded")
}

func TestRunner_Run_LimitErrorLeavesWarningsToHooks(t *testing.T) {
	game := newGame(t, dispatch.Limits{MaxDepth: 4, MaxActions: 3}, "*.........", "..........", "..........")
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	r := runner.NewRunner(game, runner.NewSliceSource(domain.Reveal(9, 2)), nil, runner.WithLogger(logger))
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 1, r.Stats().LimitErrors)
	assert.Empty(t, logs.String())
}

func TestRunner_Run_ContextCancelled(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*..", "...")
	ctx, cancel := context.WithCancel(context.Background())

	src := runner.SourceFunc(func(ctx context.Context) (domain.Action, error) {
		cancel()
		<-ctx.Done()
		return domain.Action{}, errors.New("read interrupted")
	})

	r := runner.NewRunner(game, src, nil)
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestRunner_Run_SourceError(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*..", "...")
	src := new(mockSource)
	src.On("Next", mock.Anything).Return(domain.Action{}, io.ErrUnexpectedEOF).Once()

	err := runner.NewRunner(game, src, nil).Run(context.Background())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRunner_Run_SinkError(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*..", "...")
	boom := errors.New("screen gone")
	sink := runner.SinkFunc(func(domain.Snapshot) error { return boom })

	err := runner.NewRunner(game, runner.NewSliceSource(), sink).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRunner_Run_PublishesSnapshots(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*..", "...")
	board := runner.NewSnapshotBoard()
	_, ok := board.Latest()
	require.False(t, ok)

	r := runner.NewRunner(game, runner.NewSliceSource(domain.ToggleMark(0, 0)), nil, runner.WithBoard(board))
	require.NoError(t, r.Run(context.Background()))

	snap, ok := board.Latest()
	require.True(t, ok)
	assert.Equal(t, 1, snap.Marked)
}

func TestJSONSink(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*..", "...")
	var out bytes.Buffer
	sink := runner.NewJSONSink(&out)

	require.NoError(t, sink.Draw(game.Snapshot()))
	sink.Notify("hello")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, "playing", decoded["phase"])
	assert.Equal(t, float64(5), decoded["total_safe"])
	assert.JSONEq(t, `{"notice":"hello"}`, lines[1])
}

func TestPlainBoard(t *testing.T) {
	game := newGame(t, dispatch.DefaultLimits(), "*..", "...")
	game.Dispatch(domain.ToggleMark(0, 0))
	game.Dispatch(domain.Reveal(1, 0))
	game.Dispatch(domain.Reveal(2, 1))

	assert.Equal(t, "F 1 .\n# 1 .\nplaying  revealed 4/5  marks 1/1", runner.PlainBoard(game.Snapshot()))
}
