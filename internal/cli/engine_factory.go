package cli

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/cascade"
	"github.com/aretw0/cascade/internal/config"
	"github.com/aretw0/cascade/internal/telemetry"
	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/observability"
)

// createGame initializes a game with standard CLI conventions: the configured
// board, seed and limits, plus logging, metrics and tracing hooks.
func createGame(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*cascade.Game, error) {
	board, err := cfg.GameBoard()
	if err != nil {
		return nil, err
	}

	hooks, err := createHooks(logger, reg)
	if err != nil {
		return nil, err
	}

	game, err := cascade.New(
		cascade.WithBoard(board),
		cascade.WithSeed(cfg.Seed),
		cascade.WithLimits(cfg.DispatchLimits()),
		cascade.WithLogger(logger),
		cascade.WithHooks(hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing game: %w", err)
	}
	logger.Info("game ready", "board", board.Difficulty, "seed", game.Seed())
	return game, nil
}

func createHooks(logger *slog.Logger, reg prometheus.Registerer) (dispatch.Hooks[domain.Action], error) {
	all := []dispatch.Hooks[domain.Action]{observability.LoggingHooks(logger)}

	if reg != nil {
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return dispatch.Hooks[domain.Action]{}, fmt.Errorf("failed to register metrics: %w", err)
		}
		all = append(all, metrics.Hooks())
	}
	if telemetry.Enabled() {
		all = append(all, observability.TracingHooks(telemetry.Tracer()))
	}
	return observability.MergeHooks(all...), nil
}
