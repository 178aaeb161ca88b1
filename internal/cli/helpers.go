package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	httpAdapter "github.com/aretw0/cascade/internal/adapters/http"
	"github.com/aretw0/cascade/internal/config"
	"github.com/aretw0/cascade/internal/logging"
	"github.com/aretw0/cascade/internal/telemetry"
	"github.com/aretw0/cascade/pkg/runner"
)

// setupTelemetry is replaced in tests.
var setupTelemetry = telemetry.Setup

// session bundles what play and script mode share.
type session struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	board    *runner.SnapshotBoard
	shutdown func(context.Context) error
}

// openSession prepares logging, telemetry and, when configured, the
// observability HTTP endpoint. Call close when done.
func openSession(ctx context.Context, cfg config.Config, stderr io.Writer) (*session, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	s := &session{
		logger:   logging.NewWithWriter(stderr, level),
		registry: prometheus.NewRegistry(),
		board:    runner.NewSnapshotBoard(),
	}

	s.shutdown, err = setupTelemetry(ctx, "cascade")
	if err != nil {
		s.logger.Warn("tracing disabled", "error", err)
	}

	if cfg.MetricsAddr != "" {
		addr, err := httpAdapter.Start(ctx, cfg.MetricsAddr, httpAdapter.NewHandler(s.board, s.registry), s.logger)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("failed to serve %s: %w", cfg.MetricsAddr, err)
		}
		s.logger.Info("observability endpoint", "addr", addr)
	}
	return s, nil
}

func (s *session) close() {
	if s.shutdown == nil {
		return
	}
	if err := s.shutdown(context.Background()); err != nil {
		s.logger.Warn("telemetry shutdown failed", "error", err)
	}
}

// colorProfile picks the colour profile for w: the environment's when w is a
// terminal, plain ASCII otherwise.
func colorProfile(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}
