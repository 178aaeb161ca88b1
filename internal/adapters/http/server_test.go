package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cascade/internal/logging"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/observability"
	"github.com/aretw0/cascade/pkg/runner"
)

func serve(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(runner.NewSnapshotBoard(), prometheus.NewRegistry())

	rr := serve(t, handler, "/healthz")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler(runner.NewSnapshotBoard(), prometheus.NewRegistry())

	rr := serve(t, handler, "/info")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "cascade", resp["app"])
	assert.NotEmpty(t, resp["version"])
}

func TestGetState(t *testing.T) {
	board := runner.NewSnapshotBoard()
	handler := NewHandler(board, prometheus.NewRegistry())

	rr := serve(t, handler, "/state")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	state, err := domain.ParseLayout("*..", "...")
	require.NoError(t, err)
	board.Publish(state.Snapshot())

	rr = serve(t, handler, "/state")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.Equal(t, 3, snap.Width)
	assert.Equal(t, 5, snap.TotalSafe)
	assert.Len(t, snap.Cells, 2)
	assert.False(t, snap.Cells[0][0].Hazard, "hazards stay hidden while playing")
	assert.Zero(t, snap.Cells[0][1].Adjacent)
}

func TestGetMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	handler := NewHandler(runner.NewSnapshotBoard(), reg)

	rr := serve(t, handler, "/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cascade_dispatch_actions")
}

func TestStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := Start(ctx, "127.0.0.1:0", NewHandler(runner.NewSnapshotBoard(), prometheus.NewRegistry()), logging.NewNop())
	require.NoError(t, err)

	resp, err := http.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ok")
}
