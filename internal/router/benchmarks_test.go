package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mvelja/benchtab/internal/backend"
	"github.com/mvelja/benchtab/internal/catalog"
	"github.com/mvelja/benchtab/internal/report"
	"github.com/mvelja/benchtab/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	metrics []string
}

func (s *stubBackend) Statistics(context.Context, string, string, backend.StatWindow) ([]backend.Datapoint, error) {
	return nil, nil
}

func (s *stubBackend) AlarmsForMetric(context.Context, string, string) ([]backend.Alarm, error) {
	return nil, nil
}

func (s *stubBackend) ListMetrics(context.Context, string) ([]string, error) {
	return s.metrics, nil
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	config := `
benchmarks:
  - Type: Training CV
    Metric Prefix: mxnet.resnet50
    Metric Suffix: p3
    Framework: MXNet
`
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0644))

	cat, err := catalog.New(context.Background(), &stubBackend{metrics: []string{"a", "b"}}, catalog.Options{
		ConfigPath: path,
	})
	require.NoError(t, err)

	e := echo.New()
	NewCatalogRouter(e, cat, server.NewOkHealthChecker()).Bind()
	return e
}

func doRequest(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBenchmarksHandler(t *testing.T) {
	e := newTestRouter(t)

	t.Run("known type", func(t *testing.T) {
		rec := doRequest(e, "/benchmarks/Training%20CV")
		require.Equal(t, http.StatusOK, rec.Code)

		var r report.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
		assert.Equal(t, "Training CV", r.Type)
		assert.Contains(t, r.Headers, "Throughput (/s)")
		require.Len(t, r.Rows, 1)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := doRequest(e, "/benchmarks/NoSuchType")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown benchmark type")
	})
}

func TestMetricsHandler(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(e, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"a", "b"}, body["metrics"])
}

func TestHealthHandler(t *testing.T) {
	e := newTestRouter(t)
	rec := doRequest(e, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}
