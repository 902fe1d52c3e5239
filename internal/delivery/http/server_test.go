package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/config"
	httpDelivery "github.com/timeline-visualizer/internal/delivery/http"
	"github.com/timeline-visualizer/internal/delivery/http/handler"
	"github.com/timeline-visualizer/internal/repository/cache"
	"github.com/timeline-visualizer/internal/repository/memory"
	"github.com/timeline-visualizer/internal/session"
	"github.com/timeline-visualizer/internal/usecase"
)

func newTestServer(t *testing.T, maxUpload int64) *httpDelivery.Server {
	t.Helper()
	logger := zap.NewNop()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			AllowOrigins: "*",
		},
		Timeline: config.TimelineConfig{
			MaxUploadBytes: maxUpload,
			Location:       time.UTC,
			HeatmapLevel:   10,
			EventsLimit:    50,
		},
	}

	timelineUC := usecase.NewTimelineUseCase(session.New(), cfg.Timeline, logger)
	preferencesUC := usecase.NewPreferencesUseCase(
		cache.NewPreferencesRepository(memory.NewCacheRepository(), "test:preferences", 0, logger),
		logger,
	)

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewTimelineHandler(timelineUC, logger),
		handler.NewPreferencesHandler(preferencesUC, logger),
	)
}

func errorCode(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error.Code
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, 1<<20)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t, 1<<20)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp.Body))
}

func TestServer_BodyLimit(t *testing.T) {
	// BodyLimit = MaxUploadBytes + 1 MB
	s := newTestServer(t, 1<<10)

	t.Run("within limit reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline", strings.NewReader(`{"semanticSegments": [`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.App().Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MALFORMED_JSON", errorCode(t, resp.Body))
	})

	t.Run("over limit is rejected before the handler", func(t *testing.T) {
		body := strings.Repeat(" ", 3<<20)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/timeline", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		// fasthttp rejects the request while reading it, app.Test surfaces that as an error
		_, err := s.App().Test(req, -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "body size exceeds the given limit")
	})
}

func TestServer_TimelineRoutesRegistered(t *testing.T) {
	s := newTestServer(t, 1<<20)

	for _, target := range []string{"/api/v1/timeline", "/api/v1/timeline/view", "/api/v1/timeline/bounds", "/api/v1/timeline/heatmap", "/api/v1/timeline/events"} {
		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
		assert.Equal(t, "NO_DATASET", errorCode(t, resp.Body), target)
	}

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
