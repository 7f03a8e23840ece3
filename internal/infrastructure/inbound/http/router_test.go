package delivery_http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	delivery_http "blog-service/internal/infrastructure/inbound/http"
	"blog-service/internal/infrastructure/inbound/http/middleware"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	"blog-service/internal/infrastructure/inbound/http/render"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/validation"
	metrics_mocks "blog-service/mocks/metrics"
	mockpost "blog-service/mocks/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, health delivery_http.HealthCheck) (http.Handler, *metrics_mocks.MetricsProvider) {
	t.Helper()
	log := logger.New("test")
	rd, err := render.NewRenderer(log)
	require.NoError(t, err)

	metrics := metrics_mocks.NewMetricsProvider(t)
	metrics.On("IncrementHTTPRequests", mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.On("RecordHTTPRequestDuration", mock.Anything, mock.Anything, mock.Anything).Maybe()

	api := post_http.NewPostHTTPService(mockpost.NewService(t), validation.New(), rd, "", log)
	return delivery_http.NewRouter(api, rd, log, metrics, health), metrics
}

func TestRouter_Health(t *testing.T) {
	tests := []struct {
		name   string
		health delivery_http.HealthCheck
		want   int
	}{
		{name: "no check", health: nil, want: http.StatusOK},
		{name: "healthy", health: func(ctx context.Context) error { return nil }, want: http.StatusOK},
		{name: "unhealthy", health: func(ctx context.Context) error { return errors.New("down") }, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newHandler(t, tt.health)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "unknown path", method: http.MethodGet, path: "/nowhere/", want: http.StatusNotFound},
		{name: "comment via GET", method: http.MethodGet, path: "/blog/3/comment/", want: http.StatusMethodNotAllowed},
		{name: "delete share", method: http.MethodDelete, path: "/blog/3/share/", want: http.StatusMethodNotAllowed},
		{name: "non numeric post id", method: http.MethodGet, path: "/blog/abc/share/", want: http.StatusNotFound},
		{name: "root redirects", method: http.MethodGet, path: "/", want: http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newHandler(t, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
