package delivery_http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/middleware"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	"blog-service/internal/infrastructure/inbound/http/render"

	"github.com/gorilla/mux"
)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

func NewRouter(postAPI *post_http.PostHTTPService, rd *render.Renderer, log ports.Logger, metrics ports.MetricsProvider, health HealthCheck) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.Metrics(metrics))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd.Error(w, r, http.StatusNotFound, "page not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.HandleFunc("/health", healthHandler(rd, log, health)).Methods(http.MethodGet)
	router.Handle("/", http.RedirectHandler("/blog/", http.StatusFound)).Methods(http.MethodGet)
	postAPI.Register(router)

	var handler http.Handler = router
	handler = middleware.Logger(log)(handler)
	handler = middleware.Recovery(log)(handler)
	handler = middleware.RequestID(handler)
	return handler
}

func healthHandler(rd *render.Renderer, log ports.Logger, health HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()
			if err := health(ctx); err != nil {
				log.Warn("Health check failed", slog.String("error", err.Error()))
				rd.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		rd.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
