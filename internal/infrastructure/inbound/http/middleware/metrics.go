package middleware

import (
	"net/http"
	"strconv"
	"time"

	ports "blog-service/internal/domain/ports/output"

	"github.com/gorilla/mux"
)

// Metrics labels requests by route template so path parameters do not blow up cardinality.
func Metrics(metrics ports.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := wrap(w)

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			metrics.IncrementHTTPRequests(route, r.Method, strconv.Itoa(rec.status))
			metrics.RecordHTTPRequestDuration(route, r.Method, time.Since(start))
		})
	}
}
