package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	ports "blog-service/internal/domain/ports/output"
)

func Recovery(log ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					log.Error("Panic recovered",
						slog.String("request_id", RequestIDFrom(r.Context())),
						slog.String("panic", fmt.Sprint(rv)),
						slog.String("stack", string(debug.Stack())),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
