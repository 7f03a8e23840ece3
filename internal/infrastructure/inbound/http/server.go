package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ports "blog-service/internal/domain/ports/output"
)

type Server struct {
	port   int
	log    ports.Logger
	server *http.Server
}

// NewServer builds the listener up front so Shutdown is safe to call from
// another goroutine at any point, including before Run.
func NewServer(handler http.Handler, address string, port int, readTimeout, writeTimeout time.Duration, log ports.Logger) *Server {
	return &Server{
		port: port,
		log:  log,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", address, port),
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readTimeout,
			WriteTimeout:      writeTimeout,
		},
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
