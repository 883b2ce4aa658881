// Package httpserver exposes the Knight Ride HTTP/JSON API on gin. It
// composes the services behind authenticated and unauthenticated routes and
// maps domain errors onto HTTP status codes.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/knightride/knightride/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	srv    *http.Server
	logger logging.Logger
}

func NewServer(addr string, h *Handler, logger logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:    addr,
			Handler: NewRouter(h),
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.srv.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
