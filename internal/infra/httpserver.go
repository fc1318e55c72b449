package infra

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// HTTPServer is the API listener with the configured timeouts.
type HTTPServer struct {
	server *http.Server
	grace  time.Duration
}

// NewHTTPServer binds handler to cfg.Port. In-flight requests get
// cfg.HTTPIdleTimeout to finish once Run's context is cancelled.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.HTTPReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.HTTPWriteTimeout,
			IdleTimeout:       cfg.HTTPIdleTimeout,
		},
		grace: cfg.HTTPIdleTimeout,
	}
}

// Run serves until ctx is done, then drains connections. It returns the
// listen error if the server never came up, or the shutdown error.
func (s *HTTPServer) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
