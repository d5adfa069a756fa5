package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ridloal/dyfn-shop/internal/platform/logger"
)

type HTTPServer struct {
	httpServer *http.Server
}

func NewHTTPServer(addr string, handler http.Handler) *HTTPServer {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &HTTPServer{httpServer: s}
}

// Run serves until the server is closed. An unexpected listener failure
// calls stopFn so the rest of the process shuts down too.
func (s *HTTPServer) Run(stopFn context.CancelFunc) {
	defer stopFn()

	logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("HTTP server stopped unexpectedly", err)
	}
}

func (s *HTTPServer) Close(ctx context.Context) {
	logger.Info("closing http server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown gracefully", err)
		return
	}
	logger.Info("http server is closed")
}
