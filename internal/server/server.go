package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-job-alerts/internal/config"
	"github.com/MKhiriev/go-job-alerts/internal/handler"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
)

var stopSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT}

type server struct {
	http   *httpServer
	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, log *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	log.Info().Str("address", cfg.HTTPAddress).Msg("creating job-alerts server")
	return &server{
		http:   newHTTPServer(handlers.HTTP.Init(), cfg, log),
		logger: log,
	}, nil
}

// RunServer blocks until a stop signal arrives and in-flight requests finish.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), stopSignals...)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.http.Shutdown()
}

// run returns when ctx is cancelled or the listener dies on its own.
func (s *server) run(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.http.RunServer()
	}()

	select {
	case <-stopped:
		s.logger.Warn().Msg("listener exited before a stop signal")
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, draining requests")
		s.Shutdown()
		<-stopped
		s.logger.Info().Msg("server stopped")
	}
}
