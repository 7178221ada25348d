package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-job-alerts/internal/adapter"
	"github.com/MKhiriev/go-job-alerts/internal/config"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/internal/tui"
	"github.com/MKhiriev/go-job-alerts/models"
	"golang.org/x/term"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	tui      *tui.TUI

	isTerminal func() bool
	logger     *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger.Component("adapter"))
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.Component("storage"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, logger)

	return &App{
		storages:   storages,
		services:   services,
		tui:        tui.New(services, cfg.UI, build, logger.Component("tui")),
		isTerminal: stdioIsTerminal,
		logger:     logger,
	}, nil
}

// Run starts the screens and blocks until the user quits. The session
// storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("close local storage")
		}
	}()

	if !a.isTerminal() {
		return ErrNotATerminal
	}

	a.logger.Info().Msg("client started")
	return a.tui.Run(ctx)
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
