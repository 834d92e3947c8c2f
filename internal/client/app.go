package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmatveev/swarm-console/internal/config"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/internal/service"
	"github.com/dmatveev/swarm-console/internal/tui"
	"github.com/dmatveev/swarm-console/internal/workers"
)

type App struct {
	services *service.ClientServices
	jobs     *workers.Workers
	ui       *tui.TUI
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	jobs := workers.NewWorkers(
		workers.NewHealthProber(services.Health, workersCfg.HealthInterval),
	)

	return &App{services: services, jobs: jobs, ui: ui, log: log}, nil
}

// Run starts the background workers and blocks inside the UI event loop
// until the user quits. Session bootstrap (adopting a token persisted by
// a previous run) happens asynchronously inside the UI startup.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.jobs.StartAll(ctx)
	defer a.jobs.StopAll()

	a.log.Info().Msg("console started")

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}

	a.log.Info().Msg("console stopped")

	return nil
}
