package main

import (
	"fmt"

	"github.com/dmatveev/swarm-console/internal/adapter"
	"github.com/dmatveev/swarm-console/internal/client"
	"github.com/dmatveev/swarm-console/internal/config"
	"github.com/dmatveev/swarm-console/internal/i18n"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/internal/service"
	"github.com/dmatveev/swarm-console/internal/store"
	"github.com/dmatveev/swarm-console/internal/tui"
)

const appRole = "swarm-console"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger(appRole, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(appRole, cfg.App.LogPath)

	gateway, err := adapter.NewHTTPServerGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server gateway")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, gateway, i18n.Resolve(i18n.LocaleEN), log)

	ui := tui.New(services, localStorage.UI, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
