// Command ghtrend browses the most-starred GitHub repositories created recently.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/ghtrend/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ghtrend/internal/adapters/driven/desktop"
	"github.com/custodia-labs/ghtrend/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/cli"
	"github.com/custodia-labs/ghtrend/internal/connectors/github"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
	"github.com/custodia-labs/ghtrend/internal/core/services"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the adapters into the core services.
func buildServices(configDir string) (*cli.Services, error) {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("Config file unavailable, settings will not persist: %v", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	client, err := github.NewClient(http.DefaultClient, settings.GitHub.APIURL, settings.GitHub.RequestsPerSecond)
	if err != nil {
		return nil, fmt.Errorf("create github client: %w", err)
	}

	return &cli.Services{
		Feed:     services.NewFeedService(client, settings.Feed),
		Settings: settingsService,
		Actions:  services.NewRepositoryActionService(desktop.NewBrowser(), desktop.NewClipboard()),
	}, nil
}
