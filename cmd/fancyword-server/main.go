package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/at-ishikawa/fancyword/internal/bootstrap"
	"github.com/at-ishikawa/fancyword/internal/config"
	"github.com/at-ishikawa/fancyword/internal/editor"
	"github.com/at-ishikawa/fancyword/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()
	setupLogger(os.Getenv("FANCYWORD_DEBUG") != "")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	ctx := context.Background()
	providers, err := bootstrap.NewProviders(ctx, cfg, bootstrap.ProviderOptions{Supervise: true})
	if err != nil {
		return fmt.Errorf("bootstrap.NewProviders() > %w", err)
	}

	app := bootstrap.New()
	app.AddShutdownHook(func(context.Context) error {
		return providers.Close()
	})
	if providers.Supervisor != nil {
		app.AddShutdownHook(providers.Supervisor.Stop)
		// Start early so the model is loaded before the first request
		if err := providers.Supervisor.EnsureRunning(ctx); err != nil {
			slog.Default().Warn("word2vec-api server could not be started, will retry on the next query", "error", err)
		}
	}

	srv := server.NewServer(editor.NewService(providers.EditorOptions(cfg)), providers.Vector, cfg.Server)
	app.AddShutdownHook(srv.Stop)

	return app.Run(ctx, func(ctx context.Context) error {
		return srv.Start()
	})
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("FANCYWORD_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func setupLogger(debugMode bool) {
	level := log.InfoLevel
	if debugMode {
		level = log.DebugLevel
	}
	slog.SetDefault(slog.New(log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})))
}
