package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"fluxo_propostas/internal/adapter/http/routes"
	"fluxo_propostas/internal/app"
	"fluxo_propostas/internal/config"
	"fluxo_propostas/internal/infrastructure/logging"
)

// @title           Fluxo de Propostas API
// @version         1.0
// @description     Proposal lifecycle and external order reconciliation.

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		slog.Error("[api] failed to startup the application", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.NewViper(), os.Getenv("CONFIG_FILE"))
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.Close(closeCtx); err != nil {
			slog.Warn("[api] close failed", "err", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := c.Migrate(ctx); err != nil {
			return err
		}
	}
	if err := c.Seed(ctx); err != nil {
		return err
	}

	return routes.Run(ctx, c)
}
