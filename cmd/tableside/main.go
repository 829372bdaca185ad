package main

import (
	"context"
	"log/slog"
	"os"

	"tableside/cmd/bootstrap"
	"tableside/internal/api"
	"tableside/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	// missing .env is fine; env vars win either way
	_ = godotenv.Load()

	app := fx.New(
		bootstrap.Module,
		fx.Invoke(runDashboard),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop cleanly", "error", err)
	}
}

func runDashboard(lc fx.Lifecycle, shutdowner fx.Shutdowner, client *api.Client, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := runSession(context.Background(), client, cfg, logger); err != nil {
					logger.Error("session ended with error", "error", err)
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}
