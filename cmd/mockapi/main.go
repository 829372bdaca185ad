package main

import (
	"log/slog"
	"os"

	"tableside/internal/mockapi"
	"tableside/internal/pkg/config"
	"tableside/internal/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadMockAPIConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logCfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(logCfg.Log)

	store := mockapi.NewStore()
	if err := store.Seed(); err != nil {
		logger.Error("failed to seed store", "error", err)
		os.Exit(1)
	}

	server := mockapi.NewServer(cfg, store, logger)
	logger.Info("mock backend listening", "port", cfg.Port)
	if err := server.Engine(cfg).Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
