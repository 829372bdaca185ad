package bootstrap

import (
	"log/slog"

	"tableside/internal/api"
	"tableside/internal/pkg/config"

	"go.uber.org/fx"
)

var APIModule = fx.Module("api",
	fx.Provide(
		NewTokenStore,
		NewAPIClient,
	),
)

// NewTokenStore picks file persistence when a path is configured, keeping
// tokens across runs the way a browser keeps local storage.
func NewTokenStore(cfg config.Config) api.TokenStore {
	if cfg.API.TokenFile != "" {
		return api.NewFileTokenStore(cfg.API.TokenFile)
	}
	return api.NewMemoryTokenStore()
}

func NewAPIClient(cfg config.Config, store api.TokenStore, logger *slog.Logger) *api.Client {
	return api.New(cfg.API.BaseURL, logger, api.WithTokenStore(store))
}
