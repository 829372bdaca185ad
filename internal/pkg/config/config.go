package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (backend URL, secrets)
// - default: Values common across all environments (poll intervals, log format)
// -----------------------------------------------------------------------------

type Config struct {
	API  APIConfig
	Poll PollConfig
	Log  LogConfig
}

type APIConfig struct {
	BaseURL   string `envconfig:"API_BASE_URL" default:"http://127.0.0.1:8000/api"`
	TokenFile string `envconfig:"API_TOKEN_FILE" default:""`
}

type PollConfig struct {
	ClientInterval time.Duration `envconfig:"POLL_CLIENT_INTERVAL" default:"15s"`
	StaffInterval  time.Duration `envconfig:"POLL_STAFF_INTERVAL" default:"10s"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"text"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// MockAPIConfig configures the local development backend (cmd/mockapi).
type MockAPIConfig struct {
	Port         string        `envconfig:"MOCKAPI_PORT" default:"8000"`
	JWTSecret    string        `envconfig:"MOCKAPI_JWT_SECRET" default:"dev-only-secret"`
	AccessTTL    time.Duration `envconfig:"MOCKAPI_ACCESS_TTL" default:"30m"`
	RefreshTTL   time.Duration `envconfig:"MOCKAPI_REFRESH_TTL" default:"24h"`
	RateLimit    float64       `envconfig:"MOCKAPI_RATE_LIMIT" default:"50"`
	RateBurst    int           `envconfig:"MOCKAPI_RATE_BURST" default:"100"`
	AllowOrigins []string      `envconfig:"MOCKAPI_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadMockAPIConfig() (MockAPIConfig, error) {
	var cfg MockAPIConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return MockAPIConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://127.0.0.1:8000/api",
		},
		Poll: PollConfig{
			ClientInterval: 15 * time.Second,
			StaffInterval:  10 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
