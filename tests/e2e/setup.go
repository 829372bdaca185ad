//go:build e2e

package e2e

import (
	"log/slog"
	"net/http/httptest"
	"time"

	"tableside/internal/api"
	"tableside/internal/mockapi"
	"tableside/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// SharedSuite boots one in-process backend per suite and hands out
// authenticated clients. Each test shares the seeded fixture, so tests that
// mutate floor state should pick distinct tables.
type SharedSuite struct {
	suite.Suite

	Config config.MockAPIConfig
	Logger *slog.Logger

	store  *mockapi.Store
	server *httptest.Server
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	s.Config = config.MockAPIConfig{
		JWTSecret:    "e2e-secret",
		AccessTTL:    time.Hour,
		RefreshTTL:   24 * time.Hour,
		RateLimit:    1000,
		RateBurst:    1000,
		AllowOrigins: []string{"http://localhost:3000"},
	}
	s.Logger = slog.New(slog.DiscardHandler)

	s.store = mockapi.NewStore()
	s.Require().NoError(s.store.Seed())

	engine := mockapi.NewServer(s.Config, s.store, s.Logger).Engine(s.Config)
	s.server = httptest.NewServer(engine)
}

func (s *SharedSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

// BaseURL is the API root of the in-process backend.
func (s *SharedSuite) BaseURL() string {
	return s.server.URL + "/api"
}

// NewClient returns an unauthenticated client against the backend.
func (s *SharedSuite) NewClient() *api.Client {
	return api.New(s.BaseURL(), s.Logger)
}

// LoginAs logs a seeded account in and returns its client. Seeded usernames
// are manager, waiter and client, all with the development password.
func (s *SharedSuite) LoginAs(username string) *api.Client {
	client := s.NewClient()
	s.Require().NoError(client.Login(s.T().Context(), username, "tableside-dev"))
	return client
}
