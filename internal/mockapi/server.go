// Package mockapi is an in-memory implementation of the restaurant backend's
// REST surface, used for local development and end-to-end tests of the
// dashboards. It is not the real backend and keeps no durable state.
package mockapi

import (
	"log/slog"
	"net/http"

	"tableside/internal/domain/user"
	"tableside/internal/pkg/clock"
	"tableside/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	store  *Store
	tokens *TokenService
	logger *slog.Logger
}

func NewServer(cfg config.MockAPIConfig, store *Store, logger *slog.Logger) *Server {
	return &Server{
		store:  store,
		tokens: NewTokenService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL, clock.NewRealClock()),
		logger: logger,
	}
}

// Engine builds the router with the full route table under /api.
func (s *Server) Engine(cfg config.MockAPIConfig) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	engine.Use(rateLimitMiddleware(cfg.RateLimit, cfg.RateBurst, s.logger))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		api.POST("/token/", s.login)
		api.POST("/token/refresh/", s.refresh)
		api.POST("/register/", s.register)

		authed := api.Group("")
		authed.Use(s.requireAuth())
		{
			authed.GET("/me/", s.me)

			authed.GET("/tables/", s.listTables)
			authed.GET("/tables/status/", s.listTableStatuses)
			authed.GET("/menu-items/", s.listMenuItems)
			authed.GET("/zones/", s.listZones)

			authed.GET("/reservations/", s.listReservations)
			authed.POST("/reservations/", s.createReservation)

			staff := authed.Group("")
			staff.Use(s.requireRole(user.RoleWaiter, user.RoleManager))
			{
				staff.POST("/tables/:id/seat/", s.seatTable)
				staff.POST("/orders/", s.createOrder)
				staff.GET("/orders/:id/", s.getOrder)
				staff.POST("/orders/:id/add_item/", s.addOrderItem)
				staff.POST("/orders/:id/set_item_qty/", s.setOrderItemQty)
				staff.POST("/orders/:id/remove_item/", s.removeOrderItem)
				staff.POST("/orders/:id/pay/", s.payOrder)
			}

			manager := authed.Group("")
			manager.Use(s.requireRole(user.RoleManager))
			{
				manager.POST("/tables/", s.createTable)
				manager.PATCH("/tables/:id/", s.updateTable)
				manager.DELETE("/tables/:id/", s.deleteTable)

				manager.POST("/zones/", s.createZone)
				manager.PATCH("/zones/:id/", s.updateZone)
				manager.DELETE("/zones/:id/", s.deleteZone)

				manager.POST("/reservations/:id/approve/", s.approveReservation)
				manager.POST("/reservations/:id/reject/", s.rejectReservation)
			}
		}
	}
	return engine
}
