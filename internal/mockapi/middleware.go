package mockapi

import (
	"log/slog"
	"net/http"
	"strings"

	"tableside/internal/domain/user"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func rateLimitMiddleware(limit float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.Warn("rate limit exceeded", "client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "Request was throttled.",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}
		claims, err := s.tokens.VerifyAccess(strings.TrimSpace(authHeader[len("Bearer "):]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Given token not valid for any token type",
			})
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, user.Role(claims.Role))
		c.Next()
	}
}

func (s *Server) requireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get(ctxUserRoleKey)
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"detail": "You do not have permission to perform this action.",
		})
	}
}

func currentUserID(c *gin.Context) int {
	id, _ := c.Get(ctxUserIDKey)
	n, _ := id.(int)
	return n
}
