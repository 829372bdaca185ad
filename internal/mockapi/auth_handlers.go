package mockapi

import (
	"net/http"
	"regexp"
	"strings"

	"tableside/internal/domain/user"

	"github.com/gin-gonic/gin"
)

func (s *Server) login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	account, ok := s.store.Authenticate(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "No active account found with the given credentials"})
		return
	}
	access, refresh, err := s.tokens.IssuePair(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
}

func (s *Server) refresh(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"refresh": []string{"This field is required."}})
		return
	}
	claims, err := s.tokens.VerifyRefresh(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		return
	}
	account, ok := s.store.Account(claims.UserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"})
		return
	}
	access, err := s.tokens.IssueAccess(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// register mirrors the real backend's field-keyed validation payload so the
// client's error extraction has something faithful to work against.
func (s *Server) register(c *gin.Context) {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password1 string `json:"password1"`
		Password2 string `json:"password2"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"username": []string{"This field is required."}})
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"email": []string{"Enter a valid email address."}})
		return
	}
	if len(req.Password1) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"password1": []string{"This password is too short. It must contain at least 8 characters."}})
		return
	}
	if req.Password1 != req.Password2 {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"The two password fields didn't match."}})
		return
	}
	role, err := user.NewRole(strings.TrimSpace(req.Role))
	if err != nil {
		role = user.RoleClient
	}
	if _, err := s.store.CreateAccount(req.Username, req.Email, req.Password1, role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"username": []string{"A user with that username already exists."}})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"detail": "Account created"})
}

func (s *Server) me(c *gin.Context) {
	account, ok := s.store.Account(currentUserID(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       account.ID,
		"username": account.Username,
		"email":    account.Email,
		"role":     account.Role,
	})
}
