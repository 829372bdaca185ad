package mockapi

import (
	"time"

	"tableside/internal/domain/user"
	"tableside/internal/pkg/clock"
	"tableside/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errs.New("token is invalid or expired")

type Claims struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the access/refresh pair, mirroring the
// simple-JWT shape the real backend uses.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      clock.Clock
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, clk clock.Clock) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		clock:      clk,
	}
}

func (s *TokenService) IssuePair(a *Account) (access, refresh string, err error) {
	access, err = s.issue(a, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.issue(a, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *TokenService) IssueAccess(a *Account) (string, error) {
	return s.issue(a, tokenTypeAccess, s.accessTTL)
}

func (s *TokenService) issue(a *Account, tokenType string, ttl time.Duration) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID:    a.ID,
		Username:  a.Username,
		Role:      a.Role.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) verify(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	if _, err := user.NewRole(claims.Role); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) VerifyAccess(tokenString string) (*Claims, error) {
	return s.verify(tokenString, tokenTypeAccess)
}

func (s *TokenService) VerifyRefresh(tokenString string) (*Claims, error) {
	return s.verify(tokenString, tokenTypeRefresh)
}
