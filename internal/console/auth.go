package console

import (
	"context"
	"regexp"
	"strings"

	"tableside/internal/api"
	"tableside/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

var allDigits = regexp.MustCompile(`^\d+$`)

// commonPasswords mirrors the backend's minimal deny list so the obvious
// rejections never hit the network.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"123456":      {},
	"12345678":    {},
	"qwerty":      {},
	"abc123":      {},
	"password123": {},
}

// ValidateRegistration runs the client-side checks before any request is
// issued. The returned message is user-visible.
func ValidateRegistration(req api.RegisterRequest) (string, bool) {
	if req.Username == "" || req.Email == "" || req.Password1 == "" || req.Password2 == "" {
		return "Please fill in all fields", false
	}
	if req.Password1 != req.Password2 {
		return "Passwords do not match", false
	}
	if len(req.Password1) < 8 {
		return "Password must be at least 8 characters", false
	}
	if allDigits.MatchString(req.Password1) {
		return "Password cannot be entirely numeric", false
	}
	if _, common := commonPasswords[strings.ToLower(req.Password1)]; common {
		return "Please choose a less common password", false
	}
	return "", true
}

// Register submits the account request and maps the backend's structured
// error payload to the most specific available field message.
func Register(ctx context.Context, client *api.Client, req api.RegisterRequest) (string, error) {
	if msg, ok := ValidateRegistration(req); !ok {
		return msg, errs.ErrValidation
	}
	err := client.Register(ctx, req)
	if err == nil {
		return "Account created successfully! Please sign in with your credentials.", nil
	}

	var apiErr *api.Error
	if cr.As(err, &apiErr) {
		if msg := apiErr.FieldError("username", "email", "password1"); msg != "" {
			return msg, err
		}
	}
	return "Registration failed. Please try again.", err
}
