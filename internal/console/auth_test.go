//go:build unit

package console_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableside/internal/api"
	"tableside/internal/console"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() api.RegisterRequest {
	return api.RegisterRequest{
		Username:  "ada",
		Email:     "ada@example.com",
		Password1: "correct-horse",
		Password2: "correct-horse",
		Role:      "client",
	}
}

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*api.RegisterRequest)
		wantMsg string
	}{
		{
			name:   "valid request passes",
			mutate: func(*api.RegisterRequest) {},
		},
		{
			name:    "missing field",
			mutate:  func(r *api.RegisterRequest) { r.Email = "" },
			wantMsg: "Please fill in all fields",
		},
		{
			name:    "password mismatch",
			mutate:  func(r *api.RegisterRequest) { r.Password2 = "other-value" },
			wantMsg: "Passwords do not match",
		},
		{
			name: "too short",
			mutate: func(r *api.RegisterRequest) {
				r.Password1 = "short"
				r.Password2 = "short"
			},
			wantMsg: "Password must be at least 8 characters",
		},
		{
			name: "entirely numeric",
			mutate: func(r *api.RegisterRequest) {
				r.Password1 = "86753099911"
				r.Password2 = "86753099911"
			},
			wantMsg: "Password cannot be entirely numeric",
		},
		{
			name: "common password",
			mutate: func(r *api.RegisterRequest) {
				r.Password1 = "Password123"
				r.Password2 = "Password123"
			},
			wantMsg: "Please choose a less common password",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			tc.mutate(&req)
			msg, ok := console.ValidateRegistration(req)
			if tc.wantMsg == "" {
				assert.True(t, ok)
				assert.Empty(t, msg)
			} else {
				assert.False(t, ok)
				assert.Equal(t, tc.wantMsg, msg)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("local validation short-circuits the network", func(t *testing.T) {
		client := api.New("http://unreachable.invalid", slog.New(slog.DiscardHandler))
		req := validRegistration()
		req.Password2 = "different"

		msg, err := console.Register(context.Background(), client, req)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "Passwords do not match", msg)
	})

	t.Run("backend field errors surface the most specific message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"email":["A user with that email already exists."]}`))
		}))
		defer server.Close()

		client := api.New(server.URL, slog.New(slog.DiscardHandler))
		msg, err := console.Register(context.Background(), client, validRegistration())
		require.Error(t, err)
		assert.Equal(t, "Email: A user with that email already exists.", msg)
	})

	t.Run("success returns the sign-in prompt", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := api.New(server.URL, slog.New(slog.DiscardHandler))
		msg, err := console.Register(context.Background(), client, validRegistration())
		require.NoError(t, err)
		assert.Contains(t, msg, "Account created successfully")
	})
}
