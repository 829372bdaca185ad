package api

import (
	"context"
	"encoding/json"
	"net/http"

	"tableside/internal/domain/user"
	"tableside/internal/pkg/errs"
)

// Login obtains and installs an access+refresh pair.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, status, err := c.unauthenticatedPost(ctx, "/token/", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return errs.Mark(decodeError(status, body), errs.ErrInvalidCredential)
	}
	if status < 200 || status >= 300 {
		return decodeError(status, body)
	}

	var out Tokens
	if err := json.Unmarshal(body, &out); err != nil || out.Access == "" {
		return errs.New("no access token in login response")
	}
	c.SetTokens(out)
	return nil
}

// Logout drops credentials locally; the backend keeps no session state.
func (c *Client) Logout() {
	c.ClearTokens()
}

func (c *Client) Me(ctx context.Context) (user.User, error) {
	var u user.User
	err := c.get(ctx, "/me/", &u)
	return u, err
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
	Role      string `json:"role"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	body, status, err := c.unauthenticatedPost(ctx, "/register/", req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return decodeError(status, body)
	}
	return nil
}
