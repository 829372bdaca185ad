package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"tableside/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

// Client is the authenticated REST client shared by every store. All calls
// are context-aware and carry no default timeout; cancellation is the
// caller's concern.
type Client struct {
	httpClient *http.Client
	baseURL    string
	store      TokenStore
	logger     *slog.Logger

	mu     sync.Mutex
	tokens Tokens
	// single in-flight refresh shared by concurrent 401 handlers
	refreshing *refreshOp
}

type refreshOp struct {
	done chan struct{}
	err  error
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenStore(s TokenStore) Option {
	return func(c *Client) { c.store = s }
}

func New(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		// no request timeout: a hung request never resolves but must not
		// block other operations
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		store:      NewMemoryTokenStore(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if t, err := c.store.Load(); err == nil {
		c.tokens = t
	} else {
		logger.Warn("failed to load persisted tokens", "error", err)
	}
	return c
}

// SetTokens installs a token pair and persists it.
func (c *Client) SetTokens(t Tokens) {
	c.mu.Lock()
	c.tokens = t
	c.mu.Unlock()
	if err := c.store.Save(t); err != nil {
		c.logger.Warn("failed to persist tokens", "error", err)
	}
}

// ClearTokens drops all credentials, reverting the session to logged-out.
func (c *Client) ClearTokens() {
	c.mu.Lock()
	c.tokens = Tokens{}
	c.mu.Unlock()
	if err := c.store.Clear(); err != nil {
		c.logger.Warn("failed to clear persisted tokens", "error", err)
	}
}

func (c *Client) currentTokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

// LoggedIn reports whether an access token is present. It says nothing about
// the token still being valid.
func (c *Client) LoggedIn() bool {
	return c.currentTokens().Access != ""
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, out any) error {
	body, status, err := c.doOnce(ctx, method, path, reqBody)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if err := c.refreshAccess(ctx); err != nil {
			return err
		}
		// retry the original request exactly once
		body, status, err = c.doOnce(ctx, method, path, reqBody)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return decodeError(status, body)
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return errs.Wrap(err, "failed to decode response body")
		}
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, path string, reqBody any) ([]byte, int, error) {
	var reader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, 0, errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to build request")
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access := c.currentTokens().Access; access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errs.Mark(cr.Wrap(err, "request failed"), errs.ErrUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errs.Mark(cr.Wrap(err, "failed to read response"), errs.ErrUnavailable)
	}
	return body, resp.StatusCode, nil
}

// refreshAccess exchanges the refresh token for a new access token. Concurrent
// callers share a single in-flight exchange instead of issuing duplicates;
// every caller observes the same outcome.
func (c *Client) refreshAccess(ctx context.Context) error {
	c.mu.Lock()
	if c.refreshing != nil {
		op := c.refreshing
		c.mu.Unlock()
		select {
		case <-op.done:
			return op.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	refresh := c.tokens.Refresh
	op := &refreshOp{done: make(chan struct{})}
	c.refreshing = op
	c.mu.Unlock()

	op.err = c.doRefresh(ctx, refresh)
	c.mu.Lock()
	c.refreshing = nil
	c.mu.Unlock()
	close(op.done)
	return op.err
}

func (c *Client) doRefresh(ctx context.Context, refresh string) error {
	if refresh == "" {
		c.ClearTokens()
		return errs.ErrNoRefreshToken
	}

	body, status, err := c.unauthenticatedPost(ctx, "/token/refresh/", map[string]string{"refresh": refresh})
	if err != nil {
		// transport failure: keep credentials so a later attempt can retry
		return errs.Mark(err, errs.ErrRefreshFailed)
	}
	if status < 200 || status >= 300 {
		c.ClearTokens()
		return errs.Mark(decodeError(status, body), errs.ErrRefreshFailed)
	}

	var out struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.Access == "" {
		c.ClearTokens()
		return errs.Mark(errs.New("no access token in refresh response"), errs.ErrRefreshFailed)
	}

	next := Tokens{Access: out.Access, Refresh: refresh}
	if out.Refresh != "" {
		next.Refresh = out.Refresh
	}
	c.SetTokens(next)
	c.logger.Debug("access token refreshed")
	return nil
}

// unauthenticatedPost bypasses the bearer header and the 401 retry loop,
// for token endpoints.
func (c *Client) unauthenticatedPost(ctx context.Context, path string, reqBody any) ([]byte, int, error) {
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errs.Mark(cr.Wrap(err, "request failed"), errs.ErrUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errs.Mark(cr.Wrap(err, "failed to read response"), errs.ErrUnavailable)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, reqBody, out any) error {
	return c.do(ctx, http.MethodPost, path, reqBody, out)
}

func (c *Client) patch(ctx context.Context, path string, reqBody, out any) error {
	return c.do(ctx, http.MethodPatch, path, reqBody, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
