// Package client is the HTTP client for the task-manager backend. It
// attaches the current access token to every request and recovers from an
// expired access token by refreshing and retrying the request exactly once.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/Kamegrueon/household-task-manager/internal/auth"
	"github.com/Kamegrueon/household-task-manager/internal/config"
	"github.com/Kamegrueon/household-task-manager/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.Store

	// refreshGroup collapses refreshes triggered by near-simultaneous 401s
	// into a single call to /auth/refresh/.
	refreshGroup singleflight.Group

	// onSessionExpired runs after tokens are cleared on an irrecoverable
	// 401, so the front end can route the user back to login.
	onSessionExpired func()
}

func New(cfg config.APIConfig, store auth.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokens: store,
	}
}

func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// apiRequest describes one logical request. attempt counts retries of this
// request: 0 on first issue, 1 after a token refresh. The body is kept as
// bytes so the retry can replay it.
type apiRequest struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	attempt     int
}

// do sends the request with the current access token attached. A 401 on the
// first attempt triggers one refresh-and-retry cycle; the retried request is
// never retried again. Any other failure is returned as-is.
func (c *Client) do(ctx context.Context, req apiRequest) ([]byte, error) {
	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if token := c.tokens.Access(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	if resp.StatusCode == http.StatusUnauthorized && req.attempt == 0 {
		return c.refreshAndRetry(ctx, req)
	}

	return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
}

func (c *Client) refreshAndRetry(ctx context.Context, req apiRequest) ([]byte, error) {
	refreshToken := c.tokens.Refresh()
	if refreshToken == "" {
		c.expireSession()
		return nil, ErrSessionExpired
	}

	_, err, _ := c.refreshGroup.Do("refresh", func() (interface{}, error) {
		return nil, c.refreshTokens(ctx, refreshToken)
	})
	if err != nil {
		log.Printf("[Client] token refresh failed: %v", err)
		c.expireSession()
		return nil, ErrSessionExpired
	}

	req.attempt++
	return c.do(ctx, req)
}

// refreshTokens exchanges the refresh token for a new pair and stores it.
// The refresh endpoint is called without a bearer header.
func (c *Client) refreshTokens(ctx context.Context, refreshToken string) error {
	payload, err := json.Marshal(model.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("marshal refresh request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh/", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build refresh request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}

	var tokens model.TokenResponse
	if err := json.Unmarshal(respBody, &tokens); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}

	if err := c.tokens.SetAccess(tokens.AccessToken); err != nil {
		return err
	}
	if err := c.tokens.SetRefresh(tokens.RefreshToken); err != nil {
		return err
	}

	log.Printf("[Client] access token refreshed")
	return nil
}

func (c *Client) expireSession() {
	if err := c.tokens.Clear(); err != nil {
		log.Printf("[Client] failed to clear tokens: %v", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.do(ctx, apiRequest{method: http.MethodGet, path: path, query: query})
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) putJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var payload []byte
	contentType := ""
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		contentType = "application/json"
	}

	body, err := c.do(ctx, apiRequest{method: method, path: path, body: payload, contentType: contentType})
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	body, err := c.do(ctx, apiRequest{
		method:      http.MethodPost,
		path:        path,
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) deleteRequest(ctx context.Context, path string) error {
	_, err := c.do(ctx, apiRequest{method: http.MethodDelete, path: path})
	return err
}

func decode(body []byte, out interface{}) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
