// Package hosted implements provider.Provider against a GoTrue-style
// REST auth API (the kind exposed by hosted Postgres platforms).
package hosted

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stubio/stubio-web/provider"
)

const requestTimeout = 10 * time.Second

// Client talks to the auth backend over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ provider.Provider = (*Client)(nil)

// Option modifies a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client. Both baseURL and apiKey are required.
func New(baseURL, apiKey string, options ...Option) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, provider.ErrNotConfigured
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// SignIn performs a password grant against the token endpoint.
// Every rejection status maps to ErrInvalidCredentials so a missing
// account is indistinguishable from a wrong password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*provider.Session, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("[SignIn] marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("[SignIn] build request: %w", err)
	}
	c.setHeaders(req, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[SignIn] token endpoint unreachable: %w", err)
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, provider.ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("[SignIn] token endpoint returned %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("[SignIn] decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("[SignIn] token response missing access token")
	}

	return &provider.Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}

// SignOut revokes the session server-side.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("[SignOut] build request: %w", err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("[SignOut] logout endpoint unreachable: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("[SignOut] logout endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// GetUser resolves the user owning accessToken.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*provider.User, error) {
	if accessToken == "" {
		return nil, provider.ErrInvalidCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("[GetUser] build request: %w", err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[GetUser] user endpoint unreachable: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[GetUser] user endpoint returned %d", resp.StatusCode)
	}

	var user provider.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("[GetUser] decode user response: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("[GetUser] user response missing id")
	}
	return &user, nil
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.apiKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
