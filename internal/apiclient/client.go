// Package apiclient talks to the storefront REST API: auth, products, orders,
// users and stats. Bearer tokens come from the session repository; a 401 or
// 403 on a session-authenticated call discards the token and sends the
// shopper to the login view.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader correlates client and server logs.
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 10 << 20
)

type Config struct {
	BaseURL string
	// Timeout of zero leaves requests unbounded.
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	session    port.SessionRepository
	nav        port.Navigator
	log        *zap.Logger
}

func New(cfg Config, session port.SessionRepository, nav port.Navigator, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is empty")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme[%s] is not supported", u.Scheme)
	}

	if session == nil {
		return nil, fmt.Errorf("session is nil")
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "storefront/1.0"
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    u,
		userAgent:  userAgent,
		session:    session,
		nav:        nav,
		log:        log.Named("apiclient"),
	}, nil
}

// authMode says whether a request carries the bearer token and whether a
// denial ends the session.
type authMode int

const (
	authNone authMode = iota
	// authBearer attaches the token without the denial interceptor.
	authBearer
	// authSession attaches the token; 401/403 expire the session.
	authSession
)

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   authMode
}

// envelope is the common part of every API response body.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	u := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(RequestIDHeader, requestID)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.auth != authNone {
		if token, ok := c.session.Token(); ok {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	c.log.Debug("request",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID))

	var env envelope
	// bodies are not guaranteed to be JSON on errors
	_ = json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(req, resp.StatusCode, env.Message)
	}

	if env.Success != nil && !*env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Err: ErrRejected}
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}

func (c *Client) statusError(req request, status int, message string) error {
	apiErr := &APIError{StatusCode: status, Message: message}

	switch status {
	case http.StatusUnauthorized:
		apiErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.Err = ErrForbidden
	case http.StatusNotFound:
		apiErr.Err = ErrNotFound
	}

	if req.auth == authSession && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
		c.expireSession()
	}

	return apiErr
}

// expireSession drops the token and redirects to login, unless the shopper
// is already on the login view (avoids a redirect loop).
func (c *Client) expireSession() {
	if c.nav != nil && strings.HasPrefix(c.nav.Current(), port.ViewLogin) {
		return
	}

	if err := c.session.RemoveToken(); err != nil {
		c.log.Warn("session.RemoveToken failed", zap.Error(err))
	}

	c.log.Info("session expired, redirecting to login")

	if c.nav != nil {
		c.nav.Navigate(port.ViewLoginExpired)
	}
}
