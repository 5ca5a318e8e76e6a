package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type profileResponse struct {
	User domain.Profile `json:"user"`
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	return c.authenticate(ctx, "/auth/register", reg)
}

// Login stores the returned token on success.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	return c.authenticate(ctx, "/auth/login", creds)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (domain.User, error) {
	var resp authResponse

	err := c.do(ctx, request{method: http.MethodPost, path: path, body: body}, &resp)
	if err != nil {
		return domain.User{}, fmt.Errorf("c.do: %w", err)
	}

	if resp.Token == "" {
		return domain.User{}, fmt.Errorf("token is empty")
	}

	if err := c.session.SetToken(resp.Token); err != nil {
		return domain.User{}, fmt.Errorf("session.SetToken: %w", err)
	}

	return resp.User, nil
}

// Profile fetches the current user. Any failure discards the held token.
func (c *Client) Profile(ctx context.Context) (domain.Profile, error) {
	if _, ok := c.session.Token(); !ok {
		return domain.Profile{}, ErrNoSession
	}

	var resp profileResponse

	err := c.do(ctx, request{method: http.MethodGet, path: "/auth/profile", auth: authBearer}, &resp)
	if err != nil {
		if rmErr := c.session.RemoveToken(); rmErr != nil {
			c.log.Warn("session.RemoveToken failed", zap.Error(rmErr))
		}
		return domain.Profile{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.User, nil
}

// Logout discards the token and navigates to the login view.
func (c *Client) Logout() error {
	if err := c.session.RemoveToken(); err != nil {
		return fmt.Errorf("session.RemoveToken: %w", err)
	}

	if c.nav != nil {
		c.nav.Navigate(port.ViewLogin)
	}

	return nil
}
