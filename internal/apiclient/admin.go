package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nikolayk812/storefront/internal/domain"
)

type usersResponse struct {
	Count int                `json:"count"`
	Users []domain.AdminUser `json:"users"`
}

type userResponse struct {
	User domain.AdminUser `json:"user"`
}

type statsResponse struct {
	Stats domain.DashboardStats `json:"stats"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.AdminUser, error) {
	var resp usersResponse

	if err := c.do(ctx, request{method: http.MethodGet, path: "/users", auth: authSession}, &resp); err != nil {
		return nil, fmt.Errorf("c.do: %w", err)
	}

	return resp.Users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (domain.AdminUser, error) {
	if id <= 0 {
		return domain.AdminUser{}, fmt.Errorf("id is not valid: %d", id)
	}

	var resp userResponse

	if err := c.do(ctx, request{method: http.MethodGet, path: userPath(id), auth: authSession}, &resp); err != nil {
		return domain.AdminUser{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.User, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, id int64, role domain.Role) error {
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return fmt.Errorf("role[%s] is not valid", role)
	}

	body := map[string]domain.Role{"role": role}
	if err := c.do(ctx, request{method: http.MethodPatch, path: userPath(id) + "/role", body: body, auth: authSession}, nil); err != nil {
		return fmt.Errorf("c.do: %w", err)
	}

	return nil
}

func (c *Client) UpdateUserActive(ctx context.Context, id int64, active bool) error {
	body := map[string]bool{"active": active}
	if err := c.do(ctx, request{method: http.MethodPatch, path: userPath(id) + "/status", body: body, auth: authSession}, nil); err != nil {
		return fmt.Errorf("c.do: %w", err)
	}

	return nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("id is not valid: %d", id)
	}

	if err := c.do(ctx, request{method: http.MethodDelete, path: userPath(id), auth: authSession}, nil); err != nil {
		return fmt.Errorf("c.do: %w", err)
	}

	return nil
}

func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var resp statsResponse

	if err := c.do(ctx, request{method: http.MethodGet, path: "/stats/dashboard", auth: authSession}, &resp); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.Stats, nil
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}
