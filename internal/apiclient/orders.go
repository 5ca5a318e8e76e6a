package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nikolayk812/storefront/internal/domain"
)

type createOrderResponse struct {
	Message string              `json:"message"`
	Order   domain.OrderReceipt `json:"order"`
}

type ordersResponse struct {
	Count  int                   `json:"count"`
	Orders []domain.OrderSummary `json:"orders"`
}

type orderResponse struct {
	Order domain.Order `json:"order"`
}

// CreateOrder submits the order once. No retry and no idempotency key.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderReceipt, error) {
	var resp createOrderResponse

	err := c.do(ctx, request{method: http.MethodPost, path: "/orders", body: req, auth: authSession}, &resp)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.Order, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	var resp ordersResponse

	if err := c.do(ctx, request{method: http.MethodGet, path: "/orders/my-orders", auth: authSession}, &resp); err != nil {
		return nil, fmt.Errorf("c.do: %w", err)
	}

	return resp.Orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, fmt.Errorf("id is not valid: %d", id)
	}

	var resp orderResponse

	path := "/orders/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, request{method: http.MethodGet, path: path, auth: authSession}, &resp); err != nil {
		return domain.Order{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.Order, nil
}

// AllOrders lists every order; admin only.
func (c *Client) AllOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	var resp ordersResponse

	if err := c.do(ctx, request{method: http.MethodGet, path: "/orders", auth: authSession}, &resp); err != nil {
		return nil, fmt.Errorf("c.do: %w", err)
	}

	return resp.Orders, nil
}
