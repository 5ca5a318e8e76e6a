package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nikolayk812/storefront/internal/domain"
)

type productsResponse struct {
	Count    int              `json:"count"`
	Products []domain.Product `json:"products"`
}

type productResponse struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	var resp productsResponse

	err := c.do(ctx, request{method: http.MethodGet, path: "/products", query: mapFilterToQuery(filter)}, &resp)
	if err != nil {
		return nil, fmt.Errorf("c.do: %w", err)
	}

	return resp.Products, nil
}

// GetProduct returns ErrNotFound when the id is unknown.
func (c *Client) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, fmt.Errorf("id is not valid: %d", id)
	}

	var resp productResponse

	err := c.do(ctx, request{method: http.MethodGet, path: productPath(id)}, &resp)
	if errors.Is(err, ErrNotFound) {
		return domain.Product{}, ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.Product, nil
}

func (c *Client) CreateProduct(ctx context.Context, payload domain.ProductPayload) (domain.Product, error) {
	var resp productResponse

	err := c.do(ctx, request{method: http.MethodPost, path: "/products", body: payload.Clean(), auth: authSession}, &resp)
	if err != nil {
		return domain.Product{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, payload domain.ProductPayload) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, fmt.Errorf("id is not valid: %d", id)
	}

	var resp productResponse

	err := c.do(ctx, request{method: http.MethodPut, path: productPath(id), body: payload.Clean(), auth: authSession}, &resp)
	if err != nil {
		return domain.Product{}, fmt.Errorf("c.do: %w", err)
	}

	return resp.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("id is not valid: %d", id)
	}

	if err := c.do(ctx, request{method: http.MethodDelete, path: productPath(id), auth: authSession}, nil); err != nil {
		return fmt.Errorf("c.do: %w", err)
	}

	return nil
}

func productPath(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10)
}

func mapFilterToQuery(f domain.ProductFilter) url.Values {
	q := url.Values{}

	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}

	set("category", string(f.Category))
	set("gender", string(f.Gender))
	set("style", string(f.Style))
	set("size", f.Size)
	set("color", f.Color)
	set("search", f.Search)
	if f.MinPrice.Valid {
		q.Set("min_price", f.MinPrice.Decimal.String())
	}
	if f.MaxPrice.Valid {
		q.Set("max_price", f.MaxPrice.Decimal.String())
	}
	if f.OnlyNew {
		q.Set("is_new", "true")
	}

	return q
}
