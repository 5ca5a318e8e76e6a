package apiclient_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nikolayk812/storefront/internal/apiclient"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domainFilter() domain.ProductFilter {
	return domain.ProductFilter{}
}

const productJSON = `{
	"id": 12,
	"name": "Polera Oversize",
	"description": "Algodón",
	"price": 49.90,
	"gender": "mujer",
	"category": "poleras",
	"style": "casual",
	"is_new": true,
	"active": true,
	"created_at": "2024-05-01T10:00:00Z",
	"updated_at": "2024-05-02T10:00:00Z",
	"total_stock": 8,
	"images": ["https://cdn.fina.pe/12-a.jpg", "https://cdn.fina.pe/12-b.jpg"],
	"colors": [{"color_name": "Negro", "color_hex": "#000000"}],
	"stock_by_size": [{"size": "M", "stock": 5}, {"size": "L", "stock": 3}]
}`

func TestClient_ListProducts(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.ProductFilter
		wantQuery string
	}{
		{
			name:      "no filter: bare listing",
			wantQuery: "",
		},
		{
			name: "category and price range",
			filter: domain.ProductFilter{
				Category: domain.CategoryShirts,
				MinPrice: decimal.NewNullDecimal(decimal.RequireFromString("10")),
				MaxPrice: decimal.NewNullDecimal(decimal.RequireFromString("99.9")),
			},
			wantQuery: "category=poleras&max_price=99.9&min_price=10",
		},
		{
			name:      "gender style and new",
			filter:    domain.ProductFilter{Gender: domain.GenderMen, Style: domain.StyleSport, OnlyNew: true},
			wantQuery: "gender=hombre&is_new=true&style=deportivo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string

			f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				assert.Empty(t, r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(`{"success": true, "count": 1, "products": [` + productJSON + `]}`))
			})
			require.NoError(t, f.session.SetToken("tok"))

			products, err := f.client.ListProducts(t.Context(), tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, gotQuery)
			require.Len(t, products, 1)
			assert.Equal(t, int64(12), products[0].ID)
			assert.True(t, decimal.RequireFromString("49.9").Equal(products[0].Price))
			assert.Equal(t, 5, products[0].StockFor("M"))
		})
	}
}

func TestClient_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/12", r.URL.Path)
			_, _ = w.Write([]byte(`{"success": true, "product": ` + productJSON + `}`))
		})

		p, err := f.client.GetProduct(t.Context(), 12)
		require.NoError(t, err)
		assert.Equal(t, "Polera Oversize", p.Name)
		assert.Equal(t, []domain.ProductColor{{Name: "Negro", Hex: "#000000"}}, p.Colors)
	})

	t.Run("missing: ErrNotFound", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := f.client.GetProduct(t.Context(), 404)
		require.ErrorIs(t, err, apiclient.ErrNotFound)
	})

	t.Run("invalid id: no request", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s", r.URL.Path)
		})

		_, err := f.client.GetProduct(t.Context(), 0)
		require.EqualError(t, err, "id is not valid: 0")
	})
}

func TestClient_CreateProduct_CleansPayload(t *testing.T) {
	var got map[string]any

	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success": true, "message": "Producto creado", "product": ` + productJSON + `}`))
	})
	require.NoError(t, f.session.SetToken("admin-token"))

	_, err := f.client.CreateProduct(t.Context(), domain.ProductPayload{
		Name:     "Polera Oversize",
		Price:    decimal.RequireFromString("49.90"),
		Category: domain.CategoryShirts,
		Images:   []string{"https://cdn.fina.pe/12-a.jpg", ""},
		Colors:   []domain.PayloadColor{{Name: "Negro", Hex: "#000000"}, {Name: "Sin hex"}},
		Stock:    []domain.PayloadStock{{Size: "M", Quantity: 5}, {Size: "L", Quantity: -1}},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"https://cdn.fina.pe/12-a.jpg"}, got["images"])
	assert.Len(t, got["colors"], 1)
	assert.Len(t, got["stock"], 1)
	assert.Equal(t, 49.9, got["price"])
}

func TestClient_DeleteProduct(t *testing.T) {
	var gotMethod, gotPath string

	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"success": true, "message": "Producto eliminado"}`))
	})
	require.NoError(t, f.session.SetToken("admin-token"))

	require.NoError(t, f.client.DeleteProduct(t.Context(), 3))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/products/3", gotPath)
}
