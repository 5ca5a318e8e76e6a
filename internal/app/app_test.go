package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/storefront/internal/apiclient"
	"github.com/nikolayk812/storefront/internal/app"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var jacket = domain.Product{
	ID:       7,
	Name:     "Casaca denim",
	Price:    decimal.RequireFromString("49.90"),
	Category: domain.CategoryJackets,
	Images:   []string{"https://cdn.fina.pe/7-front.jpg", "https://cdn.fina.pe/7-back.jpg"},
	Colors:   []domain.ProductColor{{Name: "Azul", Hex: "#1E3A8A"}},
	StockBySize: []domain.ProductStock{
		{Size: "M", Stock: 3},
		{Size: "L", Stock: 0},
	},
}

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/7", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{"product": jacket}))
	})
	mux.HandleFunc("GET /api/products/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Producto no encontrado"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newConfig(baseURL, driver, path string) *config.Config {
	return &config.Config{
		API:     config.APIConfig{BaseURL: baseURL},
		Storage: config.StorageConfig{Driver: driver, Path: path},
		Store:   config.StoreConfig{Currency: domain.DefaultCurrency},
		Log:     config.LogConfig{Level: "debug"},
	}
}

func newApp(t *testing.T, cfg *config.Config) (*app.App, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	a, err := app.New(cfg, zaptest.NewLogger(t), &out)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, a.Close())
	})

	return a, &out
}

func TestApp_AddToCart(t *testing.T) {
	srv := newCatalogServer(t)
	a, _ := newApp(t, newConfig(srv.URL+"/api", "memory", ""))
	ctx := context.Background()

	line, err := a.AddToCart(ctx, 7, "M", "", 2)
	require.NoError(t, err)
	assert.Equal(t, "Azul", line.Color)
	assert.Equal(t, "https://cdn.fina.pe/7-front.jpg", line.ImageURL)
	assert.Equal(t, 2, line.Quantity)

	// only one more M is advertised
	line, err = a.AddToCart(ctx, 7, "M", "Azul", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 3, a.Cart.TotalItems())
	assert.True(t, decimal.RequireFromString("149.70").Equal(a.Cart.TotalAmount()))

	_, err = a.AddToCart(ctx, 7, "M", "Azul", 1)
	require.ErrorIs(t, err, app.ErrOutOfStock)

	_, err = a.AddToCart(ctx, 7, "L", "Azul", 1)
	require.ErrorIs(t, err, app.ErrOutOfStock)

	_, err = a.AddToCart(ctx, 7, "M", "Rojo", 1)
	require.ErrorContains(t, err, "color[Rojo] is not offered for product[7]")

	_, err = a.AddToCart(ctx, 99, "M", "", 1)
	require.ErrorIs(t, err, apiclient.ErrNotFound)

	assert.Equal(t, 3, a.Cart.TotalItems())
}

func TestApp_ToggleWishlist(t *testing.T) {
	srv := newCatalogServer(t)
	a, _ := newApp(t, newConfig(srv.URL+"/api", "memory", ""))
	ctx := context.Background()

	product, added, err := a.ToggleWishlist(ctx, 7)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, jacket.Name, product.Name)
	assert.True(t, a.Wishlist.Contains(7))

	_, added, err = a.ToggleWishlist(ctx, 7)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Zero(t, a.Wishlist.Count())
}

func TestApp_StatePersistsAcrossRuns(t *testing.T) {
	srv := newCatalogServer(t)

	for _, driver := range []string{"file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state", "storage."+driver)
			cfg := newConfig(srv.URL+"/api", driver, path)

			var out bytes.Buffer
			first, err := app.New(cfg, zaptest.NewLogger(t), &out)
			require.NoError(t, err)

			_, err = first.AddToCart(context.Background(), 7, "M", "", 2)
			require.NoError(t, err)
			_, _, err = first.ToggleWishlist(context.Background(), 7)
			require.NoError(t, err)
			require.NoError(t, first.Session.SetToken("opaque-token"))
			require.NoError(t, first.Close())

			second, _ := newApp(t, cfg)

			lines := second.Cart.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, domain.LineKey{ProductID: 7, Size: "M", Color: "Azul"}, lines[0].Key())
			assert.Equal(t, 2, lines[0].Quantity)
			assert.True(t, second.Wishlist.Contains(7))
			assert.True(t, second.Session.Valid())
		})
	}
}

func TestApp_CheckoutBegin(t *testing.T) {
	srv := newCatalogServer(t)
	a, out := newApp(t, newConfig(srv.URL+"/api", "memory", ""))

	err := a.Checkout.Begin()
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Equal(t, port.ViewHome, a.Terminal.Current())

	_, err = a.AddToCart(context.Background(), 7, "M", "", 1)
	require.NoError(t, err)

	err = a.Checkout.Begin()
	require.ErrorIs(t, err, checkout.ErrNotAuthenticated)
	assert.Equal(t, port.ViewLogin, a.Terminal.Current())
	assert.Contains(t, out.String(), "→ /login\n")
}

func TestNew_Errors(t *testing.T) {
	log := zaptest.NewLogger(t)

	_, err := app.New(nil, log, nil)
	require.EqualError(t, err, "config is nil")

	_, err = app.New(newConfig("http://localhost:4000/api", "redis", ""), log, nil)
	require.ErrorContains(t, err, "storage driver[redis] is not supported")

	_, err = app.New(newConfig("ftp://localhost", "memory", ""), log, nil)
	require.ErrorContains(t, err, "base URL scheme[ftp] is not supported")
}
