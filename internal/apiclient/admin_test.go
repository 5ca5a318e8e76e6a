package apiclient_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListUsers(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "count": 1, "users": [
			{"id": 3, "name": "Luis", "email": "luis@fina.pe", "role": "cliente", "active": true,
			 "created_at": "2024-01-01T00:00:00Z", "total_orders": 4, "total_spent": "320.50"}
		]}`))
	})
	require.NoError(t, f.session.SetToken("tok"))

	users, err := f.client.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Luis", users[0].Name)
	assert.True(t, decimal.RequireFromString("320.50").Equal(users[0].TotalSpent))
}

func TestClient_UpdateUser(t *testing.T) {
	type call struct {
		method string
		path   string
		body   map[string]any
	}
	var calls []call

	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		c := call{method: r.Method, path: r.URL.Path}
		if r.ContentLength > 0 {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&c.body))
		}
		calls = append(calls, c)
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	require.NoError(t, f.session.SetToken("tok"))

	require.NoError(t, f.client.UpdateUserRole(t.Context(), 3, domain.RoleAdmin))
	require.NoError(t, f.client.UpdateUserActive(t.Context(), 3, false))
	require.NoError(t, f.client.DeleteUser(t.Context(), 3))
	require.EqualError(t, f.client.UpdateUserRole(t.Context(), 3, "root"), "role[root] is not valid")

	assert.Equal(t, []call{
		{method: http.MethodPatch, path: "/api/users/3/role", body: map[string]any{"role": "admin"}},
		{method: http.MethodPatch, path: "/api/users/3/status", body: map[string]any{"active": false}},
		{method: http.MethodDelete, path: "/api/users/3"},
	}, calls)
}

func TestClient_DashboardStats(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/dashboard", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "stats": {
			"total_sales": 1500.5, "total_orders": 12, "total_users": 30,
			"sales_by_day": [{"date": "2024-05-01", "sales": 300}],
			"sales_by_category": [{"category": "poleras", "quantity_sold": 9, "total_sales": 449.1}],
			"recent_orders": [{"id": 1, "order_number": "ORD-1", "total": 49.9, "status": "pendiente",
				"created_at": "2024-05-01T10:00:00Z", "user_name": "Ana"}]
		}}`))
	})
	require.NoError(t, f.session.SetToken("tok"))

	stats, err := f.client.DashboardStats(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.TotalOrders)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(stats.TotalSales))
	require.Len(t, stats.SalesByCategory, 1)
	assert.Equal(t, domain.CategoryShirts, stats.SalesByCategory[0].Category)
	require.Len(t, stats.RecentOrders, 1)
}
