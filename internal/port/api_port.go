package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type AuthAPI interface {
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.User, error)
	Profile(ctx context.Context) (domain.Profile, error)
	Logout() error
}

type ProductAPI interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	CreateProduct(ctx context.Context, payload domain.ProductPayload) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload domain.ProductPayload) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderReceipt, error)
	MyOrders(ctx context.Context) ([]domain.OrderSummary, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
	AllOrders(ctx context.Context) ([]domain.OrderSummary, error)
}

type AdminAPI interface {
	ListUsers(ctx context.Context) ([]domain.AdminUser, error)
	GetUser(ctx context.Context, id int64) (domain.AdminUser, error)
	UpdateUserRole(ctx context.Context, id int64, role domain.Role) error
	UpdateUserActive(ctx context.Context, id int64, active bool) error
	DeleteUser(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}
