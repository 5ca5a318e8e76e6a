package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesByDay struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

type SalesByCategory struct {
	Category     Category        `json:"category"`
	QuantitySold int             `json:"quantity_sold"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}

type RecentOrder struct {
	ID          int64           `json:"id"`
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UserName    string          `json:"user_name"`
}

type DashboardStats struct {
	TotalSales      decimal.Decimal   `json:"total_sales"`
	TotalOrders     int               `json:"total_orders"`
	TotalUsers      int               `json:"total_users"`
	SalesByDay      []SalesByDay      `json:"sales_by_day"`
	SalesByCategory []SalesByCategory `json:"sales_by_category"`
	RecentOrders    []RecentOrder     `json:"recent_orders"`
}
