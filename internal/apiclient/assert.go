package apiclient

import "github.com/nikolayk812/storefront/internal/port"

var (
	_ port.AuthAPI    = (*Client)(nil)
	_ port.ProductAPI = (*Client)(nil)
	_ port.OrderAPI   = (*Client)(nil)
	_ port.AdminAPI   = (*Client)(nil)
)
