package port

// Views the core navigates to.
const (
	ViewHome         = "/"
	ViewCart         = "/cart"
	ViewCheckout     = "/checkout"
	ViewLogin        = "/login"
	ViewLoginExpired = "/login?expired=true"
	ViewMyOrders     = "/orders/my-orders"
)

type Navigator interface {
	Navigate(view string)
	Current() string
}

// Notifier surfaces user-visible messages.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
	Info(title, description string)
}
