package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "tarjeta"
	PaymentYape PaymentMethod = "yape"
	PaymentPlin PaymentMethod = "plin"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pendiente"
	OrderProcessing OrderStatus = "en_proceso"
	OrderShipped    OrderStatus = "enviado"
	OrderDelivered  OrderStatus = "entregado"
	OrderCancelled  OrderStatus = "cancelado"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pendiente"
	PaymentApproved PaymentStatus = "aprobado"
	PaymentRejected PaymentStatus = "rechazado"
)

// Payment is either a CardPayment or a WalletPayment.
type Payment interface {
	Method() PaymentMethod
	isPayment()
}

// CardPayment carries card fields; only the number is sent to the API.
type CardPayment struct {
	Number string
	Expiry string
	CVV    string
}

func (CardPayment) Method() PaymentMethod { return PaymentCard }
func (CardPayment) isPayment()            {}

// WalletPayment is a mobile wallet transfer (yape, plin) with no card fields.
type WalletPayment struct {
	Wallet PaymentMethod
}

func (w WalletPayment) Method() PaymentMethod { return w.Wallet }
func (WalletPayment) isPayment()              {}

type Shipping struct {
	Name      string
	Phone     string
	Address   string
	District  string
	Reference string
}

type OrderItemRequest struct {
	ProductID int64           `json:"product_id"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name,omitempty"`
}

// OrderRequest is a point-in-time projection of the cart plus the checkout form.
type OrderRequest struct {
	Shipping Shipping
	Payment  Payment
	Items    []OrderItemRequest
}

type orderRequestJSON struct {
	Items             []OrderItemRequest `json:"items"`
	PaymentMethod     PaymentMethod      `json:"payment_method"`
	ShippingName      string             `json:"shipping_name"`
	ShippingPhone     string             `json:"shipping_phone"`
	ShippingAddress   string             `json:"shipping_address"`
	ShippingDistrict  string             `json:"shipping_district"`
	ShippingReference string             `json:"shipping_reference,omitempty"`
	CardNumber        string             `json:"card_number,omitempty"`
}

func (r OrderRequest) MarshalJSON() ([]byte, error) {
	if r.Payment == nil {
		return nil, fmt.Errorf("payment is nil")
	}

	out := orderRequestJSON{
		Items:             r.Items,
		PaymentMethod:     r.Payment.Method(),
		ShippingName:      r.Shipping.Name,
		ShippingPhone:     r.Shipping.Phone,
		ShippingAddress:   r.Shipping.Address,
		ShippingDistrict:  r.Shipping.District,
		ShippingReference: r.Shipping.Reference,
	}
	if card, ok := r.Payment.(CardPayment); ok {
		out.CardNumber = card.Number
	}
	if out.Items == nil {
		out.Items = []OrderItemRequest{}
	}

	return json.Marshal(out)
}

func (r OrderRequest) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// OrderReceipt is what the API returns for a created order.
type OrderReceipt struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Total         decimal.Decimal `json:"total"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
}

func (r OrderReceipt) Rejected() bool {
	return r.PaymentStatus == PaymentRejected
}

type OrderSummary struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Color       string          `json:"color"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"user_id"`
	OrderNumber       string          `json:"order_number"`
	Total             decimal.Decimal `json:"total"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	Status            OrderStatus     `json:"status"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	ShippingName      string          `json:"shipping_name"`
	ShippingPhone     string          `json:"shipping_phone"`
	ShippingAddress   string          `json:"shipping_address"`
	ShippingDistrict  string          `json:"shipping_district"`
	ShippingReference *string         `json:"shipping_reference"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Items             []OrderItem     `json:"items"`
}
