// Package checkout turns the cart and the checkout form into one order
// submission and reacts to the API's answer.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront/internal/apiclient"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPaymentRejected  = errors.New("payment rejected")
)

// ShippingCost is flat and currently free.
var ShippingCost = decimal.Zero

const unknownError = "Error desconocido"

type Flow struct {
	cart     *store.Cart
	orders   port.OrderAPI
	session  port.SessionRepository
	nav      port.Navigator
	notifier port.Notifier
	validate *validator.Validate
	log      *zap.Logger
}

func NewFlow(
	cart *store.Cart,
	orders port.OrderAPI,
	session port.SessionRepository,
	nav port.Navigator,
	notifier port.Notifier,
	log *zap.Logger,
) *Flow {
	return &Flow{
		cart:     cart,
		orders:   orders,
		session:  session,
		nav:      nav,
		notifier: notifier,
		validate: newValidator(),
		log:      log.Named("checkout"),
	}
}

type Summary struct {
	Subtotal domain.Money
	Shipping domain.Money
	Total    domain.Money
}

func (f *Flow) Summary() Summary {
	cur := f.cart.Currency()
	subtotal := f.cart.Total()
	shipping := domain.NewMoney(ShippingCost, cur)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// Begin enters the checkout view. An empty cart goes back home; a missing or
// expired session goes to login.
func (f *Flow) Begin() error {
	if err := f.preconditions(); err != nil {
		return err
	}

	f.nav.Navigate(port.ViewCheckout)
	return nil
}

func (f *Flow) preconditions() error {
	if f.cart.IsEmpty() {
		f.nav.Navigate(port.ViewHome)
		return ErrEmptyCart
	}

	if !f.session.Valid() {
		f.nav.Navigate(port.ViewLogin)
		return ErrNotAuthenticated
	}

	return nil
}

// Validate runs the local checks without touching the network.
func (f *Flow) Validate(form Form) error {
	return validateForm(f.validate, form)
}

// Submit validates, sends the order once and, on approval, clears the cart
// and moves to the order history. On any failure the cart is left as is and
// the shopper stays on the checkout view.
func (f *Flow) Submit(ctx context.Context, form Form) (domain.OrderReceipt, error) {
	if err := f.preconditions(); err != nil {
		return domain.OrderReceipt{}, err
	}

	if err := f.Validate(form); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && len(verr.Fields) > 0 {
			f.notifier.Error(verr.Fields[0].Message, "")
		}
		return domain.OrderReceipt{}, err
	}

	req, err := Assemble(f.cart.Lines(), form)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("Assemble: %w", err)
	}

	f.log.Info("submitting order",
		zap.Int("lines", len(req.Items)),
		zap.String("total", req.Total().String()),
		zap.String("payment_method", string(req.Payment.Method())))

	receipt, err := f.orders.CreateOrder(ctx, req)
	if err != nil {
		f.log.Warn("order submission failed", zap.Error(err))
		f.notifier.Error("Pago Rechazado", apiclient.Message(err, unknownError))
		return domain.OrderReceipt{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	if receipt.Rejected() {
		f.log.Warn("payment rejected", zap.String("order_number", receipt.OrderNumber))
		f.notifier.Error("Pago Rechazado", fmt.Sprintf("Orden #%s rechazada.", receipt.OrderNumber))
		return receipt, ErrPaymentRejected
	}

	if err := f.cart.Clear(); err != nil {
		// the order exists server-side; a stale persisted cart is the lesser problem
		f.log.Error("cart.Clear failed after order", zap.Error(err))
	}

	f.notifier.Success("¡Pago Aprobado!", fmt.Sprintf("Orden #%s generada.", receipt.OrderNumber))
	f.nav.Navigate(port.ViewMyOrders)

	return receipt, nil
}
