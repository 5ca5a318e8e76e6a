package checkout

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
)

// Assemble projects the cart lines and the form into an order request.
// The lines are copied, so later cart changes do not reach the request.
func Assemble(lines []domain.CartLine, form Form) (domain.OrderRequest, error) {
	if len(lines) == 0 {
		return domain.OrderRequest{}, ErrEmptyCart
	}

	payment, err := mapFormToPayment(form)
	if err != nil {
		return domain.OrderRequest{}, fmt.Errorf("mapFormToPayment: %w", err)
	}

	return domain.OrderRequest{
		Shipping: domain.Shipping{
			Name:      form.Name,
			Phone:     StripFormatting(form.Phone),
			Address:   form.Address,
			District:  form.District,
			Reference: form.Reference,
		},
		Payment: payment,
		Items:   mapLinesToItems(lines),
	}, nil
}

func mapFormToPayment(form Form) (domain.Payment, error) {
	switch form.Method {
	case domain.PaymentCard:
		return domain.CardPayment{
			Number: StripFormatting(form.CardNumber),
			Expiry: form.CardExpiry,
			CVV:    StripFormatting(form.CardCVV),
		}, nil
	case domain.PaymentYape, domain.PaymentPlin:
		return domain.WalletPayment{Wallet: form.Method}, nil
	default:
		return nil, fmt.Errorf("payment method[%s] is not supported", form.Method)
	}
}

func mapLinesToItems(lines []domain.CartLine) []domain.OrderItemRequest {
	items := make([]domain.OrderItemRequest, 0, len(lines))

	for _, l := range lines {
		items = append(items, domain.OrderItemRequest{
			ProductID: l.ProductID,
			Color:     l.Color,
			Size:      l.Size,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
			Name:      l.Name,
		})
	}

	return items
}
