package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineKey identifies a cart line: one line per product variant.
type LineKey struct {
	ProductID int64
	Size      string
	Color     string
}

func (k LineKey) String() string {
	return fmt.Sprintf("%d/%s/%s", k.ProductID, k.Size, k.Color)
}

// CartLine holds a snapshot of the product at the time it was added.
// Later catalog price changes do not touch existing lines.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Validate checks the line is acceptable for the cart.
func (l CartLine) Validate() error {
	if l.ProductID <= 0 {
		return fmt.Errorf("productID is not valid: %d", l.ProductID)
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %d", l.Quantity)
	}
	if l.Size == "" {
		return fmt.Errorf("size is empty")
	}
	if l.Color == "" {
		return fmt.Errorf("color is empty")
	}
	if l.UnitPrice.IsNegative() {
		return fmt.Errorf("price is negative: %s", l.UnitPrice)
	}

	return nil
}

type Cart struct {
	Lines []CartLine
}

func (c Cart) TotalItems() int {
	var total int
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

func (c Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
