// Package store holds the shopper's client-side state: the cart and the wishlist.
// Each store is an explicit object owned by the application root; every
// mutation is followed by a call to the injected save hook.
package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// SaveFunc persists the full collection after a mutation.
type SaveFunc[T any] func(items []T) error

// Cart keeps at most one line per (productID, size, color).
type Cart struct {
	mu       sync.RWMutex
	lines    []domain.CartLine
	save     SaveFunc[domain.CartLine]
	currency currency.Unit
}

// NewCart builds a cart from previously persisted lines. Invalid lines are
// dropped and duplicate variants are merged. save may be nil.
func NewCart(initial []domain.CartLine, save SaveFunc[domain.CartLine], cur currency.Unit) *Cart {
	c := &Cart{
		save:     save,
		currency: cur,
	}

	for _, l := range initial {
		if l.Validate() != nil {
			continue
		}
		c.merge(l)
	}

	return c
}

// AddItem appends the line or, when the variant is already present,
// increments its quantity. Stock limits are the server's concern.
func (c *Cart) AddItem(line domain.CartLine) error {
	if err := line.Validate(); err != nil {
		return fmt.Errorf("line.Validate: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.merge(line)

	return c.persist()
}

// RemoveItem drops the whole line for the variant. Missing lines are a no-op.
func (c *Cart) RemoveItem(productID int64, size, color string) error {
	key := domain.LineKey{ProductID: productID, Size: size, Color: color}

	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.lines)
	c.lines = slices.DeleteFunc(c.lines, func(l domain.CartLine) bool {
		return l.Key() == key
	})
	if len(c.lines) == before {
		return nil
	}

	return c.persist()
}

func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil

	return c.persist()
}

// Lines returns a copy; mutating it does not affect the cart.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.lines)
}

func (c *Cart) Snapshot() domain.Cart {
	return domain.Cart{Lines: c.Lines()}
}

// Line returns the line for the variant, if present.
func (c *Cart) Line(productID int64, size, color string) (domain.CartLine, bool) {
	key := domain.LineKey{ProductID: productID, Size: size, Color: color}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, l := range c.lines {
		if l.Key() == key {
			return l, true
		}
	}

	return domain.CartLine{}, false
}

func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

func (c *Cart) TotalItems() int {
	return c.Snapshot().TotalItems()
}

func (c *Cart) TotalAmount() decimal.Decimal {
	return c.Snapshot().TotalAmount()
}

func (c *Cart) Total() domain.Money {
	return domain.NewMoney(c.TotalAmount(), c.currency)
}

func (c *Cart) Currency() currency.Unit {
	return c.currency
}

// merge must be called with mu held.
func (c *Cart) merge(line domain.CartLine) {
	key := line.Key()

	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}

	c.lines = append(c.lines, line)
}

// persist must be called with mu held. The in-memory state stands even when saving fails.
func (c *Cart) persist() error {
	if c.save == nil {
		return nil
	}

	if err := c.save(slices.Clone(c.lines)); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}
