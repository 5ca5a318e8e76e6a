package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
)

// Wishlist is a set of product snapshots keyed by product id.
// Toggle is the only mutation, so applying it twice restores the prior state.
type Wishlist struct {
	mu       sync.RWMutex
	products []domain.Product
	save     SaveFunc[domain.Product]
}

func NewWishlist(initial []domain.Product, save SaveFunc[domain.Product]) *Wishlist {
	w := &Wishlist{save: save}

	for _, p := range initial {
		if w.index(p.ID) < 0 {
			w.products = append(w.products, p)
		}
	}

	return w
}

// Toggle removes the product when present, otherwise adds the snapshot.
// It reports whether the product is in the wishlist afterwards.
func (w *Wishlist) Toggle(product domain.Product) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var added bool
	if i := w.index(product.ID); i >= 0 {
		w.products = slices.Delete(w.products, i, i+1)
	} else {
		w.products = append(w.products, product)
		added = true
	}

	if w.save != nil {
		if err := w.save(slices.Clone(w.products)); err != nil {
			return added, fmt.Errorf("save: %w", err)
		}
	}

	return added, nil
}

func (w *Wishlist) Contains(productID int64) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.index(productID) >= 0
}

func (w *Wishlist) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.products)
}

func (w *Wishlist) Products() []domain.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Clone(w.products)
}

func (w *Wishlist) index(productID int64) int {
	return slices.IndexFunc(w.products, func(p domain.Product) bool {
		return p.ID == productID
	})
}
