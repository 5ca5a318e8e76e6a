package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
)

var ErrOutOfStock = errors.New("out of stock")

// AddToCart snapshots the product variant into the cart. The quantity is
// capped at the advertised stock for the size, less what the cart already holds.
func (a *App) AddToCart(ctx context.Context, productID int64, size, color string, quantity int) (domain.CartLine, error) {
	product, err := a.API.GetProduct(ctx, productID)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("API.GetProduct: %w", err)
	}

	line, err := product.NewCartLine(color, size, quantity)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("product.NewCartLine: %w", err)
	}

	available := product.StockFor(size)
	if held, ok := a.Cart.Line(line.ProductID, line.Size, line.Color); ok {
		available -= held.Quantity
	}
	if available <= 0 {
		return domain.CartLine{}, fmt.Errorf("size[%s]: %w", size, ErrOutOfStock)
	}
	line.Quantity = min(line.Quantity, available)

	if err := a.Cart.AddItem(line); err != nil {
		return domain.CartLine{}, fmt.Errorf("Cart.AddItem: %w", err)
	}

	return line, nil
}

// ToggleWishlist fetches the product and flips its wishlist membership.
func (a *App) ToggleWishlist(ctx context.Context, productID int64) (domain.Product, bool, error) {
	product, err := a.API.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("API.GetProduct: %w", err)
	}

	added, err := a.Wishlist.Toggle(product)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("Wishlist.Toggle: %w", err)
	}

	return product, added, nil
}
