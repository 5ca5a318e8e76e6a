package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// WishlistKey is the storage key of the wishlist product array.
const WishlistKey = "fina-wishlist"

type wishlistRepository struct {
	storage port.LocalStorage
	log     *zap.Logger
}

func NewWishlist(storage port.LocalStorage, log *zap.Logger) port.WishlistRepository {
	return &wishlistRepository{
		storage: storage,
		log:     log.Named("wishlist-repository"),
	}
}

func (r *wishlistRepository) Load() []domain.Product {
	raw, ok, err := r.storage.GetItem(WishlistKey)
	if err != nil {
		r.log.Warn("wishlist blob unreadable, starting empty", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var products []domain.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		r.log.Warn("wishlist blob corrupt, starting empty", zap.Error(err))
		return nil
	}

	return products
}

func (r *wishlistRepository) Save(products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.storage.SetItem(WishlistKey, string(data)); err != nil {
		return fmt.Errorf("storage.SetItem: %w", err)
	}

	return nil
}
