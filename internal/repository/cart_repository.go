package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// CartKey is the storage key of the cart line array.
const CartKey = "fina-cart"

type cartRepository struct {
	storage port.LocalStorage
	log     *zap.Logger
}

func NewCart(storage port.LocalStorage, log *zap.Logger) port.CartRepository {
	return &cartRepository{
		storage: storage,
		log:     log.Named("cart-repository"),
	}
}

func (r *cartRepository) Load() []domain.CartLine {
	raw, ok, err := r.storage.GetItem(CartKey)
	if err != nil {
		r.log.Warn("cart blob unreadable, starting empty", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	lines, err := mapCartBlobToDomain(raw)
	if err != nil {
		r.log.Warn("cart blob corrupt, starting empty", zap.Error(err))
		return nil
	}

	for _, skipped := range invalidCartLines(lines) {
		r.log.Warn("dropping invalid cart line", zap.Stringer("key", skipped.Key()))
	}

	return validCartLines(lines)
}

func (r *cartRepository) Save(lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.storage.SetItem(CartKey, string(data)); err != nil {
		return fmt.Errorf("storage.SetItem: %w", err)
	}

	return nil
}

func mapCartBlobToDomain(raw string) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return lines, nil
}

func validCartLines(lines []domain.CartLine) []domain.CartLine {
	var valid []domain.CartLine

	for _, l := range lines {
		if l.Validate() == nil {
			valid = append(valid, l)
		}
	}

	return valid
}

func invalidCartLines(lines []domain.CartLine) []domain.CartLine {
	var invalid []domain.CartLine

	for _, l := range lines {
		if l.Validate() != nil {
			invalid = append(invalid, l)
		}
	}

	return invalid
}
