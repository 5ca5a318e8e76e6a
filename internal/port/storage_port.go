package port

import (
	"github.com/nikolayk812/storefront/internal/domain"
)

// LocalStorage is a synchronous, process-local string key/value store.
type LocalStorage interface {
	// GetItem reports ok=false when the key is absent.
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

type CartRepository interface {
	// Load never fails: an absent or unreadable blob yields an empty cart.
	Load() []domain.CartLine
	Save(lines []domain.CartLine) error
}

type WishlistRepository interface {
	Load() []domain.Product
	Save(products []domain.Product) error
}

type SessionRepository interface {
	Token() (string, bool)
	// Valid reports whether a token is held and not known to be expired.
	Valid() bool
	SetToken(token string) error
	RemoveToken() error
}
