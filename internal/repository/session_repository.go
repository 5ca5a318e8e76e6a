package repository

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// TokenKey is the storage key of the bearer token.
const TokenKey = "token"

type sessionRepository struct {
	storage port.LocalStorage
	log     *zap.Logger
	now     func() time.Time
}

func NewSession(storage port.LocalStorage, log *zap.Logger) port.SessionRepository {
	return &sessionRepository{
		storage: storage,
		log:     log.Named("session-repository"),
		now:     time.Now,
	}
}

func (r *sessionRepository) Token() (string, bool) {
	token, ok, err := r.storage.GetItem(TokenKey)
	if err != nil {
		r.log.Warn("token unreadable", zap.Error(err))
		return "", false
	}
	if !ok || token == "" {
		return "", false
	}

	return token, true
}

// Valid does not verify the signature: the API stays the authority. It only
// rejects tokens whose exp claim has already passed. Opaque tokens are valid.
func (r *sessionRepository) Valid() bool {
	token, ok := r.Token()
	if !ok {
		return false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}

	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(r.now()) {
		return false
	}

	return true
}

func (r *sessionRepository) SetToken(token string) error {
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	if err := r.storage.SetItem(TokenKey, token); err != nil {
		return fmt.Errorf("storage.SetItem: %w", err)
	}

	return nil
}

func (r *sessionRepository) RemoveToken() error {
	if err := r.storage.RemoveItem(TokenKey); err != nil {
		return fmt.Errorf("storage.RemoveItem: %w", err)
	}

	return nil
}
