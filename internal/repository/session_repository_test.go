package repository_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func signedToken(t *testing.T, exp *time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": "42", "role": "cliente"}
	if exp != nil {
		claims["exp"] = exp.Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionRepository_Valid(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "no token: invalid", token: "", want: false},
		{name: "expired jwt: invalid", token: signedToken(t, &past), want: false},
		{name: "fresh jwt: valid", token: signedToken(t, &future), want: true},
		{name: "jwt without exp: valid", token: signedToken(t, nil), want: true},
		{name: "opaque token: valid", token: "c2Vzc2lvbi0xMjM", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := repository.NewMemoryStorage()
			repo := repository.NewSession(storage, zaptest.NewLogger(t))

			if tt.token != "" {
				require.NoError(t, repo.SetToken(tt.token))
			}

			assert.Equal(t, tt.want, repo.Valid())
		})
	}
}

func TestSessionRepository_TokenLifecycle(t *testing.T) {
	storage := repository.NewMemoryStorage()
	repo := repository.NewSession(storage, zaptest.NewLogger(t))

	_, ok := repo.Token()
	assert.False(t, ok)

	require.EqualError(t, repo.SetToken(""), "token is empty")

	require.NoError(t, repo.SetToken("abc"))
	token, ok := repo.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	raw, ok, err := storage.GetItem(repository.TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", raw)

	require.NoError(t, repo.RemoveToken())
	_, ok = repo.Token()
	assert.False(t, ok)
	assert.False(t, repo.Valid())

	// removing twice is fine
	require.NoError(t, repo.RemoveToken())
}
