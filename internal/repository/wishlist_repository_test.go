package repository_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWishlistRepository(t *testing.T) {
	for driver, open := range backends {
		t.Run(driver, func(t *testing.T) {
			storage := open(t)
			defer func() {
				assert.NoError(t, storage.Close())
			}()

			repo := repository.NewWishlist(storage, zaptest.NewLogger(t))

			assert.Empty(t, repo.Load())

			products := []domain.Product{randomProduct(), randomProduct()}
			require.NoError(t, repo.Save(products))

			assert.Empty(t, cmp.Diff(products, repo.Load()))

			require.NoError(t, repo.Save(nil))
			raw, ok, err := storage.GetItem(repository.WishlistKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[]", raw)

			require.NoError(t, storage.SetItem(repository.WishlistKey, "garbage"))
			assert.Empty(t, repo.Load())
		})
	}
}

func TestWishlistRepository_BlankTimestamps(t *testing.T) {
	storage := repository.NewMemoryStorage()
	repo := repository.NewWishlist(storage, zaptest.NewLogger(t))

	raw := `[{"id":1,"name":"Polera","price":49.9,"created_at":"","updated_at":null},` +
		`{"id":2,"name":"Jean","price":120,"created_at":"2024-03-01T10:30:00Z","updated_at":"2024-03-02T08:00:00Z"}]`
	require.NoError(t, storage.SetItem(repository.WishlistKey, raw))

	products := repo.Load()
	require.Len(t, products, 2)
	assert.True(t, products[0].CreatedAt.IsZero())
	assert.Equal(t, 2024, products[1].CreatedAt.Year())
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
