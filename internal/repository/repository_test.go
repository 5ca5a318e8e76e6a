package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

// backends opens one fresh storage per driver.
var backends = map[string]func(t *testing.T) repository.Storage{
	repository.DriverMemory: func(t *testing.T) repository.Storage {
		return repository.NewMemoryStorage()
	},
	repository.DriverFile: func(t *testing.T) repository.Storage {
		s, err := repository.OpenStorage(repository.DriverFile, filepath.Join(t.TempDir(), "storage.json"), nil)
		require.NoError(t, err)
		return s
	},
	repository.DriverSQLite: func(t *testing.T) repository.Storage {
		s, err := repository.OpenStorage(repository.DriverSQLite, ":memory:", gormlogger.Discard)
		require.NoError(t, err)
		return s
	},
}

func randomLine() domain.CartLine {
	return domain.CartLine{
		ProductID: int64(gofakeit.IntRange(1, 100_000)),
		Name:      gofakeit.ProductName(),
		UnitPrice: decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		ImageURL:  gofakeit.URL(),
		Color:     gofakeit.Color(),
		Size:      gofakeit.RandomString(domain.Sizes),
		Quantity:  gofakeit.IntRange(1, 5),
	}
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:          int64(gofakeit.IntRange(1, 100_000)),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Gender:      domain.GenderWomen,
		Category:    domain.CategoryDresses,
		Style:       domain.StyleCasual,
		IsNew:       gofakeit.Bool(),
		Active:      true,
		TotalStock:  gofakeit.IntRange(0, 50),
		Images:      []string{gofakeit.URL(), gofakeit.URL()},
		Colors:      []domain.ProductColor{{Name: gofakeit.Color(), Hex: gofakeit.HexColor()}},
		StockBySize: []domain.ProductStock{{Size: "M", Stock: gofakeit.IntRange(0, 10)}},
	}
}

func assertLines(t *testing.T, expected, actual []domain.CartLine) {
	t.Helper()

	assert.Empty(t, cmp.Diff(expected, actual))
}
