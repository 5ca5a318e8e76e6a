package store_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder is a save hook capturing every persisted snapshot.
type recorder[T any] struct {
	calls [][]T
	err   error
}

func (r *recorder[T]) save(items []T) error {
	r.calls = append(r.calls, items)
	return r.err
}

func (r *recorder[T]) last() []T {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
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
		ID:       int64(gofakeit.IntRange(1, 100_000)),
		Name:     gofakeit.ProductName(),
		Price:    decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Category: domain.CategoryShirts,
		Images:   []string{gofakeit.URL()},
		Colors:   []domain.ProductColor{{Name: gofakeit.Color(), Hex: gofakeit.HexColor()}},
	}
}
