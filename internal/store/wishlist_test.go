package store_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist_Toggle(t *testing.T) {
	existing := randomProduct()
	fresh := randomProduct()
	fresh.ID = existing.ID + 1

	tests := []struct {
		name      string
		initial   []domain.Product
		toggle    domain.Product
		wantAdded bool
		wantCount int
	}{
		{
			name:      "toggle absent product: added",
			initial:   []domain.Product{existing},
			toggle:    fresh,
			wantAdded: true,
			wantCount: 2,
		},
		{
			name:      "toggle present product: removed",
			initial:   []domain.Product{existing},
			toggle:    existing,
			wantAdded: false,
			wantCount: 0,
		},
		{
			name:      "toggle on empty wishlist: added",
			toggle:    fresh,
			wantAdded: true,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder[domain.Product]{}
			w := store.NewWishlist(tt.initial, rec.save)

			added, err := w.Toggle(tt.toggle)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantAdded, w.Contains(tt.toggle.ID))
			assert.Equal(t, tt.wantCount, w.Count())
			require.Len(t, rec.calls, 1)
			assert.Len(t, rec.last(), tt.wantCount)
		})
	}
}

func TestWishlist_ToggleIsInvolution(t *testing.T) {
	a, b := randomProduct(), randomProduct()
	b.ID = a.ID + 1
	c := randomProduct()
	c.ID = a.ID + 2

	for _, p := range []domain.Product{a, c} {
		w := store.NewWishlist([]domain.Product{a, b}, nil)
		before := w.Products()

		_, err := w.Toggle(p)
		require.NoError(t, err)
		_, err = w.Toggle(p)
		require.NoError(t, err)

		assert.ElementsMatch(t, before, w.Products())
		assert.Equal(t, len(before), w.Count())
	}
}

func TestWishlist_StoresFullSnapshot(t *testing.T) {
	p := randomProduct()
	w := store.NewWishlist(nil, nil)

	_, err := w.Toggle(p)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff([]domain.Product{p}, w.Products()))
}

func TestWishlist_SaveFailure(t *testing.T) {
	rec := &recorder[domain.Product]{err: errors.New("quota exceeded")}
	w := store.NewWishlist(nil, rec.save)

	added, err := w.Toggle(randomProduct())
	require.EqualError(t, err, "save: quota exceeded")
	assert.True(t, added)
	assert.Equal(t, 1, w.Count())
}

func TestNewWishlist_DeduplicatesInitial(t *testing.T) {
	p := randomProduct()

	w := store.NewWishlist([]domain.Product{p, p}, nil)

	assert.Equal(t, 1, w.Count())
	assert.True(t, w.Contains(p.ID))
}
