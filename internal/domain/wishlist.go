package domain

type Wishlist struct {
	Products []Product
}

func (w Wishlist) Contains(productID int64) bool {
	for _, p := range w.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (w Wishlist) Count() int {
	return len(w.Products)
}
