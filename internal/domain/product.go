package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultColor is used when a product is listed without colour variants.
const DefaultColor = "Único"

type (
	Gender   string
	Category string
	Style    string
)

const (
	GenderWomen Gender = "mujer"
	GenderMen   Gender = "hombre"
	GenderKids  Gender = "niños"
)

const (
	CategoryShirts  Category = "poleras"
	CategoryPants   Category = "pantalones"
	CategoryDresses Category = "vestidos"
	CategoryJackets Category = "chaquetas"
	CategoryShoes   Category = "zapatos"
)

const (
	StyleCasual Style = "casual"
	StyleFormal Style = "formal"
	StyleSport  Style = "deportivo"
)

// Sizes lists the catalog sizes in display order.
var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

type ProductColor struct {
	Name string `json:"color_name"`
	Hex  string `json:"color_hex"`
}

type ProductStock struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type Product struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Gender           Gender          `json:"gender"`
	Category         Category        `json:"category"`
	Style            Style           `json:"style"`
	Material         string          `json:"material,omitempty"`
	CareInstructions string          `json:"care_instructions,omitempty"`
	IsNew            bool            `json:"is_new"`
	Active           bool            `json:"active"`
	CreatedAt        Timestamp       `json:"created_at"`
	UpdatedAt        Timestamp       `json:"updated_at"`
	TotalStock       int             `json:"total_stock"`
	Images           []string        `json:"images"`
	Colors           []ProductColor  `json:"colors"`
	StockBySize      []ProductStock  `json:"stock_by_size"`
}

// StockFor returns the advertised availability for a size, zero when the size is not offered.
func (p Product) StockFor(size string) int {
	for _, s := range p.StockBySize {
		if s.Size == size {
			return s.Stock
		}
	}
	return 0
}

func (p Product) HasColor(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

// NewCartLine snapshots the product into a cart line for the selected variant.
// An empty color selects the first colour, or DefaultColor when none is listed.
func (p Product) NewCartLine(color, size string, quantity int) (CartLine, error) {
	if size == "" {
		return CartLine{}, fmt.Errorf("size is empty")
	}

	if color == "" {
		color = DefaultColor
		if len(p.Colors) > 0 {
			color = p.Colors[0].Name
		}
	} else if len(p.Colors) > 0 && !p.HasColor(color) {
		return CartLine{}, fmt.Errorf("color[%s] is not offered for product[%d]", color, p.ID)
	}

	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  image,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
	}, nil
}

// ProductFilter narrows a catalog listing; zero values are not sent.
type ProductFilter struct {
	Category Category
	Gender   Gender
	Style    Style
	Size     string
	Color    string
	Search   string
	MinPrice decimal.NullDecimal
	MaxPrice decimal.NullDecimal
	OnlyNew  bool
}

// ProductPayload is the admin create/update body.
type ProductPayload struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Gender           Gender          `json:"gender"`
	Category         Category        `json:"category"`
	Style            Style           `json:"style"`
	Material         string          `json:"material,omitempty"`
	CareInstructions string          `json:"care_instructions,omitempty"`
	IsNew            bool            `json:"is_new"`
	Images           []string        `json:"images"`
	Colors           []PayloadColor  `json:"colors"`
	Stock            []PayloadStock  `json:"stock"`
}

type PayloadColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type PayloadStock struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Clean drops blank images, incomplete colours and negative stock rows.
func (p ProductPayload) Clean() ProductPayload {
	out := p
	out.Images = nil
	for _, img := range p.Images {
		if img != "" {
			out.Images = append(out.Images, img)
		}
	}
	out.Colors = nil
	for _, c := range p.Colors {
		if c.Name != "" && c.Hex != "" {
			out.Colors = append(out.Colors, c)
		}
	}
	out.Stock = nil
	for _, s := range p.Stock {
		if s.Quantity >= 0 {
			out.Stock = append(out.Stock, s)
		}
	}
	return out
}
