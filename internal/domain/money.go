package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the storefront's pricing currency (Peruvian sol).
var DefaultCurrency = currency.MustParseISO("PEN")

var displayLanguage = language.MustParse("es-PE")

// The storefront API and the fina-cart / fina-wishlist blobs carry prices as
// JSON numbers ("price":49.9), never as quoted strings. This is process-wide:
// any package importing domain gets unquoted decimals.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// String renders the amount with two decimals behind the local currency symbol, e.g. "S/ 149.70".
func (m Money) String() string {
	p := message.NewPrinter(displayLanguage)
	return p.Sprintf("%v %s", currency.Symbol(m.Currency), m.Amount.StringFixed(2))
}
