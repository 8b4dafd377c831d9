// Package pricing holds the static plan catalog and converts base-currency
// prices into the display currency a visitor picked.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode identifies a display currency.
type CurrencyCode string

const (
	INR CurrencyCode = "INR"
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
)

// BaseCurrency is the currency every price is authored in.
const BaseCurrency = INR

// Currency is a display transform relative to the base currency. The
// multipliers are illustrative constants, not exchange rates.
type Currency struct {
	Code       CurrencyCode
	Symbol     string
	Name       string
	Multiplier decimal.Decimal
}

var currencies = map[CurrencyCode]Currency{
	INR: {Code: INR, Symbol: "₹", Name: "Indian Rupee", Multiplier: decimal.NewFromInt(1)},
	USD: {Code: USD, Symbol: "$", Name: "US Dollar", Multiplier: decimal.RequireFromString("0.012")},
	EUR: {Code: EUR, Symbol: "€", Name: "Euro", Multiplier: decimal.RequireFromString("0.011")},
	GBP: {Code: GBP, Symbol: "£", Name: "British Pound", Multiplier: decimal.RequireFromString("0.0095")},
}

// currencyOrder is the order the selector lists currencies in.
var currencyOrder = []CurrencyCode{INR, USD, EUR, GBP}

// Currencies lists the supported currencies in selector order.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencyOrder))
	for _, code := range currencyOrder {
		out = append(out, currencies[code])
	}
	return out
}

// Lookup returns the currency for code.
func Lookup(code CurrencyCode) (Currency, bool) {
	c, ok := currencies[code]
	return c, ok
}

// ParseCurrency accepts a currency code in any case.
func ParseCurrency(raw string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := currencies[code]; !ok {
		return "", fmt.Errorf("unsupported currency %q", raw)
	}
	return code, nil
}

// Amount is either a whole base-currency price or a text sentinel shown as is.
type Amount struct {
	price int64
	label string
}

// Price is a base-currency amount.
func Price(v int64) Amount {
	return Amount{price: v}
}

// Label is a non-numeric amount such as "Included in plan pricing".
func Label(text string) Amount {
	return Amount{label: text}
}

// IsLabel reports whether the amount is a text sentinel.
func (a Amount) IsLabel() bool {
	return a.label != ""
}

// Base returns the base-currency value; zero for labels.
func (a Amount) Base() int64 {
	return a.price
}

// Convert returns price*multiplier rounded half-up to a whole unit.
func Convert(price int64, code CurrencyCode) int64 {
	c, ok := currencies[code]
	if !ok {
		c = currencies[BaseCurrency]
	}
	return decimal.NewFromInt(price).Mul(c.Multiplier).Round(0).IntPart()
}

// FormatPrice renders a base-currency price in code, e.g. "$91". Unknown
// codes render in the base currency.
func FormatPrice(price int64, code CurrencyCode) string {
	c, ok := currencies[code]
	if !ok {
		c = currencies[BaseCurrency]
	}
	return fmt.Sprintf("%s%d", c.Symbol, Convert(price, c.Code))
}

// Format renders an amount in code; labels are returned unchanged.
func Format(a Amount, code CurrencyCode) string {
	if a.IsLabel() {
		return a.label
	}
	return FormatPrice(a.price, code)
}
