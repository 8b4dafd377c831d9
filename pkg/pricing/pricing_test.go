package pricing

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericPart(t *testing.T, formatted string, c Currency) int64 {
	t.Helper()
	v, err := strconv.ParseInt(strings.TrimPrefix(formatted, c.Symbol), 10, 64)
	require.NoError(t, err, "formatted %q", formatted)
	return v
}

func TestFormatUSDRoundsConvertedPrice(t *testing.T) {
	// 7599 * 0.012 = 91.188
	assert.Equal(t, "$91", FormatPrice(7599, USD))
	assert.Equal(t, "$151", FormatPrice(12599, USD))
	assert.Equal(t, "€84", FormatPrice(7599, EUR))
	assert.Equal(t, "£72", FormatPrice(7599, GBP))
}

func TestFormatRoundsHalfUp(t *testing.T) {
	// 125 * 0.012 = 1.5
	assert.Equal(t, "$2", FormatPrice(125, USD))
	// 1000 * 0.0095 = 9.5
	assert.Equal(t, "£10", FormatPrice(1000, GBP))
}

func TestFormatIdentityOnBaseCurrency(t *testing.T) {
	for _, price := range []int64{0, 1, 299, 7599, 16649, 1_000_000} {
		assert.Equal(t, "₹"+strconv.FormatInt(price, 10), FormatPrice(price, BaseCurrency))
	}
}

func TestFormatIsMonotonicInPrice(t *testing.T) {
	for _, c := range Currencies() {
		prev := numericPart(t, FormatPrice(0, c.Code), c)
		for price := int64(1); price <= 20000; price += 7 {
			cur := numericPart(t, FormatPrice(price, c.Code), c)
			assert.LessOrEqual(t, prev, cur, "currency %s price %d", c.Code, price)
			prev = cur
		}
	}
}

func TestFormatReturnsLabelsUnchanged(t *testing.T) {
	assert.Equal(t, "Included in plan pricing", Format(Label("Included in plan pricing"), USD))
	assert.Equal(t, "18%", Format(Label("18%"), GBP))
	assert.Equal(t, "$48", Format(Price(4000), USD))
}

func TestFormatUnknownCurrencyFallsBackToBase(t *testing.T) {
	assert.Equal(t, "₹7599", FormatPrice(7599, CurrencyCode("JPY")))
}

func TestParseCurrency(t *testing.T) {
	code, err := ParseCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, USD, code)

	_, err = ParseCurrency("BTC")
	assert.Error(t, err)
	_, err = ParseCurrency("")
	assert.Error(t, err)
}

func TestPlanByName(t *testing.T) {
	p, ok := PlanByName("pro")
	require.True(t, ok)
	assert.Equal(t, int64(12599), p.BasePrice)
	assert.True(t, p.IsPopular)

	custom, ok := PlanByName("Custom")
	require.True(t, ok)
	assert.Equal(t, "₹0", FormatPrice(custom.BasePrice, INR))

	_, ok = PlanByName("Enterprise")
	assert.False(t, ok)
}

func TestPlansReturnsCopies(t *testing.T) {
	first := Plans()
	first[0].Features[0].Label = "mutated"
	first[0].BasePrice = 1

	second := Plans()
	assert.Equal(t, int64(7599), second[0].BasePrice)
	assert.NotEqual(t, "mutated", second[0].Features[0].Label)
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(USD)

	assert.Equal(t, USD, q.Currency)
	require.Len(t, q.Plans, 3)
	assert.Equal(t, "$91", q.Plans[0].Price)
	require.Len(t, q.AdditionalCosts, 4)
	assert.Equal(t, "Included in plan pricing", q.AdditionalCosts[0].Price)
	assert.Equal(t, "$48", q.AdditionalCosts[1].Price)
	require.Len(t, q.AddOns, 3)
	assert.Equal(t, "$4", q.AddOns[0].Price)

	selected := 0
	for _, c := range q.Currencies {
		if c.Selected {
			selected++
			assert.Equal(t, USD, c.Code)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestNewQuoteUnknownCurrency(t *testing.T) {
	q := NewQuote("XYZ")
	assert.Equal(t, INR, q.Currency)
	assert.Equal(t, "₹7599", q.Plans[0].Price)
}
