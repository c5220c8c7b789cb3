package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineSubtotal(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		quantity int
		discount int
		want     string
	}{
		{"скидка 10%", "100", 3, 10, "270.00"},
		{"без скидки", "4500", 2, 0, "9000.00"},
		{"полная скидка", "999.99", 5, 100, "0.00"},
		{"округление вверх", "0.05", 1, 50, "0.03"},
		{"копейки", "1234.56", 3, 15, "3148.13"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LineSubtotal(dec(tc.price), tc.quantity, tc.discount)
			assert.Equal(t, tc.want, got.StringFixed(Places))
		})
	}
}

func TestOrderTotalWithDiscount(t *testing.T) {
	got := OrderTotalWithDiscount(dec("1000"), 15, dec("200"))
	assert.True(t, got.Equal(dec("1050.00")), "получено %s", got)

	// Доставка не участвует в скидке
	got = OrderTotalWithDiscount(dec("0"), 50, dec("350"))
	assert.Equal(t, "350.00", got.StringFixed(Places))
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().IsZero())
	assert.Equal(t, "10.30", Sum(dec("10.10"), dec("0.2")).StringFixed(Places))
}
