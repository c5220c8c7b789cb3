// Package pricing считает производные суммы заказа.
//
// Все результаты округляются до 2 знаков методом "половина от нуля"
// (decimal.Round). Для неотрицательных сумм это обычное округление 0.5 вверх.
package pricing

import "github.com/shopspring/decimal"

// Places - количество знаков после запятой в денежных суммах.
const Places = 2

var hundred = decimal.NewFromInt(100)

// ApplyDiscount уменьшает сумму на discountPercent процентов без округления.
func ApplyDiscount(amount decimal.Decimal, discountPercent int) decimal.Decimal {
	return amount.Mul(hundred.Sub(decimal.NewFromInt(int64(discountPercent)))).Div(hundred)
}

// LineSubtotal = unit_price * quantity * (1 - discount/100).
func LineSubtotal(unitPrice decimal.Decimal, quantity, discountPercent int) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return ApplyDiscount(gross, discountPercent).Round(Places)
}

// OrderTotalWithDiscount = total * (1 - discount/100) + delivery_cost.
func OrderTotalWithDiscount(total decimal.Decimal, discountPercent int, deliveryCost decimal.Decimal) decimal.Decimal {
	return ApplyDiscount(total, discountPercent).Add(deliveryCost).Round(Places)
}

// Sum складывает суммы; пустой список дает ноль.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total.Round(Places)
}
