package generator

import (
	"clothing_shop/internal/model"
	"clothing_shop/internal/validator"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func testRefs() OrderRefs {
	return OrderRefs{
		Buyers:  []model.Buyer{{ID: 1}, {ID: 2}},
		Sellers: []model.Seller{{ID: 10}},
		DeliveryMethods: []model.DeliveryMethod{
			{ID: 1, Cost: decimal.NewFromInt(350), DeliveryTimeDays: 2},
			{ID: 2, Cost: decimal.NewFromInt(400), DeliveryTimeDays: 7},
		},
		Assortments: []model.Assortment{
			{ID: 1, Price: decimal.NewFromInt(4500)},
			{ID: 2, Price: decimal.NewFromInt(2800)},
			{ID: 3, Price: decimal.NewFromInt(1200)},
		},
		Sizes: []model.Size{{ID: 1}, {ID: 2}, {ID: 3}},
	}
}

func TestNewPurchaseEvent_IsValid(t *testing.T) {
	g := New(42)

	for i := 0; i < 20; i++ {
		event := g.NewPurchaseEvent([]int64{3, 4})

		require.NoError(t, validator.ValidateStruct(&event))
		assert.Contains(t, []int64{3, 4}, event.BuyerID)
		assert.False(t, event.TotalAmount.IsNegative())
	}
}

func TestNewOrder_IsValid(t *testing.T) {
	g := New(7)
	refs := testRefs()

	for i := 1; i <= 20; i++ {
		order := g.NewOrder(i, refs, now)

		require.NoError(t, validator.Validate(&order, func() error { return validator.ValidateOrder(&order) }))
		assert.Equal(t, fmt.Sprintf("ORD-2025-%06d", i), order.OrderNumber)
		assert.False(t, order.OrderDate.After(now))
		assert.False(t, order.DeliveryDate.Before(order.OrderDate))
		require.NotNil(t, order.SellerID)
		assert.Equal(t, int64(10), *order.SellerID)
		assert.True(t, order.TotalAmount.IsZero())

		require.NotEmpty(t, order.Items)
		assert.LessOrEqual(t, len(order.Items), maxItemsPerOrder)
		seen := map[string]bool{}
		for _, item := range order.Items {
			key := fmt.Sprintf("%d/%d", item.AssortmentID, *item.SizeID)
			assert.False(t, seen[key], "позиции заказа не должны повторяться")
			seen[key] = true
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.LessOrEqual(t, item.Quantity, 3)
		}
	}
}

func TestNewOrder_SameSeedSameOrder(t *testing.T) {
	a := New(99).NewOrder(1, testRefs(), now)
	b := New(99).NewOrder(1, testRefs(), now)

	assert.Equal(t, a, b)
}
