package cache

import (
	"clothing_shop/internal/cache/mocks"
	"clothing_shop/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func order(number string) *model.Order {
	return &model.Order{OrderNumber: number}
}

func TestLRUCache_SetAndGet(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "ORD-2024-000001", order("ORD-2024-000001"))
	val, found := cache.Get(ctx, "ORD-2024-000001")
	assertions.True(found)
	assertions.Equal("ORD-2024-000001", val.OrderNumber)

	cache.Set(ctx, "ORD-2024-000002", order("ORD-2024-000002"))
	val, found = cache.Get(ctx, "ORD-2024-000002")
	assertions.True(found)
	assertions.Equal("ORD-2024-000002", val.OrderNumber)

	_, found = cache.Get(ctx, "ORD-2024-000001")
	assertions.True(found)
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "a", order("a"))
	cache.Set(ctx, "b", order("b"))

	// "a" самый старый и должен вытесниться
	cache.Set(ctx, "c", order("c"))

	_, found := cache.Get(ctx, "a")
	assertions.False(found, "a должен быть вытеснен")

	_, found = cache.Get(ctx, "b")
	assertions.True(found)
	_, found = cache.Get(ctx, "c")
	assertions.True(found)
}

func TestLRUCache_UsageUpdatesOrder(t *testing.T) {
	cache := NewLRUCache(2)
	assertions := assert.New(t)
	ctx := context.Background()

	cache.Set(ctx, "a", order("a"))
	cache.Set(ctx, "b", order("b"))

	// Обращение к "a" делает его самым новым, вытесняется "b"
	cache.Get(ctx, "a")
	cache.Set(ctx, "c", order("c"))

	_, found := cache.Get(ctx, "b")
	assertions.False(found, "b должен быть вытеснен")
	_, found = cache.Get(ctx, "a")
	assertions.True(found)
}

func TestLRUCache_UpdateValue(t *testing.T) {
	cache := NewLRUCache(2)
	ctx := context.Background()

	cache.Set(ctx, "a", &model.Order{OrderNumber: "a", Status: model.OrderStatusPending})
	cache.Set(ctx, "a", &model.Order{OrderNumber: "a", Status: model.OrderStatusShipped})

	val, found := cache.Get(ctx, "a")
	assert.True(t, found)
	assert.Equal(t, model.OrderStatusShipped, val.Status)
}

func TestLRUCache_Delete(t *testing.T) {
	cache := NewLRUCache(2)
	ctx := context.Background()

	cache.Set(ctx, "a", order("a"))
	cache.Delete(ctx, "a")
	cache.Delete(ctx, "missing")

	_, found := cache.Get(ctx, "a")
	assert.False(t, found)
}

func TestLRUCache_ZeroCapacity(t *testing.T) {
	cache := NewLRUCache(0)
	ctx := context.Background()

	cache.Set(ctx, "a", order("a"))
	_, found := cache.Get(ctx, "a")
	assert.False(t, found)
}

func TestWarmUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockOrderSource(ctrl)
	ctx := context.Background()

	orders := []model.Order{
		{ID: 3, OrderNumber: "ORD-2024-000003"},
		{ID: 2, OrderNumber: "ORD-2024-000002"},
		{ID: 1, OrderNumber: "ORD-2024-000001"},
	}
	source.EXPECT().ListOrders(gomock.Any()).Return(orders, nil)
	source.EXPECT().ListOrderItems(gomock.Any(), int64(2)).Return([]model.OrderItem{{ID: 20, OrderID: 2}}, nil)
	source.EXPECT().ListOrderItems(gomock.Any(), int64(3)).Return([]model.OrderItem{}, nil)

	cache := NewLRUCache(10)
	err := WarmUp(ctx, source, cache, 2)

	assert.NoError(t, err)
	cached, found := cache.Get(ctx, "ORD-2024-000002")
	assert.True(t, found)
	assert.Len(t, cached.Items, 1)
	_, found = cache.Get(ctx, "ORD-2024-000003")
	assert.True(t, found)
	_, found = cache.Get(ctx, "ORD-2024-000001")
	assert.False(t, found, "в кэш попадают только последние заказы")
}

func TestWarmUp_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockOrderSource(ctrl)
	cacheMock := mocks.NewMockCache(ctrl)
	dbErr := errors.New("db down")

	source.EXPECT().ListOrders(gomock.Any()).Return(nil, dbErr)

	err := WarmUp(context.Background(), source, cacheMock, 10)

	assert.ErrorIs(t, err, dbErr)
}
