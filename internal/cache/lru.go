package cache

import (
	"clothing_shop/internal/metrics"
	"clothing_shop/internal/model"
	"container/list"
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=lru.go -destination=./mocks/cache_mock.go -package=mocks Cache

// Cache хранит заказы по номеру заказа.
// Контекст нужен для сквозной трассировки.
type Cache interface {
	Set(ctx context.Context, number string, order *model.Order)
	Get(ctx context.Context, number string) (*model.Order, bool)
	Delete(ctx context.Context, number string)
}

// OrderSource - откуда берутся заказы для прогрева.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}

// lruCache реализует LRU (Least Recently Used) кэш заказов.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	tracer   trace.Tracer
}

type cacheItem struct {
	number string
	order  *model.Order
}

// NewLRUCache создает новый LRU-кэш с заданной емкостью.
// При емкости 0 кэш ничего не хранит.
func NewLRUCache(capacity int) Cache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
		tracer:   otel.Tracer("lru-cache"),
	}
}

func (c *lruCache) Set(ctx context.Context, number string, order *model.Order) {
	_, span := c.tracer.Start(ctx, "Cache.Set")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	if element, exists := c.items[number]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*cacheItem).order = order
		return
	}

	if c.queue.Len() >= c.capacity {
		c.removeOldest()
	}

	element := c.queue.PushFront(&cacheItem{number: number, order: order})
	c.items[number] = element

	metrics.CacheSize.Set(float64(c.queue.Len()))
}

func (c *lruCache) Get(ctx context.Context, number string) (*model.Order, bool) {
	_, span := c.tracer.Start(ctx, "Cache.Get")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[number]; exists {
		c.queue.MoveToFront(element)
		metrics.CacheHits.Inc()
		return element.Value.(*cacheItem).order, true
	}

	metrics.CacheMisses.Inc()
	return nil, false
}

// Delete убирает заказ из кэша после его изменения или удаления.
func (c *lruCache) Delete(ctx context.Context, number string) {
	_, span := c.tracer.Start(ctx, "Cache.Delete")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.items[number]; exists {
		c.queue.Remove(element)
		delete(c.items, number)
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// removeOldest удаляет самый старый элемент (мьютекс уже захвачен).
func (c *lruCache) removeOldest() {
	element := c.queue.Back()
	if element != nil {
		item := c.queue.Remove(element).(*cacheItem)
		delete(c.items, item.number)

		metrics.CacheEvictions.Inc()
		metrics.CacheSize.Set(float64(c.queue.Len()))
	}
}

// WarmUp загружает в кэш limit последних заказов вместе с позициями.
func WarmUp(ctx context.Context, source OrderSource, cache Cache, limit int) error {
	log.Println("Выполняется прогрев кэша...")
	orders, err := source.ListOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}

	// Самые свежие заказы кладем последними, чтобы они вытеснялись позже.
	for i := len(orders) - 1; i >= 0; i-- {
		order := orders[i]
		items, err := source.ListOrderItems(ctx, order.ID)
		if err != nil {
			return err
		}
		order.Items = items
		cache.Set(ctx, order.OrderNumber, &order)
	}

	log.Printf("Кэш прогрет. Загружено %d заказов.", len(orders))
	return nil
}
