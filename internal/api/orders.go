package api

import (
	"clothing_shop/internal/cache"
	"clothing_shop/internal/database"
	"clothing_shop/internal/model"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// OrderHandler обрабатывает HTTP-запросы, связанные с заказами.
type OrderHandler struct {
	storage database.OrderRepository
	cache   cache.Cache
}

// NewOrderHandler создает новый экземпляр OrderHandler.
func NewOrderHandler(storage database.OrderRepository, cache cache.Cache) *OrderHandler {
	return &OrderHandler{storage: storage, cache: cache}
}

// GetByNumber ищет заказ по номеру сначала в кэше, затем в БД.
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	handlerName := "GetOrderByNumber"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	number := chi.URLParam(r, "number")
	if number == "" {
		badRequest(w, "номер заказа не указан", handlerName)
		return
	}

	if order, found := h.cache.Get(r.Context(), number); found {
		log.Printf("КЭШ ХИТ: %s", number)
		respondWithJSON(w, http.StatusOK, order, handlerName)
		return
	}

	log.Printf("КЭШ ПРОМАХ: %s. Запрос к БД.", number)
	order, err := h.storage.GetOrderByNumber(r.Context(), number)
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}

	h.cache.Set(r.Context(), number, order)
	respondWithJSON(w, http.StatusOK, order, handlerName)
}

// Create сохраняет заказ вместе с позициями.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	handlerName := "CreateOrder"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	var order model.Order
	if err := decodeJSON(r, &order); err != nil {
		badRequest(w, "некорректный JSON заказа", handlerName)
		return
	}

	if err := h.storage.CreateOrder(r.Context(), &order); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}

	log.Printf("Заказ %s создан.", order.OrderNumber)
	respondWithJSON(w, http.StatusCreated, order, handlerName)
}

// Delete удаляет заказ и убирает его из кэша.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handlerName := "DeleteOrder"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	id, ok := idParam(r)
	if !ok {
		badRequest(w, "некорректный id заказа", handlerName)
		return
	}

	order, err := h.storage.GetOrder(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	if err := h.storage.DeleteOrder(r.Context(), id); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}

	h.cache.Delete(r.Context(), order.OrderNumber)
	w.WriteHeader(http.StatusNoContent)
}

// AddItem добавляет позицию в заказ. Остаток товара проверяется хранилищем.
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	handlerName := "AddOrderItem"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	id, ok := idParam(r)
	if !ok {
		badRequest(w, "некорректный id заказа", handlerName)
		return
	}

	var item model.OrderItem
	if err := decodeJSON(r, &item); err != nil {
		badRequest(w, "некорректный JSON позиции", handlerName)
		return
	}
	item.OrderID = id

	order, err := h.storage.GetOrder(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	if err := h.storage.AddOrderItem(r.Context(), &item); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}

	h.cache.Delete(r.Context(), order.OrderNumber)
	respondWithJSON(w, http.StatusCreated, item, handlerName)
}

// Recalculate пересчитывает total_amount по позициям и обновляет кэш.
func (h *OrderHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	handlerName := "RecalculateOrder"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	id, ok := idParam(r)
	if !ok {
		badRequest(w, "некорректный id заказа", handlerName)
		return
	}

	order, err := h.storage.RecalculateOrderTotal(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}

	h.cache.Set(r.Context(), order.OrderNumber, order)
	respondWithJSON(w, http.StatusOK, order, handlerName)
}
