package api

import (
	"clothing_shop/internal/database"
	"clothing_shop/internal/model"
	"net/http"
)

// BuyerHandler обрабатывает запросы к покупателям и их покупкам.
type BuyerHandler struct {
	buyers    database.BuyerRepository
	purchases database.PurchaseRepository
}

func NewBuyerHandler(buyers database.BuyerRepository, purchases database.PurchaseRepository) *BuyerHandler {
	return &BuyerHandler{buyers: buyers, purchases: purchases}
}

func (h *BuyerHandler) List(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListBuyers"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	buyers, err := h.buyers.ListBuyers(r.Context())
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	respondWithJSON(w, http.StatusOK, buyers, handlerName)
}

func (h *BuyerHandler) Get(w http.ResponseWriter, r *http.Request) {
	handlerName := "GetBuyer"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	id, ok := idParam(r)
	if !ok {
		badRequest(w, "некорректный id покупателя", handlerName)
		return
	}

	buyer, err := h.buyers.GetBuyer(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	respondWithJSON(w, http.StatusOK, buyer, handlerName)
}

// Create регистрирует покупателя. Повторный email возвращает 422.
func (h *BuyerHandler) Create(w http.ResponseWriter, r *http.Request) {
	handlerName := "CreateBuyer"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	var buyer model.Buyer
	if err := decodeJSON(r, &buyer); err != nil {
		badRequest(w, "некорректный JSON покупателя", handlerName)
		return
	}

	if err := h.buyers.CreateBuyer(r.Context(), &buyer); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	respondWithJSON(w, http.StatusCreated, buyer, handlerName)
}

func (h *BuyerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handlerName := "DeleteBuyer"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	id, ok := idParam(r)
	if !ok {
		badRequest(w, "некорректный id покупателя", handlerName)
		return
	}

	if err := h.buyers.DeleteBuyer(r.Context(), id); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Purchases возвращает историю покупок покупателя.
func (h *BuyerHandler) Purchases(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListBuyerPurchases"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	id, ok := idParam(r)
	if !ok {
		badRequest(w, "некорректный id покупателя", handlerName)
		return
	}

	if _, err := h.buyers.GetBuyer(r.Context(), id); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	purchases, err := h.purchases.ListBuyerPurchases(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	respondWithJSON(w, http.StatusOK, purchases, handlerName)
}
