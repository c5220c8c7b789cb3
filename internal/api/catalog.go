package api

import (
	"clothing_shop/internal/analytics"
	"clothing_shop/internal/database"
	"clothing_shop/internal/model"
	"net/http"
	"time"
)

type ClothesTypeHandler struct {
	storage database.ClothesTypeRepository
}

func NewClothesTypeHandler(storage database.ClothesTypeRepository) *ClothesTypeHandler {
	return &ClothesTypeHandler{storage: storage}
}

func (h *ClothesTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListClothesTypes"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	types, err := h.storage.ListClothesTypes(r.Context())
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	respondWithJSON(w, http.StatusOK, types, handlerName)
}

func (h *ClothesTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	handlerName := "CreateClothesType"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	var ct model.ClothesType
	if err := decodeJSON(r, &ct); err != nil {
		badRequest(w, "некорректный JSON типа одежды", handlerName)
		return
	}

	if err := h.storage.CreateClothesType(r.Context(), &ct); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	respondWithJSON(w, http.StatusCreated, ct, handlerName)
}

// Delete удаляет тип одежды. Если на тип ссылаются товары, возвращается 409.
func (h *ClothesTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handlerName := "DeleteClothesType"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	id, ok := idParam(r)
	if !ok {
		badRequest(w, "некорректный id типа одежды", handlerName)
		return
	}

	if err := h.storage.DeleteClothesType(r.Context(), id); err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AnalyticsHandler отдает отчеты по снимку данных.
type AnalyticsHandler struct {
	snapshots database.SnapshotLoader
	now       func() time.Time
}

func NewAnalyticsHandler(snapshots database.SnapshotLoader, now func() time.Time) *AnalyticsHandler {
	return &AnalyticsHandler{snapshots: snapshots, now: now}
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	handlerName := "Dashboard"
	timer := observe(handlerName)
	defer timer.ObserveDuration()

	snap, err := h.snapshots.LoadSnapshot(r.Context())
	if err != nil {
		respondWithDomainError(w, err, handlerName)
		return
	}
	respondWithJSON(w, http.StatusOK, analytics.BuildDashboard(snap, h.now()), handlerName)
}
