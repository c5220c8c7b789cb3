package api

import (
	"clothing_shop/internal/metrics"
	"clothing_shop/internal/model"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// errorResponse - тело ответа с ошибкой.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind"`
}

const (
	kindBadRequest   = "bad_request"
	kindNotFound     = "not_found"
	kindConstraint   = "constraint"
	kindBusinessRule = "business_rule"
	kindReferential  = "referential_integrity"
	kindInternal     = "internal"
)

// observe запускает таймер длительности запроса для хэндлера.
func observe(handlerName string) *prometheus.Timer {
	return prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, handlerName string) {
	metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(code)).Inc()
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Ошибка сериализации ответа: %v", err)
		code = http.StatusInternalServerError
		response = []byte(`{"error":"ошибка сериализации ответа","kind":"internal"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, resp errorResponse, handlerName string) {
	respondWithJSON(w, code, resp, handlerName)
}

// respondWithDomainError переводит ошибку хранилища в HTTP-статус.
// Нарушения модели возвращаются клиенту с именем поля.
func respondWithDomainError(w http.ResponseWriter, err error, handlerName string) {
	var (
		cv *model.ConstraintViolation
		bv *model.BusinessRuleViolation
		rv *model.ReferentialIntegrityViolation
	)
	switch {
	case errors.Is(err, model.ErrNotFound):
		respondWithError(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: kindNotFound}, handlerName)
	case errors.As(err, &rv):
		respondWithError(w, http.StatusConflict, errorResponse{Error: err.Error(), Field: rv.Relation, Kind: kindReferential}, handlerName)
	case errors.As(err, &cv):
		respondWithError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: cv.Field, Kind: kindConstraint}, handlerName)
	case errors.As(err, &bv):
		respondWithError(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: bv.Field, Kind: kindBusinessRule}, handlerName)
	default:
		log.Printf("Ошибка обработки запроса %s: %v", handlerName, err)
		respondWithError(w, http.StatusInternalServerError, errorResponse{Error: "внутренняя ошибка сервера", Kind: kindInternal}, handlerName)
	}
}

// decodeJSON читает тело запроса. Неизвестные поля считаются ошибкой.
func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

// idParam читает числовой идентификатор из URL.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badRequest(w http.ResponseWriter, message, handlerName string) {
	respondWithError(w, http.StatusBadRequest, errorResponse{Error: message, Kind: kindBadRequest}, handlerName)
}
