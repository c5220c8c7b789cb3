package api

import (
	"bytes"
	"clothing_shop/internal/analytics"
	"clothing_shop/internal/cache/mocks"
	db_mocks "clothing_shop/internal/database/mocks"
	"clothing_shop/internal/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// helperTestOrder - универсальный тестовый заказ
var helperTestOrder = &model.Order{
	ID:               7,
	BuyerID:          1,
	DeliveryMethodID: 1,
	OrderNumber:      "ORD-2024-000123",
	Status:           model.OrderStatusPending,
	TotalAmount:      decimal.RequireFromString("2700.00"),
	ContactPhone:     "+79001234567",
	Items: []model.OrderItem{
		{ID: 1, OrderID: 7, AssortmentID: 3, Quantity: 3, UnitPrice: decimal.NewFromInt(1000), DiscountPercent: 10},
	},
}

// setupOrderHandler - хелпер для инициализации хендлера заказов и моков
func setupOrderHandler(t *testing.T) (*OrderHandler, *mocks.MockCache, *db_mocks.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctrl)
	mockStorage := db_mocks.NewMockOrderRepository(ctrl)
	return NewOrderHandler(mockStorage, mockCache), mockCache, mockStorage
}

// createTestRequest - хелпер для создания HTTP-запроса с URL-параметрами chi
func createTestRequest(method, target string, body interface{}, params map[string]string) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)

	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorResponse {
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestOrderHandler_GetByNumber_CacheHit(t *testing.T) {
	handler, mockCache, mockStorage := setupOrderHandler(t)
	number := helperTestOrder.OrderNumber
	rr := httptest.NewRecorder()
	req := createTestRequest("GET", "/api/orders/"+number, nil, map[string]string{"number": number})

	mockCache.EXPECT().Get(gomock.Any(), number).Return(helperTestOrder, true)
	mockStorage.EXPECT().GetOrderByNumber(gomock.Any(), gomock.Any()).Times(0)

	handler.GetByNumber(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var order model.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.Equal(t, number, order.OrderNumber)
	assert.Len(t, order.Items, 1)
}

func TestOrderHandler_GetByNumber_CacheMiss_DBHit(t *testing.T) {
	handler, mockCache, mockStorage := setupOrderHandler(t)
	number := helperTestOrder.OrderNumber
	rr := httptest.NewRecorder()
	req := createTestRequest("GET", "/api/orders/"+number, nil, map[string]string{"number": number})

	mockCache.EXPECT().Get(gomock.Any(), number).Return(nil, false)
	mockStorage.EXPECT().GetOrderByNumber(gomock.Any(), number).Return(helperTestOrder, nil)
	mockCache.EXPECT().Set(gomock.Any(), number, helperTestOrder).Times(1)

	handler.GetByNumber(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOrderHandler_GetByNumber_NotFound(t *testing.T) {
	handler, mockCache, mockStorage := setupOrderHandler(t)
	number := "ORD-2024-999999"
	rr := httptest.NewRecorder()
	req := createTestRequest("GET", "/api/orders/"+number, nil, map[string]string{"number": number})

	mockCache.EXPECT().Get(gomock.Any(), number).Return(nil, false)
	mockStorage.EXPECT().GetOrderByNumber(gomock.Any(), number).Return(nil, model.ErrNotFound)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	handler.GetByNumber(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, kindNotFound, decodeError(t, rr).Kind)
}

func TestOrderHandler_GetByNumber_NoNumber(t *testing.T) {
	handler, _, _ := setupOrderHandler(t)

	// Запрос без chi-контекста
	req := httptest.NewRequest("GET", "/api/orders/", nil)
	rr := httptest.NewRecorder()

	handler.GetByNumber(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_Create_BusinessRuleViolation(t *testing.T) {
	handler, _, mockStorage := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	req := createTestRequest("POST", "/api/orders", helperTestOrder, nil)

	mockStorage.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(model.ValidationErrors{
		&model.BusinessRuleViolation{Field: "delivery_date", Reason: "дата доставки не может быть раньше даты заказа"},
	})

	handler.Create(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, kindBusinessRule, resp.Kind)
	assert.Equal(t, "delivery_date", resp.Field)
}

func TestOrderHandler_Create_Success(t *testing.T) {
	handler, _, mockStorage := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	req := createTestRequest("POST", "/api/orders", helperTestOrder, nil)

	mockStorage.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order *model.Order) error {
			order.ID = 42
			return nil
		})

	handler.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var order model.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.Equal(t, int64(42), order.ID)
}

func TestOrderHandler_Create_BadJSON(t *testing.T) {
	handler, _, _ := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString("{not json"))

	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_Delete_InvalidatesCache(t *testing.T) {
	handler, mockCache, mockStorage := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	req := createTestRequest("DELETE", "/api/orders/7", nil, map[string]string{"id": "7"})

	gomock.InOrder(
		mockStorage.EXPECT().GetOrder(gomock.Any(), int64(7)).Return(helperTestOrder, nil),
		mockStorage.EXPECT().DeleteOrder(gomock.Any(), int64(7)).Return(nil),
		mockCache.EXPECT().Delete(gomock.Any(), helperTestOrder.OrderNumber),
	)

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestOrderHandler_Delete_BadID(t *testing.T) {
	handler, _, _ := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	req := createTestRequest("DELETE", "/api/orders/abc", nil, map[string]string{"id": "abc"})

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_AddItem_InsufficientStock(t *testing.T) {
	handler, mockCache, mockStorage := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	item := model.OrderItem{AssortmentID: 3, Quantity: 10, UnitPrice: decimal.NewFromInt(1000)}
	req := createTestRequest("POST", "/api/orders/7/items", item, map[string]string{"id": "7"})

	mockStorage.EXPECT().GetOrder(gomock.Any(), int64(7)).Return(helperTestOrder, nil)
	mockStorage.EXPECT().AddOrderItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item *model.OrderItem) error {
			assert.Equal(t, int64(7), item.OrderID)
			return &model.BusinessRuleViolation{Field: "quantity", Reason: "недостаточно товара на складе: доступно 4"}
		})
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	handler.AddItem(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "quantity", resp.Field)
	assert.Contains(t, resp.Error, "доступно 4")
}

func TestOrderHandler_AddItem_Success(t *testing.T) {
	handler, mockCache, mockStorage := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	item := model.OrderItem{AssortmentID: 3, Quantity: 1, UnitPrice: decimal.NewFromInt(1000)}
	req := createTestRequest("POST", "/api/orders/7/items", item, map[string]string{"id": "7"})

	mockStorage.EXPECT().GetOrder(gomock.Any(), int64(7)).Return(helperTestOrder, nil)
	mockStorage.EXPECT().AddOrderItem(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), helperTestOrder.OrderNumber)

	handler.AddItem(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestOrderHandler_Recalculate(t *testing.T) {
	handler, mockCache, mockStorage := setupOrderHandler(t)
	rr := httptest.NewRecorder()
	req := createTestRequest("POST", "/api/orders/7/recalculate", nil, map[string]string{"id": "7"})

	mockStorage.EXPECT().RecalculateOrderTotal(gomock.Any(), int64(7)).Return(helperTestOrder, nil)
	mockCache.EXPECT().Set(gomock.Any(), helperTestOrder.OrderNumber, helperTestOrder)

	handler.Recalculate(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var order model.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.Equal(t, "2700", order.TotalAmount.String())
}

func TestBuyerHandler_Create_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	buyers := db_mocks.NewMockBuyerRepository(ctrl)
	handler := NewBuyerHandler(buyers, db_mocks.NewMockPurchaseRepository(ctrl))

	body := model.Buyer{FirstName: "Анна", LastName: "Иванова", Email: "anna@example.com", Gender: model.GenderFemale}
	rr := httptest.NewRecorder()
	req := createTestRequest("POST", "/api/buyers", body, nil)

	buyers.EXPECT().CreateBuyer(gomock.Any(), gomock.Any()).
		Return(&model.ConstraintViolation{Field: "email", Reason: "значение уже используется"})

	handler.Create(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, kindConstraint, resp.Kind)
	assert.Equal(t, "email", resp.Field)
}

func TestBuyerHandler_Purchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	buyers := db_mocks.NewMockBuyerRepository(ctrl)
	purchases := db_mocks.NewMockPurchaseRepository(ctrl)
	handler := NewBuyerHandler(buyers, purchases)

	rr := httptest.NewRecorder()
	req := createTestRequest("GET", "/api/buyers/1/purchases", nil, map[string]string{"id": "1"})

	buyers.EXPECT().GetBuyer(gomock.Any(), int64(1)).Return(&model.Buyer{ID: 1}, nil)
	purchases.EXPECT().ListBuyerPurchases(gomock.Any(), int64(1)).Return([]model.Purchase{
		{ID: 1, BuyerID: 1, TotalAmount: decimal.NewFromInt(500), PaymentMethod: model.PaymentCard},
	}, nil)

	handler.Purchases(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []model.Purchase
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestBuyerHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	buyers := db_mocks.NewMockBuyerRepository(ctrl)
	handler := NewBuyerHandler(buyers, db_mocks.NewMockPurchaseRepository(ctrl))

	rr := httptest.NewRecorder()
	req := createTestRequest("GET", "/api/buyers/5", nil, map[string]string{"id": "5"})

	buyers.EXPECT().GetBuyer(gomock.Any(), int64(5)).Return(nil, model.ErrNotFound)

	handler.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestClothesTypeHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantCode int
		wantKind string
	}{
		{name: "не используется", dbErr: nil, wantCode: http.StatusNoContent},
		{
			name:  "используется товаром",
			dbErr: &model.ReferentialIntegrityViolation{
				Entity:   model.KindClothesType,
				Relation: "assortments.clothes_type_id",
				Reason:   "запись используется и не может быть удалена",
			},
			wantCode: http.StatusConflict,
			wantKind: kindReferential,
		},
		{name: "ошибка БД", dbErr: errors.New("connection reset"), wantCode: http.StatusInternalServerError, wantKind: kindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := db_mocks.NewMockClothesTypeRepository(ctrl)
			handler := NewClothesTypeHandler(storage)

			rr := httptest.NewRecorder()
			req := createTestRequest("DELETE", "/api/clothes-types/1", nil, map[string]string{"id": "1"})
			storage.EXPECT().DeleteClothesType(gomock.Any(), int64(1)).Return(tt.dbErr)

			handler.Delete(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decodeError(t, rr).Kind)
			}
		})
	}
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := db_mocks.NewMockSnapshotLoader(ctrl)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	handler := NewAnalyticsHandler(loader, func() time.Time { return now })

	loader.EXPECT().LoadSnapshot(gomock.Any()).Return(&analytics.Snapshot{
		Buyers:    []model.Buyer{{ID: 1, IsVIP: true}},
		Purchases: []model.Purchase{
			{BuyerID: 1, TotalAmount: decimal.NewFromInt(12000), PurchaseDate: now.Add(-time.Hour), PaymentMethod: model.PaymentCard},
		},
	}, nil)

	rr := httptest.NewRecorder()
	handler.Dashboard(rr, httptest.NewRequest("GET", "/api/analytics/dashboard", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var dashboard analytics.Dashboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dashboard))
	assert.Equal(t, 1, dashboard.Sales.AllTime.Count)
	assert.Equal(t, 1, dashboard.Segmentation.High)
	assert.Equal(t, 1, dashboard.Segmentation.VIP)
}
