package validator

import (
	"clothing_shop/internal/model"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helperTestOrder - валидный заказ для тестов
func helperTestOrder() *model.Order {
	orderDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	deliveryDate := orderDate.AddDate(0, 0, 2)
	return &model.Order{
		BuyerID:          1,
		DeliveryMethodID: 1,
		OrderNumber:      "ORD-2024-000123",
		OrderDate:        orderDate,
		DeliveryDate:     &deliveryDate,
		Status:           model.OrderStatusPending,
		TotalAmount:      decimal.NewFromInt(1000),
		DeliveryCost:     decimal.NewFromInt(200),
		DiscountPercent:  15,
		ContactPhone:     "+375291234567",
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var cv *model.ConstraintViolation
	if errors.As(err, &cv) {
		return cv.Field
	}
	var bv *model.BusinessRuleViolation
	if errors.As(err, &bv) {
		return bv.Field
	}
	t.Fatalf("ожидалось доменное нарушение, получено: %v", err)
	return ""
}

func TestValidateStruct_ValidOrder(t *testing.T) {
	assert.NoError(t, ValidateStruct(helperTestOrder()))
}

func TestValidateStruct_FieldScopedErrors(t *testing.T) {
	order := helperTestOrder()
	order.Status = "lost"

	err := ValidateStruct(order)
	require.Error(t, err)

	var cv *model.ConstraintViolation
	require.True(t, errors.As(err, &cv))
	assert.Equal(t, "status", cv.Field)
	assert.Contains(t, cv.Reason, "pending")
}

func TestValidateStruct_NegativeDecimal(t *testing.T) {
	order := helperTestOrder()
	order.DeliveryCost = decimal.NewFromInt(-1)

	err := ValidateStruct(order)
	require.Error(t, err)
	assert.Equal(t, "delivery_cost", fieldOf(t, err))
}

func TestValidateStruct_DiscountBounds(t *testing.T) {
	order := helperTestOrder()
	order.DiscountPercent = 101

	err := ValidateStruct(order)
	require.Error(t, err)
	assert.Equal(t, "discount_percent", fieldOf(t, err))
}

func TestValidateStruct_BuyerEnumAndEmail(t *testing.T) {
	buyer := &model.Buyer{FirstName: "Иван", LastName: "Иванов", Email: "not-an-email", Gender: "X"}

	err := ValidateStruct(buyer)
	require.Error(t, err)

	var violations model.ValidationErrors
	require.True(t, errors.As(err, &violations))
	assert.Len(t, violations, 2)
}

func TestValidateStruct_DeliveryDaysRange(t *testing.T) {
	method := &model.DeliveryMethod{Name: "Курьер", Cost: decimal.NewFromInt(350), DeliveryTimeDays: 0}
	assert.Error(t, ValidateStruct(method))

	method.DeliveryTimeDays = 366
	assert.Error(t, ValidateStruct(method))

	method.DeliveryTimeDays = 365
	assert.NoError(t, ValidateStruct(method))
}

func TestCheckOrderNumber(t *testing.T) {
	assert.NoError(t, CheckOrderNumber("ORD-2024-000123"))

	for _, bad := range []string{"ORD-24-123", "ord-2024-000123", "ORD-2024-0001234", "ORD-2024-000123 ", ""} {
		err := CheckOrderNumber(bad)
		assert.Error(t, err, bad)

		var bv *model.BusinessRuleViolation
		assert.True(t, errors.As(err, &bv))
	}
}

func TestCheckPhone(t *testing.T) {
	for _, good := range []string{"+375291234567", "123456789", "+1234567890", "1234567890"} {
		assert.NoError(t, CheckPhone("contact_phone", good), good)
	}
	for _, bad := range []string{"12345678", "+7 999 000 00 00", "phone", "+99999999999999999"} {
		assert.Error(t, CheckPhone("contact_phone", bad), bad)
	}
}

func TestValidateOrder(t *testing.T) {
	assert.NoError(t, ValidateOrder(helperTestOrder()))

	t.Run("дата доставки раньше даты заказа", func(t *testing.T) {
		order := helperTestOrder()
		early := order.OrderDate.AddDate(0, 0, -1)
		order.DeliveryDate = &early

		err := ValidateOrder(order)
		require.Error(t, err)
		assert.Equal(t, "delivery_date", fieldOf(t, err))
	})

	t.Run("доставка в день заказа", func(t *testing.T) {
		order := helperTestOrder()
		sameDay := order.OrderDate.Add(5 * time.Hour)
		order.DeliveryDate = &sameDay
		assert.NoError(t, ValidateOrder(order))
	})

	t.Run("без даты доставки", func(t *testing.T) {
		order := helperTestOrder()
		order.DeliveryDate = nil
		assert.NoError(t, ValidateOrder(order))
	})

	t.Run("скидка больше 100", func(t *testing.T) {
		order := helperTestOrder()
		order.DiscountPercent = 150
		assert.Equal(t, "discount_percent", fieldOf(t, ValidateOrder(order)))
	})
}

func TestValidateOrderItem(t *testing.T) {
	assortment := &model.Assortment{ID: 7, Name: "Куртка кожаная", StockQuantity: 3}
	item := &model.OrderItem{OrderID: 1, AssortmentID: 7, Quantity: 3, UnitPrice: decimal.NewFromInt(8900)}

	assert.NoError(t, ValidateOrderItem(item, assortment))

	t.Run("недостаточно товара", func(t *testing.T) {
		over := *item
		over.Quantity = 4

		err := ValidateOrderItem(&over, assortment)
		require.Error(t, err)

		var bv *model.BusinessRuleViolation
		require.True(t, errors.As(err, &bv))
		assert.Equal(t, "quantity", bv.Field)
		assert.Contains(t, bv.Reason, "доступно 3")
	})

	t.Run("нулевое количество", func(t *testing.T) {
		zero := *item
		zero.Quantity = 0
		assert.Equal(t, "quantity", fieldOf(t, ValidateOrderItem(&zero, assortment)))
	})

	t.Run("отрицательная цена", func(t *testing.T) {
		negative := *item
		negative.UnitPrice = decimal.NewFromInt(-1)
		assert.Equal(t, "unit_price", fieldOf(t, ValidateOrderItem(&negative, assortment)))
	})

	t.Run("товар не найден", func(t *testing.T) {
		assert.Equal(t, "assortment_id", fieldOf(t, ValidateOrderItem(item, nil)))
	})
}

func TestValidateBuyerProfile(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateBuyerProfile(&model.BuyerProfile{BuyerID: 1}, now))

	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateBuyerProfile(&model.BuyerProfile{BuyerID: 1, BirthDate: &today}, now))

	tomorrow := today.AddDate(0, 0, 1)
	err := ValidateBuyerProfile(&model.BuyerProfile{BuyerID: 1, BirthDate: &tomorrow}, now)
	require.Error(t, err)
	assert.Equal(t, "birth_date", fieldOf(t, err))
}

func TestValidateSellerProfile(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	profile := &model.SellerProfile{
		SellerID:   1,
		Phone:      "+375291234567",
		Address:    "г. Минск",
		BirthDate:  now.AddDate(1, 0, 0),
		Department: "Продажи",
	}
	assert.Error(t, ValidateSellerProfile(profile, now))

	profile.BirthDate = now.AddDate(-30, 0, 0)
	assert.NoError(t, ValidateSellerProfile(profile, now))
}

func TestValidate_RulesSkippedOnTagErrors(t *testing.T) {
	called := false
	err := Validate(&model.ClothesType{}, func() error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
