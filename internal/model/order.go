package model

import (
	"clothing_shop/internal/pricing"
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryMethod struct {
	ID               int64           `json:"id" db:"id"`
	Name             string          `json:"name" db:"name" validate:"required,max=100"`
	Description      string          `json:"description" db:"description"`
	Cost             decimal.Decimal `json:"cost" db:"cost" validate:"gte=0"`
	DeliveryTimeDays int             `json:"delivery_time_days" db:"delivery_time_days" validate:"gte=1,lte=365"`
	IsActive         bool            `json:"is_active" db:"is_active"`
	Icon             string          `json:"icon" db:"icon"`
}

// Order - заказ. Покупатель, продавец и способ доставки защищены от удаления,
// пока на них ссылается заказ. TotalAmount хранится независимо от позиций.
type Order struct {
	ID               int64           `json:"id" db:"id"`
	BuyerID          int64           `json:"buyer_id" db:"buyer_id" validate:"required,gt=0"`
	SellerID         *int64          `json:"seller_id,omitempty" db:"seller_id" validate:"omitempty,gt=0"`
	DeliveryMethodID int64           `json:"delivery_method_id" db:"delivery_method_id" validate:"required,gt=0"`
	OrderNumber      string          `json:"order_number" db:"order_number" validate:"required,order_number"`
	OrderDate        time.Time       `json:"order_date" db:"order_date"`
	OrderTime        time.Time       `json:"order_time" db:"order_time"`
	DeliveryDate     *time.Time      `json:"delivery_date,omitempty" db:"delivery_date"`
	DeliveryTime     *time.Time      `json:"delivery_time,omitempty" db:"delivery_time"`
	Status           OrderStatus     `json:"status" db:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	TotalAmount      decimal.Decimal `json:"total_amount" db:"total_amount" validate:"gte=0"`
	DeliveryCost     decimal.Decimal `json:"delivery_cost" db:"delivery_cost" validate:"gte=0"`
	DiscountPercent  int             `json:"discount_percent" db:"discount_percent" validate:"gte=0,lte=100"`
	DeliveryAddress  string          `json:"delivery_address" db:"delivery_address"`
	ContactPhone     string          `json:"contact_phone" db:"contact_phone" validate:"required,phone"`
	Notes            string          `json:"notes" db:"notes"`
	Invoice          string          `json:"invoice" db:"invoice"`
	DeliveryPhoto    string          `json:"delivery_photo" db:"delivery_photo"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
	Items            []OrderItem     `json:"items,omitempty" db:"-"`
}

// OrderItem - позиция заказа. Тройка (order, assortment, size) уникальна.
type OrderItem struct {
	ID              int64           `json:"id" db:"id"`
	OrderID         int64           `json:"order_id" db:"order_id" validate:"required,gt=0"`
	AssortmentID    int64           `json:"assortment_id" db:"assortment_id" validate:"required,gt=0"`
	Quantity        int             `json:"quantity" db:"quantity" validate:"gte=1"`
	UnitPrice       decimal.Decimal `json:"unit_price" db:"unit_price" validate:"gte=0"`
	DiscountPercent int             `json:"discount_percent" db:"discount_percent" validate:"gte=0,lte=100"`
	SizeID          *int64          `json:"size_id,omitempty" db:"size_id" validate:"omitempty,gt=0"`
	Notes           string          `json:"notes" db:"notes"`
}

// TotalWithDiscount - сумма к оплате: total_amount со скидкой плюс доставка.
func (o Order) TotalWithDiscount() decimal.Decimal {
	return pricing.OrderTotalWithDiscount(o.TotalAmount, o.DiscountPercent, o.DeliveryCost)
}

// Subtotal - стоимость позиции с учетом скидки.
func (i OrderItem) Subtotal() decimal.Decimal {
	return pricing.LineSubtotal(i.UnitPrice, i.Quantity, i.DiscountPercent)
}
