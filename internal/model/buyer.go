package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Buyer struct {
	ID               int64     `json:"id" db:"id"`
	FirstName        string    `json:"first_name" db:"first_name" validate:"required,max=50"`
	LastName         string    `json:"last_name" db:"last_name" validate:"required,max=50"`
	Email            string    `json:"email" db:"email" validate:"required,email,max=254"`
	Phone            string    `json:"phone" db:"phone" validate:"max=20"`
	Gender           Gender    `json:"gender" db:"gender" validate:"required,oneof=M F O"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
	IsVIP            bool      `json:"is_vip" db:"is_vip"`
}

// FullName возвращает "Фамилия Имя".
func (b Buyer) FullName() string {
	return fmt.Sprintf("%s %s", b.LastName, b.FirstName)
}

// Purchase - покупка. Удаляется вместе с покупателем.
type Purchase struct {
	ID            int64           `json:"id" db:"id"`
	BuyerID       int64           `json:"buyer_id" db:"buyer_id" validate:"required,gt=0"`
	PurchaseDate  time.Time       `json:"purchase_date" db:"purchase_date"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount" validate:"gte=0"`
	PaymentMethod PaymentMethod   `json:"payment_method" db:"payment_method" validate:"required,oneof=cash card online"`
	Notes         string          `json:"notes" db:"notes"`
	// EventID заполняется для покупок из Kafka и делает повторную доставку события идемпотентной.
	EventID *string `json:"event_id,omitempty" db:"event_id" validate:"omitempty,uuid"`
}

// BuyerProfile - профиль покупателя (1:1). Файлы хранятся как непрозрачные ссылки.
type BuyerProfile struct {
	BuyerID               int64      `json:"buyer_id" db:"buyer_id" validate:"required,gt=0"`
	Photo                 string     `json:"photo" db:"photo"`
	PassportScan          string     `json:"passport_scan" db:"passport_scan"`
	Address               string     `json:"address" db:"address"`
	BirthDate             *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	PreferredDeliveryTime *time.Time `json:"preferred_delivery_time,omitempty" db:"preferred_delivery_time"`
	Notes                 string     `json:"notes" db:"notes"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}
