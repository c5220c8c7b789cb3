package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClothesType - справочник типов одежды (платья, брюки, рубашки...).
type ClothesType struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required,max=100"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Size - размер в одной из систем. Пара (size_value, system) уникальна.
type Size struct {
	ID          int64      `json:"id" db:"id"`
	SizeValue   string     `json:"size_value" db:"size_value" validate:"required,max=10"`
	System      SizeSystem `json:"system" db:"system" validate:"required,oneof=int ru eu us"`
	Description string     `json:"description" db:"description" validate:"max=100"`
}

// Assortment - товар. Удалить тип одежды, пока на него ссылаются товары, нельзя.
type Assortment struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name" validate:"required,max=200"`
	ClothesTypeID int64           `json:"clothes_type_id" db:"clothes_type_id" validate:"required,gt=0"`
	Category      Category        `json:"category" db:"category" validate:"required,oneof=top bottom dress underwear accessories"`
	Description   string          `json:"description" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price" validate:"gte=0"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity" validate:"gte=0"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// IsAvailable сообщает, есть ли товар на складе.
func (a Assortment) IsAvailable() bool {
	return a.StockQuantity > 0
}

// AssortmentSize - наличие товара в конкретном размере.
// Количество не сверяется с Assortment.StockQuantity автоматически.
type AssortmentSize struct {
	ID           int64 `json:"id" db:"id"`
	AssortmentID int64 `json:"assortment_id" db:"assortment_id" validate:"required,gt=0"`
	SizeID       int64 `json:"size_id" db:"size_id" validate:"required,gt=0"`
	Quantity     int   `json:"quantity" db:"quantity" validate:"gte=0"`
}
