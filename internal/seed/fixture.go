// Package seed заполняет хранилище демонстрационными данными.
package seed

import (
	"clothing_shop/internal/model"
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var defaultFixture []byte

type Fixture struct {
	ClothesTypes    []ClothesTypeFixture    `yaml:"clothes_types"`
	Sizes           []string                `yaml:"sizes"`
	Assortments     []AssortmentFixture     `yaml:"assortments"`
	Buyers          []BuyerFixture          `yaml:"buyers"`
	BuyerProfile    BuyerProfileFixture     `yaml:"buyer_profile"`
	Sellers         []SellerFixture         `yaml:"sellers"`
	DeliveryMethods []DeliveryMethodFixture `yaml:"delivery_methods"`
	Orders          int                     `yaml:"orders"`
}

type ClothesTypeFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type AssortmentFixture struct {
	Name     string          `yaml:"name"`
	Type     string          `yaml:"type"`
	Category model.Category  `yaml:"category"`
	Price    decimal.Decimal `yaml:"price"`
	Stock    int             `yaml:"stock"`
	Sizes    []string        `yaml:"sizes"`
}

type BuyerFixture struct {
	FirstName string       `yaml:"first_name"`
	LastName  string       `yaml:"last_name"`
	Email     string       `yaml:"email"`
	Gender    model.Gender `yaml:"gender"`
	Phone     string       `yaml:"phone"`
	IsVIP     bool         `yaml:"is_vip"`
}

type BuyerProfileFixture struct {
	Address string `yaml:"address"`
	Notes   string `yaml:"notes"`
}

type SellerFixture struct {
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Email        string `yaml:"email"`
	HiredDaysAgo int    `yaml:"hired_days_ago"`
}

type DeliveryMethodFixture struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Cost        decimal.Decimal `yaml:"cost"`
	Days        int             `yaml:"days"`
}

// DefaultFixture возвращает встроенный демо-каталог.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// ParseFixture разбирает YAML и проверяет ссылки между разделами.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ошибка разбора фикстуры: %w", err)
	}

	types := make(map[string]bool, len(f.ClothesTypes))
	for _, ct := range f.ClothesTypes {
		types[ct.Name] = true
	}
	sizes := make(map[string]bool, len(f.Sizes))
	for _, s := range f.Sizes {
		sizes[s] = true
	}
	for _, a := range f.Assortments {
		if !types[a.Type] {
			return nil, fmt.Errorf("товар '%s': неизвестный тип одежды '%s'", a.Name, a.Type)
		}
		for _, s := range a.Sizes {
			if !sizes[s] {
				return nil, fmt.Errorf("товар '%s': неизвестный размер '%s'", a.Name, s)
			}
		}
	}
	if f.Orders > 0 && (len(f.Buyers) == 0 || len(f.DeliveryMethods) == 0 || len(f.Assortments) == 0) {
		return nil, fmt.Errorf("для заказов нужны покупатели, способы доставки и товары")
	}
	return &f, nil
}

// hireDate - дата найма относительно now.
func (s SellerFixture) hireDate(now time.Time) time.Time {
	y, m, d := now.AddDate(0, 0, -s.HiredDaysAgo).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
