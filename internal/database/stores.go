package database

import (
	"clothing_shop/internal/model"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// StoreID - логическое хранилище, которому принадлежит тип сущности.
type StoreID string

const (
	StorePrimary   StoreID = "primary"
	StoreSecondary StoreID = "secondary"
)

// secondaryKinds - сущности, живущие во втором хранилище.
var secondaryKinds = map[model.Kind]bool{
	model.KindSeller:         true,
	model.KindSellerProfile:  true,
	model.KindDeliveryMethod: true,
	model.KindBuyerProfile:   true,
	model.KindOrder:          true,
	model.KindOrderItem:      true,
}

// StoreFor выбирает хранилище по типу сущности.
func StoreFor(kind model.Kind) StoreID {
	if secondaryKinds[kind] {
		return StoreSecondary
	}
	return StorePrimary
}

// relations перечисляет, на какие сущности ссылается каждая сущность.
var relations = map[model.Kind][]model.Kind{
	model.KindPurchase:       {model.KindBuyer},
	model.KindAssortment:     {model.KindClothesType},
	model.KindAssortmentSize: {model.KindAssortment, model.KindSize},
	model.KindSellerProfile:  {model.KindSeller},
	model.KindBuyerProfile:   {model.KindBuyer},
	model.KindOrder:          {model.KindBuyer, model.KindSeller, model.KindDeliveryMethod},
	model.KindOrderItem:      {model.KindOrder, model.KindAssortment, model.KindSize},
}

// Stores связывает логические хранилища с подключениями.
// Если второе подключение не задано, второе хранилище - это первое.
type Stores struct {
	primary   *sqlx.DB
	secondary *sqlx.DB
}

// NewStores создает набор хранилищ. secondary может быть nil.
func NewStores(primary, secondary *sqlx.DB) *Stores {
	if secondary == nil {
		secondary = primary
	}
	return &Stores{primary: primary, secondary: secondary}
}

// db возвращает подключение, в котором хранится сущность.
func (s *Stores) db(kind model.Kind) *sqlx.DB {
	if StoreFor(kind) == StoreSecondary {
		return s.secondary
	}
	return s.primary
}

// Separate сообщает, разнесены ли хранилища по разным базам.
func (s *Stores) Separate() bool {
	return s.primary != s.secondary
}

// AllowRelation разрешает связь, только если обе сущности лежат в одной базе.
func (s *Stores) AllowRelation(a, b model.Kind) bool {
	return s.db(a) == s.db(b)
}

// CheckRelations проверяет все связи сущности до обращения к SQL.
func (s *Stores) CheckRelations(kind model.Kind) error {
	for _, target := range relations[kind] {
		if !s.AllowRelation(kind, target) {
			return &model.ReferentialIntegrityViolation{
				Entity:   kind,
				Relation: fmt.Sprintf("%s -> %s", kind, target),
				Reason:   fmt.Sprintf("связь между хранилищами %s и %s запрещена", StoreFor(kind), StoreFor(target)),
			}
		}
	}
	return nil
}

// all возвращает различные физические подключения.
func (s *Stores) all() []*sqlx.DB {
	if s.Separate() {
		return []*sqlx.DB{s.primary, s.secondary}
	}
	return []*sqlx.DB{s.primary}
}
