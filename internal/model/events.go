package model

import "github.com/shopspring/decimal"

// PurchaseEvent - сообщение о покупке из ленты Kafka.
// EventID делает повторную доставку того же события безопасной.
type PurchaseEvent struct {
	EventID       string          `json:"event_id" validate:"required,uuid"`
	BuyerID       int64           `json:"buyer_id" validate:"required,gt=0"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"gte=0"`
	PaymentMethod PaymentMethod   `json:"payment_method" validate:"omitempty,oneof=cash card online"`
	Notes         string          `json:"notes"`
}

// ToPurchase превращает событие в покупку. Дату покупки проставит хранилище.
func (e PurchaseEvent) ToPurchase() *Purchase {
	eventID := e.EventID
	return &Purchase{
		BuyerID:       e.BuyerID,
		TotalAmount:   e.TotalAmount,
		PaymentMethod: e.PaymentMethod,
		Notes:         e.Notes,
		EventID:       &eventID,
	}
}
