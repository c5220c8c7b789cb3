package generator

import (
	"clothing_shop/internal/model"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	paymentMethods = []string{string(model.PaymentCash), string(model.PaymentCard), string(model.PaymentOnline)}
	orderDiscounts = []int{0, 5, 10, 15}
	itemDiscounts  = []int{0, 5, 10}
)

const (
	deliveryAddress  = "г. Минск, ул. Ленина, д. 10"
	orderPhone       = "+375291234567"
	maxOrderAgeDays  = 10
	maxItemsPerOrder = 4
)

// Generator создает случайные демо-данные магазина.
// При одинаковом seed последовательность данных повторяется.
type Generator struct {
	faker *gofakeit.Faker
}

// New создает генератор. seed = 0 выбирает случайное зерно.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// NewPurchaseEvent создает событие покупки для одного из покупателей.
func (g *Generator) NewPurchaseEvent(buyerIDs []int64) model.PurchaseEvent {
	buyerID := buyerIDs[g.faker.Number(0, len(buyerIDs)-1)]
	amount := decimal.NewFromInt(int64(g.faker.Number(500, 25000)))

	return model.PurchaseEvent{
		EventID:       uuid.New().String(),
		BuyerID:       buyerID,
		TotalAmount:   amount,
		PaymentMethod: model.PaymentMethod(g.faker.RandomString(paymentMethods)),
		Notes:         g.faker.Sentence(4),
	}
}

// OrderRefs - справочники, из которых собирается заказ.
type OrderRefs struct {
	Buyers          []model.Buyer
	Sellers         []model.Seller
	DeliveryMethods []model.DeliveryMethod
	Assortments     []model.Assortment
	Sizes           []model.Size
}

// NewOrder создает заказ с номером ORD-{год}-{seq} и случайными позициями.
// total_amount остается нулевым: его пересчитывает хранилище.
func (g *Generator) NewOrder(seq int, refs OrderRefs, now time.Time) model.Order {
	buyer := refs.Buyers[g.faker.Number(0, len(refs.Buyers)-1)]
	method := refs.DeliveryMethods[g.faker.Number(0, len(refs.DeliveryMethods)-1)]

	orderDate := dateOf(now).AddDate(0, 0, -g.faker.Number(0, maxOrderAgeDays))
	deliveryDate := orderDate.AddDate(0, 0, method.DeliveryTimeDays)
	deliveryTime := now.Add(2 * time.Hour)

	order := model.Order{
		BuyerID:          buyer.ID,
		DeliveryMethodID: method.ID,
		OrderNumber:      fmt.Sprintf("ORD-%d-%06d", orderDate.Year(), seq),
		OrderDate:        orderDate,
		OrderTime:        now,
		DeliveryDate:     &deliveryDate,
		DeliveryTime:     &deliveryTime,
		Status:           model.OrderStatuses[g.faker.Number(0, len(model.OrderStatuses)-1)],
		DeliveryCost:     method.Cost,
		DiscountPercent:  orderDiscounts[g.faker.Number(0, len(orderDiscounts)-1)],
		DeliveryAddress:  deliveryAddress,
		ContactPhone:     orderPhone,
	}
	if len(refs.Sellers) > 0 {
		sellerID := refs.Sellers[g.faker.Number(0, len(refs.Sellers)-1)].ID
		order.SellerID = &sellerID
	}

	order.Items = g.orderItems(refs.Assortments, refs.Sizes)
	return order
}

// orderItems выбирает от 1 до 4 различных пар (товар, размер).
func (g *Generator) orderItems(assortments []model.Assortment, sizes []model.Size) []model.OrderItem {
	count := g.faker.Number(1, maxItemsPerOrder)
	seen := make(map[string]bool, count)
	items := make([]model.OrderItem, 0, count)

	for attempt := 0; len(items) < count && attempt < count*4; attempt++ {
		a := assortments[g.faker.Number(0, len(assortments)-1)]
		item := model.OrderItem{
			AssortmentID:    a.ID,
			Quantity:        g.faker.Number(1, 3),
			UnitPrice:       a.Price,
			DiscountPercent: itemDiscounts[g.faker.Number(0, len(itemDiscounts)-1)],
		}
		key := fmt.Sprintf("%d", a.ID)
		if len(sizes) > 0 {
			sizeID := sizes[g.faker.Number(0, len(sizes)-1)].ID
			item.SizeID = &sizeID
			key = fmt.Sprintf("%d/%d", a.ID, sizeID)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
