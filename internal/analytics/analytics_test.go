package analytics

import (
	"clothing_shop/internal/model"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func purchase(buyerID int64, amount string, at time.Time, method model.PaymentMethod) model.Purchase {
	return model.Purchase{
		BuyerID:       buyerID,
		TotalAmount:   decimal.RequireFromString(amount),
		PurchaseDate:  at,
		PaymentMethod: method,
	}
}

func TestSummary_Empty(t *testing.T) {
	s := Summary(nil, testNow)

	assert.True(t, s.AllTime.Revenue.IsZero())
	assert.True(t, s.AllTime.Average.IsZero())
	assert.Equal(t, 0, s.AllTime.Count)
	assert.True(t, s.LastMonth.Revenue.IsZero())
	assert.Equal(t, 0, s.LastMonth.Count)
}

func TestSummary_Window(t *testing.T) {
	purchases := []model.Purchase{
		purchase(1, "100.00", testNow.AddDate(0, 0, -1), model.PaymentCard),
		purchase(1, "200.00", testNow.AddDate(0, 0, -29), model.PaymentCash),
		purchase(2, "1000.00", testNow.AddDate(0, 0, -31), model.PaymentOnline),
	}

	s := Summary(purchases, testNow)

	assert.Equal(t, "1300", s.AllTime.Revenue.String())
	assert.Equal(t, "433.33", s.AllTime.Average.StringFixed(2))
	assert.Equal(t, 3, s.AllTime.Count)
	assert.Equal(t, "300", s.LastMonth.Revenue.String())
	assert.Equal(t, "150.00", s.LastMonth.Average.StringFixed(2))
	assert.Equal(t, 2, s.LastMonth.Count)
}

func TestSegment(t *testing.T) {
	buyers := []model.Buyer{
		{ID: 1, IsVIP: true},
		{ID: 2},
		{ID: 3},
		{ID: 4},
	}
	purchases := []model.Purchase{
		purchase(1, "12000", testNow, model.PaymentCard),
		purchase(2, "5000", testNow, model.PaymentCard),
		purchase(2, "2000", testNow, model.PaymentCard),
		purchase(3, "3000", testNow, model.PaymentCard),
	}

	seg := Segment(buyers, purchases)

	assert.Equal(t, Segmentation{VIP: 1, Regular: 3, High: 1, Medium: 1, Low: 1}, seg)
}

func TestSegment_Boundaries(t *testing.T) {
	buyers := []model.Buyer{{ID: 1}, {ID: 2}, {ID: 3}}
	purchases := []model.Purchase{
		purchase(1, "10000", testNow, model.PaymentCard),
		purchase(2, "5000", testNow, model.PaymentCard),
		purchase(3, "4999.99", testNow, model.PaymentCard),
	}

	seg := Segment(buyers, purchases)

	assert.Equal(t, 1, seg.High)
	assert.Equal(t, 1, seg.Medium)
	assert.Equal(t, 1, seg.Low)
}

func TestTopBuyers(t *testing.T) {
	buyers := []model.Buyer{
		{ID: 1, FirstName: "Анна", LastName: "Иванова"},
		{ID: 2, FirstName: "Петр", LastName: "Петров"},
		{ID: 3, FirstName: "Олег", LastName: "Сидоров"},
	}
	purchases := []model.Purchase{
		purchase(2, "500", testNow, model.PaymentCard),
		purchase(2, "700", testNow, model.PaymentCard),
		purchase(1, "900", testNow, model.PaymentCard),
	}

	top := TopBuyers(buyers, purchases, 2)

	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].BuyerID)
	assert.Equal(t, "Петров Петр", top[0].Name)
	assert.Equal(t, 2, top[0].PurchaseCount)
	assert.Equal(t, "1200", top[0].TotalSpent.String())
	assert.Equal(t, int64(1), top[1].BuyerID)
}

func TestByClothesTypeAndSize(t *testing.T) {
	types := []model.ClothesType{{ID: 1, Name: "Платья"}, {ID: 2, Name: "Брюки"}}
	assortments := []model.Assortment{
		{ID: 10, ClothesTypeID: 1, Price: decimal.RequireFromString("2500.00")},
		{ID: 11, ClothesTypeID: 1, Price: decimal.RequireFromString("1500.50")},
	}

	byType := ByClothesType(types, assortments)
	require.Len(t, byType, 2)
	assert.Equal(t, 2, byType[0].ProductCount)
	assert.Equal(t, "4000.5", byType[0].TotalPrice.String())
	assert.Equal(t, 0, byType[1].ProductCount)
	assert.True(t, byType[1].TotalPrice.IsZero())

	sizes := []model.Size{{ID: 1, SizeValue: "M"}, {ID: 2, SizeValue: "L"}}
	stock := []model.AssortmentSize{
		{AssortmentID: 10, SizeID: 1, Quantity: 4},
		{AssortmentID: 11, SizeID: 1, Quantity: 6},
		{AssortmentID: 11, SizeID: 2, Quantity: 1},
	}

	bySize := BySize(sizes, stock)
	require.Len(t, bySize, 2)
	assert.Equal(t, SizeStats{SizeID: 1, SizeValue: "M", ProductCount: 2, TotalStock: 10}, bySize[0])
	assert.Equal(t, 1, bySize[1].TotalStock)
}

func TestDaily(t *testing.T) {
	purchases := []model.Purchase{
		purchase(1, "100", testNow.Add(-time.Hour), model.PaymentCard),
		purchase(1, "50", testNow.Add(-2*time.Hour), model.PaymentCard),
		purchase(1, "70", testNow.AddDate(0, 0, -3), model.PaymentCard),
		purchase(1, "999", testNow.AddDate(0, 0, -8), model.PaymentCard),
	}

	days := Daily(purchases, testNow)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-06-12", days[0].Day)
	assert.Equal(t, 1, days[0].Count)
	assert.Equal(t, "2024-06-15", days[1].Day)
	assert.Equal(t, 2, days[1].Count)
	assert.Equal(t, "150", days[1].Revenue.String())
}

func TestInventory(t *testing.T) {
	assortments := []model.Assortment{
		{StockQuantity: 0, Price: decimal.NewFromInt(100)},
		{StockQuantity: 3, Price: decimal.NewFromInt(200)},
		{StockQuantity: 5, Price: decimal.NewFromInt(300)},
		{StockQuantity: 40, Price: decimal.NewFromInt(400)},
	}

	status := Inventory(assortments)

	assert.Equal(t, 4, status.TotalProducts)
	assert.Equal(t, 3, status.InStock)
	assert.Equal(t, 1, status.OutOfStock)
	assert.Equal(t, 2, status.LowStock)
	// цены складываются без умножения на остаток
	assert.Equal(t, "1000", status.TotalValue.String())
}

func TestInventory_Empty(t *testing.T) {
	status := Inventory(nil)

	assert.Equal(t, 0, status.TotalProducts)
	assert.True(t, status.TotalValue.IsZero())
}

func TestTopStocked(t *testing.T) {
	var assortments []model.Assortment
	for i := 1; i <= 12; i++ {
		assortments = append(assortments, model.Assortment{ID: int64(i), Name: fmt.Sprintf("Товар %d", i), StockQuantity: i * 10})
	}

	top := TopStocked(assortments)

	require.Len(t, top, 10)
	assert.Equal(t, int64(12), top[0].AssortmentID)
	assert.Equal(t, 120, top[0].StockQuantity)
	assert.Equal(t, int64(3), top[9].AssortmentID)
	assert.Equal(t, int64(1), assortments[0].ID, "исходный срез не должен меняться")
}

func TestPaymentMethodsAndMonthly(t *testing.T) {
	purchases := []model.Purchase{
		purchase(1, "1", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), model.PaymentCard),
		purchase(1, "1", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), model.PaymentCash),
		purchase(1, "1", time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC), model.PaymentCard),
		purchase(1, "1", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), model.PaymentOnline),
	}

	methods := PaymentMethods(purchases)
	assert.Equal(t, []PaymentMethodCount{
		{Method: model.PaymentCard, Count: 2},
		{Method: model.PaymentCash, Count: 1},
		{Method: model.PaymentOnline, Count: 1},
	}, methods)

	months := Monthly(purchases, time.UTC)
	assert.Equal(t, []MonthlyCount{
		{Month: "2023-12", Count: 1},
		{Month: "2024-01", Count: 1},
		{Month: "2024-03", Count: 2},
	}, months)
}

func TestBuildDashboard_EmptySnapshot(t *testing.T) {
	d := BuildDashboard(&Snapshot{}, testNow)

	assert.Equal(t, testNow, d.GeneratedAt)
	assert.Equal(t, 0, d.Sales.AllTime.Count)
	assert.Empty(t, d.TopBuyers)
	assert.Empty(t, d.Daily)
	assert.Empty(t, d.Monthly)
	assert.Empty(t, d.PaymentMethods)
	assert.Equal(t, Segmentation{}, d.Segmentation)
}

func TestTopStocked_EqualStockOrderedByID(t *testing.T) {
	assortments := []model.Assortment{
		{ID: 9, Name: "Юбка", StockQuantity: 20},
		{ID: 3, Name: "Брюки", StockQuantity: 20},
		{ID: 7, Name: "Платье", StockQuantity: 50},
		{ID: 1, Name: "Рубашка", StockQuantity: 20},
	}

	top := TopStocked(assortments)

	ids := make([]int64, 0, len(top))
	for _, p := range top {
		ids = append(ids, p.AssortmentID)
	}
	assert.Equal(t, []int64{7, 1, 3, 9}, ids)
}

func TestBuildDashboard_ListsEveryBuyer(t *testing.T) {
	snap := &Snapshot{}
	for i := 1; i <= 15; i++ {
		snap.Buyers = append(snap.Buyers, model.Buyer{ID: int64(i), FirstName: "Покупатель", LastName: fmt.Sprint(i)})
		snap.Purchases = append(snap.Purchases, purchase(int64(i), fmt.Sprint(i*100), testNow, model.PaymentCard))
	}

	d := BuildDashboard(snap, testNow)

	require.Len(t, d.TopBuyers, 15)
	assert.Equal(t, int64(15), d.TopBuyers[0].BuyerID)
	assert.Equal(t, int64(1), d.TopBuyers[14].BuyerID)
}
