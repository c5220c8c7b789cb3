// Package analytics содержит отчеты по продажам и складу.
// Все функции чистые: они работают над снимком данных и не меняют его.
package analytics

import (
	"clothing_shop/internal/model"
	"clothing_shop/internal/pricing"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Границы сегментов покупателей по сумме покупок.
var (
	HighSpendThreshold   = decimal.NewFromInt(10000)
	MediumSpendThreshold = decimal.NewFromInt(5000)
)

const (
	summaryWindowDays = 30
	dailyWindowDays   = 7
	lowStockLimit     = 5
	topStockedLimit   = 10
)

// Snapshot - согласованный срез данных, над которым строятся отчеты.
type Snapshot struct {
	Buyers          []model.Buyer
	Purchases       []model.Purchase
	ClothesTypes    []model.ClothesType
	Assortments     []model.Assortment
	Sizes           []model.Size
	AssortmentSizes []model.AssortmentSize
}

type Totals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

type SalesSummary struct {
	AllTime    Totals `json:"all_time"`
	LastMonth  Totals `json:"last_30_days"`
	WindowDays int    `json:"window_days"`
}

type BuyerStats struct {
	BuyerID       int64           `json:"buyer_id"`
	Name          string          `json:"name"`
	PurchaseCount int             `json:"purchase_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
}

type ClothesTypeStats struct {
	ClothesTypeID int64           `json:"clothes_type_id"`
	Name          string          `json:"name"`
	ProductCount  int             `json:"product_count"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

type SizeStats struct {
	SizeID       int64            `json:"size_id"`
	SizeValue    string           `json:"size_value"`
	System       model.SizeSystem `json:"system"`
	ProductCount int              `json:"product_count"`
	TotalStock   int              `json:"total_stock"`
}

type DailySales struct {
	Day     string          `json:"day"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Segmentation struct {
	VIP     int `json:"vip"`
	Regular int `json:"regular"`
	High    int `json:"high"`
	Medium  int `json:"medium"`
	Low     int `json:"low"`
}

// InventoryStatus.TotalValue - сумма цен товаров без учета количества на складе.
type InventoryStatus struct {
	TotalProducts int             `json:"total_products"`
	InStock       int             `json:"in_stock"`
	OutOfStock    int             `json:"out_of_stock"`
	LowStock      int             `json:"low_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

type StockedProduct struct {
	AssortmentID  int64  `json:"assortment_id"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
}

type PaymentMethodCount struct {
	Method model.PaymentMethod `json:"method"`
	Count  int                 `json:"count"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Summary считает выручку, средний чек и число покупок за все время
// и за последние 30 дней до now.
func Summary(purchases []model.Purchase, now time.Time) SalesSummary {
	from := now.AddDate(0, 0, -summaryWindowDays)
	var recent []model.Purchase
	for _, p := range purchases {
		if inWindow(p.PurchaseDate, from, now) {
			recent = append(recent, p)
		}
	}
	return SalesSummary{
		AllTime:    totals(purchases),
		LastMonth:  totals(recent),
		WindowDays: summaryWindowDays,
	}
}

func totals(purchases []model.Purchase) Totals {
	revenue := decimal.Zero
	for _, p := range purchases {
		revenue = revenue.Add(p.TotalAmount)
	}
	t := Totals{Revenue: revenue, Average: decimal.Zero, Count: len(purchases)}
	if t.Count > 0 {
		t.Average = revenue.Div(decimal.NewFromInt(int64(t.Count))).Round(pricing.Places)
	}
	return t
}

// TopBuyers возвращает покупателей по убыванию суммы покупок.
// limit <= 0 означает без ограничения.
func TopBuyers(buyers []model.Buyer, purchases []model.Purchase, limit int) []BuyerStats {
	byBuyer := make(map[int64]*BuyerStats, len(buyers))
	stats := make([]BuyerStats, 0, len(buyers))
	for _, b := range buyers {
		stats = append(stats, BuyerStats{BuyerID: b.ID, Name: b.FullName(), TotalSpent: decimal.Zero})
	}
	for i := range stats {
		byBuyer[stats[i].BuyerID] = &stats[i]
	}
	for _, p := range purchases {
		if s, ok := byBuyer[p.BuyerID]; ok {
			s.PurchaseCount++
			s.TotalSpent = s.TotalSpent.Add(p.TotalAmount)
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if c := stats[i].TotalSpent.Cmp(stats[j].TotalSpent); c != 0 {
			return c > 0
		}
		return stats[i].BuyerID < stats[j].BuyerID
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// ByClothesType считает число товаров и сумму их цен по каждому типу одежды.
func ByClothesType(types []model.ClothesType, assortments []model.Assortment) []ClothesTypeStats {
	index := make(map[int64]int, len(types))
	stats := make([]ClothesTypeStats, 0, len(types))
	for i, ct := range types {
		index[ct.ID] = i
		stats = append(stats, ClothesTypeStats{ClothesTypeID: ct.ID, Name: ct.Name, TotalPrice: decimal.Zero})
	}
	for _, a := range assortments {
		if i, ok := index[a.ClothesTypeID]; ok {
			stats[i].ProductCount++
			stats[i].TotalPrice = stats[i].TotalPrice.Add(a.Price)
		}
	}
	return stats
}

// BySize считает число товаров и суммарный остаток по каждому размеру.
func BySize(sizes []model.Size, assortmentSizes []model.AssortmentSize) []SizeStats {
	index := make(map[int64]int, len(sizes))
	stats := make([]SizeStats, 0, len(sizes))
	for i, s := range sizes {
		index[s.ID] = i
		stats = append(stats, SizeStats{SizeID: s.ID, SizeValue: s.SizeValue, System: s.System})
	}
	for _, as := range assortmentSizes {
		if i, ok := index[as.SizeID]; ok {
			stats[i].ProductCount++
			stats[i].TotalStock += as.Quantity
		}
	}
	return stats
}

// Daily группирует покупки последних 7 дней по календарным дням.
// Дни без покупок не выводятся, порядок - по возрастанию даты.
func Daily(purchases []model.Purchase, now time.Time) []DailySales {
	from := now.AddDate(0, 0, -dailyWindowDays)
	byDay := map[string]*DailySales{}
	for _, p := range purchases {
		if !inWindow(p.PurchaseDate, from, now) {
			continue
		}
		day := p.PurchaseDate.In(now.Location()).Format("2006-01-02")
		d, ok := byDay[day]
		if !ok {
			d = &DailySales{Day: day, Revenue: decimal.Zero}
			byDay[day] = d
		}
		d.Count++
		d.Revenue = d.Revenue.Add(p.TotalAmount)
	}

	days := make([]DailySales, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// Segment делит покупателей на VIP и обычных, а покупателей с покупками -
// на сегменты по сумме: от 10000, от 5000 до 10000, до 5000.
func Segment(buyers []model.Buyer, purchases []model.Purchase) Segmentation {
	var seg Segmentation
	for _, b := range buyers {
		if b.IsVIP {
			seg.VIP++
		} else {
			seg.Regular++
		}
	}

	spent := map[int64]decimal.Decimal{}
	for _, p := range purchases {
		spent[p.BuyerID] = spent[p.BuyerID].Add(p.TotalAmount)
	}
	for _, b := range buyers {
		total, ok := spent[b.ID]
		if !ok {
			continue
		}
		switch {
		case total.GreaterThanOrEqual(HighSpendThreshold):
			seg.High++
		case total.GreaterThanOrEqual(MediumSpendThreshold):
			seg.Medium++
		default:
			seg.Low++
		}
	}
	return seg
}

// Inventory считает состояние склада. TotalValue складывает цены без учета остатка.
func Inventory(assortments []model.Assortment) InventoryStatus {
	status := InventoryStatus{TotalProducts: len(assortments), TotalValue: decimal.Zero}
	for _, a := range assortments {
		switch {
		case a.StockQuantity == 0:
			status.OutOfStock++
		case a.StockQuantity <= lowStockLimit:
			status.InStock++
			status.LowStock++
		default:
			status.InStock++
		}
		status.TotalValue = status.TotalValue.Add(a.Price)
	}
	return status
}

// TopStocked возвращает 10 товаров с наибольшим остатком. При равном остатке выше товар с меньшим ID.
func TopStocked(assortments []model.Assortment) []StockedProduct {
	sorted := make([]model.Assortment, len(assortments))
	copy(sorted, assortments)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StockQuantity != sorted[j].StockQuantity {
			return sorted[i].StockQuantity > sorted[j].StockQuantity
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > topStockedLimit {
		sorted = sorted[:topStockedLimit]
	}

	top := make([]StockedProduct, 0, len(sorted))
	for _, a := range sorted {
		top = append(top, StockedProduct{AssortmentID: a.ID, Name: a.Name, StockQuantity: a.StockQuantity})
	}
	return top
}

// PaymentMethods считает покупки по способам оплаты в порядке убывания.
func PaymentMethods(purchases []model.Purchase) []PaymentMethodCount {
	counts := map[model.PaymentMethod]int{}
	for _, p := range purchases {
		counts[p.PaymentMethod]++
	}

	result := make([]PaymentMethodCount, 0, len(counts))
	for method, count := range counts {
		result = append(result, PaymentMethodCount{Method: method, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Method < result[j].Method
	})
	return result
}

// Monthly считает покупки по месяцам (YYYY-MM) в порядке возрастания.
func Monthly(purchases []model.Purchase, loc *time.Location) []MonthlyCount {
	counts := map[string]int{}
	for _, p := range purchases {
		counts[p.PurchaseDate.In(loc).Format("2006-01")]++
	}

	result := make([]MonthlyCount, 0, len(counts))
	for month, count := range counts {
		result = append(result, MonthlyCount{Month: month, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
