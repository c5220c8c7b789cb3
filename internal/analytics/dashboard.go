package analytics

import "time"

// Dashboard объединяет все отчеты для главной панели.
type Dashboard struct {
	GeneratedAt    time.Time            `json:"generated_at"`
	Sales          SalesSummary         `json:"sales"`
	TopBuyers      []BuyerStats         `json:"top_buyers"`
	ClothesTypes   []ClothesTypeStats   `json:"clothes_types"`
	Sizes          []SizeStats          `json:"sizes"`
	Daily          []DailySales         `json:"daily"`
	Segmentation   Segmentation         `json:"segmentation"`
	Inventory      InventoryStatus      `json:"inventory"`
	TopStocked     []StockedProduct     `json:"top_stocked"`
	PaymentMethods []PaymentMethodCount `json:"payment_methods"`
	Monthly        []MonthlyCount       `json:"monthly"`
}

// BuildDashboard строит все отчеты по одному снимку на момент now.
func BuildDashboard(s *Snapshot, now time.Time) Dashboard {
	return Dashboard{
		GeneratedAt:    now,
		Sales:          Summary(s.Purchases, now),
		TopBuyers:      TopBuyers(s.Buyers, s.Purchases, 0),
		ClothesTypes:   ByClothesType(s.ClothesTypes, s.Assortments),
		Sizes:          BySize(s.Sizes, s.AssortmentSizes),
		Daily:          Daily(s.Purchases, now),
		Segmentation:   Segment(s.Buyers, s.Purchases),
		Inventory:      Inventory(s.Assortments),
		TopStocked:     TopStocked(s.Assortments),
		PaymentMethods: PaymentMethods(s.Purchases),
		Monthly:        Monthly(s.Purchases, now.Location()),
	}
}
