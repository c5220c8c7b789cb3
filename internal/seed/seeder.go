package seed

import (
	"clothing_shop/internal/database"
	"clothing_shop/internal/generator"
	"clothing_shop/internal/model"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

//go:generate mockgen -destination=./mocks/store_mock.go -package=mocks clothing_shop/internal/seed Store

// Store - операции хранилища, которые использует сидер.
type Store interface {
	database.ClothesTypeRepository
	database.SizeRepository
	database.AssortmentRepository
	database.BuyerRepository
	database.BuyerProfileRepository
	database.SellerRepository
	database.DeliveryMethodRepository
	database.OrderRepository
}

// Result - сколько записей создано за запуск.
type Result struct {
	ClothesTypes    int
	Sizes           int
	Assortments     int
	AssortmentSizes int
	Buyers          int
	BuyerProfiles   int
	Sellers         int
	DeliveryMethods int
	Orders          int
}

// Seeder переносит фикстуру в хранилище. Существующие записи
// (по имени, email или номеру заказа) не создаются повторно.
type Seeder struct {
	store     Store
	generator *generator.Generator
	now       func() time.Time
}

func NewSeeder(store Store, gen *generator.Generator, now func() time.Time) *Seeder {
	return &Seeder{store: store, generator: gen, now: now}
}

// Run создает справочники, покупателей и продавцов, затем генерирует заказы
// и пересчитывает их суммы по позициям.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Result, error) {
	var res Result
	now := s.now()

	types, err := s.seedClothesTypes(ctx, f, &res)
	if err != nil {
		return res, err
	}
	sizes, err := s.seedSizes(ctx, f, &res)
	if err != nil {
		return res, err
	}
	assortments, err := s.seedAssortments(ctx, f, types, sizes, &res)
	if err != nil {
		return res, err
	}
	buyers, err := s.seedBuyers(ctx, f, &res)
	if err != nil {
		return res, err
	}
	if err := s.seedBuyerProfiles(ctx, f, buyers, &res); err != nil {
		return res, err
	}
	sellers, err := s.seedSellers(ctx, f, now, &res)
	if err != nil {
		return res, err
	}
	methods, err := s.seedDeliveryMethods(ctx, f, &res)
	if err != nil {
		return res, err
	}

	refs := generator.OrderRefs{
		Buyers:          buyers,
		Sellers:         sellers,
		DeliveryMethods: methods,
		Assortments:     assortments,
	}
	for _, value := range f.Sizes {
		refs.Sizes = append(refs.Sizes, sizes[value])
	}
	if err := s.seedOrders(ctx, f.Orders, refs, now, &res); err != nil {
		return res, err
	}
	return res, nil
}

func (s *Seeder) seedClothesTypes(ctx context.Context, f *Fixture, res *Result) (map[string]model.ClothesType, error) {
	existing, err := s.store.ListClothesTypes(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]model.ClothesType, len(existing))
	for _, ct := range existing {
		byName[ct.Name] = ct
	}

	for _, item := range f.ClothesTypes {
		if _, ok := byName[item.Name]; ok {
			continue
		}
		ct := model.ClothesType{Name: item.Name, Description: item.Description}
		if err := s.store.CreateClothesType(ctx, &ct); err != nil {
			return nil, fmt.Errorf("тип одежды '%s': %w", item.Name, err)
		}
		byName[ct.Name] = ct
		res.ClothesTypes++
	}
	log.Printf("Типы одежды: %d шт.", len(byName))
	return byName, nil
}

// seedSizes создает размеры международной системы.
func (s *Seeder) seedSizes(ctx context.Context, f *Fixture, res *Result) (map[string]model.Size, error) {
	existing, err := s.store.ListSizes(ctx)
	if err != nil {
		return nil, err
	}
	byValue := make(map[string]model.Size, len(existing))
	for _, size := range existing {
		if size.System == model.SizeSystemInt {
			byValue[size.SizeValue] = size
		}
	}

	for _, value := range f.Sizes {
		if _, ok := byValue[value]; ok {
			continue
		}
		size := model.Size{SizeValue: value, System: model.SizeSystemInt, Description: "Размер " + value}
		if err := s.store.CreateSize(ctx, &size); err != nil {
			return nil, fmt.Errorf("размер '%s': %w", value, err)
		}
		byValue[value] = size
		res.Sizes++
	}
	log.Printf("Размеры: %d шт.", len(byValue))
	return byValue, nil
}

func (s *Seeder) seedAssortments(ctx context.Context, f *Fixture, types map[string]model.ClothesType, sizes map[string]model.Size, res *Result) ([]model.Assortment, error) {
	existing, err := s.store.ListAssortments(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]model.Assortment, len(existing))
	for _, a := range existing {
		byName[a.Name] = a
	}

	assortments := make([]model.Assortment, 0, len(f.Assortments))
	for _, item := range f.Assortments {
		a, ok := byName[item.Name]
		if !ok {
			a = model.Assortment{
				Name:          item.Name,
				ClothesTypeID: types[item.Type].ID,
				Category:      item.Category,
				Description:   item.Name,
				Price:         item.Price,
				StockQuantity: item.Stock,
			}
			if err := s.store.CreateAssortment(ctx, &a); err != nil {
				return nil, fmt.Errorf("товар '%s': %w", item.Name, err)
			}
			res.Assortments++
		}
		assortments = append(assortments, a)

		if err := s.seedAssortmentSizes(ctx, a, item, sizes, res); err != nil {
			return nil, err
		}
	}
	log.Printf("Ассортимент: %d товаров", len(assortments))
	return assortments, nil
}

// seedAssortmentSizes делит остаток товара поровну между его размерами.
func (s *Seeder) seedAssortmentSizes(ctx context.Context, a model.Assortment, item AssortmentFixture, sizes map[string]model.Size, res *Result) error {
	if len(item.Sizes) == 0 {
		return nil
	}
	existing, err := s.store.ListAssortmentSizes(ctx, a.ID)
	if err != nil {
		return err
	}
	linked := make(map[int64]bool, len(existing))
	for _, as := range existing {
		linked[as.SizeID] = true
	}

	perSize := a.StockQuantity / len(item.Sizes)
	for _, value := range item.Sizes {
		size := sizes[value]
		if linked[size.ID] {
			continue
		}
		as := model.AssortmentSize{AssortmentID: a.ID, SizeID: size.ID, Quantity: perSize}
		if err := s.store.CreateAssortmentSize(ctx, &as); err != nil {
			return fmt.Errorf("размер '%s' товара '%s': %w", value, a.Name, err)
		}
		res.AssortmentSizes++
	}
	return nil
}

func (s *Seeder) seedBuyers(ctx context.Context, f *Fixture, res *Result) ([]model.Buyer, error) {
	existing, err := s.store.ListBuyers(ctx)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]model.Buyer, len(existing))
	for _, b := range existing {
		byEmail[b.Email] = b
	}

	buyers := make([]model.Buyer, 0, len(f.Buyers))
	for _, item := range f.Buyers {
		b, ok := byEmail[item.Email]
		if !ok {
			b = model.Buyer{
				FirstName: item.FirstName,
				LastName:  item.LastName,
				Email:     item.Email,
				Phone:     item.Phone,
				Gender:    item.Gender,
				IsVIP:     item.IsVIP,
			}
			if err := s.store.CreateBuyer(ctx, &b); err != nil {
				return nil, fmt.Errorf("покупатель '%s': %w", item.Email, err)
			}
			res.Buyers++
		}
		buyers = append(buyers, b)
	}
	log.Printf("Покупатели: %d шт.", len(buyers))
	return buyers, nil
}

// seedBuyerProfiles создает недостающие профили. Если профили лежат
// в другом хранилище, связь отклоняется и профили пропускаются.
func (s *Seeder) seedBuyerProfiles(ctx context.Context, f *Fixture, buyers []model.Buyer, res *Result) error {
	for _, b := range buyers {
		_, err := s.store.GetBuyerProfile(ctx, b.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		profile := model.BuyerProfile{BuyerID: b.ID, Address: f.BuyerProfile.Address, Notes: f.BuyerProfile.Notes}
		err = s.store.CreateBuyerProfile(ctx, &profile)
		var rv *model.ReferentialIntegrityViolation
		if errors.As(err, &rv) {
			log.Printf("Профили покупателей пропущены: %v", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("профиль покупателя %d: %w", b.ID, err)
		}
		res.BuyerProfiles++
	}
	return nil
}

func (s *Seeder) seedSellers(ctx context.Context, f *Fixture, now time.Time, res *Result) ([]model.Seller, error) {
	existing, err := s.store.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]model.Seller, len(existing))
	for _, seller := range existing {
		byEmail[seller.Email] = seller
	}

	sellers := make([]model.Seller, 0, len(f.Sellers))
	for _, item := range f.Sellers {
		seller, ok := byEmail[item.Email]
		if !ok {
			seller = model.Seller{
				FirstName: item.FirstName,
				LastName:  item.LastName,
				Email:     item.Email,
				HireDate:  item.hireDate(now),
			}
			if err := s.store.CreateSeller(ctx, &seller); err != nil {
				return nil, fmt.Errorf("продавец '%s': %w", item.Email, err)
			}
			res.Sellers++
		}
		sellers = append(sellers, seller)
	}
	log.Printf("Продавцы: %d шт.", len(sellers))
	return sellers, nil
}

func (s *Seeder) seedDeliveryMethods(ctx context.Context, f *Fixture, res *Result) ([]model.DeliveryMethod, error) {
	existing, err := s.store.ListDeliveryMethods(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]model.DeliveryMethod, len(existing))
	for _, m := range existing {
		byName[m.Name] = m
	}

	methods := make([]model.DeliveryMethod, 0, len(f.DeliveryMethods))
	for _, item := range f.DeliveryMethods {
		m, ok := byName[item.Name]
		if !ok {
			m = model.DeliveryMethod{
				Name:             item.Name,
				Description:      item.Description,
				Cost:             item.Cost,
				DeliveryTimeDays: item.Days,
				IsActive:         true,
			}
			if err := s.store.CreateDeliveryMethod(ctx, &m); err != nil {
				return nil, fmt.Errorf("способ доставки '%s': %w", item.Name, err)
			}
			res.DeliveryMethods++
		}
		methods = append(methods, m)
	}
	log.Printf("Способы доставки: %d шт.", len(methods))
	return methods, nil
}

// seedOrders генерирует заказы. Заказ, нарушающий правила модели
// (например, нехватка товара), пропускается.
func (s *Seeder) seedOrders(ctx context.Context, count int, refs generator.OrderRefs, now time.Time, res *Result) error {
	for i := 1; i <= count; i++ {
		order := s.generator.NewOrder(i, refs, now)

		_, err := s.store.GetOrderByNumber(ctx, order.OrderNumber)
		if err == nil {
			continue
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if err := s.store.CreateOrder(ctx, &order); err != nil {
			if model.IsViolation(err) {
				log.Printf("Заказ %s пропущен: %v", order.OrderNumber, err)
				continue
			}
			return fmt.Errorf("заказ %s: %w", order.OrderNumber, err)
		}
		if _, err := s.store.RecalculateOrderTotal(ctx, order.ID); err != nil {
			return fmt.Errorf("пересчет заказа %s: %w", order.OrderNumber, err)
		}
		res.Orders++
	}
	log.Printf("Заказы: создано %d", res.Orders)
	return nil
}
