package database

import (
	"clothing_shop/internal/model"
	"clothing_shop/internal/validator"
	"context"

	"github.com/jmoiron/sqlx"
)

const (
	buyerColumns        = `id, first_name, last_name, email, phone, gender, registration_date, is_vip`
	purchaseColumns     = `id, buyer_id, purchase_date, total_amount, payment_method, notes, event_id`
	buyerProfileColumns = `buyer_id, photo, passport_scan, address, birth_date, preferred_delivery_time, notes, created_at, updated_at`
)

// CreateBuyer сохраняет покупателя. Дата регистрации проставляется автоматически.
func (s *postgresStorage) CreateBuyer(ctx context.Context, buyer *model.Buyer) error {
	if buyer.Gender == "" {
		buyer.Gender = model.GenderOther
	}
	if err := s.prepare(model.KindBuyer, buyer); err != nil {
		return err
	}
	buyer.RegistrationDate = s.today()

	return s.inTx(ctx, model.KindBuyer, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &buyer.ID, `
			INSERT INTO buyers (first_name, last_name, email, phone, gender, registration_date, is_vip)
			VALUES (:first_name, :last_name, :email, :phone, :gender, :registration_date, :is_vip)
			RETURNING id`, buyer)
	})
}

func (s *postgresStorage) GetBuyer(ctx context.Context, id int64) (*model.Buyer, error) {
	var buyer model.Buyer
	if err := s.get(ctx, model.KindBuyer, &buyer,
		`SELECT `+buyerColumns+` FROM buyers WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &buyer, nil
}

// ListBuyers возвращает покупателей, упорядоченных по фамилии и имени.
func (s *postgresStorage) ListBuyers(ctx context.Context) ([]model.Buyer, error) {
	buyers := []model.Buyer{}
	if err := s.list(ctx, model.KindBuyer, &buyers,
		`SELECT `+buyerColumns+` FROM buyers ORDER BY last_name, first_name`); err != nil {
		return nil, err
	}
	return buyers, nil
}

// UpdateBuyer не меняет дату регистрации.
func (s *postgresStorage) UpdateBuyer(ctx context.Context, buyer *model.Buyer) error {
	if err := s.prepare(model.KindBuyer, buyer); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindBuyer, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE buyers SET first_name = :first_name, last_name = :last_name, email = :email,
				phone = :phone, gender = :gender, is_vip = :is_vip
			WHERE id = :id`, buyer)
	})
}

// DeleteBuyer удаляет покупателя вместе с покупками и профилем.
// Покупателя с заказами удалить нельзя.
func (s *postgresStorage) DeleteBuyer(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindBuyer, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM buyers WHERE id = $1`, id)
	})
}

// CreatePurchase сохраняет покупку. Дата покупки всегда равна текущему времени.
func (s *postgresStorage) CreatePurchase(ctx context.Context, purchase *model.Purchase) error {
	if purchase.PaymentMethod == "" {
		purchase.PaymentMethod = model.PaymentCard
	}
	if err := s.prepare(model.KindPurchase, purchase); err != nil {
		return err
	}
	purchase.PurchaseDate = s.now()

	return s.inTx(ctx, model.KindPurchase, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &purchase.ID, `
			INSERT INTO purchases (buyer_id, purchase_date, total_amount, payment_method, notes, event_id)
			VALUES (:buyer_id, :purchase_date, :total_amount, :payment_method, :notes, :event_id)
			RETURNING id`, purchase)
	})
}

func (s *postgresStorage) GetPurchase(ctx context.Context, id int64) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := s.get(ctx, model.KindPurchase, &purchase,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// ListPurchases возвращает покупки, начиная с последней.
func (s *postgresStorage) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	purchases := []model.Purchase{}
	if err := s.list(ctx, model.KindPurchase, &purchases,
		`SELECT `+purchaseColumns+` FROM purchases ORDER BY purchase_date DESC, id DESC`); err != nil {
		return nil, err
	}
	return purchases, nil
}

// ListBuyerPurchases возвращает историю покупок одного покупателя.
func (s *postgresStorage) ListBuyerPurchases(ctx context.Context, buyerID int64) ([]model.Purchase, error) {
	purchases := []model.Purchase{}
	if err := s.list(ctx, model.KindPurchase, &purchases,
		`SELECT `+purchaseColumns+` FROM purchases WHERE buyer_id = $1 ORDER BY purchase_date DESC, id DESC`, buyerID); err != nil {
		return nil, err
	}
	return purchases, nil
}

// UpdatePurchase не меняет дату покупки.
func (s *postgresStorage) UpdatePurchase(ctx context.Context, purchase *model.Purchase) error {
	if err := s.prepare(model.KindPurchase, purchase); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindPurchase, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE purchases SET buyer_id = :buyer_id, total_amount = :total_amount,
				payment_method = :payment_method, notes = :notes
			WHERE id = :id`, purchase)
	})
}

func (s *postgresStorage) DeletePurchase(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindPurchase, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM purchases WHERE id = $1`, id)
	})
}

// CreateBuyerProfile создает профиль покупателя. У покупателя может быть только один профиль.
func (s *postgresStorage) CreateBuyerProfile(ctx context.Context, profile *model.BuyerProfile) error {
	now := s.now()
	if err := s.prepare(model.KindBuyerProfile, profile, func() error {
		return validator.ValidateBuyerProfile(profile, now)
	}); err != nil {
		return err
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return s.inTx(ctx, model.KindBuyerProfile, opCreate, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO buyer_profiles (`+buyerProfileColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			profile.BuyerID, profile.Photo, profile.PassportScan, profile.Address, profile.BirthDate,
			clock(profile.PreferredDeliveryTime), profile.Notes, profile.CreatedAt, profile.UpdatedAt)
		return err
	})
}

func (s *postgresStorage) GetBuyerProfile(ctx context.Context, buyerID int64) (*model.BuyerProfile, error) {
	var profile model.BuyerProfile
	if err := s.get(ctx, model.KindBuyerProfile, &profile,
		`SELECT `+buyerProfileColumns+` FROM buyer_profiles WHERE buyer_id = $1`, buyerID); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *postgresStorage) ListBuyerProfiles(ctx context.Context) ([]model.BuyerProfile, error) {
	profiles := []model.BuyerProfile{}
	if err := s.list(ctx, model.KindBuyerProfile, &profiles,
		`SELECT `+buyerProfileColumns+` FROM buyer_profiles ORDER BY buyer_id`); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *postgresStorage) UpdateBuyerProfile(ctx context.Context, profile *model.BuyerProfile) error {
	now := s.now()
	if err := s.prepare(model.KindBuyerProfile, profile, func() error {
		return validator.ValidateBuyerProfile(profile, now)
	}); err != nil {
		return err
	}
	profile.UpdatedAt = now

	return s.inTx(ctx, model.KindBuyerProfile, opUpdate, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `
			UPDATE buyer_profiles SET photo = $2, passport_scan = $3, address = $4, birth_date = $5,
				preferred_delivery_time = $6, notes = $7, updated_at = $8
			WHERE buyer_id = $1`,
			profile.BuyerID, profile.Photo, profile.PassportScan, profile.Address, profile.BirthDate,
			clock(profile.PreferredDeliveryTime), profile.Notes, profile.UpdatedAt)
	})
}

func (s *postgresStorage) DeleteBuyerProfile(ctx context.Context, buyerID int64) error {
	return s.inTx(ctx, model.KindBuyerProfile, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM buyer_profiles WHERE buyer_id = $1`, buyerID)
	})
}
