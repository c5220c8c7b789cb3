package database

import (
	"clothing_shop/internal/model"
	"clothing_shop/internal/validator"
	"context"

	"github.com/jmoiron/sqlx"
)

const (
	sellerColumns         = `id, first_name, last_name, email, hire_date`
	sellerProfileColumns  = `seller_id, phone, address, birth_date, experience_years, department`
	deliveryMethodColumns = `id, name, description, cost, delivery_time_days, is_active, icon`
)

func (s *postgresStorage) CreateSeller(ctx context.Context, seller *model.Seller) error {
	if err := s.prepare(model.KindSeller, seller); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindSeller, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &seller.ID, `
			INSERT INTO sellers (first_name, last_name, email, hire_date)
			VALUES (:first_name, :last_name, :email, :hire_date)
			RETURNING id`, seller)
	})
}

func (s *postgresStorage) GetSeller(ctx context.Context, id int64) (*model.Seller, error) {
	var seller model.Seller
	if err := s.get(ctx, model.KindSeller, &seller,
		`SELECT `+sellerColumns+` FROM sellers WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *postgresStorage) ListSellers(ctx context.Context) ([]model.Seller, error) {
	sellers := []model.Seller{}
	if err := s.list(ctx, model.KindSeller, &sellers,
		`SELECT `+sellerColumns+` FROM sellers ORDER BY last_name, first_name`); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (s *postgresStorage) UpdateSeller(ctx context.Context, seller *model.Seller) error {
	if err := s.prepare(model.KindSeller, seller); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindSeller, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE sellers SET first_name = :first_name, last_name = :last_name, email = :email, hire_date = :hire_date
			WHERE id = :id`, seller)
	})
}

// DeleteSeller удаляет продавца вместе с профилем. Продавца с заказами удалить нельзя.
func (s *postgresStorage) DeleteSeller(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindSeller, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM sellers WHERE id = $1`, id)
	})
}

func (s *postgresStorage) CreateSellerProfile(ctx context.Context, profile *model.SellerProfile) error {
	now := s.now()
	if err := s.prepare(model.KindSellerProfile, profile, func() error {
		return validator.ValidateSellerProfile(profile, now)
	}); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindSellerProfile, opCreate, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO seller_profiles (`+sellerProfileColumns+`)
			VALUES (:seller_id, :phone, :address, :birth_date, :experience_years, :department)`, profile)
		return err
	})
}

func (s *postgresStorage) GetSellerProfile(ctx context.Context, sellerID int64) (*model.SellerProfile, error) {
	var profile model.SellerProfile
	if err := s.get(ctx, model.KindSellerProfile, &profile,
		`SELECT `+sellerProfileColumns+` FROM seller_profiles WHERE seller_id = $1`, sellerID); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *postgresStorage) UpdateSellerProfile(ctx context.Context, profile *model.SellerProfile) error {
	now := s.now()
	if err := s.prepare(model.KindSellerProfile, profile, func() error {
		return validator.ValidateSellerProfile(profile, now)
	}); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindSellerProfile, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE seller_profiles SET phone = :phone, address = :address, birth_date = :birth_date,
				experience_years = :experience_years, department = :department
			WHERE seller_id = :seller_id`, profile)
	})
}

func (s *postgresStorage) DeleteSellerProfile(ctx context.Context, sellerID int64) error {
	return s.inTx(ctx, model.KindSellerProfile, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM seller_profiles WHERE seller_id = $1`, sellerID)
	})
}

func (s *postgresStorage) CreateDeliveryMethod(ctx context.Context, m *model.DeliveryMethod) error {
	if err := s.prepare(model.KindDeliveryMethod, m); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindDeliveryMethod, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &m.ID, `
			INSERT INTO delivery_methods (name, description, cost, delivery_time_days, is_active, icon)
			VALUES (:name, :description, :cost, :delivery_time_days, :is_active, :icon)
			RETURNING id`, m)
	})
}

func (s *postgresStorage) GetDeliveryMethod(ctx context.Context, id int64) (*model.DeliveryMethod, error) {
	var m model.DeliveryMethod
	if err := s.get(ctx, model.KindDeliveryMethod, &m,
		`SELECT `+deliveryMethodColumns+` FROM delivery_methods WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *postgresStorage) ListDeliveryMethods(ctx context.Context) ([]model.DeliveryMethod, error) {
	methods := []model.DeliveryMethod{}
	if err := s.list(ctx, model.KindDeliveryMethod, &methods,
		`SELECT `+deliveryMethodColumns+` FROM delivery_methods ORDER BY name`); err != nil {
		return nil, err
	}
	return methods, nil
}

func (s *postgresStorage) UpdateDeliveryMethod(ctx context.Context, m *model.DeliveryMethod) error {
	if err := s.prepare(model.KindDeliveryMethod, m); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindDeliveryMethod, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE delivery_methods SET name = :name, description = :description, cost = :cost,
				delivery_time_days = :delivery_time_days, is_active = :is_active, icon = :icon
			WHERE id = :id`, m)
	})
}

func (s *postgresStorage) DeleteDeliveryMethod(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindDeliveryMethod, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM delivery_methods WHERE id = $1`, id)
	})
}
