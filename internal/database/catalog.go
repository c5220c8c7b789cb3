package database

import (
	"clothing_shop/internal/model"
	"context"

	"github.com/jmoiron/sqlx"
)

const (
	sizeColumns           = `id, size_value, system, description`
	assortmentColumns     = `id, name, clothes_type_id, category, description, price, stock_quantity, created_at, updated_at`
	assortmentSizeColumns = `id, assortment_id, size_id, quantity`
)

// CreateSize сохраняет размер. Пара (значение, система) уникальна.
func (s *postgresStorage) CreateSize(ctx context.Context, size *model.Size) error {
	if size.System == "" {
		size.System = model.SizeSystemInt
	}
	if err := s.prepare(model.KindSize, size); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindSize, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &size.ID, `
			INSERT INTO sizes (size_value, system, description)
			VALUES (:size_value, :system, :description)
			RETURNING id`, size)
	})
}

func (s *postgresStorage) GetSize(ctx context.Context, id int64) (*model.Size, error) {
	var size model.Size
	if err := s.get(ctx, model.KindSize, &size,
		`SELECT `+sizeColumns+` FROM sizes WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &size, nil
}

func (s *postgresStorage) ListSizes(ctx context.Context) ([]model.Size, error) {
	sizes := []model.Size{}
	if err := s.list(ctx, model.KindSize, &sizes,
		`SELECT `+sizeColumns+` FROM sizes ORDER BY system, id`); err != nil {
		return nil, err
	}
	return sizes, nil
}

func (s *postgresStorage) UpdateSize(ctx context.Context, size *model.Size) error {
	if err := s.prepare(model.KindSize, size); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindSize, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE sizes SET size_value = :size_value, system = :system, description = :description
			WHERE id = :id`, size)
	})
}

// DeleteSize удаляет размер. Наличие по размеру удаляется, а в позициях заказов размер обнуляется.
func (s *postgresStorage) DeleteSize(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindSize, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM sizes WHERE id = $1`, id)
	})
}

func (s *postgresStorage) CreateAssortment(ctx context.Context, a *model.Assortment) error {
	if err := s.prepare(model.KindAssortment, a); err != nil {
		return err
	}
	a.CreatedAt = s.now()
	a.UpdatedAt = a.CreatedAt

	return s.inTx(ctx, model.KindAssortment, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &a.ID, `
			INSERT INTO assortments (name, clothes_type_id, category, description, price, stock_quantity, created_at, updated_at)
			VALUES (:name, :clothes_type_id, :category, :description, :price, :stock_quantity, :created_at, :updated_at)
			RETURNING id`, a)
	})
}

func (s *postgresStorage) GetAssortment(ctx context.Context, id int64) (*model.Assortment, error) {
	var a model.Assortment
	if err := s.get(ctx, model.KindAssortment, &a,
		`SELECT `+assortmentColumns+` FROM assortments WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAssortments возвращает товары в алфавитном порядке.
func (s *postgresStorage) ListAssortments(ctx context.Context) ([]model.Assortment, error) {
	items := []model.Assortment{}
	if err := s.list(ctx, model.KindAssortment, &items,
		`SELECT `+assortmentColumns+` FROM assortments ORDER BY name`); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *postgresStorage) UpdateAssortment(ctx context.Context, a *model.Assortment) error {
	if err := s.prepare(model.KindAssortment, a); err != nil {
		return err
	}
	a.UpdatedAt = s.now()

	return s.inTx(ctx, model.KindAssortment, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE assortments SET name = :name, clothes_type_id = :clothes_type_id, category = :category,
				description = :description, price = :price, stock_quantity = :stock_quantity, updated_at = :updated_at
			WHERE id = :id`, a)
	})
}

// DeleteAssortment удаляет товар вместе с наличием по размерам.
// Товар, который есть в заказах, удалить нельзя.
func (s *postgresStorage) DeleteAssortment(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindAssortment, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM assortments WHERE id = $1`, id)
	})
}

func (s *postgresStorage) CreateAssortmentSize(ctx context.Context, as *model.AssortmentSize) error {
	if err := s.prepare(model.KindAssortmentSize, as); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindAssortmentSize, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &as.ID, `
			INSERT INTO assortment_sizes (assortment_id, size_id, quantity)
			VALUES (:assortment_id, :size_id, :quantity)
			RETURNING id`, as)
	})
}

// ListAssortmentSizes возвращает наличие товара по размерам.
func (s *postgresStorage) ListAssortmentSizes(ctx context.Context, assortmentID int64) ([]model.AssortmentSize, error) {
	sizes := []model.AssortmentSize{}
	if err := s.list(ctx, model.KindAssortmentSize, &sizes,
		`SELECT `+assortmentSizeColumns+` FROM assortment_sizes WHERE assortment_id = $1 ORDER BY size_id`, assortmentID); err != nil {
		return nil, err
	}
	return sizes, nil
}

func (s *postgresStorage) UpdateAssortmentSize(ctx context.Context, as *model.AssortmentSize) error {
	if err := s.prepare(model.KindAssortmentSize, as); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindAssortmentSize, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE assortment_sizes SET assortment_id = :assortment_id, size_id = :size_id, quantity = :quantity
			WHERE id = :id`, as)
	})
}

func (s *postgresStorage) DeleteAssortmentSize(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindAssortmentSize, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM assortment_sizes WHERE id = $1`, id)
	})
}
