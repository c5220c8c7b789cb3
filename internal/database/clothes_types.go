package database

import (
	"clothing_shop/internal/model"
	"context"

	"github.com/jmoiron/sqlx"
)

const clothesTypeColumns = `id, name, description, created_at`

// CreateClothesType сохраняет тип одежды. Имя типа уникально.
func (s *postgresStorage) CreateClothesType(ctx context.Context, ct *model.ClothesType) error {
	if err := s.prepare(model.KindClothesType, ct); err != nil {
		return err
	}
	ct.CreatedAt = s.now()

	return s.inTx(ctx, model.KindClothesType, opCreate, func(tx *sqlx.Tx) error {
		return namedGet(ctx, tx, &ct.ID, `
			INSERT INTO clothes_types (name, description, created_at)
			VALUES (:name, :description, :created_at)
			RETURNING id`, ct)
	})
}

func (s *postgresStorage) GetClothesType(ctx context.Context, id int64) (*model.ClothesType, error) {
	var ct model.ClothesType
	if err := s.get(ctx, model.KindClothesType, &ct,
		`SELECT `+clothesTypeColumns+` FROM clothes_types WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &ct, nil
}

// ListClothesTypes возвращает типы одежды в алфавитном порядке.
func (s *postgresStorage) ListClothesTypes(ctx context.Context) ([]model.ClothesType, error) {
	types := []model.ClothesType{}
	if err := s.list(ctx, model.KindClothesType, &types,
		`SELECT `+clothesTypeColumns+` FROM clothes_types ORDER BY name`); err != nil {
		return nil, err
	}
	return types, nil
}

func (s *postgresStorage) UpdateClothesType(ctx context.Context, ct *model.ClothesType) error {
	if err := s.prepare(model.KindClothesType, ct); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindClothesType, opUpdate, func(tx *sqlx.Tx) error {
		return namedExec(ctx, tx, `
			UPDATE clothes_types SET name = :name, description = :description
			WHERE id = :id`, ct)
	})
}

// DeleteClothesType удаляет тип одежды. Если на него ссылается товар,
// возвращается ReferentialIntegrityViolation.
func (s *postgresStorage) DeleteClothesType(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindClothesType, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM clothes_types WHERE id = $1`, id)
	})
}
