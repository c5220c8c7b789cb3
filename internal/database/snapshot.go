package database

import (
	"clothing_shop/internal/analytics"
	"clothing_shop/internal/metrics"
	"clothing_shop/internal/model"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// LoadSnapshot читает данные для отчетов в одной транзакции только для чтения,
// чтобы все отчеты панели видели согласованное состояние.
func (s *postgresStorage) LoadSnapshot(ctx context.Context) (snap *analytics.Snapshot, err error) {
	ctx, span := s.tracer.Start(ctx, "DB.LoadSnapshot")
	defer span.End()

	tx, err := s.stores.db(model.KindPurchase).BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		if err != nil {
			metrics.DBErrors.WithLabelValues("load_snapshot").Inc()
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции снимка: %v", rbErr)
			}
		}
	}()

	snap = &analytics.Snapshot{}
	queries := []struct {
		dest  interface{}
		query string
	}{
		{&snap.Buyers, `SELECT ` + buyerColumns + ` FROM buyers ORDER BY id`},
		{&snap.Purchases, `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY id`},
		{&snap.ClothesTypes, `SELECT ` + clothesTypeColumns + ` FROM clothes_types ORDER BY name`},
		{&snap.Assortments, `SELECT ` + assortmentColumns + ` FROM assortments ORDER BY id`},
		{&snap.Sizes, `SELECT ` + sizeColumns + ` FROM sizes ORDER BY system, id`},
		{&snap.AssortmentSizes, `SELECT ` + assortmentSizeColumns + ` FROM assortment_sizes ORDER BY id`},
	}
	for _, q := range queries {
		if err = tx.SelectContext(ctx, q.dest, q.query); err != nil {
			return nil, fmt.Errorf("не удалось загрузить снимок: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("ошибка коммита транзакции снимка: %w", err)
	}
	return snap, nil
}
