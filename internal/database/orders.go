package database

import (
	"clothing_shop/internal/model"
	"clothing_shop/internal/pricing"
	"clothing_shop/internal/validator"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	orderColumns = `id, buyer_id, seller_id, delivery_method_id, order_number, order_date, order_time,
		delivery_date, delivery_time, status, total_amount, delivery_cost, discount_percent,
		delivery_address, contact_phone, notes, invoice, delivery_photo, created_at, updated_at`
	orderItemColumns = `id, order_id, assortment_id, quantity, unit_price, discount_percent, size_id, notes`
)

// CreateOrder сохраняет заказ и его позиции в одной транзакции.
// Дата и время заказа проставляются, только если не заданы.
func (s *postgresStorage) CreateOrder(ctx context.Context, order *model.Order) error {
	now := s.now()
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = s.today()
	}
	if order.OrderTime.IsZero() {
		order.OrderTime = now
	}
	if err := s.prepare(model.KindOrder, order, func() error {
		return validator.ValidateOrder(order)
	}); err != nil {
		return err
	}
	if len(order.Items) > 0 {
		if err := s.stores.CheckRelations(model.KindOrderItem); err != nil {
			countViolation(model.KindOrderItem, err)
			return err
		}
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	return s.inTx(ctx, model.KindOrder, opCreate, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &order.ID, `
			INSERT INTO orders (buyer_id, seller_id, delivery_method_id, order_number, order_date, order_time,
				delivery_date, delivery_time, status, total_amount, delivery_cost, discount_percent,
				delivery_address, contact_phone, notes, invoice, delivery_photo, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			RETURNING id`,
			order.BuyerID, order.SellerID, order.DeliveryMethodID, order.OrderNumber, order.OrderDate,
			clock(&order.OrderTime), order.DeliveryDate, clock(order.DeliveryTime), order.Status,
			order.TotalAmount, order.DeliveryCost, order.DiscountPercent, order.DeliveryAddress,
			order.ContactPhone, order.Notes, order.Invoice, order.DeliveryPhoto, order.CreatedAt, order.UpdatedAt)
		if err != nil {
			return err
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := validator.ValidateStruct(&order.Items[i]); err != nil {
				return err
			}
			if err := insertOrderItem(ctx, tx, &order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *postgresStorage) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return s.getOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetOrderByNumber ищет заказ по номеру ORD-YYYY-NNNNNN.
func (s *postgresStorage) GetOrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return s.getOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, number)
}

// getOrder загружает заказ вместе с позициями.
func (s *postgresStorage) getOrder(ctx context.Context, query string, arg interface{}) (*model.Order, error) {
	var order model.Order
	if err := s.get(ctx, model.KindOrder, &order, query, arg); err != nil {
		return nil, err
	}
	items, err := s.ListOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// ListOrders возвращает заказы, начиная с последнего. Позиции не загружаются.
func (s *postgresStorage) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := s.list(ctx, model.KindOrder, &orders,
		`SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC, order_time DESC, id DESC`); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder обновляет заказ без позиций. total_amount сохраняется как передан.
func (s *postgresStorage) UpdateOrder(ctx context.Context, order *model.Order) error {
	if err := s.prepare(model.KindOrder, order, func() error {
		return validator.ValidateOrder(order)
	}); err != nil {
		return err
	}
	order.UpdatedAt = s.now()

	return s.inTx(ctx, model.KindOrder, opUpdate, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `
			UPDATE orders SET buyer_id = $2, seller_id = $3, delivery_method_id = $4, order_number = $5,
				order_date = $6, order_time = $7, delivery_date = $8, delivery_time = $9, status = $10,
				total_amount = $11, delivery_cost = $12, discount_percent = $13, delivery_address = $14,
				contact_phone = $15, notes = $16, invoice = $17, delivery_photo = $18, updated_at = $19
			WHERE id = $1`,
			order.ID, order.BuyerID, order.SellerID, order.DeliveryMethodID, order.OrderNumber,
			order.OrderDate, clock(&order.OrderTime), order.DeliveryDate, clock(order.DeliveryTime),
			order.Status, order.TotalAmount, order.DeliveryCost, order.DiscountPercent,
			order.DeliveryAddress, order.ContactPhone, order.Notes, order.Invoice, order.DeliveryPhoto,
			order.UpdatedAt)
	})
}

// DeleteOrder удаляет заказ вместе с позициями.
func (s *postgresStorage) DeleteOrder(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindOrder, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM orders WHERE id = $1`, id)
	})
}

// AddOrderItem добавляет позицию в заказ, проверяя остаток товара на складе.
func (s *postgresStorage) AddOrderItem(ctx context.Context, item *model.OrderItem) error {
	if err := s.prepare(model.KindOrderItem, item); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindOrderItem, opCreate, func(tx *sqlx.Tx) error {
		return insertOrderItem(ctx, tx, item)
	})
}

// ListOrderItems возвращает позиции заказа.
func (s *postgresStorage) ListOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	if err := s.list(ctx, model.KindOrderItem, &items,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *postgresStorage) UpdateOrderItem(ctx context.Context, item *model.OrderItem) error {
	if err := s.prepare(model.KindOrderItem, item); err != nil {
		return err
	}
	return s.inTx(ctx, model.KindOrderItem, opUpdate, func(tx *sqlx.Tx) error {
		if err := checkStock(ctx, tx, item); err != nil {
			return err
		}
		return namedExec(ctx, tx, `
			UPDATE order_items SET assortment_id = :assortment_id, quantity = :quantity, unit_price = :unit_price,
				discount_percent = :discount_percent, size_id = :size_id, notes = :notes
			WHERE id = :id`, item)
	})
}

func (s *postgresStorage) DeleteOrderItem(ctx context.Context, id int64) error {
	return s.inTx(ctx, model.KindOrderItem, opDelete, func(tx *sqlx.Tx) error {
		return execOne(ctx, tx, `DELETE FROM order_items WHERE id = $1`, id)
	})
}

// RecalculateOrderTotal записывает в total_amount сумму позиций со скидками.
func (s *postgresStorage) RecalculateOrderTotal(ctx context.Context, orderID int64) (*model.Order, error) {
	err := s.inTx(ctx, model.KindOrder, opUpdate, func(tx *sqlx.Tx) error {
		var items []model.OrderItem
		if err := tx.SelectContext(ctx, &items,
			`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1`, orderID); err != nil {
			return fmt.Errorf("не удалось получить позиции заказа: %w", err)
		}

		subtotals := make([]decimal.Decimal, 0, len(items))
		for _, item := range items {
			subtotals = append(subtotals, item.Subtotal())
		}

		return execOne(ctx, tx, `UPDATE orders SET total_amount = $2, updated_at = $3 WHERE id = $1`,
			orderID, pricing.Sum(subtotals...), s.now())
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, orderID)
}

// insertOrderItem проверяет остаток и вставляет позицию в рамках транзакции.
func insertOrderItem(ctx context.Context, tx *sqlx.Tx, item *model.OrderItem) error {
	if err := checkStock(ctx, tx, item); err != nil {
		return err
	}
	return namedGet(ctx, tx, &item.ID, `
		INSERT INTO order_items (order_id, assortment_id, quantity, unit_price, discount_percent, size_id, notes)
		VALUES (:order_id, :assortment_id, :quantity, :unit_price, :discount_percent, :size_id, :notes)
		RETURNING id`, item)
}

// checkStock блокирует строку товара до конца транзакции и сверяет остаток.
func checkStock(ctx context.Context, tx *sqlx.Tx, item *model.OrderItem) error {
	var assortment model.Assortment
	err := tx.GetContext(ctx, &assortment,
		`SELECT `+assortmentColumns+` FROM assortments WHERE id = $1 FOR SHARE`, item.AssortmentID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return validator.ValidateOrderItem(item, nil)
	case err != nil:
		return fmt.Errorf("не удалось получить товар %d: %w", item.AssortmentID, err)
	}
	return validator.ValidateOrderItem(item, &assortment)
}
