package database

import (
	"clothing_shop/internal/metrics"
	"clothing_shop/internal/model"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые переводятся в доменные нарушения.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
	pqNotNullViolation    = "23502"
)

// constraintFields связывает имя ограничения из миграций с полем модели.
var constraintFields = map[string]string{
	"clothes_types_name_key":                    "name",
	"buyers_email_key":                          "email",
	"buyers_gender_check":                       "gender",
	"purchases_buyer_fk":                        "buyer_id",
	"purchases_event_id_key":                    "event_id",
	"purchases_total_amount_check":              "total_amount",
	"purchases_payment_method_check":            "payment_method",
	"sizes_value_system_key":                    "size_value",
	"sizes_system_check":                        "system",
	"assortments_clothes_type_fk":               "clothes_type_id",
	"assortments_category_check":                "category",
	"assortments_price_check":                   "price",
	"assortments_stock_quantity_check":          "stock_quantity",
	"assortment_sizes_assortment_fk":            "assortment_id",
	"assortment_sizes_size_fk":                  "size_id",
	"assortment_sizes_pair_key":                 "size_id",
	"assortment_sizes_quantity_check":           "quantity",
	"sellers_email_key":                         "email",
	"seller_profiles_pkey":                      "seller_id",
	"seller_profiles_seller_fk":                 "seller_id",
	"seller_profiles_experience_years_check":    "experience_years",
	"delivery_methods_name_key":                 "name",
	"delivery_methods_cost_check":               "cost",
	"delivery_methods_delivery_time_days_check": "delivery_time_days",
	"buyer_profiles_pkey":                       "buyer_id",
	"buyer_profiles_buyer_fk":                   "buyer_id",
	"orders_buyer_fk":                           "buyer_id",
	"orders_seller_fk":                          "seller_id",
	"orders_delivery_method_fk":                 "delivery_method_id",
	"orders_order_number_key":                   "order_number",
	"orders_order_number_check":                 "order_number",
	"orders_status_check":                       "status",
	"orders_total_amount_check":                 "total_amount",
	"orders_delivery_cost_check":                "delivery_cost",
	"orders_discount_percent_check":             "discount_percent",
	"orders_delivery_date_check":                "delivery_date",
	"order_items_order_fk":                      "order_id",
	"order_items_assortment_fk":                 "assortment_id",
	"order_items_size_fk":                       "size_id",
	"order_items_unique_key":                    "assortment_id",
	"order_items_quantity_check":                "quantity",
	"order_items_unit_price_check":              "unit_price",
	"order_items_discount_percent_check":        "discount_percent",
}

// protectedRelations - связи с ON DELETE RESTRICT, блокирующие удаление.
var protectedRelations = map[string]string{
	"assortments_clothes_type_fk": "assortments.clothes_type_id",
	"orders_buyer_fk":             "orders.buyer_id",
	"orders_seller_fk":            "orders.seller_id",
	"orders_delivery_method_fk":   "orders.delivery_method_id",
	"order_items_assortment_fk":   "order_items.assortment_id",
	"order_items_size_fk":         "order_items.size_id",
}

type operation string

const (
	opCreate operation = "create"
	opUpdate operation = "update"
	opDelete operation = "delete"
)

// translateError переводит ошибки PostgreSQL в доменные нарушения.
// Остальные ошибки возвращаются как есть.
func translateError(kind model.Kind, op operation, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		if model.IsViolation(err) {
			countViolation(kind, err)
		}
		return err
	}

	field := constraintFields[pqErr.Constraint]
	if field == "" {
		field = pqErr.Column
	}

	var violation error
	switch string(pqErr.Code) {
	case pqUniqueViolation:
		violation = &model.ConstraintViolation{Field: field, Reason: "значение уже используется"}
	case pqForeignKeyViolation:
		if relation, ok := protectedRelations[pqErr.Constraint]; ok && op == opDelete {
			violation = &model.ReferentialIntegrityViolation{
				Entity:   kind,
				Relation: relation,
				Reason:   "запись используется и не может быть удалена",
			}
		} else {
			violation = &model.ConstraintViolation{Field: field, Reason: "связанная запись не найдена"}
		}
	case pqCheckViolation:
		violation = &model.ConstraintViolation{Field: field, Reason: "значение вне допустимого диапазона"}
	case pqNotNullViolation:
		violation = &model.ConstraintViolation{Field: field, Reason: "обязательно для заполнения"}
	default:
		metrics.DBErrors.WithLabelValues(string(op) + "_" + string(kind)).Inc()
		return err
	}

	countViolation(kind, violation)
	return violation
}

// countViolation учитывает отклоненную запись в метриках.
func countViolation(kind model.Kind, err error) {
	var cv *model.ConstraintViolation
	var rv *model.ReferentialIntegrityViolation
	label := "business_rule"
	switch {
	case errors.As(err, &rv):
		label = "referential"
	case errors.As(err, &cv):
		label = "constraint"
	}
	metrics.DomainViolations.WithLabelValues(string(kind), label).Inc()
}
