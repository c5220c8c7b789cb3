package validator

import (
	"clothing_shop/internal/model"
	"fmt"
	"time"
)

// CheckOrderNumber проверяет формат ORD-YYYY-NNNNNN.
func CheckOrderNumber(number string) error {
	if !orderNumberPattern.MatchString(number) {
		return &model.BusinessRuleViolation{
			Field:  "order_number",
			Reason: fmt.Sprintf("номер '%s' не соответствует формату ORD-YYYY-NNNNNN", number),
		}
	}
	return nil
}

// CheckPhone проверяет телефон: необязательный '+', затем от 9 до 15 цифр.
func CheckPhone(field, phone string) error {
	if !phonePattern.MatchString(phone) {
		return &model.BusinessRuleViolation{
			Field:  field,
			Reason: "телефон должен быть в формате +999999999 (от 9 до 15 цифр)",
		}
	}
	return nil
}

// CheckBirthDate запрещает дату рождения в будущем относительно now.
func CheckBirthDate(birthDate, now time.Time) error {
	if dateOnly(birthDate).After(dateOnly(now)) {
		return &model.BusinessRuleViolation{Field: "birth_date", Reason: "дата рождения не может быть в будущем"}
	}
	return nil
}

// ValidateOrder проверяет правила заказа, затрагивающие несколько полей.
// Ограничения отдельных полей проверяет ValidateStruct.
func ValidateOrder(order *model.Order) error {
	var violations model.ValidationErrors

	if order.DeliveryDate != nil && dateOnly(*order.DeliveryDate).Before(dateOnly(order.OrderDate)) {
		violations = append(violations, &model.BusinessRuleViolation{
			Field:  "delivery_date",
			Reason: "дата доставки не может быть раньше даты заказа",
		})
	}
	if order.DiscountPercent > 100 {
		violations = append(violations, &model.BusinessRuleViolation{
			Field:  "discount_percent",
			Reason: "скидка не может превышать 100%",
		})
	}
	if err := CheckOrderNumber(order.OrderNumber); err != nil {
		violations = append(violations, err)
	}
	if err := CheckPhone("contact_phone", order.ContactPhone); err != nil {
		violations = append(violations, err)
	}

	return violations.ErrOrNil()
}

// ValidateOrderItem проверяет позицию заказа против текущего состояния товара.
// assortment загружает вызывающая сторона; nil означает, что товар не найден.
func ValidateOrderItem(item *model.OrderItem, assortment *model.Assortment) error {
	var violations model.ValidationErrors

	if item.Quantity <= 0 {
		violations = append(violations, &model.BusinessRuleViolation{Field: "quantity", Reason: "количество должно быть больше нуля"})
	}
	if item.UnitPrice.IsNegative() {
		violations = append(violations, &model.BusinessRuleViolation{Field: "unit_price", Reason: "цена не может быть отрицательной"})
	}

	switch {
	case assortment == nil:
		violations = append(violations, &model.ConstraintViolation{Field: "assortment_id", Reason: "товар не найден"})
	case assortment.StockQuantity < item.Quantity:
		violations = append(violations, &model.BusinessRuleViolation{
			Field:  "quantity",
			Reason: fmt.Sprintf("недостаточно товара на складе: доступно %d", assortment.StockQuantity),
		})
	}

	return violations.ErrOrNil()
}

// ValidateBuyerProfile проверяет профиль покупателя на момент now.
func ValidateBuyerProfile(profile *model.BuyerProfile, now time.Time) error {
	if profile.BirthDate == nil {
		return nil
	}
	return CheckBirthDate(*profile.BirthDate, now)
}

// ValidateSellerProfile проверяет профиль продавца на момент now.
func ValidateSellerProfile(profile *model.SellerProfile, now time.Time) error {
	return CheckBirthDate(profile.BirthDate, now)
}

// Validate последовательно выполняет проверку тегов и правила.
// Правила не запускаются, если теги уже нарушены.
func Validate(s interface{}, rules ...func() error) error {
	if err := ValidateStruct(s); err != nil {
		return err
	}
	for _, rule := range rules {
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

// dateOnly отбрасывает время суток, сохраняя календарную дату.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
