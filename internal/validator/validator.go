package validator

import (
	"clothing_shop/internal/model"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate *validator.Validate
	once     sync.Once

	orderNumberPattern = regexp.MustCompile(`^ORD-\d{4}-\d{6}$`)
	phonePattern       = regexp.MustCompile(`^\+?1?\d{9,15}$`)
)

// Теги, нарушение которых - несоответствие формату, а не границам поля.
var formatTags = map[string]bool{
	"order_number": true,
	"phone":        true,
}

// getInstance возвращает синглтон-экземпляр валидатора.
func getInstance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// В ошибках используем имена полей из json-тегов
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Денежные поля проверяются как числа: gte=0 и т.п.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("order_number", func(fl validator.FieldLevel) bool {
			return orderNumberPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})

		validate = v
	})
	return validate
}

// ValidateStruct выполняет валидацию по тегам структуры и возвращает
// model.ValidationErrors с нарушениями по каждому полю.
func ValidateStruct(s interface{}) error {
	err := getInstance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	violations := make(model.ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if formatTags[fe.Tag()] {
			violations = append(violations, &model.BusinessRuleViolation{Field: fe.Field(), Reason: describe(fe)})
			continue
		}
		violations = append(violations, &model.ConstraintViolation{Field: fe.Field(), Reason: describe(fe)})
	}
	return violations
}

// describe формирует понятное сообщение для одного нарушения.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательно для заполнения"
	case "gt":
		return fmt.Sprintf("должно быть больше %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("должно быть не менее %s", fe.Param())
	case "lte":
		return fmt.Sprintf("должно быть не более %s", fe.Param())
	case "max":
		return fmt.Sprintf("длина не более %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("допустимые значения: %s", fe.Param())
	case "email":
		return "должно быть валидным email адресом"
	case "uuid":
		return "должно быть в формате UUID"
	case "order_number":
		return "номер заказа должен иметь формат ORD-YYYY-NNNNNN"
	case "phone":
		return "телефон должен быть в формате +999999999 (от 9 до 15 цифр)"
	default:
		return fmt.Sprintf("невалидно: %s", fe.Tag())
	}
}
