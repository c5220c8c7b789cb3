package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound возвращается, когда запись с указанным ключом отсутствует.
var ErrNotFound = errors.New("запись не найдена")

// ConstraintViolation - нарушение ограничения одного поля: обязательность,
// допустимое значение перечисления, числовые границы, уникальность.
type ConstraintViolation struct {
	Field  string
	Reason string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("поле '%s': %s", e.Field, e.Reason)
}

// ReferentialIntegrityViolation - попытка удалить запись, на которую
// ссылаются через защищенную связь, либо связь между разными хранилищами.
type ReferentialIntegrityViolation struct {
	Entity   Kind
	Relation string
	Reason   string
}

func (e *ReferentialIntegrityViolation) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Entity, e.Relation, e.Reason)
}

// BusinessRuleViolation - нарушение правила, затрагивающего несколько полей
// или связанные записи (остаток на складе, порядок дат, формат номера).
type BusinessRuleViolation struct {
	Field  string
	Reason string
}

func (e *BusinessRuleViolation) Error() string {
	return fmt.Sprintf("поле '%s': %s", e.Field, e.Reason)
}

// ValidationErrors собирает все нарушения одного прохода валидации.
// errors.As находит внутри конкретное нарушение.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	return v
}

// ErrOrNil возвращает nil, если нарушений нет.
func (v ValidationErrors) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsViolation сообщает, является ли ошибка доменным нарушением,
// которое вызывающая сторона может исправить сама.
func IsViolation(err error) bool {
	var cv *ConstraintViolation
	var bv *BusinessRuleViolation
	var rv *ReferentialIntegrityViolation
	return errors.As(err, &cv) || errors.As(err, &bv) || errors.As(err, &rv)
}
