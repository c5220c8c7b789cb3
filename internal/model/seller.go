package model

import "time"

type Seller struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name" validate:"required,max=50"`
	LastName  string    `json:"last_name" db:"last_name" validate:"required,max=50"`
	Email     string    `json:"email" db:"email" validate:"required,email,max=254"`
	HireDate  time.Time `json:"hire_date" db:"hire_date" validate:"required"`
}

// SellerProfile идентифицируется продавцом: seller_id - первичный ключ.
type SellerProfile struct {
	SellerID        int64     `json:"seller_id" db:"seller_id" validate:"required,gt=0"`
	Phone           string    `json:"phone" db:"phone" validate:"required,max=20"`
	Address         string    `json:"address" db:"address" validate:"required"`
	BirthDate       time.Time `json:"birth_date" db:"birth_date" validate:"required"`
	ExperienceYears int       `json:"experience_years" db:"experience_years" validate:"gte=0"`
	Department      string    `json:"department" db:"department" validate:"required,max=100"`
}
