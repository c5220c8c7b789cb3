package model

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

// SizeSystem - система размеров: международная (XS-XXL), российская, европейская, американская.
type SizeSystem string

const (
	SizeSystemInt SizeSystem = "int"
	SizeSystemRU  SizeSystem = "ru"
	SizeSystemEU  SizeSystem = "eu"
	SizeSystemUS  SizeSystem = "us"
)

type Category string

const (
	CategoryTop         Category = "top"
	CategoryBottom      Category = "bottom"
	CategoryDress       Category = "dress"
	CategoryUnderwear   Category = "underwear"
	CategoryAccessories Category = "accessories"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses в порядке жизненного цикла заказа.
var OrderStatuses = []OrderStatus{
	OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
}
