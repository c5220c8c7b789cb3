package model

// Kind - тип сущности. Используется для выбора хранилища и в сообщениях об ошибках.
type Kind string

const (
	KindClothesType    Kind = "clothestype"
	KindBuyer          Kind = "buyer"
	KindPurchase       Kind = "purchase"
	KindSize           Kind = "size"
	KindAssortment     Kind = "assortment"
	KindAssortmentSize Kind = "assortmentsize"
	KindSeller         Kind = "seller"
	KindSellerProfile  Kind = "sellerprofile"
	KindDeliveryMethod Kind = "deliverymethod"
	KindBuyerProfile   Kind = "buyerprofile"
	KindOrder          Kind = "order"
	KindOrderItem      Kind = "orderitem"
)

// AllKinds перечисляет все сущности модели.
var AllKinds = []Kind{
	KindClothesType, KindBuyer, KindPurchase, KindSize, KindAssortment, KindAssortmentSize,
	KindSeller, KindSellerProfile, KindDeliveryMethod, KindBuyerProfile, KindOrder, KindOrderItem,
}
