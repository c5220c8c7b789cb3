package seed

import (
	"clothing_shop/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixture(t *testing.T) {
	f, err := DefaultFixture()
	require.NoError(t, err)

	assert.Len(t, f.ClothesTypes, 6)
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, f.Sizes)
	assert.Len(t, f.Assortments, 11)
	assert.Len(t, f.Buyers, 5)
	assert.Len(t, f.Sellers, 2)
	assert.Len(t, f.DeliveryMethods, 3)
	assert.Equal(t, 5, f.Orders)

	first := f.Assortments[0]
	assert.Equal(t, "Платье вечернее синее", first.Name)
	assert.Equal(t, model.CategoryDress, first.Category)
	assert.Equal(t, "4500", first.Price.String())
	assert.Equal(t, "350", f.DeliveryMethods[0].Cost.String())
	assert.Equal(t, "г. Минск, пр-т Победителей, д. 1", f.BuyerProfile.Address)
}

func TestParseFixture_UnknownReferences(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "неизвестный тип",
			data: "clothes_types: [{name: Платья}]\nassortments: [{name: Юбка, type: Юбки, category: dress, price: \"1\"}]\n",
		},
		{
			name: "неизвестный размер",
			data: "clothes_types: [{name: Юбки}]\nsizes: [S]\nassortments: [{name: Юбка, type: Юбки, category: dress, price: \"1\", sizes: [XXL]}]\n",
		},
		{
			name: "заказы без покупателей",
			data: "orders: 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFixture([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseFixture_InvalidYAML(t *testing.T) {
	_, err := ParseFixture([]byte("clothes_types: [unclosed"))
	assert.Error(t, err)
}

func TestSellerFixture_HireDate(t *testing.T) {
	now := time.Date(2025, time.March, 14, 18, 45, 0, 0, time.UTC)
	s := SellerFixture{HiredDaysAgo: 14}

	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), s.hireDate(now))
}
