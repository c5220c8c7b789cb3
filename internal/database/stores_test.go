package database

import (
	"clothing_shop/internal/model"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) *sqlx.DB {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres")
}

func TestStoreFor(t *testing.T) {
	secondary := []model.Kind{
		model.KindSeller, model.KindSellerProfile, model.KindDeliveryMethod,
		model.KindBuyerProfile, model.KindOrder, model.KindOrderItem,
	}
	for _, kind := range secondary {
		assert.Equal(t, StoreSecondary, StoreFor(kind), kind)
	}
	for _, kind := range []model.Kind{
		model.KindClothesType, model.KindBuyer, model.KindPurchase,
		model.KindSize, model.KindAssortment, model.KindAssortmentSize,
	} {
		assert.Equal(t, StorePrimary, StoreFor(kind), kind)
	}
}

func TestStores_SingleDatabaseAllowsEverything(t *testing.T) {
	stores := NewStores(newMockDB(t), nil)

	assert.False(t, stores.Separate())
	assert.Len(t, stores.all(), 1)
	for _, kind := range model.AllKinds {
		assert.NoError(t, stores.CheckRelations(kind), kind)
	}
	assert.True(t, stores.AllowRelation(model.KindOrder, model.KindBuyer))
}

func TestStores_SeparateDatabases(t *testing.T) {
	stores := NewStores(newMockDB(t), newMockDB(t))

	assert.True(t, stores.Separate())
	assert.Len(t, stores.all(), 2)

	assert.True(t, stores.AllowRelation(model.KindSellerProfile, model.KindSeller))
	assert.True(t, stores.AllowRelation(model.KindPurchase, model.KindBuyer))
	assert.False(t, stores.AllowRelation(model.KindOrder, model.KindBuyer))
	assert.False(t, stores.AllowRelation(model.KindBuyerProfile, model.KindBuyer))

	tests := []struct {
		kind    model.Kind
		allowed bool
	}{
		{model.KindPurchase, true},
		{model.KindAssortment, true},
		{model.KindAssortmentSize, true},
		{model.KindSellerProfile, true},
		{model.KindClothesType, true},
		{model.KindBuyerProfile, false},
		{model.KindOrder, false},
		{model.KindOrderItem, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := stores.CheckRelations(tt.kind)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			var rv *model.ReferentialIntegrityViolation
			require.ErrorAs(t, err, &rv)
			assert.Equal(t, tt.kind, rv.Entity)
		})
	}
}

func TestStores_SameHandleIsOneDatabase(t *testing.T) {
	db := newMockDB(t)
	stores := NewStores(db, db)

	assert.False(t, stores.Separate())
	assert.NoError(t, stores.CheckRelations(model.KindOrder))
}
