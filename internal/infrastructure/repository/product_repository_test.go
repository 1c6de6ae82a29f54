package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
)

func TestProductRepository_RecordSale(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &entity.Product{Name: "Beras", Price: 12000, Stock: 10, Fractional: true, Unit: "kg"}
	require.NoError(t, repo.Create(ctx, product))

	t.Run("bumps sold and drops stock", func(t *testing.T) {
		require.NoError(t, repo.RecordSale(ctx, product.ID, 2.5))

		got, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, got.Sold, 1e-9)
		assert.InDelta(t, 7.5, got.Stock, 1e-9)
	})

	t.Run("stock floors at zero", func(t *testing.T) {
		require.NoError(t, repo.RecordSale(ctx, product.ID, 100))

		got, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.InDelta(t, 102.5, got.Sold, 1e-9)
		assert.Zero(t, got.Stock)
	})

	t.Run("unknown product fails", func(t *testing.T) {
		err := repo.RecordSale(ctx, 9999, 1)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestProductRepository_GetByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Teh Botol", Code: "8998898", Price: 5000}))

	got, err := repo.GetByCode(ctx, "8998898")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Teh Botol", got.Name)

	missing, err := repo.GetByCode(ctx, "0000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
