package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/pkg/apperror"
)

func TestProductService_CreateProduct(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	t.Run("creates with unit default", func(t *testing.T) {
		product, err := env.products.CreateProduct(ctx, &ProductInput{
			Name: "Kopi Susu", Code: "KS-01", Price: 15000,
		})
		require.NoError(t, err)
		assert.NotZero(t, product.ID)
		assert.Equal(t, "pcs", product.Unit)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		_, err := env.products.CreateProduct(ctx, &ProductInput{
			Name: "Kopi Hitam", Code: "KS-01", Price: 12000,
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("rejects discount above 100", func(t *testing.T) {
		_, err := env.products.CreateProduct(ctx, &ProductInput{
			Name: "X", Price: 1000, Discount: 101,
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := env.products.CreateProduct(ctx, &ProductInput{Name: "X", Price: -1})
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := env.products.CreateProduct(ctx, &ProductInput{Price: 1000})
		require.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		missing := uint(9999)
		_, err := env.products.CreateProduct(ctx, &ProductInput{
			Name: "X", Price: 1000, CategoryID: &missing,
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	category, err := env.products.CreateCategory(ctx, "Minuman")
	require.NoError(t, err)

	_, err = env.products.CreateProduct(ctx, &ProductInput{
		Name: "Teh Botol", Price: 5000, CategoryID: &category.ID,
	})
	require.NoError(t, err)
	_, err = env.products.CreateProduct(ctx, &ProductInput{Name: "Roti", Price: 8000})
	require.NoError(t, err)

	t.Run("filter by category", func(t *testing.T) {
		result, err := env.products.ListProducts(ctx, &repository.ProductFilterParams{
			CategoryID: &category.ID,
		})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Teh Botol", result.Items[0].Name)
	})

	t.Run("search by name", func(t *testing.T) {
		result, err := env.products.ListProducts(ctx, &repository.ProductFilterParams{
			Search: "Roti",
		})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, int64(1), result.Pagination.Total)
	})
}

func TestProductService_DeleteKeepsSnapshots(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	product := env.seedProduct(t, "Kopi Susu", 15000)
	draft, err := env.tx.CreateDraft(ctx, &CreateTransactionInput{})
	require.NoError(t, err)
	_, err = env.tx.AddItem(ctx, draft.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, env.products.DeleteProduct(ctx, product.ID))

	// The cart line survives on its snapshot.
	tx, err := env.tx.GetTransaction(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, tx.Items, 1)
	assert.Equal(t, "Kopi Susu", tx.Items[0].ProductName)
	assert.Equal(t, int64(15000), tx.Items[0].Price)
}
