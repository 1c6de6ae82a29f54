package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	domainRepo "github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/pkg/pagination"
)

func TestTransactionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	itemRepo := NewTransactionItemRepository(db)
	ctx := context.Background()

	tx := &entity.Transaction{Number: "TRX-00000001"}
	require.NoError(t, repo.Create(ctx, tx))
	assert.NotZero(t, tx.ID)

	require.NoError(t, itemRepo.Create(ctx, &entity.TransactionItem{
		TransactionID: tx.ID,
		ProductID:     1,
		ProductName:   "Kopi Susu",
		Quantity:      2,
		Price:         15000,
		SubTotal:      30000,
	}))

	t.Run("get by id without items", func(t *testing.T) {
		got, err := repo.GetByID(ctx, tx.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "TRX-00000001", got.Number)
		assert.Empty(t, got.Items)
	})

	t.Run("get with items preloads the cart", func(t *testing.T) {
		got, err := repo.GetWithItems(ctx, tx.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Kopi Susu", got.Items[0].ProductName)
	})

	t.Run("missing transaction returns nil without error", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTransactionRepository_DeleteWithItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	itemRepo := NewTransactionItemRepository(db)
	ctx := context.Background()

	tx := &entity.Transaction{Number: "TRX-00000002"}
	require.NoError(t, repo.Create(ctx, tx))
	require.NoError(t, itemRepo.Create(ctx, &entity.TransactionItem{
		TransactionID: tx.ID, ProductID: 1, Quantity: 1, Price: 1000, SubTotal: 1000,
	}))

	require.NoError(t, repo.DeleteWithItems(ctx, tx.ID))

	got, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	items, err := itemRepo.ListByTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTransactionRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	completed := enum.TransactionStatusCompleted
	require.NoError(t, repo.Create(ctx, &entity.Transaction{
		Number: "TRX-A1", CustomerName: "Budi", Status: completed,
	}))
	require.NoError(t, repo.Create(ctx, &entity.Transaction{
		Number: "TRX-A2", CustomerName: "Siti",
	}))

	t.Run("filter by status", func(t *testing.T) {
		got, total, err := repo.List(ctx, &domainRepo.TransactionFilterParams{
			Status:     &completed,
			Pagination: pagination.PaginationParams{Page: 1, PerPage: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, got, 1)
		assert.Equal(t, "TRX-A1", got[0].Number)
	})

	t.Run("search matches customer name", func(t *testing.T) {
		got, total, err := repo.List(ctx, &domainRepo.TransactionFilterParams{
			Search:     "Siti",
			Pagination: pagination.PaginationParams{Page: 1, PerPage: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, got, 1)
		assert.Equal(t, "TRX-A2", got[0].Number)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		_, total, err := repo.List(ctx, &domainRepo.TransactionFilterParams{
			Pagination: pagination.PaginationParams{Page: 1, PerPage: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}
