package repository

import (
	"context"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	"github.com/kasirhub/kasir-pos/pkg/pagination"
)

// TransactionFilterParams holds filtering options for listing transactions
type TransactionFilterParams struct {
	Status     *enum.TransactionStatus
	Search     string
	Pagination pagination.PaginationParams
}

// TransactionRepository defines the interface for transaction persistence
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uint) (*entity.Transaction, error)
	GetWithItems(ctx context.Context, id uint) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	// DeleteWithItems removes the items first, then the transaction itself.
	DeleteWithItems(ctx context.Context, id uint) error
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
}

// TransactionItemRepository defines the interface for item persistence
type TransactionItemRepository interface {
	Create(ctx context.Context, item *entity.TransactionItem) error
	GetByID(ctx context.Context, id uint) (*entity.TransactionItem, error)
	ListByTransaction(ctx context.Context, transactionID uint) ([]entity.TransactionItem, error)
	Update(ctx context.Context, item *entity.TransactionItem) error
	Delete(ctx context.Context, id uint) error
}
