package repository

import (
	"context"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/pkg/pagination"
)

// ProductFilterParams holds filtering options for listing products
type ProductFilterParams struct {
	Search     string
	CategoryID *uint
	Pagination pagination.PaginationParams
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// RecordSale increments sold and decrements stock by quantity in a
	// single statement. Stock never goes below zero.
	RecordSale(ctx context.Context, id uint, quantity float64) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.Category, error)
}
