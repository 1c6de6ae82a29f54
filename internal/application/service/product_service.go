package service

import (
	"context"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/pkg/apperror"
	"github.com/kasirhub/kasir-pos/pkg/pagination"
)

// ProductService handles catalog operations. It is also the read side the
// transaction engine uses to snapshot prices and discounts.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	CategoryID *uint
	Name       string
	Code       string
	Price      int64
	Discount   float64
	Stock      float64
	Unit       string
	Fractional bool
}

func (s *ProductService) validate(ctx context.Context, input *ProductInput) error {
	if input.Name == "" {
		return apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return apperror.NewBadRequestError("Price must not be negative")
	}
	if input.Discount < 0 || input.Discount > 100 {
		return apperror.NewBadRequestError("Discount must be between 0 and 100")
	}
	if input.Stock < 0 {
		return apperror.NewBadRequestError("Stock must not be negative")
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.NewNotFoundError("Category")
		}
	}
	return nil
}

// CreateProduct adds a product to the catalog.
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}
	if input.Code != "" {
		existing, err := s.productRepo.GetByCode(ctx, input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Product code already exists")
		}
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}
	product := &entity.Product{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Code:       input.Code,
		Price:      input.Price,
		Discount:   input.Discount,
		Stock:      input.Stock,
		Unit:       unit,
		Fractional: input.Fractional,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByCode looks a product up by its barcode.
func (s *ProductService) GetProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct updates a catalog product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.Code = input.Code
	product.Price = input.Price
	product.Discount = input.Discount
	product.Stock = input.Stock
	if input.Unit != "" {
		product.Unit = input.Unit
	}
	product.Fractional = input.Fractional

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog. Historical transaction
// items keep their snapshots.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering.
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// CreateCategory adds a product category.
func (s *ProductService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all categories.
func (s *ProductService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// DeleteCategory removes a category. Products keep a dangling category id
// cleared by the repository layer foreign key.
func (s *ProductService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
