package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	domainRepo "github.com/kasirhub/kasir-pos/internal/domain/repository"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) GetWithItems(ctx context.Context, id uint) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("PaymentCard").
		First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Omit("Items", "PaymentCard").Save(tx).Error
}

func (r *transactionRepository) DeleteWithItems(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.TransactionItem{}, "transaction_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Transaction{}, "id = ?", id).Error
	})
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Search != "" {
		query = query.Where("number LIKE ? OR customer_name LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&transactions).Error

	return transactions, total, err
}

type transactionItemRepository struct {
	db *gorm.DB
}

// NewTransactionItemRepository creates a new transaction item repository
func NewTransactionItemRepository(db *gorm.DB) domainRepo.TransactionItemRepository {
	return &transactionItemRepository{db: db}
}

func (r *transactionItemRepository) Create(ctx context.Context, item *entity.TransactionItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *transactionItemRepository) GetByID(ctx context.Context, id uint) (*entity.TransactionItem, error) {
	var item entity.TransactionItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *transactionItemRepository) ListByTransaction(ctx context.Context, transactionID uint) ([]entity.TransactionItem, error) {
	var items []entity.TransactionItem
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *transactionItemRepository) Update(ctx context.Context, item *entity.TransactionItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *transactionItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.TransactionItem{}, "id = ?", id).Error
}
