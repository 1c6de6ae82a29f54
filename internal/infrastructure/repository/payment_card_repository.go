package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	domainRepo "github.com/kasirhub/kasir-pos/internal/domain/repository"
)

type paymentCardRepository struct {
	db *gorm.DB
}

// NewPaymentCardRepository creates a new payment card repository
func NewPaymentCardRepository(db *gorm.DB) domainRepo.PaymentCardRepository {
	return &paymentCardRepository{db: db}
}

func (r *paymentCardRepository) Create(ctx context.Context, card *entity.PaymentCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *paymentCardRepository) GetByID(ctx context.Context, id uint) (*entity.PaymentCard, error) {
	var card entity.PaymentCard
	err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &card, err
}

func (r *paymentCardRepository) List(ctx context.Context) ([]entity.PaymentCard, error) {
	var cards []entity.PaymentCard
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cards).Error
	return cards, err
}

func (r *paymentCardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.PaymentCard{}, "id = ?", id).Error
}
