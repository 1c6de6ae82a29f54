package repository

import (
	"context"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
)

// PaymentCardRepository defines the interface for payment card persistence
type PaymentCardRepository interface {
	Create(ctx context.Context, card *entity.PaymentCard) error
	GetByID(ctx context.Context, id uint) (*entity.PaymentCard, error)
	List(ctx context.Context) ([]entity.PaymentCard, error)
	Delete(ctx context.Context, id uint) error
}
