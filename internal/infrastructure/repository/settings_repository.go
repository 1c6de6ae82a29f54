package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	domainRepo "github.com/kasirhub/kasir-pos/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetTemplate(ctx context.Context) (*entity.ReceiptTemplate, error) {
	var tpl entity.ReceiptTemplate
	err := r.db.WithContext(ctx).Order("id ASC").First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tpl, err
}

func (r *settingsRepository) SaveTemplate(ctx context.Context, tpl *entity.ReceiptTemplate) error {
	return r.db.WithContext(ctx).Save(tpl).Error
}

func (r *settingsRepository) GetDisplay(ctx context.Context) (*entity.DisplaySettings, error) {
	var settings entity.DisplaySettings
	err := r.db.WithContext(ctx).Order("id ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) SaveDisplay(ctx context.Context, settings *entity.DisplaySettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
