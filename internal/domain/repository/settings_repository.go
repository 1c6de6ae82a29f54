package repository

import (
	"context"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
)

// SettingsRepository defines the interface for template and display
// settings persistence. Both are single-row collections; Get returns nil
// when nothing has been configured yet.
type SettingsRepository interface {
	GetTemplate(ctx context.Context) (*entity.ReceiptTemplate, error)
	SaveTemplate(ctx context.Context, tpl *entity.ReceiptTemplate) error
	GetDisplay(ctx context.Context) (*entity.DisplaySettings, error)
	SaveDisplay(ctx context.Context, settings *entity.DisplaySettings) error
}
