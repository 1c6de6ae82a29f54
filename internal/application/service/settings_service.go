package service

import (
	"context"
	"fmt"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	"github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/pkg/apperror"
)

// SettingsService manages the receipt template, display settings and the
// payment card registry.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cardRepo     repository.PaymentCardRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, cardRepo repository.PaymentCardRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cardRepo:     cardRepo,
	}
}

// GetTemplate retrieves the receipt template, creating defaults if not exists.
func (s *SettingsService) GetTemplate(ctx context.Context) (*entity.ReceiptTemplate, error) {
	tpl, err := s.settingsRepo.GetTemplate(ctx)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		tpl = entity.DefaultReceiptTemplate()
		if err := s.settingsRepo.SaveTemplate(ctx, tpl); err != nil {
			return nil, err
		}
	}
	return tpl, nil
}

// TemplateInput represents the update template input
type TemplateInput struct {
	StoreName     string
	Address       string
	Phone         string
	Website       string
	FooterMessage string
	ShowFooter    bool
	Logo          string
	ShowLogo      bool
	LogoWidth     int
	LogoHeight    int
}

// UpdateTemplate validates and stores the receipt template.
func (s *SettingsService) UpdateTemplate(ctx context.Context, input *TemplateInput) (*entity.ReceiptTemplate, error) {
	if input.StoreName == "" {
		return nil, apperror.NewBadRequestError("Store name is required")
	}
	if input.LogoWidth < entity.LogoWidthMin || input.LogoWidth > entity.LogoWidthMax {
		return nil, apperror.NewBadRequestError(fmt.Sprintf(
			"Logo width must be between %d and %d", entity.LogoWidthMin, entity.LogoWidthMax))
	}
	if input.LogoHeight < entity.LogoHeightMin || input.LogoHeight > entity.LogoHeightMax {
		return nil, apperror.NewBadRequestError(fmt.Sprintf(
			"Logo height must be between %d and %d", entity.LogoHeightMin, entity.LogoHeightMax))
	}

	tpl, err := s.GetTemplate(ctx)
	if err != nil {
		return nil, err
	}

	tpl.StoreName = input.StoreName
	tpl.Address = input.Address
	tpl.Phone = input.Phone
	tpl.Website = input.Website
	tpl.FooterMessage = input.FooterMessage
	tpl.ShowFooter = input.ShowFooter
	tpl.Logo = input.Logo
	tpl.ShowLogo = input.ShowLogo
	tpl.LogoWidth = input.LogoWidth
	tpl.LogoHeight = input.LogoHeight

	if err := s.settingsRepo.SaveTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// GetDisplay retrieves the display settings, creating defaults if not exists.
func (s *SettingsService) GetDisplay(ctx context.Context) (*entity.DisplaySettings, error) {
	settings, err := s.settingsRepo.GetDisplay(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultDisplaySettings()
		if err := s.settingsRepo.SaveDisplay(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateDisplay validates and stores the display settings.
func (s *SettingsService) UpdateDisplay(ctx context.Context, decimalPlaces int, dateFormat string) (*entity.DisplaySettings, error) {
	if decimalPlaces < 0 || decimalPlaces > 4 {
		return nil, apperror.NewBadRequestError("Decimal places must be between 0 and 4")
	}
	if dateFormat == "" {
		dateFormat = "DD/MM/YYYY"
	}

	settings, err := s.GetDisplay(ctx)
	if err != nil {
		return nil, err
	}
	settings.DecimalPlaces = decimalPlaces
	settings.DateFormat = dateFormat

	if err := s.settingsRepo.SaveDisplay(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// CreatePaymentCard registers a non-cash payment option.
func (s *SettingsService) CreatePaymentCard(ctx context.Context, name, method string) (*entity.PaymentCard, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Card name is required")
	}
	if !enum.ValidPaymentMethod(method) || method == enum.PaymentMethodCash {
		return nil, apperror.NewBadRequestError("Method must be card or transfer")
	}
	card := &entity.PaymentCard{Name: name, Method: method}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// ListPaymentCards lists the registered payment cards.
func (s *SettingsService) ListPaymentCards(ctx context.Context) ([]entity.PaymentCard, error) {
	return s.cardRepo.List(ctx)
}

// DeletePaymentCard removes a payment card. Historical transactions keep
// the reference and fall back to the method label on receipts.
func (s *SettingsService) DeletePaymentCard(ctx context.Context, id uint) error {
	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if card == nil {
		return apperror.NewNotFoundError("Payment card")
	}
	return s.cardRepo.Delete(ctx, id)
}
