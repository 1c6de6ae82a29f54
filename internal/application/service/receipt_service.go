package service

import (
	"context"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	"github.com/kasirhub/kasir-pos/internal/domain/enum"
	"github.com/kasirhub/kasir-pos/internal/domain/repository"
	"github.com/kasirhub/kasir-pos/pkg/apperror"
	"github.com/kasirhub/kasir-pos/pkg/imaging"
	"github.com/kasirhub/kasir-pos/pkg/logger"
	"github.com/kasirhub/kasir-pos/pkg/printer"
)

// Dot width of the print head on an 80mm printer; logos are capped here.
const printerDots = 384

var defaultFooter = []string{
	"Terima kasih atas kunjungan Anda",
	"Barang yang dibeli tidak dapat ditukar",
}

// ReceiptService turns finalized transactions into printable receipts: an
// ESC/POS byte stream for the thermal printer and an equivalent HTML
// document. Both renderers read the persisted template and display settings
// as configuration; when nothing is configured, fixed defaults apply.
type ReceiptService struct {
	txRepo       repository.TransactionRepository
	cardRepo     repository.PaymentCardRepository
	settingsRepo repository.SettingsRepository
	printer      printer.Printer
	printerType  string
	charWidth    int
	resolvers    []imaging.Resolver
	log          *logger.Logger
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	txRepo repository.TransactionRepository,
	cardRepo repository.PaymentCardRepository,
	settingsRepo repository.SettingsRepository,
	p printer.Printer,
	printerType string,
	charWidth int,
	log *logger.Logger,
) *ReceiptService {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &ReceiptService{
		txRepo:       txRepo,
		cardRepo:     cardRepo,
		settingsRepo: settingsRepo,
		printer:      p,
		printerType:  printerType,
		charWidth:    charWidth,
		resolvers:    imaging.DefaultResolvers(),
		log:          log,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// BuildReceipt composes the receipt value object for a transaction. The
// same receipt feeds both renderers.
func (s *ReceiptService) BuildReceipt(ctx context.Context, txID uint) (*entity.Receipt, error) {
	tx, err := s.txRepo.GetWithItems(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	tpl := s.template(ctx)
	f := s.formatter(ctx)

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: tpl.StoreName,
			Address:   tpl.Address,
			Phone:     tpl.Phone,
			Website:   tpl.Website,
		},
		Number:       tx.Number,
		Customer:     tx.CustomerName,
		Date:         f.Date(tx.CreatedAt),
		Time:         f.Clock(tx.CreatedAt),
		SubTotal:     tx.SubTotal,
		Discount:     tx.SubTotal - tx.Total,
		Total:        tx.Total,
		PaymentLabel: s.paymentLabel(ctx, tx),
	}
	if tx.PaidAt != nil {
		receipt.Date = f.Date(*tx.PaidAt)
		receipt.Time = f.Clock(*tx.PaidAt)
	}

	for _, item := range tx.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptLine{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.Price,
			SubTotal: item.SubTotal,
		})
	}

	if tpl.ShowFooter {
		if tpl.FooterMessage != "" {
			receipt.Footer = []string{tpl.FooterMessage}
		} else {
			receipt.Footer = defaultFooter
		}
	}

	return receipt, nil
}

// EncodeReceipt renders the ESC/POS byte stream for a transaction.
func (s *ReceiptService) EncodeReceipt(ctx context.Context, txID uint) ([]byte, error) {
	receipt, err := s.BuildReceipt(ctx, txID)
	if err != nil {
		return nil, err
	}

	tpl := s.template(ctx)
	f := s.formatter(ctx)
	return s.encodeESCPOS(receipt, f, s.logoBitmap(tpl)), nil
}

// PrintReceipt renders the ESC/POS stream and sends it to the configured
// printer transport. The built receipt is returned either way so the caller
// can still show it when printing fails.
func (s *ReceiptService) PrintReceipt(ctx context.Context, txID uint) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, txID)
	if err != nil {
		return nil, err
	}

	tpl := s.template(ctx)
	f := s.formatter(ctx)
	data := s.encodeESCPOS(receipt, f, s.logoBitmap(tpl))

	if err := s.printer.Print(data); err != nil {
		s.log.Error("receipt print failed", "number", receipt.Number, "error", err)
		return receipt, apperror.NewAppError(502, "Failed to print receipt: "+err.Error())
	}
	return receipt, nil
}

// RenderHTML renders the self-contained HTML receipt document.
func (s *ReceiptService) RenderHTML(ctx context.Context, txID uint) (string, error) {
	receipt, err := s.BuildReceipt(ctx, txID)
	if err != nil {
		return "", err
	}
	tpl := s.template(ctx)
	f := s.formatter(ctx)
	return renderReceiptHTML(receipt, tpl, f)
}

// TestPrint sends a fixed test receipt to the printer.
func (s *ReceiptService) TestPrint() (*entity.Receipt, error) {
	f := DefaultFormatter()
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{StoreName: "PRINTER TEST"},
		Number: "TEST-001",
		Date:   f.Date(nowFunc()),
		Time:   f.Clock(nowFunc()),
		Items: []entity.ReceiptLine{
			{Name: "Test Item", Quantity: 1, Price: 10000, SubTotal: 10000},
		},
		SubTotal: 10000,
		Total:    10000,
		Footer:   defaultFooter,
	}

	data := s.encodeESCPOS(receipt, f, nil)
	if err := s.printer.Print(data); err != nil {
		return receipt, apperror.NewAppError(502, "Test print failed: "+err.Error())
	}
	return receipt, nil
}

// template loads the receipt template, falling back to the default when
// nothing is stored or the store is unreachable.
func (s *ReceiptService) template(ctx context.Context) *entity.ReceiptTemplate {
	tpl, err := s.settingsRepo.GetTemplate(ctx)
	if err != nil {
		s.log.Warn("receipt template lookup failed, using defaults", "error", err)
		return entity.DefaultReceiptTemplate()
	}
	if tpl == nil || tpl.StoreName == "" {
		return entity.DefaultReceiptTemplate()
	}
	return tpl
}

// formatter loads display settings, falling back to defaults.
func (s *ReceiptService) formatter(ctx context.Context) Formatter {
	settings, err := s.settingsRepo.GetDisplay(ctx)
	if err != nil || settings == nil {
		return DefaultFormatter()
	}
	f := Formatter{DecimalPlaces: settings.DecimalPlaces, DateFormat: settings.DateFormat}
	if f.DateFormat == "" {
		f.DateFormat = "DD/MM/YYYY"
	}
	return f
}

// logoBitmap prepares the monochrome logo, if one is configured. Conversion
// failures degrade to printing without a logo.
func (s *ReceiptService) logoBitmap(tpl *entity.ReceiptTemplate) *imaging.MonoBitmap {
	if !tpl.ShowLogo || tpl.Logo == "" {
		return nil
	}

	width := tpl.LogoWidth
	if width < entity.LogoWidthMin {
		width = entity.LogoWidthMin
	}
	if width > printerDots {
		width = printerDots
	}

	data, err := imaging.Resolve(s.resolvers, tpl.Logo)
	if err != nil {
		s.log.Warn("logo source unreadable, printing without logo", "error", err)
		return nil
	}
	bitmap, err := imaging.Convert(data, width)
	if err != nil {
		s.log.Warn("logo conversion failed, printing without logo", "error", err)
		return nil
	}
	return bitmap
}

// paymentLabel resolves the human label for the payment method: the
// registered payment card name when a card is referenced, else the
// method-keyed label table. Unknown methods pass through unchanged.
func (s *ReceiptService) paymentLabel(ctx context.Context, tx *entity.Transaction) string {
	if tx.PaymentMethod == "" {
		return ""
	}
	if tx.PaymentCardID != nil {
		if card, err := s.cardRepo.GetByID(ctx, *tx.PaymentCardID); err == nil && card != nil {
			return card.Name
		}
	}
	return enum.PaymentMethodLabel(tx.PaymentMethod)
}
