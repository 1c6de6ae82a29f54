package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
	infraRepo "github.com/kasirhub/kasir-pos/internal/infrastructure/repository"
	"github.com/kasirhub/kasir-pos/pkg/logger"
	"github.com/kasirhub/kasir-pos/pkg/notify"
	"github.com/kasirhub/kasir-pos/pkg/printer"
)

// captureNotifier records events instead of delivering them.
type captureNotifier struct {
	events []notify.TransactionEvent
}

func (n *captureNotifier) TransactionSucceeded(ctx context.Context, event notify.TransactionEvent) {
	n.events = append(n.events, event)
}

// testEnv wires the service layer onto a fresh in-memory database.
type testEnv struct {
	db       *gorm.DB
	tx       *TransactionService
	products *ProductService
	settings *SettingsService
	receipts *ReceiptService
	notifier *captureNotifier
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{},
		&entity.Product{},
		&entity.PaymentCard{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.ReceiptTemplate{},
		&entity.DisplaySettings{},
	))

	txRepo := infraRepo.NewTransactionRepository(db)
	itemRepo := infraRepo.NewTransactionItemRepository(db)
	productRepo := infraRepo.NewProductRepository(db)
	categoryRepo := infraRepo.NewCategoryRepository(db)
	cardRepo := infraRepo.NewPaymentCardRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)

	notifier := &captureNotifier{}
	log := logger.NewNop()

	p, err := printer.New(printer.Config{Type: "none"})
	require.NoError(t, err)

	return &testEnv{
		db:       db,
		tx:       NewTransactionService(txRepo, itemRepo, productRepo, cardRepo, notifier, log),
		products: NewProductService(productRepo, categoryRepo),
		settings: NewSettingsService(settingsRepo, cardRepo),
		receipts: NewReceiptService(txRepo, cardRepo, settingsRepo, p, "none", 32, log),
		notifier: notifier,
	}
}

// seedProduct inserts a catalog product and returns it.
func (e *testEnv) seedProduct(t *testing.T, name string, price int64, opts ...func(*entity.Product)) *entity.Product {
	t.Helper()
	product := &entity.Product{Name: name, Price: price, Stock: 100, Unit: "pcs"}
	for _, opt := range opts {
		opt(product)
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func fractional(p *entity.Product) { p.Fractional = true }

func withDiscount(percent float64) func(*entity.Product) {
	return func(p *entity.Product) { p.Discount = percent }
}
