package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/kasirhub/kasir-pos/internal/application/service"
	"github.com/kasirhub/kasir-pos/internal/config"
	"github.com/kasirhub/kasir-pos/internal/infrastructure/database"
	infraRepo "github.com/kasirhub/kasir-pos/internal/infrastructure/repository"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/handler"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/routes"
	"github.com/kasirhub/kasir-pos/pkg/logger"
	"github.com/kasirhub/kasir-pos/pkg/notify"
	"github.com/kasirhub/kasir-pos/pkg/printer"
)

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		appLog.Fatal("Failed to open database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		appLog.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.SeedDefaultData(db); err != nil {
		appLog.Fatal("Failed to seed default data", "error", err)
	}

	// Repositories
	txRepo := infraRepo.NewTransactionRepository(db)
	itemRepo := infraRepo.NewTransactionItemRepository(db)
	productRepo := infraRepo.NewProductRepository(db)
	categoryRepo := infraRepo.NewCategoryRepository(db)
	cardRepo := infraRepo.NewPaymentCardRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)

	// Printer transport
	p, err := printer.New(printer.Config{
		Type:       cfg.Printer.Type,
		DevicePath: cfg.Printer.DevicePath,
		Address:    cfg.Printer.Address,
	})
	if err != nil {
		appLog.Fatal("Failed to configure printer", "error", err)
	}
	defer p.Close()

	notifier := notify.New(cfg.Notify.WebhookURL, appLog)

	// Services
	txService := service.NewTransactionService(txRepo, itemRepo, productRepo, cardRepo, notifier, appLog)
	productService := service.NewProductService(productRepo, categoryRepo)
	settingsService := service.NewSettingsService(settingsRepo, cardRepo)
	receiptService := service.NewReceiptService(
		txRepo, cardRepo, settingsRepo,
		p, cfg.Printer.Type, cfg.Printer.Width,
		appLog,
	)

	// HTTP
	router := routes.Setup(&routes.Handlers{
		Transaction: handler.NewTransactionHandler(txService),
		Product:     handler.NewProductHandler(productService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Receipt:     handler.NewReceiptHandler(receiptService),
	}, &routes.Deps{
		Cfg: cfg,
		Log: appLog,
	})

	appLog.Info("Starting server",
		"name", cfg.App.Name,
		"env", cfg.App.Env,
		"port", cfg.App.Port,
		"printer", cfg.Printer.Type,
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLog.Fatal("Server failed", "error", err)
	}
}
