package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kasirhub/kasir-pos/internal/config"
	"github.com/kasirhub/kasir-pos/internal/domain/entity"
)

// NewSQLiteDB opens (and creates if needed) the embedded SQLite store.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; a bigger pool only produces lock errors.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{},
		&entity.Product{},
		&entity.PaymentCard{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.ReceiptTemplate{},
		&entity.DisplaySettings{},
	)
}

// SeedDefaultData creates the default receipt template and display settings
// when the store is empty.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.ReceiptTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(entity.DefaultReceiptTemplate()).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entity.DisplaySettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(entity.DefaultDisplaySettings()).Error; err != nil {
			return err
		}
	}
	return nil
}
