package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kasirhub/kasir-pos/internal/domain/entity"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}
