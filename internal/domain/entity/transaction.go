package entity

import (
	"time"

	"github.com/kasirhub/kasir-pos/internal/domain/enum"
)

// Transaction represents a sale, from draft cart to paid receipt. Monetary
// amounts are non-negative integers in the smallest currency unit.
type Transaction struct {
	ID            uint                   `gorm:"primaryKey" json:"id"`
	Number        string                 `gorm:"size:50;uniqueIndex;not null" json:"number"`
	CustomerName  string                 `gorm:"size:255" json:"customer_name,omitempty"`
	SubTotal      int64                  `gorm:"default:0" json:"sub_total"`
	Discount      int64                  `gorm:"default:0" json:"discount"` // manual promotional discount
	Total         int64                  `gorm:"default:0" json:"total"`
	PaymentMethod string                 `gorm:"size:20" json:"payment_method,omitempty"`
	PaymentCardID *uint                  `gorm:"index" json:"payment_card_id,omitempty"`
	PaymentStatus enum.PaymentStatus     `gorm:"default:0" json:"payment_status"`
	Status        enum.TransactionStatus `gorm:"default:0" json:"status"`
	CreatedBy     string                 `gorm:"size:100" json:"created_by"`
	PaidAt        *time.Time             `json:"paid_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`

	// Relationships
	PaymentCard *PaymentCard      `gorm:"foreignKey:PaymentCardID" json:"payment_card,omitempty"`
	Items       []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// IsDraft reports whether the transaction is still an open cart.
func (t *Transaction) IsDraft() bool {
	return t.Status == enum.TransactionStatusDraft
}

// IsDeletable reports whether the transaction may be permanently removed.
// Only cancelled and returned transactions qualify; drafts go through the
// hard-cancel path instead.
func (t *Transaction) IsDeletable() bool {
	return t.Status == enum.TransactionStatusCancelled || t.Status == enum.TransactionStatusReturn
}

// TransactionItem is a line item owned by exactly one transaction. Price and
// discount are snapshots taken when the item was added; the product itself
// may be edited or deleted later without affecting sold history.
type TransactionItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TransactionID uint      `gorm:"not null;index" json:"transaction_id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"` // weak reference
	ProductName   string    `gorm:"size:255" json:"product_name"`
	Quantity      float64   `gorm:"not null" json:"quantity"` // fractional for continuous units
	Price         int64     `gorm:"not null" json:"price"`    // unit price snapshot
	Discount      float64   `gorm:"default:0" json:"discount"`
	SubTotal      int64     `gorm:"default:0" json:"sub_total"` // always quantity x price, pre-discount
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}
