package entity

import "time"

// PaymentCard is a registered non-cash payment option (debit/credit card,
// bank transfer account). Receipts resolve the payment label from here when
// a transaction references a card.
type PaymentCard struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"` // e.g. "BCA Debit"
	Method    string    `gorm:"size:20;not null" json:"method"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the PaymentCard model
func (PaymentCard) TableName() string {
	return "payment_cards"
}
