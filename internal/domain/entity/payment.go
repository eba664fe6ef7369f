package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus marks a ledger entry as counted or not
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethod is how the money was received
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// Payment is an append-only ledger entry. Entries are never updated or
// deleted; a booking's paid amount is always the sum of its completed rows.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	Reference     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method        PaymentMethod   `gorm:"type:varchar(30);not null" json:"method"`
	Status        PaymentStatus   `gorm:"type:payment_status;not null;default:'completed'" json:"status"`
	TransactionID *string         `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsCompleted reports whether the entry counts toward the paid amount.
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}
