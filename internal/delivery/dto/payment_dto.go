package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Method        string          `json:"method" validate:"required,oneof=cash card bank_transfer"`
	TransactionID *string         `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
}

// Response DTOs

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BookingTotalsResponse carries the recomputed ledger-derived totals.
type BookingTotalsResponse struct {
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            string          `json:"status"`
}

type RecordPaymentResponse struct {
	Payment PaymentResponse       `json:"payment"`
	Totals  BookingTotalsResponse `json:"totals"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
