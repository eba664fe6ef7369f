package repository

import (
	"go-hotel-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error)
	// SumCompletedByBookingID recomputes the paid amount as the ledger sum
	// of completed entries. Totals are never incremented in place.
	SumCompletedByBookingID(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error)
}
