package repository

import (
	"go-hotel-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceChargeRepository interface {
	Create(db *gorm.DB, charge *entity.ServiceCharge) error
	SumByBookingID(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error)
	// Delete removes a charge scoped to its booking. Returns affected rows.
	Delete(db *gorm.DB, id, bookingID uuid.UUID) (int64, error)
}
