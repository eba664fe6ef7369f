package repository

import (
	"go-hotel-booking/internal/domain/entity"
	domainRepo "go-hotel-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) SumCompletedByBookingID(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("booking_id = ? AND status = ?", bookingID, entity.PaymentStatusCompleted).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
