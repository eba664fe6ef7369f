package repository

import (
	"go-hotel-booking/internal/domain/entity"
	domainRepo "go-hotel-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type serviceChargeRepository struct{}

func NewServiceChargeRepository() domainRepo.ServiceChargeRepository {
	return &serviceChargeRepository{}
}

func (r *serviceChargeRepository) Create(db *gorm.DB, charge *entity.ServiceCharge) error {
	return db.Create(charge).Error
}

func (r *serviceChargeRepository) SumByBookingID(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.Model(&entity.ServiceCharge{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("booking_id = ?", bookingID).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *serviceChargeRepository) Delete(db *gorm.DB, id, bookingID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND booking_id = ?", id, bookingID).
		Delete(&entity.ServiceCharge{})
	return result.RowsAffected, result.Error
}
