package repository

import (
	"go-hotel-booking/internal/domain/entity"
	domainRepo "go-hotel-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindByBookingID(db *gorm.DB, bookingID string) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Where("metadata ->> 'booking_id' = ?", bookingID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
