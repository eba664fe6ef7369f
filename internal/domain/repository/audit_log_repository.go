package repository

import (
	"go-hotel-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByBookingID(db *gorm.DB, bookingID string) ([]entity.AuditLog, error)
}
