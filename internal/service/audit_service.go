package service

import (
	"go-hotel-booking/internal/domain/entity"
	"go-hotel-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	// LogBookingAction appends an audit row inside the caller's transaction.
	// The insert runs under a savepoint so a failure cannot abort the
	// transaction; callers treat the returned error as non-fatal.
	LogBookingAction(tx *gorm.DB, actorID *uuid.UUID, action string, bookingID uuid.UUID, details map[string]interface{}) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.AuditLog, error)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogBookingAction(tx *gorm.DB, actorID *uuid.UUID, action string, bookingID uuid.UUID, details map[string]interface{}) error {
	metadata := entity.JSON{
		"booking_id": bookingID.String(),
	}
	for k, v := range details {
		metadata[k] = v
	}

	auditLog := &entity.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Metadata: metadata,
	}

	// Postgres aborts the whole transaction on any failed statement, so the
	// insert needs its own savepoint for the non-fatality to hold.
	tx.SavePoint("audit_log")
	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		tx.RollbackTo("audit_log")
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.AuditLog, error) {
	return s.auditRepo.FindByBookingID(db, bookingID.String())
}
