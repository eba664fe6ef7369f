package usecase

import (
	"context"
	"errors"

	"go-hotel-booking/internal/converter"
	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/delivery/http/middleware"
	"go-hotel-booking/internal/domain/entity"
	"go-hotel-booking/internal/domain/repository"
	"go-hotel-booking/internal/service"
	"go-hotel-booking/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrOutstandingBalance = errors.New("booking has an outstanding balance")
	ErrCheckInNotStarted  = errors.New("check-in date has not arrived yet")
)

// BookingLifecycleUsecase drives the staff/admin side of the status
// machine. The graph itself lives on the entity; this layer adds the
// business guards (settled balance, arrival date) and the audit trail.
type BookingLifecycleUsecase interface {
	Confirm(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	CheckIn(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	CheckOut(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	GetAuditTrail(ctx context.Context, bookingID uuid.UUID) (*dto.AuditLogListResponse, error)
}

type bookingLifecycleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	roomRepo     repository.RoomRepository
	auditService service.AuditService
	cache        *service.AvailabilityCache
}

func NewBookingLifecycleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	auditService service.AuditService,
	cache *service.AvailabilityCache,
) BookingLifecycleUsecase {
	return &bookingLifecycleUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		auditService: auditService,
		cache:        cache,
	}
}

func (u *bookingLifecycleUsecase) Confirm(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	return u.transition(ctx, bookingID, entity.BookingStatusConfirmed, entity.AuditActionBookingConfirm, nil, entity.RoomStatus(""))
}

// CheckIn admits the guest. Guests may not check in with an outstanding
// balance or before their arrival date.
func (u *bookingLifecycleUsecase) CheckIn(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	guard := func(b *entity.Booking) error {
		if !b.OutstandingAmount().IsZero() {
			return ErrOutstandingBalance
		}
		if b.CheckInDate.After(dateutil.Today()) {
			return ErrCheckInNotStarted
		}
		return nil
	}
	return u.transition(ctx, bookingID, entity.BookingStatusCheckedIn, entity.AuditActionBookingCheckIn, guard, entity.RoomStatusOccupied)
}

func (u *bookingLifecycleUsecase) CheckOut(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	guard := func(b *entity.Booking) error {
		if !b.OutstandingAmount().IsZero() {
			return ErrOutstandingBalance
		}
		return nil
	}
	return u.transition(ctx, bookingID, entity.BookingStatusCheckedOut, entity.AuditActionBookingCheckOut, guard, entity.RoomStatusCleaning)
}

func (u *bookingLifecycleUsecase) MarkNoShow(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	return u.transition(ctx, bookingID, entity.BookingStatusNoShow, entity.AuditActionBookingNoShow, nil, entity.RoomStatus(""))
}

func (u *bookingLifecycleUsecase) Cancel(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	return u.transition(ctx, bookingID, entity.BookingStatusCancelled, entity.AuditActionBookingCancel, nil, entity.RoomStatus(""))
}

// transition applies one guarded status change in its own transaction. The
// booking row is locked first, then the guarded update re-checks the
// current status so a concurrent transition loses cleanly.
func (u *bookingLifecycleUsecase) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	target entity.BookingStatus,
	action string,
	guard func(*entity.Booking) error,
	roomStatus entity.RoomStatus,
) (*dto.BookingResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByIDForUpdate(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.CanTransitionTo(target) {
		return nil, entity.ErrInvalidStateTransition
	}
	if guard != nil {
		if err := guard(booking); err != nil {
			return nil, err
		}
	}

	rows, err := u.bookingRepo.UpdateStatus(tx, booking.ID, booking.Status, target)
	if err != nil {
		u.log.Warnf("Failed to transition booking %s to %s: %+v", booking.Reference, target, err)
		return nil, err
	}
	if rows == 0 {
		return nil, entity.ErrInvalidStateTransition
	}
	previous := booking.Status
	booking.Status = target

	// Advisory room status for the staff dashboard; never consulted for
	// booking conflicts.
	if roomStatus != entity.RoomStatus("") {
		if err := u.roomRepo.UpdateStatus(tx, booking.RoomID, roomStatus); err != nil {
			u.log.Warnf("Failed to update room %s status: %+v", booking.RoomID, err)
			return nil, err
		}
	}

	if err := u.auditService.LogBookingAction(tx, &actorID, action, booking.ID, map[string]interface{}{
		"reference": booking.Reference,
		"from":      string(previous),
		"to":        string(target),
	}); err != nil {
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Leaving the active set frees the room's dates for new bookings.
	if !booking.IsActive() {
		u.cache.InvalidateRoom(ctx, booking.RoomID)
	}

	u.log.Infof("Booking %s: %s -> %s", booking.Reference, previous, target)

	full, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}
	return converter.BookingToResponse(full), nil
}

func (u *bookingLifecycleUsecase) GetAuditTrail(ctx context.Context, bookingID uuid.UUID) (*dto.AuditLogListResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	logs, err := u.auditService.FindByBookingID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to load audit trail for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
