package usecase

import (
	"context"
	"errors"
	"time"

	"go-hotel-booking/internal/converter"
	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/delivery/http/middleware"
	"go-hotel-booking/internal/domain/entity"
	"go-hotel-booking/internal/domain/repository"
	"go-hotel-booking/internal/service"
	"go-hotel-booking/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound          = errors.New("room not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotOwned       = errors.New("booking does not belong to you")
	ErrOccupancyExceeded     = errors.New("guest count exceeds the room's maximum occupancy")
	ErrCheckInPast           = errors.New("check-in date cannot be in the past")
	ErrBranchRequired        = errors.New("branch_id is required when booking by room type")
	ErrBookingNotModifiable  = errors.New("booking can no longer be modified")
	ErrServiceChargeNotFound = errors.New("service charge not found")
)

// RoomUnavailableError carries the blocking reservations so callers can
// suggest alternative dates.
type RoomUnavailableError struct {
	Conflicts []dto.BookingConflict
}

func (e *RoomUnavailableError) Error() string {
	return "room is not available for the requested dates"
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error)
	AddServiceCharge(ctx context.Context, bookingID uuid.UUID, req *dto.AddServiceChargeRequest) (*dto.BookingResponse, error)
	RemoveServiceCharge(ctx context.Context, bookingID, chargeID uuid.UUID) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	roomRepo     repository.RoomRepository
	paymentRepo  repository.PaymentRepository
	chargeRepo   repository.ServiceChargeRepository
	availability *service.AvailabilityService
	pricing      *service.PricingService
	auditService service.AuditService
	cache        *service.AvailabilityCache
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	paymentRepo repository.PaymentRepository,
	chargeRepo repository.ServiceChargeRepository,
	availability *service.AvailabilityService,
	pricing *service.PricingService,
	auditService service.AuditService,
	cache *service.AvailabilityCache,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		paymentRepo:  paymentRepo,
		chargeRepo:   chargeRepo,
		availability: availability,
		pricing:      pricing,
		auditService: auditService,
		cache:        cache,
	}
}

// CreateBooking reserves a room for a date range inside one transaction.
//
// Flow:
// 1. Parse and validate dates and occupancy input (fail fast, no transaction)
// 2. Lock the room row, which serializes concurrent bookings of that room
// 3. Re-run the availability check under the lock
// 4. Snapshot the nightly price and compute amounts
// 5. Insert the booking with a generated reference (one retry on collision)
// 6. Record the initial payment under a savepoint; its failure does not
//    roll back the booking, the guest can settle later
// 7. Re-read the committed row and return ledger-derived totals
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	guestID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	checkIn, err := dateutil.ToDateOnly(req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := dateutil.ToDateOnly(req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	nights, err := dateutil.NightsBetween(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if checkIn.Before(dateutil.Today()) {
		return nil, ErrCheckInPast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.resolveRoom(tx, req, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if req.GuestCount > room.RoomType.MaxOccupancy {
		return nil, ErrOccupancyExceeded
	}

	// Authoritative availability check. Runs after the room lock so no
	// concurrent transaction can slip a conflicting row between this check
	// and the insert below.
	result, err := u.availability.Check(tx, room.ID, checkIn, checkOut, nil)
	if err != nil {
		u.log.Warnf("Failed availability check for room %s: %+v", room.ID, err)
		return nil, err
	}
	if !result.Available {
		return nil, &RoomUnavailableError{Conflicts: converter.BookingsToConflicts(result.Conflicts)}
	}

	baseAmount := u.pricing.BaseAmount(room.RoomType.NightlyPrice, nights)
	totalAmount := baseAmount
	initialPaid := u.pricing.InitialPayment(entity.PaymentOption(req.PaymentOption), baseAmount, totalAmount)

	// The booking always starts pending. Promotion to confirmed happens only
	// in the ledger retotal after the payment row actually lands, so a failed
	// initial payment can never commit a confirmed booking with nothing paid.
	booking := &entity.Booking{
		Reference:       generateBookingReference(),
		GuestID:         guestID,
		RoomID:          room.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
		NightlyPrice:    room.RoomType.NightlyPrice,
		Nights:          nights,
		BaseAmount:      baseAmount,
		TotalAmount:     totalAmount,
		PaidAmount:      decimal.Zero,
		Status:          entity.BookingStatusPending,
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isDuplicateKeyError(err, "reference") {
			booking.Reference = generateBookingReference()
			err = u.bookingRepo.Create(tx, booking)
		}
		if err != nil {
			if isExclusionError(err) {
				// The storage-level overlap constraint fired: another
				// transaction committed a conflicting booking first.
				return nil, &RoomUnavailableError{}
			}
			u.log.Warnf("Failed to create booking: %+v", err)
			return nil, err
		}
	}

	warning := ""
	if initialPaid.IsPositive() {
		method := entity.PaymentMethodCash
		if req.PaymentMethod != "" {
			method = entity.PaymentMethod(req.PaymentMethod)
		}
		payment := &entity.Payment{
			BookingID: booking.ID,
			Reference: generatePaymentReference(),
			Amount:    initialPaid,
			Method:    method,
			Status:    entity.PaymentStatusCompleted,
		}

		tx.SavePoint("initial_payment")
		if err := u.paymentRepo.Create(tx, payment); err != nil {
			// A lost reservation is unrecoverable; an unpaid one is not.
			// The booking commits, the payment is reconciled later.
			u.log.Errorf("Failed to record initial payment for booking %s: %+v", booking.Reference, err)
			tx.RollbackTo("initial_payment")
			warning = "initial payment could not be recorded, booking held for payment reconciliation"
		}

		if err := applyLedgerTotals(tx, booking, u.paymentRepo, u.chargeRepo); err != nil {
			u.log.Warnf("Failed to recompute totals for booking %s: %+v", booking.Reference, err)
			return nil, err
		}
		if err := u.bookingRepo.Save(tx, booking); err != nil {
			u.log.Warnf("Failed to persist totals for booking %s: %+v", booking.Reference, err)
			return nil, err
		}
	}

	if err := u.auditService.LogBookingAction(tx, &guestID, entity.AuditActionBookingCreate, booking.ID, map[string]interface{}{
		"reference":    booking.Reference,
		"room_id":      room.ID.String(),
		"check_in":     checkIn.Format(dateutil.DateFormat),
		"check_out":    checkOut.Format(dateutil.DateFormat),
		"total_amount": totalAmount.StringFixed(2),
	}); err != nil {
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.InvalidateRoom(ctx, room.ID)

	u.log.Infof("Booking created: reference=%s, room=%s, nights=%d, total=%s, status=%s",
		booking.Reference, room.RoomNumber, nights, totalAmount.StringFixed(2), booking.Status)

	// Return the committed row, not the in-memory accumulation.
	full, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		resp := converter.BookingToResponse(booking)
		resp.Warning = warning
		return resp, nil
	}

	resp := converter.BookingToResponse(full)
	resp.Warning = warning
	return resp, nil
}

// resolveRoom locks and returns the booking target: either the requested
// room, or the first free room of the requested type at the branch.
func (u *bookingUsecase) resolveRoom(tx *gorm.DB, req *dto.CreateBookingRequest, checkIn, checkOut time.Time) (*entity.Room, error) {
	if req.RoomID != nil {
		room, err := u.roomRepo.FindByIDForUpdate(tx, *req.RoomID)
		if err != nil {
			u.log.Warnf("Failed to find room %s: %+v", *req.RoomID, err)
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}
		return room, nil
	}

	if req.BranchID == nil {
		return nil, ErrBranchRequired
	}
	room, err := u.roomRepo.FindAvailableByTypeForUpdate(tx, *req.RoomTypeID, *req.BranchID, checkIn, checkOut)
	if err != nil {
		u.log.Warnf("Failed to find free room of type %s: %+v", *req.RoomTypeID, err)
		return nil, err
	}
	if room == nil {
		return nil, &RoomUnavailableError{}
	}
	return room, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if err := requireOwnershipOrStaff(ctx, booking); err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// GetMyBookings returns all bookings for the logged-in guest
func (u *bookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	guestID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	bookings, err := u.bookingRepo.FindByGuestID(u.db.WithContext(ctx), guestID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for guest %s: %+v", guestID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// AddServiceCharge appends a post-booking charge and retotals from the
// ledgers. Adding a charge never demotes a confirmed booking.
func (u *bookingUsecase) AddServiceCharge(ctx context.Context, bookingID uuid.UUID, req *dto.AddServiceChargeRequest) (*dto.BookingResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
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
	if err := requireOwnershipOrStaff(ctx, booking); err != nil {
		return nil, err
	}
	if !booking.IsModifiable() {
		return nil, ErrBookingNotModifiable
	}

	charge := &entity.ServiceCharge{
		BookingID:   booking.ID,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := u.chargeRepo.Create(tx, charge); err != nil {
		u.log.Warnf("Failed to add service charge to booking %s: %+v", booking.Reference, err)
		return nil, err
	}

	if err := applyLedgerTotals(tx, booking, u.paymentRepo, u.chargeRepo); err != nil {
		return nil, err
	}
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to persist totals for booking %s: %+v", booking.Reference, err)
		return nil, err
	}

	if err := u.auditService.LogBookingAction(tx, &actorID, entity.AuditActionServiceAdd, booking.ID, map[string]interface{}{
		"description": req.Description,
		"amount":      req.Amount.StringFixed(2),
	}); err != nil {
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}
	return converter.BookingToResponse(full), nil
}

// RemoveServiceCharge drops a charge and retotals.
func (u *bookingUsecase) RemoveServiceCharge(ctx context.Context, bookingID, chargeID uuid.UUID) (*dto.BookingResponse, error) {
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
	if err := requireOwnershipOrStaff(ctx, booking); err != nil {
		return nil, err
	}
	if !booking.IsModifiable() {
		return nil, ErrBookingNotModifiable
	}

	rows, err := u.chargeRepo.Delete(tx, chargeID, booking.ID)
	if err != nil {
		u.log.Warnf("Failed to remove service charge %s: %+v", chargeID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrServiceChargeNotFound
	}

	if err := applyLedgerTotals(tx, booking, u.paymentRepo, u.chargeRepo); err != nil {
		return nil, err
	}
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to persist totals for booking %s: %+v", booking.Reference, err)
		return nil, err
	}

	if err := u.auditService.LogBookingAction(tx, &actorID, entity.AuditActionServiceRemove, booking.ID, map[string]interface{}{
		"service_charge_id": chargeID.String(),
	}); err != nil {
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}
	return converter.BookingToResponse(full), nil
}

// requireOwnershipOrStaff lets guests act only on their own bookings; staff
// and admin callers pass through.
func requireOwnershipOrStaff(ctx context.Context, booking *entity.Booking) error {
	role, _ := middleware.GetRoleFromContext(ctx)
	if role == entity.RoleStaff || role == entity.RoleAdmin {
		return nil
	}
	guestID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok || booking.GuestID != guestID {
		return ErrBookingNotOwned
	}
	return nil
}
