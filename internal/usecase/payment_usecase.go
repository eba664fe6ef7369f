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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount             = errors.New("payment amount must be greater than zero")
	ErrBookingNotPayable         = errors.New("booking no longer accepts payments")
	ErrPaymentExceedsOutstanding = errors.New("payment exceeds the outstanding balance")
)

type PaymentUsecase interface {
	RecordPayment(ctx context.Context, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	ListPayments(ctx context.Context, bookingID uuid.UUID) (*dto.PaymentListResponse, error)
	RecomputeTotals(ctx context.Context, bookingID uuid.UUID) (*dto.BookingTotalsResponse, error)
}

type paymentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	paymentRepo  repository.PaymentRepository
	chargeRepo   repository.ServiceChargeRepository
	auditService service.AuditService
	receipts     service.ReceiptSender
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	chargeRepo repository.ServiceChargeRepository,
	auditService service.AuditService,
	receipts service.ReceiptSender,
) PaymentUsecase {
	return &paymentUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		chargeRepo:   chargeRepo,
		auditService: auditService,
		receipts:     receipts,
	}
}

// RecordPayment appends a completed ledger entry and retotals the booking.
// The booking row is locked for the duration, so concurrent payments
// serialize and each one sees a ledger sum that includes the others.
func (u *paymentUsecase) RecordPayment(ctx context.Context, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
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
	if !booking.IsPayable() {
		return nil, ErrBookingNotPayable
	}
	if req.Amount.GreaterThan(booking.OutstandingAmount()) {
		return nil, ErrPaymentExceedsOutstanding
	}

	payment := &entity.Payment{
		BookingID:     booking.ID,
		Reference:     generatePaymentReference(),
		Amount:        req.Amount,
		Method:        entity.PaymentMethod(req.Method),
		Status:        entity.PaymentStatusCompleted,
		TransactionID: req.TransactionID,
	}
	if err := u.paymentRepo.Create(tx, payment); err != nil {
		if isDuplicateKeyError(err, "reference") {
			payment.Reference = generatePaymentReference()
			err = u.paymentRepo.Create(tx, payment)
		}
		if err != nil {
			u.log.Warnf("Failed to record payment for booking %s: %+v", booking.Reference, err)
			return nil, err
		}
	}

	previousStatus := booking.Status
	if err := applyLedgerTotals(tx, booking, u.paymentRepo, u.chargeRepo); err != nil {
		u.log.Warnf("Failed to recompute totals for booking %s: %+v", booking.Reference, err)
		return nil, err
	}
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to persist totals for booking %s: %+v", booking.Reference, err)
		return nil, err
	}

	if err := u.auditService.LogBookingAction(tx, &actorID, entity.AuditActionPaymentRecord, booking.ID, map[string]interface{}{
		"payment_reference": payment.Reference,
		"amount":            payment.Amount.StringFixed(2),
		"method":            string(payment.Method),
	}); err != nil {
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if previousStatus != booking.Status {
		u.log.Infof("Booking %s promoted to %s by payment %s", booking.Reference, booking.Status, payment.Reference)
	}

	u.receipts.Send(&service.Receipt{
		BookingReference: booking.Reference,
		PaymentReference: payment.Reference,
		GuestID:          booking.GuestID,
		Amount:           payment.Amount,
		Method:           string(payment.Method),
		IssuedAt:         time.Now().UTC(),
	})

	return &dto.RecordPaymentResponse{
		Payment: *converter.PaymentToResponse(payment),
		Totals:  *converter.BookingToTotalsResponse(booking),
	}, nil
}

func (u *paymentUsecase) ListPayments(ctx context.Context, bookingID uuid.UUID) (*dto.PaymentListResponse, error) {
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

	payments, err := u.paymentRepo.FindByBookingID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to list payments for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

// RecomputeTotals re-derives paid and services sums from the ledgers and
// persists them. Running it twice without an intervening entry yields
// identical results.
func (u *paymentUsecase) RecomputeTotals(ctx context.Context, bookingID uuid.UUID) (*dto.BookingTotalsResponse, error) {
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

	if err := applyLedgerTotals(tx, booking, u.paymentRepo, u.chargeRepo); err != nil {
		u.log.Warnf("Failed to recompute totals for booking %s: %+v", booking.Reference, err)
		return nil, err
	}
	if err := u.bookingRepo.Save(tx, booking); err != nil {
		u.log.Warnf("Failed to persist totals for booking %s: %+v", booking.Reference, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BookingToTotalsResponse(booking), nil
}
