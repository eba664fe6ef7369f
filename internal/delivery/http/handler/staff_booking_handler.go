package handler

import (
	"context"
	"net/http"

	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/domain/entity"
	"go-hotel-booking/internal/usecase"
	"go-hotel-booking/pkg/response"

	"github.com/google/uuid"
)

// StaffBookingHandler exposes the operational side of the status machine:
// confirm, check-in, check-out, no-show, cancel, and the audit trail.
type StaffBookingHandler struct {
	lifecycleUsecase usecase.BookingLifecycleUsecase
}

func NewStaffBookingHandler(lifecycleUsecase usecase.BookingLifecycleUsecase) *StaffBookingHandler {
	return &StaffBookingHandler{lifecycleUsecase: lifecycleUsecase}
}

func (h *StaffBookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.lifecycleUsecase.Confirm, "Booking confirmed successfully")
}

func (h *StaffBookingHandler) CheckInBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.lifecycleUsecase.CheckIn, "Guest checked in successfully")
}

func (h *StaffBookingHandler) CheckOutBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.lifecycleUsecase.CheckOut, "Guest checked out successfully")
}

func (h *StaffBookingHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.lifecycleUsecase.MarkNoShow, "Booking marked as no-show")
}

func (h *StaffBookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.lifecycleUsecase.Cancel, "Booking cancelled successfully")
}

func (h *StaffBookingHandler) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	trail, err := h.lifecycleUsecase.GetAuditTrail(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to get audit trail")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit trail retrieved successfully", trail)
}

func (h *StaffBookingHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error),
	message string,
) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	booking, err := op(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case entity.ErrInvalidStateTransition:
			response.Fail(w, http.StatusConflict, "invalid_state_transition", "Booking cannot make this transition from its current status", nil)
		case usecase.ErrOutstandingBalance:
			response.Fail(w, http.StatusConflict, "outstanding_balance", "Booking has an outstanding balance", nil)
		case usecase.ErrCheckInNotStarted:
			response.Fail(w, http.StatusConflict, "check_in_not_started", "Check-in date has not arrived yet", nil)
		default:
			response.InternalServerError(w, "Failed to update booking status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, booking)
}
