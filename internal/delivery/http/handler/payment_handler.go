package handler

import (
	"encoding/json"
	"net/http"

	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/usecase"
	"go-hotel-booking/pkg/response"
	"go-hotel-booking/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.RecordPayment(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		case usecase.ErrInvalidAmount:
			response.Fail(w, http.StatusBadRequest, "validation_error", "Amount must be greater than zero", nil)
		case usecase.ErrPaymentExceedsOutstanding:
			response.Fail(w, http.StatusBadRequest, "payment_exceeds_outstanding", "Payment amount exceeds the outstanding balance", nil)
		case usecase.ErrBookingNotPayable:
			response.Fail(w, http.StatusConflict, "booking_not_payable", "Booking does not accept payments in its current status", nil)
		default:
			response.InternalServerError(w, "Failed to record payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", payment)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	payments, err := h.paymentUsecase.ListPayments(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get payments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

// RecomputeTotals re-derives a booking's money fields from the payment and
// service charge ledgers. Staff-only reconciliation endpoint.
func (h *PaymentHandler) RecomputeTotals(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	totals, err := h.paymentUsecase.RecomputeTotals(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to recompute totals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking totals recomputed successfully", totals)
}
