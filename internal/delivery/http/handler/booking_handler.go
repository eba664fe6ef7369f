package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/usecase"
	"go-hotel-booking/pkg/dateutil"
	"go-hotel-booking/pkg/response"
	"go-hotel-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		var unavailable *usecase.RoomUnavailableError
		if errors.As(err, &unavailable) {
			response.Fail(w, http.StatusConflict, "room_unavailable",
				"Room is not available for the requested dates",
				map[string]interface{}{"conflicts": unavailable.Conflicts})
			return
		}
		switch err {
		case dateutil.ErrInvalidDate:
			response.Fail(w, http.StatusBadRequest, "validation_error", "Dates must be formatted as YYYY-MM-DD", nil)
		case dateutil.ErrInvalidRange:
			response.Fail(w, http.StatusBadRequest, "validation_error", "Check-out date must be after check-in date", nil)
		case usecase.ErrCheckInPast:
			response.Fail(w, http.StatusBadRequest, "validation_error", "Check-in date cannot be in the past", nil)
		case usecase.ErrBranchRequired:
			response.Fail(w, http.StatusBadRequest, "validation_error", "branch_id is required when booking by room type", nil)
		case usecase.ErrOccupancyExceeded:
			response.Fail(w, http.StatusBadRequest, "occupancy_exceeded", "Guest count exceeds the room's maximum occupancy", nil)
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetMyBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) AddServiceCharge(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	var req dto.AddServiceChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.AddServiceCharge(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		case usecase.ErrInvalidAmount:
			response.Fail(w, http.StatusBadRequest, "validation_error", "Amount must be greater than zero", nil)
		case usecase.ErrBookingNotModifiable:
			response.Fail(w, http.StatusConflict, "booking_not_modifiable", "Booking can no longer be modified", nil)
		default:
			response.InternalServerError(w, "Failed to add service charge")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service charge added successfully", booking)
}

func (h *BookingHandler) RemoveServiceCharge(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	chargeID, err := uuid.Parse(mux.Vars(r)["chargeId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service charge ID", nil)
		return
	}

	booking, err := h.bookingUsecase.RemoveServiceCharge(r.Context(), bookingID, chargeID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrServiceChargeNotFound:
			response.NotFound(w, "Service charge not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		case usecase.ErrBookingNotModifiable:
			response.Fail(w, http.StatusConflict, "booking_not_modifiable", "Booking can no longer be modified", nil)
		default:
			response.InternalServerError(w, "Failed to remove service charge")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service charge removed successfully", booking)
}

func parseBookingID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return uuid.Nil, false
	}
	return bookingID, true
}
