package converter

import (
	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/domain/entity"
	"go-hotel-booking/pkg/dateutil"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                booking.ID,
		Reference:         booking.Reference,
		GuestID:           booking.GuestID,
		RoomID:            booking.RoomID,
		CheckInDate:       booking.CheckInDate.Format(dateutil.DateFormat),
		CheckOutDate:      booking.CheckOutDate.Format(dateutil.DateFormat),
		Nights:            booking.Nights,
		GuestCount:        booking.GuestCount,
		SpecialRequests:   booking.SpecialRequests,
		NightlyPrice:      booking.NightlyPrice,
		BaseAmount:        booking.BaseAmount,
		ServicesAmount:    booking.ServicesAmount,
		TotalAmount:       booking.TotalAmount,
		PaidAmount:        booking.PaidAmount,
		OutstandingAmount: booking.OutstandingAmount(),
		Status:            string(booking.Status),
		CreatedAt:         booking.CreatedAt,
		UpdatedAt:         booking.UpdatedAt,
	}

	// Include room info if preloaded
	if booking.Room.ID != uuid.Nil {
		response.Room = RoomToResponse(&booking.Room)
	}

	for i := range booking.Payments {
		response.Payments = append(response.Payments, *PaymentToResponse(&booking.Payments[i]))
	}
	for i := range booking.Services {
		response.Services = append(response.Services, *ServiceChargeToResponse(&booking.Services[i]))
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// BookingsToConflicts reduces conflicting bookings to the date ranges a
// caller needs to pick alternatives.
func BookingsToConflicts(bookings []entity.Booking) []dto.BookingConflict {
	conflicts := make([]dto.BookingConflict, len(bookings))
	for i, booking := range bookings {
		conflicts[i] = dto.BookingConflict{
			Reference:    booking.Reference,
			CheckInDate:  booking.CheckInDate.Format(dateutil.DateFormat),
			CheckOutDate: booking.CheckOutDate.Format(dateutil.DateFormat),
		}
	}
	return conflicts
}

// ServiceChargeToResponse converts a ServiceCharge entity to its DTO
func ServiceChargeToResponse(charge *entity.ServiceCharge) *dto.ServiceChargeResponse {
	if charge == nil {
		return nil
	}
	return &dto.ServiceChargeResponse{
		ID:          charge.ID,
		Description: charge.Description,
		Amount:      charge.Amount,
		CreatedAt:   charge.CreatedAt,
	}
}
