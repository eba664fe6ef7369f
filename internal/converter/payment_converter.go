package converter

import (
	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		Reference:     payment.Reference,
		Amount:        payment.Amount,
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		resp := PaymentToResponse(&payment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// BookingToTotalsResponse projects the ledger-derived totals of a booking.
func BookingToTotalsResponse(booking *entity.Booking) *dto.BookingTotalsResponse {
	if booking == nil {
		return nil
	}
	return &dto.BookingTotalsResponse{
		PaidAmount:        booking.PaidAmount,
		OutstandingAmount: booking.OutstandingAmount(),
		TotalAmount:       booking.TotalAmount,
		Status:            string(booking.Status),
	}
}
