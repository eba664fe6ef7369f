package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateBookingRequest books a specific room, or any free room of a type at
// a branch when room_id is omitted.
type CreateBookingRequest struct {
	RoomID          *uuid.UUID `json:"room_id,omitempty" validate:"required_without=RoomTypeID"`
	RoomTypeID      *uuid.UUID `json:"room_type_id,omitempty" validate:"required_without=RoomID"`
	BranchID        *uuid.UUID `json:"branch_id,omitempty"`
	CheckInDate     string     `json:"check_in_date" validate:"required"`
	CheckOutDate    string     `json:"check_out_date" validate:"required"`
	GuestCount      int        `json:"guest_count" validate:"required,min=1"`
	SpecialRequests string     `json:"special_requests" validate:"omitempty,max=1000"`
	PaymentOption   string     `json:"payment_option" validate:"required,oneof=pay_later reservation_fee full"`
	PaymentMethod   string     `json:"payment_method" validate:"omitempty,oneof=cash card bank_transfer"`
}

type AddServiceChargeRequest struct {
	Description string          `json:"description" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

// Response DTOs

type BookingResponse struct {
	ID                uuid.UUID               `json:"id"`
	Reference         string                  `json:"reference"`
	GuestID           uuid.UUID               `json:"guest_id"`
	RoomID            uuid.UUID               `json:"room_id"`
	Room              *RoomResponse           `json:"room,omitempty"`
	CheckInDate       string                  `json:"check_in_date"`
	CheckOutDate      string                  `json:"check_out_date"`
	Nights            int                     `json:"nights"`
	GuestCount        int                     `json:"guest_count"`
	SpecialRequests   string                  `json:"special_requests,omitempty"`
	NightlyPrice      decimal.Decimal         `json:"nightly_price"`
	BaseAmount        decimal.Decimal         `json:"base_amount"`
	ServicesAmount    decimal.Decimal         `json:"services_amount"`
	TotalAmount       decimal.Decimal         `json:"total_amount"`
	PaidAmount        decimal.Decimal         `json:"paid_amount"`
	OutstandingAmount decimal.Decimal         `json:"outstanding_amount"`
	Status            string                  `json:"status"`
	Payments          []PaymentResponse       `json:"payments,omitempty"`
	Services          []ServiceChargeResponse `json:"services,omitempty"`
	Warning           string                  `json:"warning,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BookingConflict identifies a reservation blocking a requested date range,
// so callers can suggest alternative dates.
type BookingConflict struct {
	Reference    string `json:"reference"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

type ServiceChargeResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
