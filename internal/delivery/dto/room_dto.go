package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type RoomTypeResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
	MaxOccupancy int             `json:"max_occupancy"`
}

type RoomResponse struct {
	ID         uuid.UUID         `json:"id"`
	RoomNumber string            `json:"room_number"`
	Status     string            `json:"status"`
	Floor      string            `json:"floor,omitempty"`
	BranchID   uuid.UUID         `json:"branch_id"`
	RoomType   *RoomTypeResponse `json:"room_type,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

// RoomAvailabilityResponse answers the browse-path availability lookup.
// The authoritative check still reruns inside the booking transaction.
type RoomAvailabilityResponse struct {
	RoomID       uuid.UUID         `json:"room_id"`
	CheckInDate  string            `json:"check_in_date"`
	CheckOutDate string            `json:"check_out_date"`
	Available    bool              `json:"available"`
	Conflicts    []BookingConflict `json:"conflicts,omitempty"`
}
