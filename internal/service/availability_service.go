package service

import (
	"time"

	"go-hotel-booking/internal/domain/entity"
	"go-hotel-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityResult reports whether a room is free for a date range and,
// when it is not, which bookings are in the way.
type AvailabilityResult struct {
	Available bool
	Conflicts []entity.Booking
}

// AvailabilityService answers "is this room free for these dates". The
// reservation set is the only source of truth; the room's operational
// status is never consulted.
//
// A check outside a booking transaction is advisory only. The authoritative
// check runs inside the creating transaction, after the room row is locked.
type AvailabilityService struct {
	bookingRepo repository.BookingRepository
}

func NewAvailabilityService(bookingRepo repository.BookingRepository) *AvailabilityService {
	return &AvailabilityService{bookingRepo: bookingRepo}
}

func (s *AvailabilityService) Check(db *gorm.DB, roomID uuid.UUID, checkIn, checkOut time.Time, excludeBookingID *uuid.UUID) (*AvailabilityResult, error) {
	conflicts, err := s.bookingRepo.FindConflicts(db, roomID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return nil, err
	}
	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
