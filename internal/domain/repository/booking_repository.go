package repository

import (
	"time"

	"go-hotel-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	Save(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate locks the booking row so concurrent payments and
	// service additions retotal one at a time.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error)
	// FindConflicts returns active bookings for the room whose date range
	// intersects the half-open range [checkIn, checkOut). excludeID skips a
	// booking when rechecking availability for an amendment.
	FindConflicts(db *gorm.DB, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) ([]entity.Booking, error)
	// UpdateStatus moves a booking from one status to another only if it is
	// still in the expected status. Returns affected rows: 0 means a
	// concurrent transition won.
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error)
}
