package repository

import (
	"time"

	"go-hotel-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository interface {
	FindAll(db *gorm.DB) ([]entity.Room, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	// FindByIDForUpdate locks the room row for the duration of the calling
	// transaction, serializing concurrent bookings of the same room.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	// FindAvailableByTypeForUpdate picks one room of the given type at the
	// branch with no active booking overlapping [checkIn, checkOut), locked
	// for update. Returns nil when every matching room is taken.
	FindAvailableByTypeForUpdate(db *gorm.DB, roomTypeID, branchID uuid.UUID, checkIn, checkOut time.Time) (*entity.Room, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RoomStatus) error
}
