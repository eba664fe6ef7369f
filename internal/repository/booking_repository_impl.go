package repository

import (
	"errors"
	"time"

	"go-hotel-booking/internal/domain/entity"
	domainRepo "go-hotel-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

// inactiveStatuses lists the statuses that release a room's date range.
func inactiveStatuses() []entity.BookingStatus {
	return []entity.BookingStatus{
		entity.BookingStatusCancelled,
		entity.BookingStatusCheckedOut,
		entity.BookingStatusNoShow,
	}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) Save(db *gorm.DB, booking *entity.Booking) error {
	return db.Save(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Room.RoomType").Preload("Payments").Preload("Services").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Room.RoomType").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindConflicts runs the overlap test over active bookings only. Ranges are
// half-open: an existing checkout on the candidate's check-in day is not a
// conflict.
func (r *bookingRepository) FindConflicts(db *gorm.DB, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) ([]entity.Booking, error) {
	query := db.
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", inactiveStatuses()).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var conflicts []entity.Booking
	err := query.Order("check_in_date ASC").Find(&conflicts).Error
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

// UpdateStatus applies a guarded transition. The WHERE on the current status
// makes concurrent transitions race-safe: the loser sees 0 affected rows.
func (r *bookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
