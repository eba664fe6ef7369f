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

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Preload("RoomType").Preload("Branch").
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.Preload("RoomType").Preload("Branch").Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate takes a row lock on the room. Concurrent booking
// transactions for the same room queue here, so the availability check that
// follows sees every committed booking.
func (r *roomRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// RoomType cannot be preloaded under FOR UPDATE (the lock would spread
	// to the joined table), so fetch it separately.
	if err := db.Where("id = ?", room.RoomTypeID).First(&room.RoomType).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAvailableByTypeForUpdate(db *gorm.DB, roomTypeID, branchID uuid.UUID, checkIn, checkOut time.Time) (*entity.Room, error) {
	var room entity.Room
	err := db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "rooms"}}).
		Where("room_type_id = ? AND branch_id = ?", roomTypeID, branchID).
		Where(`NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE bookings.room_id = rooms.id
			  AND bookings.status NOT IN ?
			  AND bookings.check_in_date < ?
			  AND bookings.check_out_date > ?
		)`, inactiveStatuses(), checkOut, checkIn).
		Order("room_number ASC").
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := db.Where("id = ?", room.RoomTypeID).First(&room.RoomType).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.RoomStatus) error {
	return db.Model(&entity.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}
