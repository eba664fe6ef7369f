package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomStatus is the operational status shown to staff. It is advisory only:
// booking conflicts are decided by the reservation set, never by this field.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
)

// Room represents a physical unit in a branch
type Room struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoomNumber string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number"`
	RoomTypeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"room_type_id"`
	BranchID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"branch_id"`
	Status     RoomStatus `gorm:"type:room_status;not null;default:'available'" json:"status"`
	Floor      string     `gorm:"type:varchar(10)" json:"floor,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	Branch   Branch   `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
