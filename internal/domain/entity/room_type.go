package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomType carries the nightly base price and occupancy cap. The price is
// copied into bookings at creation time; repricing a room type never
// retroactively alters existing bookings.
type RoomType struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	NightlyPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"nightly_price"`
	MaxOccupancy int             `gorm:"not null;default:1" json:"max_occupancy"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RoomType) TableName() string {
	return "room_types"
}
