package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// PaymentOption selects how much of the total a guest settles at creation
type PaymentOption string

const (
	PaymentOptionPayLater       PaymentOption = "pay_later"
	PaymentOptionReservationFee PaymentOption = "reservation_fee"
	PaymentOptionFull           PaymentOption = "full"
)

var ErrInvalidStateTransition = errors.New("invalid booking state transition")

// bookingTransitions is the legal transition graph. Cancellation and no-show
// exit only from pending/confirmed; checked-in guests check out instead.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCheckedIn, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusCheckedIn: {BookingStatusCheckedOut},
}

// Booking represents a room reservation. Money columns are snapshots taken
// at creation time: NightlyPrice is the room-type price at booking, and
// BaseAmount never changes afterwards even if the room type is repriced.
type Booking struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Reference       string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference"`
	GuestID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"guest_id"`
	RoomID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"room_id"`
	CheckInDate     time.Time       `gorm:"type:date;not null;index" json:"check_in_date"`
	CheckOutDate    time.Time       `gorm:"type:date;not null" json:"check_out_date"`
	GuestCount      int             `gorm:"not null;default:1" json:"guest_count"`
	SpecialRequests string          `gorm:"type:text" json:"special_requests,omitempty"`
	NightlyPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"nightly_price"`
	Nights          int             `gorm:"not null" json:"nights"`
	BaseAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_amount"`
	ServicesAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"services_amount"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"paid_amount"`
	Status          BookingStatus   `gorm:"type:booking_status;not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Room     Room            `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Payments []Payment       `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
	Services []ServiceCharge `gorm:"foreignKey:BookingID" json:"services,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// OutstandingAmount is always derived, never stored.
func (b *Booking) OutstandingAmount() decimal.Decimal {
	return b.TotalAmount.Sub(b.PaidAmount)
}

// IsFullyPaid reports whether the completed-payment sum covers the total.
func (b *Booking) IsFullyPaid() bool {
	return b.PaidAmount.GreaterThanOrEqual(b.TotalAmount)
}

// IsActive reports whether the booking still occupies its room for the
// date range. Cancelled, checked-out and no-show bookings do not.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingStatusCancelled, BookingStatusCheckedOut, BookingStatusNoShow:
		return false
	}
	return true
}

// IsPayable reports whether the ledger accepts payments for this booking.
func (b *Booking) IsPayable() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusNoShow
}

// IsModifiable reports whether service charges may still be added.
func (b *Booking) IsModifiable() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions exist.
func (b *Booking) IsTerminal() bool {
	return len(bookingTransitions[b.Status]) == 0
}

// CanTransitionTo reports whether the transition graph allows moving to
// target from the current status.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, next := range bookingTransitions[b.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the booking to target or fails without side effects.
func (b *Booking) TransitionTo(target BookingStatus) error {
	if !b.CanTransitionTo(target) {
		return ErrInvalidStateTransition
	}
	b.Status = target
	return nil
}

// OverlapsRange reports whether the booking's stay intersects the half-open
// range [checkIn, checkOut). A stay ending on the day another begins does
// not overlap, so same-day turnover is allowed.
func (b *Booking) OverlapsRange(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}
