package usecase

import (
	"testing"

	"go-hotel-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakePaymentLedger reports a fixed completed-payment sum.
type fakePaymentLedger struct {
	paid decimal.Decimal
}

func (f *fakePaymentLedger) Create(db *gorm.DB, payment *entity.Payment) error {
	return nil
}

func (f *fakePaymentLedger) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentLedger) SumCompletedByBookingID(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error) {
	return f.paid, nil
}

// fakeChargeLedger reports a fixed service charge sum.
type fakeChargeLedger struct {
	services decimal.Decimal
}

func (f *fakeChargeLedger) Create(db *gorm.DB, charge *entity.ServiceCharge) error {
	return nil
}

func (f *fakeChargeLedger) SumByBookingID(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error) {
	return f.services, nil
}

func (f *fakeChargeLedger) Delete(db *gorm.DB, id, bookingID uuid.UUID) (int64, error) {
	return 1, nil
}

func retotal(t *testing.T, booking *entity.Booking, paid, services string) {
	t.Helper()
	err := applyLedgerTotals(nil, booking,
		&fakePaymentLedger{paid: decimal.RequireFromString(paid)},
		&fakeChargeLedger{services: decimal.RequireFromString(services)},
	)
	if err != nil {
		t.Fatalf("applyLedgerTotals: %v", err)
	}
}

// A pending booking whose payment ledger is empty must stay pending with the
// full amount outstanding. This is the shape a booking commits in when its
// initial payment could not be recorded.
func TestLedgerTotalsEmptyLedgerStaysPending(t *testing.T) {
	booking := &entity.Booking{
		BaseAmount:  decimal.RequireFromString("300.00"),
		TotalAmount: decimal.RequireFromString("300.00"),
		Status:      entity.BookingStatusPending,
	}

	retotal(t, booking, "0", "0")

	if booking.Status != entity.BookingStatusPending {
		t.Errorf("status: got %s, want pending", booking.Status)
	}
	if !booking.PaidAmount.IsZero() {
		t.Errorf("paid: got %s, want 0", booking.PaidAmount)
	}
	if !booking.OutstandingAmount().Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("outstanding: got %s, want 300.00", booking.OutstandingAmount())
	}
}

func TestLedgerTotalsFullPaymentPromotes(t *testing.T) {
	booking := &entity.Booking{
		BaseAmount:  decimal.RequireFromString("300.00"),
		TotalAmount: decimal.RequireFromString("300.00"),
		Status:      entity.BookingStatusPending,
	}

	retotal(t, booking, "300.00", "0")

	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("status: got %s, want confirmed", booking.Status)
	}
	if !booking.OutstandingAmount().IsZero() {
		t.Errorf("outstanding: got %s, want 0", booking.OutstandingAmount())
	}
}

func TestLedgerTotalsPartialPaymentStaysPending(t *testing.T) {
	booking := &entity.Booking{
		BaseAmount:  decimal.RequireFromString("300.00"),
		TotalAmount: decimal.RequireFromString("300.00"),
		Status:      entity.BookingStatusPending,
	}

	retotal(t, booking, "60.00", "0")

	if booking.Status != entity.BookingStatusPending {
		t.Errorf("status: got %s, want pending", booking.Status)
	}
	if !booking.OutstandingAmount().Equal(decimal.RequireFromString("240.00")) {
		t.Errorf("outstanding: got %s, want 240.00", booking.OutstandingAmount())
	}
}

// A service charge added after full payment reopens the balance but never
// demotes a confirmed booking.
func TestLedgerTotalsChargeAfterFullPaymentNeverDemotes(t *testing.T) {
	booking := &entity.Booking{
		BaseAmount:  decimal.RequireFromString("300.00"),
		TotalAmount: decimal.RequireFromString("300.00"),
		Status:      entity.BookingStatusConfirmed,
	}

	retotal(t, booking, "300.00", "45.00")

	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("status: got %s, want confirmed", booking.Status)
	}
	if !booking.TotalAmount.Equal(decimal.RequireFromString("345.00")) {
		t.Errorf("total: got %s, want 345.00", booking.TotalAmount)
	}
	if !booking.OutstandingAmount().Equal(decimal.RequireFromString("45.00")) {
		t.Errorf("outstanding: got %s, want 45.00", booking.OutstandingAmount())
	}
}
