package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCheckedIn, false},
		{BookingStatusPending, BookingStatusNoShow, false},
		{BookingStatusConfirmed, BookingStatusCheckedIn, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusNoShow, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{BookingStatusCheckedIn, BookingStatusCancelled, false},
		{BookingStatusCheckedOut, BookingStatusCheckedIn, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusNoShow, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.from}
		if got := b.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestTransitionTo(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}

	if err := b.TransitionTo(BookingStatusConfirmed); err != nil {
		t.Fatalf("pending -> confirmed: %v", err)
	}
	if b.Status != BookingStatusConfirmed {
		t.Fatalf("status not updated, got %s", b.Status)
	}

	if err := b.TransitionTo(BookingStatusNoShow); err != nil {
		t.Fatalf("confirmed -> no_show: %v", err)
	}

	// Terminal: no further transitions, and a failed attempt must not
	// mutate the status.
	if err := b.TransitionTo(BookingStatusConfirmed); err != ErrInvalidStateTransition {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
	if b.Status != BookingStatusNoShow {
		t.Errorf("failed transition mutated status to %s", b.Status)
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []BookingStatus{BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusNoShow}
	for _, status := range terminal {
		b := &Booking{Status: status}
		if !b.IsTerminal() {
			t.Errorf("%s should be terminal", status)
		}
	}

	active := []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn}
	for _, status := range active {
		b := &Booking{Status: status}
		if b.IsTerminal() {
			t.Errorf("%s should not be terminal", status)
		}
	}
}

func TestOverlapsRange(t *testing.T) {
	booking := &Booking{
		CheckInDate:  date(t, "2026-03-10"),
		CheckOutDate: date(t, "2026-03-13"),
	}

	tests := []struct {
		name    string
		in, out string
		want    bool
	}{
		{name: "identical range", in: "2026-03-10", out: "2026-03-13", want: true},
		{name: "contained inside", in: "2026-03-11", out: "2026-03-12", want: true},
		{name: "containing", in: "2026-03-09", out: "2026-03-14", want: true},
		{name: "overlap at start", in: "2026-03-08", out: "2026-03-11", want: true},
		{name: "overlap at end", in: "2026-03-12", out: "2026-03-15", want: true},
		// Half-open ranges: checkout day is free for a new arrival.
		{name: "back to back after", in: "2026-03-13", out: "2026-03-15", want: false},
		{name: "back to back before", in: "2026-03-08", out: "2026-03-10", want: false},
		{name: "disjoint", in: "2026-03-20", out: "2026-03-22", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.OverlapsRange(date(t, tt.in), date(t, tt.out))
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutstandingAmount(t *testing.T) {
	b := &Booking{
		TotalAmount: decimal.RequireFromString("300.00"),
		PaidAmount:  decimal.RequireFromString("60.00"),
	}

	if got := b.OutstandingAmount(); !got.Equal(decimal.RequireFromString("240.00")) {
		t.Errorf("outstanding: got %s, want 240.00", got)
	}
	if b.IsFullyPaid() {
		t.Error("booking with balance reported as fully paid")
	}

	b.PaidAmount = decimal.RequireFromString("300.00")
	if !b.OutstandingAmount().IsZero() {
		t.Errorf("outstanding should be zero, got %s", b.OutstandingAmount())
	}
	if !b.IsFullyPaid() {
		t.Error("settled booking not reported as fully paid")
	}
}

func TestLedgerStatusPredicates(t *testing.T) {
	tests := []struct {
		status     BookingStatus
		payable    bool
		modifiable bool
		active     bool
	}{
		{BookingStatusPending, true, true, true},
		{BookingStatusConfirmed, true, true, true},
		{BookingStatusCheckedIn, true, true, true},
		{BookingStatusCheckedOut, true, false, false},
		{BookingStatusCancelled, false, false, false},
		{BookingStatusNoShow, false, false, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		if got := b.IsPayable(); got != tt.payable {
			t.Errorf("%s payable: got %v, want %v", tt.status, got, tt.payable)
		}
		if got := b.IsModifiable(); got != tt.modifiable {
			t.Errorf("%s modifiable: got %v, want %v", tt.status, got, tt.modifiable)
		}
		if got := b.IsActive(); got != tt.active {
			t.Errorf("%s active: got %v, want %v", tt.status, got, tt.active)
		}
	}
}
