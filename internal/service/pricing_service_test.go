package service

import (
	"testing"

	"go-hotel-booking/config"
	"go-hotel-booking/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newTestPricing() *PricingService {
	return NewPricingService(config.BookingConfig{ReservationFeePercent: 20})
}

func TestBaseAmount(t *testing.T) {
	pricing := newTestPricing()

	tests := []struct {
		name    string
		nightly string
		nights  int
		want    string
	}{
		{name: "three nights at 100", nightly: "100.00", nights: 3, want: "300.00"},
		{name: "single night", nightly: "89.50", nights: 1, want: "89.50"},
		{name: "rounds to cents", nightly: "33.335", nights: 3, want: "100.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.BaseAmount(decimal.RequireFromString(tt.nightly), tt.nights)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInitialPayment(t *testing.T) {
	pricing := newTestPricing()
	base := decimal.RequireFromString("300.00")
	total := decimal.RequireFromString("300.00")

	tests := []struct {
		name   string
		option entity.PaymentOption
		want   string
	}{
		{name: "full settles everything up front", option: entity.PaymentOptionFull, want: "300.00"},
		{name: "reservation fee is 20 percent of base", option: entity.PaymentOptionReservationFee, want: "60.00"},
		{name: "pay later collects nothing", option: entity.PaymentOptionPayLater, want: "0"},
		{name: "unknown option defaults to pay later", option: entity.PaymentOption("installments"), want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.InitialPayment(tt.option, base, total)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInitialPaymentNeverExceedsTotal(t *testing.T) {
	// 100% fee configured: the fee equals the base, and clamping still
	// bounds it by the total.
	pricing := NewPricingService(config.BookingConfig{ReservationFeePercent: 100})
	base := decimal.RequireFromString("300.00")
	total := decimal.RequireFromString("250.00")

	got := pricing.InitialPayment(entity.PaymentOptionReservationFee, base, total)
	if !got.Equal(total) {
		t.Errorf("got %s, want clamp to %s", got, total)
	}
}

func TestClampAmount(t *testing.T) {
	limit := decimal.RequireFromString("100.00")

	if got := ClampAmount(decimal.RequireFromString("-5"), limit); !got.IsZero() {
		t.Errorf("negative amount: got %s, want 0", got)
	}
	if got := ClampAmount(decimal.RequireFromString("150"), limit); !got.Equal(limit) {
		t.Errorf("excess amount: got %s, want %s", got, limit)
	}
	if got := ClampAmount(decimal.RequireFromString("42.42"), limit); !got.Equal(decimal.RequireFromString("42.42")) {
		t.Errorf("in-range amount changed: got %s", got)
	}
}
