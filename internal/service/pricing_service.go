package service

import (
	"go-hotel-booking/config"
	"go-hotel-booking/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PricingService derives booking amounts. The nightly price is always the
// caller-supplied snapshot, never re-read from the room type.
type PricingService struct {
	reservationFeePercent decimal.Decimal
}

func NewPricingService(cfg config.BookingConfig) *PricingService {
	return &PricingService{
		reservationFeePercent: decimal.NewFromInt(int64(cfg.ReservationFeePercent)),
	}
}

// BaseAmount computes nightly price x nights, rounded to cents.
func (s *PricingService) BaseAmount(nightlyPrice decimal.Decimal, nights int) decimal.Decimal {
	return nightlyPrice.Mul(decimal.NewFromInt(int64(nights))).Round(2)
}

// InitialPayment resolves a payment option into the amount collected at
// creation. The result is always clamped into [0, total]; a caller-driven
// amount never escapes that range.
func (s *PricingService) InitialPayment(option entity.PaymentOption, baseAmount, totalAmount decimal.Decimal) decimal.Decimal {
	var initial decimal.Decimal
	switch option {
	case entity.PaymentOptionFull:
		initial = totalAmount
	case entity.PaymentOptionReservationFee:
		initial = baseAmount.Mul(s.reservationFeePercent).Div(decimal.NewFromInt(100)).Round(2)
	default: // pay_later
		initial = decimal.Zero
	}
	return ClampAmount(initial, totalAmount)
}

// ClampAmount bounds amount into [0, limit].
func ClampAmount(amount, limit decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(limit) {
		return limit
	}
	return amount
}
