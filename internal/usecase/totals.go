package usecase

import (
	"go-hotel-booking/internal/domain/entity"
	"go-hotel-booking/internal/domain/repository"

	"gorm.io/gorm"
)

// applyLedgerTotals recomputes the booking's money columns from their
// ledgers: services as the charge sum, paid as the completed-payment sum.
// Values are never incremented in place, so concurrent writers converge to
// the same totals no matter how they interleave. Recomputing twice without
// an intervening entry is a no-op.
//
// Reaching the payment threshold promotes a pending booking to confirmed.
// Promotion is one-way: falling back under the threshold (a service charge
// added after full payment) never demotes.
func applyLedgerTotals(tx *gorm.DB, booking *entity.Booking, paymentRepo repository.PaymentRepository, chargeRepo repository.ServiceChargeRepository) error {
	services, err := chargeRepo.SumByBookingID(tx, booking.ID)
	if err != nil {
		return err
	}
	paid, err := paymentRepo.SumCompletedByBookingID(tx, booking.ID)
	if err != nil {
		return err
	}

	booking.ServicesAmount = services
	booking.TotalAmount = booking.BaseAmount.Add(services)
	booking.PaidAmount = paid
	if booking.Status == entity.BookingStatusPending && booking.IsFullyPaid() {
		booking.Status = entity.BookingStatusConfirmed
	}
	return nil
}
