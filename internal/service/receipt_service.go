package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Receipt is the payload handed to the receipt pipeline after a completed
// payment.
type Receipt struct {
	BookingReference string
	PaymentReference string
	GuestID          uuid.UUID
	Amount           decimal.Decimal
	Method           string
	IssuedAt         time.Time
}

// ReceiptSender delivers receipts best-effort. Implementations must never
// block the payment path or surface errors into it.
type ReceiptSender interface {
	Send(receipt *Receipt)
}

// logReceiptSender stands in for the mail/PDF pipeline, which lives in a
// separate system. It only records that a receipt was emitted.
type logReceiptSender struct {
	log *logrus.Logger
}

func NewLogReceiptSender(log *logrus.Logger) ReceiptSender {
	return &logReceiptSender{log: log}
}

func (s *logReceiptSender) Send(receipt *Receipt) {
	go func() {
		s.log.Infof("Receipt issued: booking=%s, payment=%s, amount=%s, method=%s",
			receipt.BookingReference, receipt.PaymentReference, receipt.Amount.StringFixed(2), receipt.Method)
	}()
}
