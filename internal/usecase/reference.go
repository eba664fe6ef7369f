package usecase

import (
	"crypto/rand"
	"fmt"
	"time"
)

// generateReference builds a short collision-resistant token like
// HB-20250301-3F2A9C. Uniqueness is enforced by the storage layer; callers
// retry once on collision.
func generateReference(prefix string) string {
	dateStr := time.Now().UTC().Format("20060102")
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s-%s-%06X", prefix, dateStr, randomBytes)
}

func generateBookingReference() string {
	return generateReference("HB")
}

func generatePaymentReference() string {
	return generateReference("PAY")
}
