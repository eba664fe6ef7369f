package usecase

import (
	"regexp"
	"testing"
)

func TestGenerateReferenceFormat(t *testing.T) {
	bookingPattern := regexp.MustCompile(`^HB-\d{8}-[0-9A-F]{6}$`)
	paymentPattern := regexp.MustCompile(`^PAY-\d{8}-[0-9A-F]{6}$`)

	if ref := generateBookingReference(); !bookingPattern.MatchString(ref) {
		t.Errorf("booking reference %q does not match expected format", ref)
	}
	if ref := generatePaymentReference(); !paymentPattern.MatchString(ref) {
		t.Errorf("payment reference %q does not match expected format", ref)
	}
}

func TestGenerateReferenceVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[generateBookingReference()] = true
	}
	// 3 random bytes give 16.7M values; 100 draws colliding down to a
	// handful would mean the randomness is broken.
	if len(seen) < 95 {
		t.Errorf("expected ~100 distinct references, got %d", len(seen))
	}
}
