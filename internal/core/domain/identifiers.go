// internal/core/domain/identifiers.go
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// PhoneNumberWidth is the zero-padded width of a phone number.
	PhoneNumberWidth = 6
	// MaxPhoneNumber is the highest phone number that may be allocated.
	MaxPhoneNumber = 100000

	AccessoryBarcodePrefix = "ACC"
	InvoiceNumberPrefix    = "INV-"
)

// PhoneNumberStep is the outcome of advancing the phone number sequence.
type PhoneNumberStep struct {
	Previous string
	Next     string
	// Reset is set when Previous was not numeric and the sequence restarted at 1.
	Reset bool
}

// NextPhoneNumber derives the number after current. found is false when no
// phone number has been allocated yet.
func NextPhoneNumber(current string, found bool) (PhoneNumberStep, error) {
	step := PhoneNumberStep{Previous: current}

	if !found {
		step.Next = FormatPhoneNumber(1)
		return step, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(current))
	if err != nil || n < 0 {
		step.Next = FormatPhoneNumber(1)
		step.Reset = true
		return step, nil
	}

	if n+1 > MaxPhoneNumber {
		return step, fmt.Errorf("%w: next phone number %d exceeds %d", ErrCapacityExceeded, n+1, MaxPhoneNumber)
	}

	step.Next = FormatPhoneNumber(n + 1)
	return step, nil
}

// FormatPhoneNumber zero-pads n to PhoneNumberWidth digits.
func FormatPhoneNumber(n int) string {
	return fmt.Sprintf("%0*d", PhoneNumberWidth, n)
}

// ValidPhoneNumber reports whether s is a well-formed allocated phone number.
func ValidPhoneNumber(s string) bool {
	if len(s) != PhoneNumberWidth {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= MaxPhoneNumber
}

// FormatAccessoryBarcode builds "ACC" + unix seconds + a 3-digit suffix.
func FormatAccessoryBarcode(at time.Time, suffix int) string {
	return fmt.Sprintf("%s%d%03d", AccessoryBarcodePrefix, at.Unix(), suffix%1000)
}

// FormatInvoiceNumber builds "INV-" + unix seconds + a 4-digit suffix.
func FormatInvoiceNumber(at time.Time, suffix int) string {
	return fmt.Sprintf("%s%d%04d", InvoiceNumberPrefix, at.Unix(), suffix%10000)
}

// NormalizeBarcode trims a caller supplied barcode and checks it is printable
// as Code128.
func NormalizeBarcode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", nil
	}
	if len(code) > 64 {
		return "", fmt.Errorf("%w: barcode longer than 64 characters", ErrInvalidInput)
	}
	for _, r := range code {
		if r < 0x20 || r > 0x7e {
			return "", fmt.Errorf("%w: barcode must be printable ASCII", ErrInvalidInput)
		}
	}
	return code, nil
}
