package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewBookingID generates the time-based booking token handed out at
// payment submission, e.g. "TK1735689600000".
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("TK%d", now.UnixMilli())
}

// GenerateCode returns n random bytes as an upper-case hex string.
func GenerateCode(n int) (string, error) {
	// Make a slice of n random bytes.
	byt := make([]byte, n)

	// Read into the slice.
	if _, err := rand.Read(byt); err != nil {
		return "", err
	}

	// Return the hexadecimal string.
	return strings.ToUpper(hex.EncodeToString(byt)), nil
}
