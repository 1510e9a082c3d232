package utils

import (
	"strings"
)

const (
	maxCardDigits   = 16
	maxExpiryDigits = 4
	maxCVVDigits    = 4
)

// FormatCardNumber masks card input into blocks of 4 digits, capped at 16
// digits (19 characters including spaces). Non-digit input is stripped.
func FormatCardNumber(input string) string {
	digits := keepDigits(input, maxCardDigits)

	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}

	return strings.Join(groups, " ")
}

// FormatExpiry masks expiry input as MM/YY, inserting the slash after two
// digits and capping the result at 5 characters.
func FormatExpiry(input string) string {
	digits := keepDigits(input, maxExpiryDigits)
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV caps CVV input at 4 digits.
func FormatCVV(input string) string {
	return keepDigits(input, maxCVVDigits)
}

func keepDigits(input string, max int) string {
	var b strings.Builder
	for _, r := range input {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}
