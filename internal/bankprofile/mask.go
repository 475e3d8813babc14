package bankprofile

import (
	"strings"
	"unicode/utf8"
)

const visibleAccountDigits = 4

// MaskAccountNumber keeps the last four characters: "0012345678" -> "****5678".
func MaskAccountNumber(accountNumber string) string {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return ""
	}
	runes := []rune(accountNumber)
	if utf8.RuneCountInString(accountNumber) <= visibleAccountDigits {
		return strings.Repeat("*", len(runes))
	}
	return "****" + string(runes[len(runes)-visibleAccountDigits:])
}
