package env

import "strings"

const (
	maskRune   = "•"
	maskLength = 8
	maskKeep   = 4
)

// MaskSecret renders a secret for display. Secrets of eight characters or
// fewer are fully hidden; longer ones keep their first and last four.
func MaskSecret(secret string) string {
	runes := []rune(secret)
	if len(runes) <= maskLength {
		return strings.Repeat(maskRune, maskLength)
	}

	return string(runes[:maskKeep]) + strings.Repeat(maskRune, maskLength) + string(runes[len(runes)-maskKeep:])
}
