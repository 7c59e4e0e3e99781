package utils

import (
	"strings"
)

// MaskSecret masks a credential for display
// Example: sk-abcdef1234567890 -> •••••••••••••••7890
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	runes := []rune(secret)

	// Short values give away too much with a visible suffix
	if len(runes) <= 8 {
		return strings.Repeat("•", len(runes))
	}

	return strings.Repeat("•", len(runes)-4) + string(runes[len(runes)-4:])
}
