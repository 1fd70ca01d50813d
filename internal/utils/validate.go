package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the standard local@domain.tld shape with the RFC length cap.
func ValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	return trimmed != "" && len(trimmed) <= 254 && emailPattern.MatchString(trimmed)
}

// NormalizeEmail trims and lowercases for case-insensitive identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
