package validation

import (
	"regexp"
	"strings"
)

var locationIDRegex = regexp.MustCompile(`^[0-9]+$`)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidLocationID validates an IMS location id
func IsValidLocationID(id string) bool {
	return locationIDRegex.MatchString(strings.TrimSpace(id))
}

// IsOneOf reports whether s is one of allowed
func IsOneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
