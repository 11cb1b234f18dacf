package validate

import (
	"regexp"
	"strings"
)

var usZipRe = regexp.MustCompile(`^\d{5}(?:[-\s]\d{4})?$`)

// IsValidEmail deliberately checks only for the presence of '@'.
// Full RFC 5322 validation rejects addresses that work in practice.
func IsValidEmail(s string) bool {
	return strings.Contains(s, "@")
}

// IsValidUSZipCode accepts five digits, optionally followed by a dash or
// whitespace and a four-digit plus-four extension.
func IsValidUSZipCode(s string) bool {
	return usZipRe.MatchString(s)
}
