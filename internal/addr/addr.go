// Package addr normalizes player addresses so lookups are case-insensitive.
package addr

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and lowercases the address.
// The result is the key used for profiles, membership and authorization checks.
func Normalize(a string) string {
	// Casers carry state, so a fresh one per call keeps this safe for concurrent use.
	return cases.Lower(language.Und).String(strings.TrimSpace(a))
}

// Equal reports whether two addresses refer to the same player.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
