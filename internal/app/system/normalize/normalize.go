// Package normalize canonicalizes user-entered identity fields before
// they are validated or forwarded to the backend.
package normalize

import "strings"

// Email lowercases and trims an email address. The backend matches
// accounts case-insensitively; normalizing here keeps rate-limit keys
// and log lines consistent too.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}
