// Package sanitize strips markup from user-supplied form fields before
// they are forwarded to the backend.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes all HTML; form fields are plain text by contract.
var strict = bluemonday.StrictPolicy()

// Field cleans a single free-text form value: markup removed,
// surrounding whitespace trimmed.
func Field(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
