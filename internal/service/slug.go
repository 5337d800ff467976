package service

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeName derives the organization slug from a display name.
// Runs of characters outside [a-z0-9] collapse to a single underscore; the result is idempotent.
func NormalizeName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "_")
	return strings.Trim(slug, "_")
}
