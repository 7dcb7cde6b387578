// utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug turns a salon name into a URL-safe slug. Danish letters are
// transliterated before everything non-alphanumeric collapses to hyphens.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, "æ", "ae")
	slug = strings.ReplaceAll(slug, "ø", "oe")
	slug = strings.ReplaceAll(slug, "å", "aa")
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
