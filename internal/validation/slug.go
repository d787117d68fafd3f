// Package validation holds request-level validation rules.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// reservedSlugs are path segments the router claims for itself. A derived
// slug equal to one of these would shadow a route (e.g. GET /posts/create/),
// so creates and renames producing them are rejected.
var reservedSlugs = map[string]struct{}{
	"create":   {},
	"list":     {},
	"author":   {},
	"search":   {},
	"comments": {},
	"tags":     {},
	"media":    {},
	"like":     {},
}

// ValidateSlug checks a derived slug for emptiness, length and reserved names.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("name must contain at least one letter or digit")
	}
	if utf8.RuneCountInString(slug) < 2 {
		return fmt.Errorf("slug must be at least 2 characters")
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}
	if _, exists := reservedSlugs[slug]; exists {
		return fmt.Errorf("slug %q is reserved", slug)
	}
	return nil
}
