package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRuns     = regexp.MustCompile(`-{2,}`)

	// SlugPattern is the canonical shape of a public menu slug.
	SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Slugify converts a restaurant name into a URL-safe slug. Accented
// characters are folded to ASCII before invalid runes are stripped.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	s := strings.ToLower(strings.TrimSpace(folded))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugDashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "restaurant"
	}
	return s
}

// UniqueSlug appends a short random suffix to a base slug. Callers retry
// with a fresh suffix on collision.
func UniqueSlug(base string) string {
	return fmt.Sprintf("%s-%04d", Slugify(base), rand.Intn(10000))
}

// IsValidSlug reports whether s matches the canonical slug shape.
func IsValidSlug(s string) bool {
	return SlugPattern.MatchString(s)
}
