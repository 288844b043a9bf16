package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Spice Garden", "spice-garden"},
		{"accented characters folded", "Café Müller", "cafe-muller"},
		{"punctuation stripped", "Joe's Pizza & Grill!", "joes-pizza-grill"},
		{"dash runs collapsed", "a  --  b", "a-b"},
		{"leading and trailing dashes trimmed", " -tandoor- ", "tandoor"},
		{"empty input falls back", "!!!", "restaurant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestUniqueSlug_MatchesCanonicalShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		slug := UniqueSlug("Café Müller")
		assert.True(t, IsValidSlug(slug), "slug %q should be valid", slug)
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("spice-garden-42"))
	assert.False(t, IsValidSlug("Spice Garden"))
	assert.False(t, IsValidSlug("spice_garden"))
	assert.False(t, IsValidSlug(""))
}
