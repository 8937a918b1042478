// Place for pure domain logic.
// Name normalization rules live here so they stay framework-free and
// trivially testable: no HTTP, no filesystem, no converter.

package core

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mfluker/aod-onboarding-pdf/models"
)

// Normalize derives greeting / email local part / username from a raw
// first and last name. Deterministic: same input, same output, always.
func Normalize(firstName, lastName string) (models.Identity, error) {
	first := strings.TrimSpace(firstName) // clean user input before any rule runs
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return models.Identity{}, fmt.Errorf("%w: first and last name are required", models.ErrInvalidInput)
	}

	// Strip both names down to lowercase ASCII alphanumerics. This removes
	// spaces, hyphens, apostrophes and accented-character remnants, e.g.
	// "O'Brien" -> "obrien".
	firstClean := CleanLower(first)
	lastClean := CleanLower(last)
	if firstClean == "" || lastClean == "" {
		return models.Identity{}, fmt.Errorf("%w: names must contain at least one alphanumeric character", models.ErrInvalidInput)
	}

	return models.Identity{
		Greeting:   titleCase(first) + ",",       // "mary-jane" -> "Mary-Jane,"
		EmailLocal: firstClean[:1] + lastClean,   // "John O'Brien" -> "jobrien"
		Username:   firstClean + "." + lastClean, // "John O'Brien" -> "john.obrien"
	}, nil
}

// Filename builds the download name: {role}-{first}_{last}-onboarding.pdf
// Both name parts go through the same stripping rule as the email local
// part, so the filename is always safe for Content-Disposition.
func Filename(role models.Role, firstName, lastName string) string {
	return fmt.Sprintf("%s-%s_%s-onboarding.pdf", role, CleanLower(firstName), CleanLower(lastName))
}

// CleanLower lowercases s and drops every rune that is not a lowercase
// ASCII letter or digit.
func CleanLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// titleCase capitalizes the first letter of every hyphen- or space-
// separated segment and lowercases the rest, so "mary-jane" becomes
// "Mary-Jane". Any non-letter starts a new segment.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r)) // segment start
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
