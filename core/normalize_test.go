package core

import (
	"testing"

	"github.com/mfluker/aod-onboarding-pdf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Table(t *testing.T) {
	// GIVEN: table-driven inputs/outputs
	tests := []struct {
		name     string
		first    string
		last     string
		greeting string
		email    string
		username string
	}{
		{"plain", "anna", "smith", "Anna,", "asmith", "anna.smith"},
		{"hyphenated-first", "mary-jane", "doe", "Mary-Jane,", "mdoe", "maryjane.doe"},
		{"apostrophe-last", "John", "O'Brien", "John,", "jobrien", "john.obrien"},
		{"already-capitalized", "Mat", "Fluker", "Mat,", "mfluker", "mat.fluker"},
		{"surrounding-spaces", "  anna ", " smith  ", "Anna,", "asmith", "anna.smith"},
		{"spaced-last", "anna", "van dyke", "Anna,", "avandyke", "anna.vandyke"},
		{"digits-kept", "anna2", "smith", "Anna2,", "a2smith", "anna2.smith"},
	}

	// WHEN/THEN: loop & assert
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			id, err := Normalize(tc.first, tc.last)
			require.NoError(t, err)
			assert.Equal(t, tc.greeting, id.Greeting)
			assert.Equal(t, tc.email, id.EmailLocal)
			assert.Equal(t, tc.username, id.Username)
		})
	}
}

func TestNormalize_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{"empty-last", "anna", ""},
		{"empty-first", "", "smith"},
		{"spaces-only-last", "anna", "   "},
		{"no-alphanumerics", "---", "smith"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.first, tc.last)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	a, err := Normalize("mary-jane", "O'Brien")
	require.NoError(t, err)
	b, err := Normalize("mary-jane", "O'Brien")
	require.NoError(t, err)
	assert.Equal(t, a, b) // identical input, identical output
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "designer-anna_smith-onboarding.pdf",
		Filename(models.RoleDesigner, "anna", "smith"))
	assert.Equal(t, "installer-mat_fluker-onboarding.pdf",
		Filename(models.RoleInstaller, "Mat", "Fluker"))
	// stripping applies to both parts
	assert.Equal(t, "designer-maryjane_obrien-onboarding.pdf",
		Filename(models.RoleDesigner, "mary-jane", "O'Brien"))
}

func TestCleanLower(t *testing.T) {
	assert.Equal(t, "obriensmith", CleanLower("O'Brien-Smith"))
	assert.Equal(t, "", CleanLower("  --' "))
	assert.Equal(t, "ren", CleanLower("René")) // accented rune dropped, ASCII kept
}
