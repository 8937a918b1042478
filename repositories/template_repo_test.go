package repositories

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/mfluker/aod-onboarding-pdf/global"
	"github.com/mfluker/aod-onboarding-pdf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readDocumentXML unzips a docx payload and returns word/document.xml.
func readDocumentXML(t *testing.T, docx []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err, "template must be a valid zip")
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatal("word/document.xml not found in template")
	return ""
}

func TestTemplate_BothRolesEmbedded(t *testing.T) {
	repo := NewTemplateRepository()

	for _, role := range []models.Role{models.RoleDesigner, models.RoleInstaller} {
		role := role
		t.Run(string(role), func(t *testing.T) {
			b, err := repo.Template(role)
			require.NoError(t, err)
			require.NotEmpty(t, b)

			// every template carries all three tokens exactly once
			doc := readDocumentXML(t, b)
			assert.Equal(t, 1, strings.Count(doc, global.TokenGreeting))
			assert.Equal(t, 1, strings.Count(doc, global.TokenEmail))
			assert.Equal(t, 1, strings.Count(doc, global.TokenUsername))
		})
	}
}

func TestTemplate_UnknownRole(t *testing.T) {
	repo := NewTemplateRepository()
	b, err := repo.Template(models.Role("manager"))
	assert.Nil(t, b)
	assert.ErrorIs(t, err, models.ErrTemplateMissing)
}

func TestTemplate_ReturnsCopies(t *testing.T) {
	repo := NewTemplateRepository()
	a, err := repo.Template(models.RoleDesigner)
	require.NoError(t, err)
	a[0] = 0xFF // mutate our copy

	b, err := repo.Template(models.RoleDesigner)
	require.NoError(t, err)
	assert.NotEqual(t, byte(0xFF), b[0]) // store is unaffected
}
