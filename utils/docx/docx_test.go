package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeDocx builds an in-memory docx-shaped zip from part name -> XML body.
func makeDocx(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// readPart extracts one named entry from a docx payload.
func readPart(t *testing.T, docx []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func body(paragraphs ...string) string {
	return `<w:document><w:body>` + strings.Join(paragraphs, "") + `</w:body></w:document>`
}

var testRepl = map[string]string{
	"{{GREETING}}":        "Anna,",
	"{{GMAIL}}":           "asmith@artofdrawers.com",
	"{{CANVAS_USERNAME}}": "anna.smith",
}

func TestFill_SingleRunTokens(t *testing.T) {
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(
			`<w:p><w:r><w:t>{{GREETING}}</w:t></w:r></w:p>`,
			`<w:p><w:r><w:t>Email: {{GMAIL}} and user: {{CANVAS_USERNAME}}</w:t></w:r></w:p>`,
		),
	})

	out, leftover, err := Fill(doc, testRepl)
	require.NoError(t, err)
	assert.Zero(t, leftover)

	xml := readPart(t, out, "word/document.xml")
	for token := range testRepl {
		assert.NotContains(t, xml, token)
	}
	assert.Contains(t, xml, ">Anna,</w:t>")
	assert.Contains(t, xml, "Email: asmith@artofdrawers.com and user: anna.smith")
}

func TestFill_TokenSplitAcrossRuns(t *testing.T) {
	// Word splitting "{{GREETING}}" into three runs must not defeat matching.
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(
			`<w:p><w:r><w:t>{{GRE</w:t></w:r><w:r><w:t>ETING</w:t></w:r><w:r><w:t>}}</w:t></w:r></w:p>`,
		),
	})

	out, leftover, err := Fill(doc, testRepl)
	require.NoError(t, err)
	assert.Zero(t, leftover)

	xml := readPart(t, out, "word/document.xml")
	assert.NotContains(t, xml, "GREETING")
	assert.Contains(t, xml, `<w:t xml:space="preserve">Anna,</w:t>`)
	assert.Contains(t, xml, `<w:t></w:t>`) // trailing runs emptied, structure kept
}

func TestFill_FirstRunKeepsFormatting(t *testing.T) {
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(
			`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>{{GREETING}}</w:t></w:r></w:p>`,
		),
	})

	out, _, err := Fill(doc, testRepl)
	require.NoError(t, err)

	xml := readPart(t, out, "word/document.xml")
	assert.Contains(t, xml, "<w:rPr><w:b/></w:rPr>") // run properties untouched
	assert.Contains(t, xml, ">Anna,</w:t>")
}

func TestFill_NonTokenParagraphsUntouched(t *testing.T) {
	plain := `<w:p><w:r><w:t xml:space="preserve">Totally unrelated &amp; untouched text.</w:t></w:r></w:p>`
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(
			plain,
			`<w:p><w:r><w:t>{{GMAIL}}</w:t></w:r></w:p>`,
		),
	})

	out, _, err := Fill(doc, testRepl)
	require.NoError(t, err)

	xml := readPart(t, out, "word/document.xml")
	assert.Contains(t, xml, plain) // byte-for-byte, entity included
}

func TestFill_NoTokensIsIdentity(t *testing.T) {
	original := body(`<w:p><w:r><w:t>Nothing to replace here.</w:t></w:r></w:p>`)
	doc := makeDocx(t, map[string]string{"word/document.xml": original})

	out, leftover, err := Fill(doc, testRepl)
	require.NoError(t, err)
	assert.Zero(t, leftover)
	assert.Equal(t, original, readPart(t, out, "word/document.xml"))
}

func TestFill_HeadersAndFooters(t *testing.T) {
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(`<w:p><w:r><w:t>body</w:t></w:r></w:p>`),
		"word/header1.xml":  `<w:hdr><w:p><w:r><w:t>{{GMAIL}}</w:t></w:r></w:p></w:hdr>`,
		"word/footer1.xml":  `<w:ftr><w:p><w:r><w:t>{{CANVAS_USERNAME}}</w:t></w:r></w:p></w:ftr>`,
	})

	out, leftover, err := Fill(doc, testRepl)
	require.NoError(t, err)
	assert.Zero(t, leftover)
	assert.Contains(t, readPart(t, out, "word/header1.xml"), "asmith@artofdrawers.com")
	assert.Contains(t, readPart(t, out, "word/footer1.xml"), "anna.smith")
}

func TestFill_TableCellToken(t *testing.T) {
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>{{CANVAS_USERNAME}}</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`,
		),
	})

	out, leftover, err := Fill(doc, testRepl)
	require.NoError(t, err)
	assert.Zero(t, leftover)
	assert.Contains(t, readPart(t, out, "word/document.xml"), ">anna.smith</w:t>")
}

func TestFill_StrandedTokenReportedNotFatal(t *testing.T) {
	// A token inside a field instruction is not run text; it survives and
	// is reported through the leftover count.
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(
			`<w:p><w:r><w:instrText>{{GMAIL}}</w:instrText></w:r></w:p>`,
		),
	})

	out, leftover, err := Fill(doc, testRepl)
	require.NoError(t, err)
	assert.Equal(t, 1, leftover)
	assert.Contains(t, readPart(t, out, "word/document.xml"), "{{GMAIL}}")
}

func TestFill_EscapedValueRoundTrip(t *testing.T) {
	repl := map[string]string{"{{GREETING}}": `Anna & "co" <team>,`}
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(`<w:p><w:r><w:t>{{GREETING}}</w:t></w:r></w:p>`),
	})

	out, _, err := Fill(doc, repl)
	require.NoError(t, err)
	assert.Contains(t, readPart(t, out, "word/document.xml"),
		"Anna &amp; &quot;co&quot; &lt;team&gt;,")
}

func TestFill_UnrelatedPartsCopiedRaw(t *testing.T) {
	styles := `<w:styles><w:style>{{GMAIL}} stays, styles are not scanned</w:style></w:styles>`
	doc := makeDocx(t, map[string]string{
		"word/document.xml": body(`<w:p><w:r><w:t>x</w:t></w:r></w:p>`),
		"word/styles.xml":   styles,
	})

	out, leftover, err := Fill(doc, testRepl)
	require.NoError(t, err)
	assert.Zero(t, leftover) // leftover counting only covers scanned parts
	assert.Equal(t, styles, readPart(t, out, "word/styles.xml"))
}

func TestFill_NotAZip(t *testing.T) {
	_, _, err := Fill([]byte("definitely not a zip"), testRepl)
	assert.Error(t, err)
}
