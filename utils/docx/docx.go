// Package docx rewrites placeholder tokens inside a Word document.
//
// A .docx file is a zip; the visible text lives in word/document.xml plus
// the header/footer parts. Word freely splits a run of text into several
// <w:t> elements (spellcheck state, formatting, revision history), so a
// token typed as one string can arrive as "{{GRE" + "ETING}}". To survive
// that, each paragraph's runs are flattened into one string before
// matching; when a token is found, the whole replaced text is written
// back into the paragraph's first <w:t> and the remaining <w:t> elements
// are emptied. The first run keeps its formatting, which is what the
// template authors expect for a token on its own styled line.
//
// Paragraphs without tokens are copied through untouched, and untouched
// zip entries are copied in their original compressed form.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	// <w:p ...>...</w:p>; paragraphs never nest, so lazy matching is safe.
	// The attribute group cannot match <w:pPr> or self-closing <w:p/>.
	paragraphRe = regexp.MustCompile(`(?s)<w:p(?: [^>]*)?>.*?</w:p>`)

	// <w:t>...</w:t> including attributes like xml:space="preserve".
	textRe = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?>.*?</w:t>`)

	// opening tag of a <w:t>, used to split a matched element.
	textOpenRe = regexp.MustCompile(`^<w:t(?: [^>]*)?>`)
)

// partNeedsScan reports whether a zip entry can contain body text.
// Body, headers and footers; everything else (styles, rels, media)
// passes through untouched.
func partNeedsScan(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
		return false
	}
	base := strings.TrimPrefix(name, "word/")
	return strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer")
}

// Fill replaces every token occurrence in doc and returns the rewritten
// docx, plus the number of token literals that survived substitution
// (tokens stranded outside text runs, e.g. inside field instructions).
// Leftovers are a warning for the caller to log, never an error.
func Fill(doc []byte, replacements map[string]string) ([]byte, int, error) {
	zr, err := zip.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return nil, 0, fmt.Errorf("open docx: %w", err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	leftover := 0

	for _, f := range zr.File {
		if !partNeedsScan(f.Name) {
			// raw copy keeps untouched parts byte-identical
			if err := copyRaw(zw, f); err != nil {
				return nil, 0, fmt.Errorf("copy %s: %w", f.Name, err)
			}
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", f.Name, err)
		}
		part, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", f.Name, err)
		}

		rewritten := replaceInPart(part, replacements)
		leftover += countTokens(rewritten, replacements)

		fh := f.FileHeader
		w, err := zw.CreateHeader(&fh)
		if err != nil {
			return nil, 0, fmt.Errorf("write %s: %w", f.Name, err)
		}
		if _, err := w.Write(rewritten); err != nil {
			return nil, 0, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("close docx: %w", err)
	}
	return out.Bytes(), leftover, nil
}

// copyRaw transfers a zip entry without recompressing it.
func copyRaw(zw *zip.Writer, f *zip.File) error {
	rc, err := f.OpenRaw()
	if err != nil {
		return err
	}
	fh := f.FileHeader
	w, err := zw.CreateRaw(&fh)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, rc)
	return err
}

// replaceInPart rewrites every paragraph of one XML part that contains a
// token. Paragraphs with no token come back byte-for-byte unchanged.
func replaceInPart(part []byte, replacements map[string]string) []byte {
	return paragraphRe.ReplaceAllFunc(part, func(p []byte) []byte {
		flat := flattenText(p)
		hit := false
		for token := range replacements {
			if strings.Contains(flat, token) {
				hit = true
				break
			}
		}
		if !hit {
			return p // untouched, preserves bytes exactly
		}
		for token, value := range replacements {
			flat = strings.ReplaceAll(flat, token, value)
		}
		return rewriteParagraph(p, flat)
	})
}

// flattenText concatenates the unescaped contents of every <w:t> in a
// paragraph, which merges tokens Word split across runs.
func flattenText(paragraph []byte) string {
	var b strings.Builder
	for _, m := range textRe.FindAll(paragraph, -1) {
		b.WriteString(unescape(innerText(m)))
	}
	return b.String()
}

// innerText strips the <w:t ...> and </w:t> wrapper from a matched element.
func innerText(element []byte) string {
	open := textOpenRe.Find(element)
	return string(element[len(open) : len(element)-len("</w:t>")])
}

// rewriteParagraph puts the full replaced text into the first <w:t> and
// empties the rest, keeping the first run's formatting.
func rewriteParagraph(paragraph []byte, text string) []byte {
	first := true
	return textRe.ReplaceAllFunc(paragraph, func([]byte) []byte {
		if first {
			first = false
			// xml:space="preserve" keeps leading/trailing spaces intact
			return []byte(`<w:t xml:space="preserve">` + escape(text) + `</w:t>`)
		}
		return []byte(`<w:t></w:t>`)
	})
}

// countTokens counts token literals still present in a rewritten part.
func countTokens(part []byte, replacements map[string]string) int {
	n := 0
	for token := range replacements {
		n += bytes.Count(part, []byte(token))
	}
	return n
}

var (
	unescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")
	escaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")
)

func unescape(s string) string { return unescaper.Replace(s) }
func escape(s string) string   { return escaper.Replace(s) }
