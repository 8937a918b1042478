// Package soffice shells out to LibreOffice to turn a filled docx into a
// PDF. The converter is an uncontrolled external process, so every call
// is bounded by a timeout and works inside its own temp directory that
// is removed on every exit path.

package soffice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/mfluker/aod-onboarding-pdf/models"
)

// Converter is what the service layer depends on; the concrete
// LibreOffice runner can be swapped for a mock in tests.
type Converter interface {
	Convert(ctx context.Context, docx []byte) ([]byte, error)
	Available() error
}

// LibreOffice runs "<bin> --headless --convert-to pdf" with a timeout.
type LibreOffice struct {
	bin     string
	timeout time.Duration
}

// New builds a converter for the given binary name/path. timeout bounds
// a single conversion; zero falls back to 30s.
func New(bin string, timeout time.Duration) *LibreOffice {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LibreOffice{bin: bin, timeout: timeout}
}

// Available checks that the binary resolves on PATH. Called at boot so a
// misconfigured host fails at startup, not on the first user request.
func (l *LibreOffice) Available() error {
	if _, err := exec.LookPath(l.bin); err != nil {
		return fmt.Errorf("%w: %q not found in PATH", models.ErrConverterUnavailable, l.bin)
	}
	return nil
}

// Convert writes the docx into a per-call temp dir, runs the converter,
// and reads back the PDF. The temp dir is uniquely named, so concurrent
// requests never collide, and it is removed whether the call succeeds,
// fails, or is cancelled.
func (l *LibreOffice) Convert(ctx context.Context, docx []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "onboarding-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp dir: %v", models.ErrConversionFailed, err)
	}
	defer os.RemoveAll(dir) // cleanup on every path

	in := filepath.Join(dir, "document.docx")
	if err := os.WriteFile(in, docx, 0o600); err != nil {
		return nil, fmt.Errorf("%w: write input: %v", models.ErrConversionFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	// A private user profile keeps parallel soffice instances from
	// fighting over the default one.
	cmd := exec.CommandContext(ctx, l.bin,
		"--headless", "--norestore",
		"-env:UserInstallation=file://"+filepath.Join(dir, "profile"),
		"--convert-to", "pdf",
		"--outdir", dir,
		in,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q not found in PATH", models.ErrConverterUnavailable, l.bin)
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: timed out after %s", models.ErrConversionFailed, l.timeout)
		}
		return nil, fmt.Errorf("%w: %v: %s", models.ErrConversionFailed, err, firstLine(out))
	}

	pdf, err := os.ReadFile(filepath.Join(dir, "document.pdf"))
	if err != nil {
		// converter exited 0 but produced nothing usable
		return nil, fmt.Errorf("%w: no output produced: %s", models.ErrConversionFailed, firstLine(out))
	}
	return pdf, nil
}

// firstLine trims converter output down to something log-friendly.
func firstLine(b []byte) string {
	for i, c := range b {
		if c == '\n' {
			return string(b[:i])
		}
	}
	return string(b)
}
