// Error taxonomy for the pipeline. Handlers map these to HTTP statuses
// with errors.Is, so every layer wraps with %w instead of inventing
// its own error strings.

package models

import "errors"

var (
	// ErrInvalidInput -> 400. Empty or non-alphanumeric name input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTemplateMissing -> 500. Role has no backing embedded template.
	// Should be unreachable with the closed role enum, handled anyway.
	ErrTemplateMissing = errors.New("template missing")

	// ErrConverterUnavailable -> 503. The converter binary is not on PATH.
	// This is an operator problem, not a user problem.
	ErrConverterUnavailable = errors.New("converter unavailable")

	// ErrConversionFailed -> 502. The converter ran but exited non-zero,
	// timed out, or produced no output file.
	ErrConversionFailed = errors.New("conversion failed")
)
