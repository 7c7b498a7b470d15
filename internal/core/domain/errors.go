package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates the run configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Authentication Errors.

	// ErrAuthRequired indicates no usable credentials are cached and an
	// interactive authorisation cannot be performed.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the OAuth client secrets or cached token are unreadable.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Extraction Errors.

	// ErrInvalidPDF indicates the file is not a readable PDF document.
	ErrInvalidPDF = errors.New("invalid pdf")

	// ErrColumnCount indicates a detected table does not have the
	// expected number of columns for the record schema.
	ErrColumnCount = errors.New("unexpected column count")

	// ErrDetectionFailed indicates the table detector failed internally.
	ErrDetectionFailed = errors.New("table detection failed")
)
