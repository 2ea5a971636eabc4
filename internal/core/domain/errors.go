package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSetting indicates a settings key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")

	// Remote search errors. Both are treated identically by the feed:
	// the page is discarded and pagination stops.

	// ErrNetwork indicates the search request could not be completed.
	// Covers transport failures and non-success responses.
	ErrNetwork = errors.New("network error")

	// ErrParse indicates the search response could not be interpreted.
	ErrParse = errors.New("parse error")
)
