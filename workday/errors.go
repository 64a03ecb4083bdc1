package workday

import "errors"

// Sentinel errors for query validation. All of them are caller errors:
// they are detected before any computation starts and are never retried.
var (
	// ErrInvalidDateFormat indicates input that is not a real calendar date
	// in YYYY-MM-DD form.
	ErrInvalidDateFormat = errors.New("workday: invalid date format")

	// ErrInvertedRange indicates a start date after the end date.
	ErrInvertedRange = errors.New("workday: start date after end date")

	// ErrUnknownJurisdiction indicates a state code outside the enumerated set.
	ErrUnknownJurisdiction = errors.New("workday: unknown jurisdiction")

	// ErrUnsupportedYearRange indicates a query endpoint outside the span of
	// years the holiday source is configured for.
	ErrUnsupportedYearRange = errors.New("workday: year outside supported span")
)

// ValidationError wraps a validation sentinel with the message shown to the
// caller. Detail is surfaced verbatim in HTTP 400 responses.
type ValidationError struct {
	Err    error
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Err.Error() + ": " + e.Detail
}

// Unwrap returns the validation sentinel, so errors.Is works against the
// package sentinels.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(sentinel error, detail string) error {
	return &ValidationError{Err: sentinel, Detail: detail}
}
