package workday

// detailInvertedRange is the caller-facing message for start > end.
const detailInvertedRange = "Start date must be before or equal to end date"

// Query is a validated working-day query: an inclusive date range plus an
// optional jurisdiction. Start is never after End. Queries are plain values
// constructed per request and discarded with the response.
type Query struct {
	Start Date
	End   Date
	State Jurisdiction
}

// ValidateRange normalizes raw query input into a Query. It is a pure
// function of its inputs with no side effects.
//
// Failures, in detection order:
//   - ErrInvalidDateFormat when either date is not a real YYYY-MM-DD date,
//   - ErrInvertedRange when the start date is after the end date,
//   - ErrUnknownJurisdiction when a non-empty state code is not one of the
//     eight enumerated codes.
func ValidateRange(startText, endText, stateText string) (Query, error) {
	start, err := ParseDate(startText)
	if err != nil {
		return Query{}, err
	}
	end, err := ParseDate(endText)
	if err != nil {
		return Query{}, err
	}
	if start.After(end) {
		return Query{}, newValidationError(ErrInvertedRange, detailInvertedRange)
	}
	state, err := ParseJurisdiction(stateText)
	if err != nil {
		return Query{}, err
	}
	return Query{Start: start, End: end, State: state}, nil
}
