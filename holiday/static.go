package holiday

import (
	"context"

	"github.com/jonwraymond/workdays/workday"
)

// Static is a HolidaySource serving a fixed set of dates for every
// jurisdiction. It exists for tests and for running the service with no
// holiday data at all.
type Static struct {
	dates dateSet
}

// NewStatic creates a Static source holding the given dates.
func NewStatic(dates ...workday.Date) *Static {
	set := make(dateSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return &Static{dates: set}
}

// Holidays returns the fixed set regardless of jurisdiction or span.
func (s *Static) Holidays(_ context.Context, _ workday.Jurisdiction, _, _ int) (workday.HolidaySet, error) {
	return s.dates, nil
}

// Ensure Static implements the oracle interface
var _ workday.HolidaySource = (*Static)(nil)
