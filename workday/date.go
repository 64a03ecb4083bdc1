package workday

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted wire format for calendar dates.
const DateLayout = "2006-01-02"

// detailInvalidDate is the caller-facing message for unparseable dates.
const detailInvalidDate = "Invalid date format. Use YYYY-MM-DD"

// Date is a calendar date with no time-of-day or zone component. Dates are
// comparable values and are immutable once constructed.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the calendar date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses text in strict YYYY-MM-DD form. It fails with
// ErrInvalidDateFormat when the text does not match the layout or does not
// denote a real calendar date.
func ParseDate(text string) (Date, error) {
	if len(text) != len(DateLayout) {
		return Date{}, newValidationError(ErrInvalidDateFormat, detailInvalidDate)
	}
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return Date{}, newValidationError(ErrInvalidDateFormat, detailInvalidDate)
	}
	return DateOf(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

// After reports whether d is after o.
func (d Date) After(o Date) bool {
	if d.Year != o.Year {
		return d.Year > o.Year
	}
	if d.Month != o.Month {
		return d.Month > o.Month
	}
	return d.Day > o.Day
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool {
	return o.After(d)
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekday reports whether d falls on Monday through Friday.
func (d Date) IsWeekday() bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
