// Package workday classifies calendar dates as working or non-working for
// Australian jurisdictions and aggregates the results over inclusive date
// ranges.
//
// A date is a working day when it falls on a weekday (Monday through Friday)
// and is not a public holiday in the queried jurisdiction. Holiday
// determination is delegated to a HolidaySource; the package never computes
// holidays itself.
//
// The two entry points are the pure validator (ParseDate, ValidateRange),
// which turns raw query input into a Query or a ValidationError, and the
// Engine, which answers Count and List for validated queries. Count results
// are memoized in an injected CountCache; List is always computed fresh.
package workday
