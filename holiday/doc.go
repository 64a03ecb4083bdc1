// Package holiday provides implementations of the workday.HolidaySource
// oracle: jurisdiction- and year-aware public holiday calendars for the
// Australian states and territories.
//
// Three sources are available. Calendar evaluates gazetted holiday rules
// with the rickar/cal engine and is the default. SQLite reads a fixed
// dataset of gazetted dates from a database, for operators who load official
// gazette data instead of relying on computed rules. Static serves a fixed
// in-memory set and is intended for tests.
//
// Substituting one source for another changes nothing but the holiday dates
// themselves; the engine and transport are oblivious to the choice.
package holiday
