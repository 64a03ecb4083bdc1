package holiday

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonwraymond/workdays/workday"
)

// SQLite is a HolidaySource reading gazetted holiday dates from a SQLite
// database, for deployments that load official gazette data instead of
// relying on computed rules. Rows with an empty state are national holidays
// that apply to every jurisdiction.
//
// The caller owns the *sql.DB (modernc.org/sqlite driver) and is responsible
// for closing it.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a SQLite source on an open database. Run Migrate first
// on fresh databases.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Migrate creates the holidays table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS holidays (
			state TEXT NOT NULL,
			day   TEXT NOT NULL,
			name  TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (state, day)
		)`)
	if err != nil {
		return fmt.Errorf("holiday: migrate: %w", err)
	}
	return nil
}

// Add records one gazetted holiday. An empty state marks a national holiday.
// Adding the same (state, day) twice replaces the name.
func (s *SQLite) Add(ctx context.Context, state workday.Jurisdiction, day workday.Date, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO holidays (state, day, name) VALUES (?, ?, ?)`,
		string(state), day.String(), name)
	if err != nil {
		return fmt.Errorf("holiday: add %s: %w", day, err)
	}
	return nil
}

// Holidays materializes the national and state rows for the year span into
// an in-memory membership set. Days are stored as YYYY-MM-DD text, so the
// span filter is a plain lexicographic BETWEEN.
func (s *SQLite) Holidays(ctx context.Context, state workday.Jurisdiction, firstYear, lastYear int) (workday.HolidaySet, error) {
	lo := fmt.Sprintf("%04d-01-01", firstYear)
	hi := fmt.Sprintf("%04d-12-31", lastYear)

	rows, err := s.db.QueryContext(ctx,
		`SELECT day FROM holidays WHERE (state = '' OR state = ?) AND day BETWEEN ? AND ?`,
		string(state), lo, hi)
	if err != nil {
		return nil, fmt.Errorf("holiday: query %q: %w", state, err)
	}
	defer rows.Close()

	set := make(dateSet)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("holiday: scan: %w", err)
		}
		d, err := workday.ParseDate(day)
		if err != nil {
			return nil, fmt.Errorf("holiday: malformed day %q in dataset: %w", day, err)
		}
		set[d] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("holiday: query %q: %w", state, err)
	}
	return set, nil
}

// dateSet is an in-memory HolidaySet.
type dateSet map[workday.Date]struct{}

func (s dateSet) Contains(d workday.Date) bool {
	_, ok := s[d]
	return ok
}

// Ensure SQLite implements the oracle interface
var _ workday.HolidaySource = (*SQLite)(nil)
