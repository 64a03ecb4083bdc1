package workday

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	tests := []struct {
		text string
		want Date
	}{
		{"2024-01-01", NewDate(2024, time.January, 1)},
		{"2000-02-29", NewDate(2000, time.February, 29)},
		{"2049-12-31", NewDate(2049, time.December, 31)},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.text)
		if err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"wrong order", "01-01-2024"},
		{"no padding", "2024-1-1"},
		{"no separators", "20240101"},
		{"not a date", "yesterday"},
		{"trailing text", "2024-01-01T00"},
		{"month out of range", "2024-13-01"},
		{"day out of range", "2024-02-30"},
		{"non-leap february", "2023-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.text)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDateFormat", tt.text, err)
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ParseDate(%q) error is not a ValidationError", tt.text)
			}
			if ve.Detail != "Invalid date format. Use YYYY-MM-DD" {
				t.Errorf("detail = %q, want the fixed format message", ve.Detail)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	if got := d.String(); got != "2024-03-05" {
		t.Errorf("String() = %q, want %q", got, "2024-03-05")
	}
}

func TestDate_NextCrossesBoundaries(t *testing.T) {
	tests := []struct {
		from Date
		want Date
	}{
		{NewDate(2024, time.January, 30), NewDate(2024, time.January, 31)},
		{NewDate(2024, time.January, 31), NewDate(2024, time.February, 1)},
		{NewDate(2024, time.February, 28), NewDate(2024, time.February, 29)},
		{NewDate(2023, time.December, 31), NewDate(2024, time.January, 1)},
	}

	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.from, got, tt.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	earlier := NewDate(2024, time.May, 1)
	later := NewDate(2024, time.May, 10)

	if !later.After(earlier) {
		t.Error("later.After(earlier) = false, want true")
	}
	if earlier.After(later) {
		t.Error("earlier.After(later) = true, want false")
	}
	if earlier.After(earlier) {
		t.Error("a date must not be after itself")
	}
	if !earlier.Before(later) {
		t.Error("earlier.Before(later) = false, want true")
	}
}

func TestDate_IsWeekday(t *testing.T) {
	// 2024-01-01 is a Monday.
	d := NewDate(2024, time.January, 1)
	for i := 0; i < 7; i++ {
		wantWeekday := i < 5
		if got := d.IsWeekday(); got != wantWeekday {
			t.Errorf("%v (%v) IsWeekday() = %v, want %v", d, d.Weekday(), got, wantWeekday)
		}
		d = d.Next()
	}
}
