package model

import (
	"fmt"
	"strings"
	"time"
)

// Date is the calendar part of a TOML or YAML date/date-time value.
//
// The literal text is kept so document-level dates render exactly as written.
type Date struct {
	Year  int
	Month int
	Day   int
	raw   string
}

// NewDate builds a Date from its numeric fields.
func NewDate(year, month, day int) Date {
	return Date{
		Year:  year,
		Month: month,
		Day:   day,
		raw:   fmt.Sprintf("%04d-%02d-%02d", year, month, day),
	}
}

// ParseDate accepts "YYYY-MM-DD" optionally followed by a time part
// ("T" or space separated). Time-only values are rejected.
func ParseDate(text string) (Date, error) {
	text = strings.TrimSpace(text)
	if len(text) < len("2006-01-02") || text[4] != '-' || text[7] != '-' {
		return Date{}, fmt.Errorf("invalid date %q: no calendar date", text)
	}
	if rest := text[10:]; rest != "" && rest[0] != 'T' && rest[0] != 't' && rest[0] != ' ' {
		return Date{}, fmt.Errorf("invalid date %q: unexpected %q after date", text, rest)
	}

	t, err := time.Parse("2006-01-02", text[:10])
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", text, err)
	}

	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day(), raw: text}, nil
}

// Numeric formats the date as Y-M-D without zero padding ("2023-4-5").
func (d Date) Numeric() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
}

// String returns the date as written in the source record.
func (d Date) String() string {
	return d.raw
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
