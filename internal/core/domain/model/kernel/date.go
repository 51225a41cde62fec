package kernel

import (
	"time"

	"schoollunch/internal/pkg/errs"
)

// DateLayout is the wire and storage form of a Date.
const DateLayout = time.DateOnly

// Date is a civil calendar day. It carries no clock and no zone, so two
// instants on the same local day map to equal Dates.
//
// Internally the day is held as midnight UTC, which keeps comparisons and
// day arithmetic free of DST effects.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the day t falls on when observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

// ParseDate parses "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return Date{t: t}, nil
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// At returns the instant hour:min on d in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), hour, minute, 0, 0, loc)
}

// Time returns midnight UTC of d, the form persisted in date columns.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
