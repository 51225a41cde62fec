package schedule

import (
	"errors"
	"iter"
	"slices"
	"time"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"
)

const (
	DefaultLeadBusinessDays = 2
	DefaultCutoffHour       = 15
	DefaultCutoffMinute     = 0
	DefaultDaysAhead        = 14
)

var ErrCalculatorNotConstructed = errors.New("Calculator must be created via NewCalculator")

// Slot is an orderable delivery date together with its order/cancel deadline.
type Slot struct {
	DeliveryDate kernel.Date
	Deadline     time.Time
}

// Calculator answers every deadline question of the ordering flow. A delivery
// date D closes at the cutoff time of the day reached by stepping back
// leadBusinessDays business days from D. The same instant bounds both placing
// and cancelling an order for D.
//
// Calculator never reads the clock: callers always pass now.
type Calculator struct {
	loc              *time.Location
	leadBusinessDays int
	cutoffHour       int
	cutoffMinute     int
	guard            guard.ConstructorGuard
}

// Option overrides one of the calculator defaults.
type Option func(*Calculator)

// WithLeadBusinessDays sets how many business days before delivery the
// deadline falls. NewCalculator rejects values below 1.
func WithLeadBusinessDays(n int) Option {
	return func(c *Calculator) { c.leadBusinessDays = n }
}

// WithCutoff sets the wall-clock time, in the calculator's zone, at which
// the deadline day closes.
func WithCutoff(hour, minute int) Option {
	return func(c *Calculator) {
		c.cutoffHour = hour
		c.cutoffMinute = minute
	}
}

// NewCalculator builds a calculator for loc, applying opts over the defaults
// (two business days lead, 15:00 cutoff). Out-of-range options fail with
// errs.ErrValueIsOutOfRange.
//
// Example:
//
//	tokyo, _ := time.LoadLocation("Asia/Tokyo")
//	calendar, err := NewCalculator(tokyo, WithCutoff(12, 30))
//	if err != nil {
//	    return err
//	}
//	deadline := calendar.Deadline(deliveryDate)
func NewCalculator(loc *time.Location, opts ...Option) (*Calculator, error) {
	if loc == nil {
		return nil, errs.NewValueIsRequiredError("location")
	}

	c := &Calculator{
		loc:              loc,
		leadBusinessDays: DefaultLeadBusinessDays,
		cutoffHour:       DefaultCutoffHour,
		cutoffMinute:     DefaultCutoffMinute,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.leadBusinessDays < 1 {
		return nil, errs.NewValueIsOutOfRangeError("leadBusinessDays", c.leadBusinessDays, 1, "unbounded")
	}
	if c.cutoffHour < 0 || c.cutoffHour > 23 {
		return nil, errs.NewValueIsOutOfRangeError("cutoffHour", c.cutoffHour, 0, 23)
	}
	if c.cutoffMinute < 0 || c.cutoffMinute > 59 {
		return nil, errs.NewValueIsOutOfRangeError("cutoffMinute", c.cutoffMinute, 0, 59)
	}

	c.guard = guard.NewConstructorGuard()
	return c, nil
}

func (c *Calculator) Validate() error {
	if c == nil {
		return ErrCalculatorNotConstructed
	}
	return c.guard.Validate(ErrCalculatorNotConstructed)
}

// Location is the zone every date and deadline is computed in.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Today is the calendar day now falls on in the calculator's zone.
func (c *Calculator) Today(now time.Time) kernel.Date {
	return kernel.DateOf(now, c.loc)
}

// IsBusinessDay reports whether d is Monday through Friday. There is no
// holiday calendar.
func (c *Calculator) IsBusinessDay(d kernel.Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// Deadline returns the last instant at which an order for d may be placed
// or cancelled.
func (c *Calculator) Deadline(d kernel.Date) time.Time {
	day := d
	for consumed := 0; consumed < c.leadBusinessDays; {
		day = day.AddDays(-1)
		if c.IsBusinessDay(day) {
			consumed++
		}
	}
	return day.At(c.cutoffHour, c.cutoffMinute, c.loc)
}

// IsActionable reports whether now is at or before the deadline of d.
func (c *Calculator) IsActionable(d kernel.Date, now time.Time) bool {
	return !now.After(c.Deadline(d))
}

// Candidates lazily scans daysAhead calendar days starting with today and
// yields the business days whose deadline is still strictly ahead of now.
// The sequence is recomputed on every iteration.
func (c *Calculator) Candidates(daysAhead int, now time.Time) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		today := c.Today(now)
		for i := range max(daysAhead, 0) {
			d := today.AddDays(i)
			if !c.IsBusinessDay(d) {
				continue
			}
			deadline := c.Deadline(d)
			if !deadline.After(now) {
				continue
			}
			if !yield(Slot{DeliveryDate: d, Deadline: deadline}) {
				return
			}
		}
	}
}

// ListCandidateDates collects Candidates in ascending date order.
func (c *Calculator) ListCandidateDates(daysAhead int, now time.Time) []Slot {
	return slices.Collect(c.Candidates(daysAhead, now))
}
