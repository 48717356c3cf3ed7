// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"fmt"
	"iter"
	"time"

	"cloudeng.io/saka/julian"
)

// MonthShiftPolicy determines how the day of a date is treated when
// adding or subtracting months or years results in a month with fewer
// days than the original day.
type MonthShiftPolicy int

const (
	// PreserveDay leaves the day unchanged, so that adding a month to
	// 31 Bhadra results in 31 Asvina even though Asvina has 30 days.
	PreserveDay MonthShiftPolicy = iota
	// ClampDay replaces the day with the last day of the resulting month
	// if it would otherwise exceed it.
	ClampDay
)

func (p MonthShiftPolicy) String() string {
	switch p {
	case PreserveDay:
		return "preserve"
	case ClampDay:
		return "clamp"
	}
	return fmt.Sprintf("MonthShiftPolicy(%d)", int(p))
}

func (p MonthShiftPolicy) apply(d Date) Date {
	if p == ClampDay {
		d.Day = min(d.Day, daysInMonth(d.Year, d.Month))
	}
	return d
}

// Option represents an option to NewCalendar.
type Option func(o *options)

type options struct {
	clock  Clock
	policy MonthShiftPolicy
}

// WithClock sets the Clock used to determine the current date, the
// default is SystemClock{}.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithMonthShiftPolicy sets the policy used when adding or subtracting
// months and years, the default is PreserveDay.
func WithMonthShiftPolicy(p MonthShiftPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Calendar provides date arithmetic and access to the current date for
// the Saka calendar. A Calendar is immutable and may be used concurrently.
type Calendar struct {
	opts options
}

var defaultCalendar = NewCalendar()

// NewCalendar returns a new Calendar configured with the supplied options.
func NewCalendar(opts ...Option) *Calendar {
	c := &Calendar{opts: options{clock: SystemClock{}}}
	for _, fn := range opts {
		fn(&c.opts)
	}
	return c
}

// Today returns the current date as reported by the calendar's Clock.
func (c *Calendar) Today() (Date, error) {
	return FromGregorian(c.opts.clock.Today())
}

// MonthShiftPolicy returns the policy in use by the calendar.
func (c *Calendar) MonthShiftPolicy() MonthShiftPolicy {
	return c.opts.policy
}

// AddDays adds n days to d, where n may be negative. The addition is
// performed in the Gregorian calendar. d is left unchanged if an error
// is returned.
func (c *Calendar) AddDays(d *Date, n int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	year, month, day := FromJulian(d.Gregorian().AddDays(n).JulianDay())
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d: adding %d days to %v", ErrInvalidYear, year, n, d)
	}
	nd, err := NewDate(year, month, day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// SubtractDays subtracts n days from d, n must not be negative.
func (c *Calendar) SubtractDays(d *Date, n int) error {
	if err := checkCount(n); err != nil {
		return err
	}
	return c.AddDays(d, -n)
}

// AddMonths adds n months to d, n must not be negative. Only the month
// and year are changed, the day is handled as per the calendar's
// MonthShiftPolicy.
func (c *Calendar) AddMonths(d *Date, n int) error {
	if err := c.checkShift(d, n, n/12); err != nil {
		return err
	}
	year, month := d.Year, int(d.Month)
	for month+n > 12 {
		n -= 12 - month + 1
		year++
		month = 1
	}
	month += n
	return c.shift(d, year, Month(month))
}

// SubtractMonths subtracts n months from d, n must not be negative.
// Only the month and year are changed, the day is handled as per the
// calendar's MonthShiftPolicy.
func (c *Calendar) SubtractMonths(d *Date, n int) error {
	if err := c.checkShift(d, n, n/12); err != nil {
		return err
	}
	year, month := d.Year, int(d.Month)
	for month-n < 1 {
		n -= month
		year--
		month = 12
	}
	month -= n
	return c.shift(d, year, Month(month))
}

// AddYears adds n years to d, n must not be negative.
func (c *Calendar) AddYears(d *Date, n int) error {
	if err := c.checkShift(d, n, n); err != nil {
		return err
	}
	return c.shift(d, d.Year+n, d.Month)
}

// SubtractYears subtracts n years from d, n must not be negative.
func (c *Calendar) SubtractYears(d *Date, n int) error {
	if err := c.checkShift(d, n, n); err != nil {
		return err
	}
	return c.shift(d, d.Year-n, d.Month)
}

func (c *Calendar) checkShift(d *Date, n, years int) error {
	if err := checkCount(n); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if years > MaxYear {
		return fmt.Errorf("%w: %d years from %d", ErrInvalidYear, years, d.Year)
	}
	return nil
}

func (c *Calendar) shift(d *Date, year int, month Month) error {
	nd, err := NewDate(year, month, d.Day)
	if err != nil {
		return err
	}
	*d = c.opts.policy.apply(nd)
	return nil
}

// Dates returns an iterator over every day of the specified month.
// The iterator yields nothing if the year or month are invalid.
func (c *Calendar) Dates(year int, month Month) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if Validate(year, month, 1) != nil {
			return
		}
		n := daysInMonth(year, month)
		for day := 1; day <= n; day++ {
			if !yield(Date{Year: year, Month: month, Day: day}) {
				return
			}
		}
	}
}

// DayOfWeek returns the day of the week for d.
func DayOfWeek(d Date) (time.Weekday, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}

// DaysInMonth returns the number of days in the specified month, taking
// into account the variable length of Chaitra.
func DaysInMonth(year int, month Month) (int, error) {
	if err := Validate(year, month, 1); err != nil {
		return 0, err
	}
	return daysInMonth(year, month), nil
}

func daysInMonth(year int, month Month) int {
	var next julian.Day
	if month == Phalguna {
		next = ToJulian(year+1, Chaitra, 1)
	} else {
		next = ToJulian(year, month+1, 1)
	}
	return next.Sub(ToJulian(year, month, 1))
}

// firstWeekday returns the day of the week of the first day of the month.
func firstWeekday(year int, month Month) time.Weekday {
	return julian.Weekday(ToJulian(year, month, 1))
}
