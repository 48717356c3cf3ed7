// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/saka/julian"
)

// Date represents a date in the Saka calendar.
type Date struct {
	Year  int
	Month Month
	Day   int
}

// NewDate returns the Date for the specified year, month and day
// after validating them as per Validate.
func NewDate(year int, month Month, day int) (Date, error) {
	if err := Validate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// FromGregorian returns the Saka date for the specified Gregorian date.
func FromGregorian(g Gregorian) (Date, error) {
	if err := ValidateGregorian(g.Year, g.Month, g.Day); err != nil {
		return Date{}, err
	}
	return NewDate(FromJulian(g.JulianDay()))
}

// ToGregorian returns the Gregorian date for d.
func ToGregorian(d Date) (Gregorian, error) {
	if err := d.Validate(); err != nil {
		return Gregorian{}, err
	}
	return d.Gregorian(), nil
}

// Validate calls Validate for the fields of d.
func (d Date) Validate() error {
	return Validate(d.Year, d.Month, d.Day)
}

// JulianDay returns the Julian day number for midnight at the start of d.
func (d Date) JulianDay() julian.Day {
	return ToJulian(d.Year, d.Month, d.Day)
}

// Gregorian returns the Gregorian date for d. The date is not validated.
func (d Date) Gregorian() Gregorian {
	y, m, dd := julian.ToGregorian(d.JulianDay())
	return Gregorian{Year: y, Month: m, Day: dd}
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return julian.Weekday(d.Gregorian().JulianDay())
}

// WeekdayName returns the Saka name of the day of the week for d.
func (d Date) WeekdayName() string {
	return WeekdayName(d.Weekday())
}

// Compare returns -1, 0 or +1 depending on whether d is before, the
// same as or after o.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, o.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, o.Day)
}

// String returns the date in the format "DD, MonthName YYYY".
func (d Date) String() string {
	return fmt.Sprintf("%02d, %s %04d", d.Day, d.Month, d.Year)
}

// AddDays calls Calendar.AddDays on a Calendar created with default options.
func (d *Date) AddDays(n int) error {
	return defaultCalendar.AddDays(d, n)
}

// SubtractDays calls Calendar.SubtractDays on a Calendar created with default options.
func (d *Date) SubtractDays(n int) error {
	return defaultCalendar.SubtractDays(d, n)
}

// AddMonths calls Calendar.AddMonths on a Calendar created with default options.
func (d *Date) AddMonths(n int) error {
	return defaultCalendar.AddMonths(d, n)
}

// SubtractMonths calls Calendar.SubtractMonths on a Calendar created with default options.
func (d *Date) SubtractMonths(n int) error {
	return defaultCalendar.SubtractMonths(d, n)
}

// AddYears calls Calendar.AddYears on a Calendar created with default options.
func (d *Date) AddYears(n int) error {
	return defaultCalendar.AddYears(d, n)
}

// SubtractYears calls Calendar.SubtractYears on a Calendar created with default options.
func (d *Date) SubtractYears(n int) error {
	return defaultCalendar.SubtractYears(d, n)
}

const expectedDateFormats = "'DD, MonthName YYYY', YYYY-MM-DD or YYYY/MM/DD"

// ParseDate parses a date in the formats 'DD, MonthName YYYY', YYYY-MM-DD
// or YYYY/MM/DD. Month names may be abbreviated to any unique prefix and
// are case insensitive. The returned date is validated as per Validate.
func ParseDate(val string) (Date, error) {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return Date{}, fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	if strings.Contains(val, ",") {
		return parseTextDate(val)
	}
	sep := "-"
	if strings.Contains(val, "/") {
		sep = "/"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	var year, day int
	var month Month
	var err error
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidYear, parts[0])
	}
	if month, err = ParseNumericMonth(parts[1]); err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidMonth, parts[1])
	}
	if day, err = strconv.Atoi(parts[2]); err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDay, parts[2])
	}
	return NewDate(year, month, day)
}

func parseTextDate(val string) (Date, error) {
	dayPart, rest, _ := strings.Cut(val, ",")
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return Date{}, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayPart))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDay, dayPart)
	}
	month, err := ParseMonth(fields[0])
	if err != nil {
		return Date{}, err
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidYear, fields[1])
	}
	return NewDate(year, month, day)
}

// Parse parses val as per ParseDate and stores the result in d.
func (d *Date) Parse(val string) error {
	nd, err := ParseDate(val)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
