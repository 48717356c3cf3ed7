// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/saka/julian"
)

// Gregorian represents a date in the Gregorian calendar. It is used when
// converting to and from Saka dates.
type Gregorian struct {
	Year  int
	Month time.Month
	Day   int
}

// GregorianFromTime returns the Gregorian date for t in t's location.
func GregorianFromTime(t time.Time) Gregorian {
	y, m, d := t.Date()
	return Gregorian{Year: y, Month: m, Day: d}
}

// ParseGregorian parses a date in the format YYYY-MM-DD.
func ParseGregorian(val string) (Gregorian, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(val))
	if err != nil {
		return Gregorian{}, fmt.Errorf("invalid gregorian date %q, expected YYYY-MM-DD: %w", val, err)
	}
	return GregorianFromTime(t), nil
}

// Time returns midnight on the date in the specified location,
// a nil location is treated as time.UTC.
func (g Gregorian) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, loc)
}

// JulianDay returns the Julian day number for midnight at the start of g.
func (g Gregorian) JulianDay() julian.Day {
	return julian.FromGregorian(g.Year, g.Month, g.Day)
}

// AddDays returns the date that is n days after g, n may be negative.
func (g Gregorian) AddDays(n int) Gregorian {
	return GregorianFromTime(g.Time(time.UTC).AddDate(0, 0, n))
}

func (g Gregorian) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
}
