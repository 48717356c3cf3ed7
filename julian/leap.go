// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"time"

	"cloudeng.io/datetime"
)

// IsLeap returns true if the given year is a leap year in the
// Gregorian calendar.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInYear returns the number of days in the given Gregorian year.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month for the given
// Gregorian year. It returns zero for months outside of the range 1-12.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}
