// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/saka/julian"
)

const (
	// MinYear and MaxYear are the range of supported Saka years, that is,
	// positive years of at most 4 digits.
	MinYear = 1
	MaxYear = 9999
)

var (
	ErrInvalidYear  = errors.New("invalid year")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
	// ErrInvalidCount is returned by the date arithmetic methods for counts
	// that are not non-negative integers.
	ErrInvalidCount = errors.New("invalid count")
)

// Validate checks that year, month and day are within the bounds
// supported by the Saka calendar. The day is only checked to be in the
// range 1-31 and not against the number of days in the month, use
// DaysInMonth for that. All invalid fields are reported and the returned
// error may be tested for each of ErrInvalidYear, ErrInvalidMonth and
// ErrInvalidDay using errors.Is.
func Validate(year int, month Month, day int) error {
	return validate(year, MaxYear, int(month), day, 31)
}

// ValidateGregorian is like Validate for Gregorian dates. The day is
// checked against the number of days in the month and the range of
// years is that needed to represent all supported Saka years.
func ValidateGregorian(year int, month time.Month, day int) error {
	return validate(year, MaxYear+EpochOffset, int(month), day, julian.DaysInMonth(year, month))
}

func validate(year, maxYear, month, day, maxDay int) error {
	var errs errors.M
	if year < MinYear || year > maxYear {
		errs.Append(fmt.Errorf("%w: %d", ErrInvalidYear, year))
	}
	if month < 1 || month > 12 {
		errs.Append(fmt.Errorf("%w: %d", ErrInvalidMonth, month))
	}
	if day < 1 || day > 31 || (maxDay > 0 && day > maxDay) {
		errs.Append(fmt.Errorf("%w: %d", ErrInvalidDay, day))
	}
	return errs.Err()
}

// ParseCount parses a count of days, months or years as used by the
// date arithmetic methods. Anything other than a non-negative integer
// results in ErrInvalidCount.
func ParseCount(val string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, val)
	}
	return n, nil
}

func checkCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return nil
}
