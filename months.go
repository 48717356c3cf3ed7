// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a month of the Saka calendar, 1-12.
type Month int

const (
	Chaitra Month = iota + 1
	Vaisakha
	Jyaistha
	Asadha
	Sravana
	Bhadra
	Asvina
	Kartika
	Agrahayana
	Pausa
	Magha
	Phalguna
)

var (
	monthNames = [12]string{
		"Chaitra", "Vaisakha", "Jyaistha", "Asadha", "Sravana", "Bhadra",
		"Asvina", "Kartika", "Agrahayana", "Pausa", "Magha", "Phalguna",
	}

	// indexed by time.Weekday.
	weekdayNames = [7]string{
		"Ravivara", "Somavara", "Mangalavara", "Budhavara",
		"Guruvara", "Sukravara", "Sanivara",
	}
	weekdayAbbreviations = [7]string{"Ra", "So", "Ma", "Bu", "Gu", "Su", "Sa"}
)

// String returns the name of the month.
func (m Month) String() string {
	if m < Chaitra || m > Phalguna {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// WeekdayName returns the Saka name of the specified day of the week.
func WeekdayName(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return "Weekday(" + strconv.Itoa(int(wd)) + ")"
	}
	return weekdayNames[wd]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name, or any prefix of it, in either lower or
// upper case. Prefixes are matched against the months in calendar order,
// so "Ma" is Magha.
func ParseMonth(val string) (Month, error) {
	if len(val) == 0 {
		return 0, fmt.Errorf("%w: empty month name", ErrInvalidMonth)
	}
	lc := strings.ToLower(val)
	for i := range monthNames {
		if strings.HasPrefix(strings.ToLower(monthNames[i]), lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidMonth, val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}
