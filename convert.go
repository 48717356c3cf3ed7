// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"time"

	"cloudeng.io/saka/julian"
)

const (
	// EpochOffset is the number of years between the start of the
	// Gregorian and Saka eras.
	EpochOffset = 78

	// newYearDay is the zero based day of the Gregorian year on which
	// 1 Chaitra falls, ie. March 22nd or March 21st in leap years.
	newYearDay = 80

	longMonths       = 5 // Vaisakha to Bhadra
	longMonthLength  = 31
	shortMonthLength = 30
)

// ChaitraLength returns the number of days in Chaitra for the specified
// Saka year, 31 if the Gregorian year in which it starts is a leap year,
// 30 otherwise.
func ChaitraLength(year int) int {
	if julian.IsLeap(year + EpochOffset) {
		return 31
	}
	return 30
}

// ToJulian returns the Julian day number for midnight at the start of the
// specified Saka date. The date is not validated.
func ToJulian(year int, month Month, day int) julian.Day {
	gyear := year + EpochOffset
	start := julian.FromGregorian(gyear, time.March, 22)
	if julian.IsLeap(gyear) {
		start = julian.FromGregorian(gyear, time.March, 21)
	}
	if month == Chaitra {
		return start.Add(day - 1)
	}
	jd := start.Add(ChaitraLength(year))
	jd = jd.Add(min(int(month)-2, longMonths) * longMonthLength)
	if month >= Kartika {
		jd = jd.Add((int(month) - int(Asvina)) * shortMonthLength)
	}
	return jd.Add(day - 1)
}

// FromJulian returns the Saka date that contains the specified Julian day.
func FromJulian(jd julian.Day) (year int, month Month, day int) {
	jd = jd.Midnight()
	gyear, _, _ := julian.ToGregorian(jd)
	year = gyear - EpochOffset
	yday := jd.Sub(julian.FromGregorian(gyear, time.January, 1))
	chaitra := ChaitraLength(year)
	if yday < newYearDay {
		// The day falls at the end of the preceding Saka year.
		year--
		yday += chaitra + longMonths*longMonthLength + 3*shortMonthLength + 10 + newYearDay
	}
	yday -= newYearDay
	if yday < chaitra {
		return year, Chaitra, yday + 1
	}
	mday := yday - chaitra
	if mday < longMonths*longMonthLength {
		return year, Month(mday/longMonthLength) + Vaisakha, mday%longMonthLength + 1
	}
	mday -= longMonths * longMonthLength
	return year, Month(mday/shortMonthLength) + Asvina, mday%shortMonthLength + 1
}
