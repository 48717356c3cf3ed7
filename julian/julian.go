// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package julian provides conversions between dates in the proleptic
// Gregorian calendar and Julian day numbers. Julian day numbers provide
// a continuous count of days that is independent of any calendar and are
// used as the common representation when converting between calendars.
package julian

import (
	"math"
	"time"
)

// Day represents a Julian day number. Julian days start at noon and hence
// a Day with a fractional part of .5 refers to midnight at the start of
// a civil day.
type Day float64

// GregorianEpoch is the Julian day number of midnight on January 1st of
// year 1 in the proleptic Gregorian calendar.
const GregorianEpoch Day = 1721425.5

// floorDiv returns a/b rounded towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return a - b*floorDiv(a, b)
}

// FromGregorian returns the Julian day number for midnight at the start
// of the specified Gregorian date. The date is not validated.
func FromGregorian(year int, month time.Month, day int) Day {
	y, m := year-1, int(month)
	adj := 0
	if m > 2 {
		adj = -2
		if IsLeap(year) {
			adj = -1
		}
	}
	days := 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) +
		floorDiv(367*m-362, 12) + adj + day
	return GregorianEpoch - 1 + Day(days)
}

// ToGregorian returns the Gregorian date that contains the specified
// Julian day.
func ToGregorian(jd Day) (year int, month time.Month, day int) {
	wjd := jd.Midnight()
	depoch := wjd.Sub(GregorianEpoch)
	quadricent := floorDiv(depoch, 146097)
	dqc := mod(depoch, 146097)
	cent := dqc / 36524
	dcent := dqc % 36524
	quad := dcent / 1461
	dquad := dcent % 1461
	yindex := dquad / 365
	year = quadricent*400 + cent*100 + quad*4 + yindex
	// The last day of a 4 year or 400 year cycle belongs to the
	// preceding year.
	if cent != 4 && yindex != 4 {
		year++
	}
	yearday := wjd.Sub(FromGregorian(year, time.January, 1))
	leapadj := 0
	if wjd >= FromGregorian(year, time.March, 1) {
		leapadj = 2
		if IsLeap(year) {
			leapadj = 1
		}
	}
	month = time.Month(((yearday+leapadj)*12 + 373) / 367)
	day = wjd.Sub(FromGregorian(year, month, 1)) + 1
	return
}

// Weekday returns the day of the week for the specified Julian day.
func Weekday(jd Day) time.Weekday {
	return time.Weekday(mod(int(math.Floor(float64(jd)+1.5)), 7))
}

// Midnight returns the Julian day for midnight at the start of the civil
// day that contains jd.
func (jd Day) Midnight() Day {
	return Day(math.Floor(float64(jd)-0.5) + 0.5)
}

// Add returns the Julian day that is the specified number of days after jd.
func (jd Day) Add(days int) Day {
	return jd + Day(days)
}

// Sub returns the number of whole days between jd and o.
func (jd Day) Sub(o Day) int {
	return int(math.Round(float64(jd - o)))
}
