// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package saka provides support for the Saka calendar, the civil calendar
// of India, and for converting dates between it and the Gregorian calendar.
//
// Saka years are numbered 78 years behind the Gregorian calendar and start
// on March 22nd, or March 21st in Gregorian leap years. The first month,
// Chaitra, has 30 days or 31 days in Gregorian leap years, the following
// five months have 31 days and the remaining six have 30 days.
//
// All conversions are performed via Julian day numbers as implemented by
// cloudeng.io/saka/julian:
//
//	d, _ := saka.NewDate(1932, saka.Phalguna, 26)
//	g := d.Gregorian() // 2011-03-17
//	d.String()         // 26, Phalguna 1932
//
// A Calendar provides date arithmetic and access to the current date via
// an injected Clock. Adding months or years only changes the month and year
// of a date and by default leaves the day unchanged even if it exceeds the
// number of days in the resulting month, see MonthShiftPolicy.
package saka
