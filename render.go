// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"fmt"
	"strings"
)

// gridWidth is the width of a rendered month: 7 columns of 2 characters
// separated by single spaces.
const gridWidth = 7*3 - 1

// RenderText returns d formatted as "DD, MonthName YYYY" after
// validating it.
func RenderText(d Date) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d.String(), nil
}

// RenderMonth returns a text calendar for the specified month of the form:
//
//	   Phalguna 1932
//	Ra So Ma Bu Gu Su Sa
//	 1  2  3  4  5  6  7
//	 8  9 10 11 12 13 14
//	15 16 17 18 19 20 21
//	22 23 24 25 26 27 28
//	29 30
//
// Weeks start on Sunday (Ravivara), trailing spaces are removed from every
// line and every line, including the last, is terminated by a newline.
func RenderMonth(year int, month Month) (string, error) {
	ndays, err := DaysInMonth(year, month)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	title := fmt.Sprintf("%s %04d", month, year)
	if pad := (gridWidth - len(title)) / 2; pad > 0 {
		out.WriteString(strings.Repeat(" ", pad))
	}
	out.WriteString(title)
	out.WriteByte('\n')
	out.WriteString(strings.Join(weekdayAbbreviations[:], " "))
	out.WriteByte('\n')

	var week [7]string
	for i := range week {
		week[i] = "  "
	}
	col := int(firstWeekday(year, month))
	for day := 1; day <= ndays; day++ {
		week[col] = fmt.Sprintf("%2d", day)
		col++
		if col == len(week) || day == ndays {
			out.WriteString(strings.TrimRight(strings.Join(week[:col], " "), " "))
			out.WriteByte('\n')
			col = 0
		}
	}
	return out.String(), nil
}
