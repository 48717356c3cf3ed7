// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command sakacal converts dates between the Saka (Indian national) and
// Gregorian calendars, performs date arithmetic on Saka dates and displays
// monthly calendars.
//
// Saka dates may be specified as 'DD, MonthName YYYY' (month names may be
// abbreviated to any prefix), YYYY-MM-DD or YYYY/MM/DD. Gregorian dates are
// always specified as YYYY-MM-DD.
package main

import (
	"context"
	"io"
	"os"
	_ "time/tzdata"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: sakacal
summary: convert dates between the Saka and Gregorian calendars and perform Saka date arithmetic.
commands:
  - name: today
    summary: print today's Saka date.
  - name: to-gregorian
    summary: convert a Saka date to the Gregorian calendar.
    arguments:
      - <saka-date>
  - name: from-gregorian
    summary: convert a Gregorian date, in YYYY-MM-DD format, to the Saka calendar.
    arguments:
      - <gregorian-date>
  - name: weekday
    summary: print the day of the week for a Saka date.
    arguments:
      - <saka-date>
  - name: days-in-month
    summary: print the number of days in a Saka month.
    arguments:
      - <year>
      - <month>
  - name: add
    summary: add days, months or years to a Saka date.
    commands:
      - name: days
        summary: add days to a Saka date.
        arguments:
          - <saka-date>
          - <count>
      - name: months
        summary: add months to a Saka date.
        arguments:
          - <saka-date>
          - <count>
      - name: years
        summary: add years to a Saka date.
        arguments:
          - <saka-date>
          - <count>
  - name: subtract
    summary: subtract days, months or years from a Saka date.
    commands:
      - name: days
        summary: subtract days from a Saka date.
        arguments:
          - <saka-date>
          - <count>
      - name: months
        summary: subtract months from a Saka date.
        arguments:
          - <saka-date>
          - <count>
      - name: years
        summary: subtract years from a Saka date.
        arguments:
          - <saka-date>
          - <count>
  - name: equinox
    summary: print the date of the March equinox that precedes the start of a Saka year.
    arguments:
      - <year>
  - name: month
    summary: display a calendar for the specified year and month, or for the current month if none is specified.
    arguments:
      - ...
`

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &commands{out: out}
	set := func(runner subcmd.Runner, names ...string) {
		cmdSet.Set(names...).MustRunnerAndFlags(runner,
			subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	}
	set(c.today, "today")
	set(c.toGregorian, "to-gregorian")
	set(c.fromGregorian, "from-gregorian")
	set(c.weekday, "weekday")
	set(c.daysInMonth, "days-in-month")
	for _, unit := range []string{"days", "months", "years"} {
		set(c.arithmetic("add", unit), "add", unit)
		set(c.arithmetic("subtract", unit), "subtract", unit)
	}
	set(c.equinox, "equinox")
	set(c.month, "month")
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
