// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/saka"
)

type commands struct {
	out io.Writer
}

// session holds the state shared by all commands for a single invocation.
type session struct {
	cal    *saka.Calendar
	logger *cmdutil.Logger
}

func (s *session) Close() error {
	return s.logger.Close()
}

// run creates a session from the flags and configuration file, adds its
// logger to the context and then calls fn.
func (c *commands) run(ctx context.Context, values any, name string, fn func(context.Context, *session) error) error {
	fl := values.(*CommonFlags)
	cfg, err := fl.config(ctx)
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return err
	}
	cal, err := cfg.Calendar()
	if err != nil {
		return errors.NewM(err, logger.Close())
	}
	s := &session{cal: cal, logger: logger}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctx = ctxlog.WithAttributes(ctx, "command", name)
	ctxlog.Logger(ctx).Debug("configuration",
		"config", fl.Config,
		"location", cfg.Location,
		"today", cfg.Today,
		"policy", cal.MonthShiftPolicy().String())
	return errors.NewM(fn(ctx, s), s.Close())
}

func (c *commands) today(ctx context.Context, values any, _ []string) error {
	return c.run(ctx, values, "today", func(ctx context.Context, s *session) error {
		d, err := s.cal.Today()
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("today", "date", d.String())
		fmt.Fprintln(c.out, d)
		return nil
	})
}

func (c *commands) toGregorian(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, "to-gregorian", func(ctx context.Context, _ *session) error {
		d, err := saka.ParseDate(args[0])
		if err != nil {
			return err
		}
		g, err := saka.ToGregorian(d)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("to-gregorian", "saka", d.String(), "gregorian", g.String(), "jd", float64(d.JulianDay()))
		fmt.Fprintln(c.out, g)
		return nil
	})
}

func (c *commands) fromGregorian(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, "from-gregorian", func(ctx context.Context, _ *session) error {
		g, err := saka.ParseGregorian(args[0])
		if err != nil {
			return err
		}
		d, err := saka.FromGregorian(g)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("from-gregorian", "gregorian", g.String(), "saka", d.String(), "jd", float64(g.JulianDay()))
		fmt.Fprintln(c.out, d)
		return nil
	})
}

func (c *commands) weekday(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, "weekday", func(ctx context.Context, _ *session) error {
		d, err := saka.ParseDate(args[0])
		if err != nil {
			return err
		}
		wd, err := saka.DayOfWeek(d)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("weekday", "date", d.String(), "weekday", int(wd))
		fmt.Fprintln(c.out, saka.WeekdayName(wd))
		return nil
	})
}

// parseYearMonth parses a year and a month, the latter in either numeric
// or month name format, reporting all errors.
func parseYearMonth(yearArg, monthArg string) (int, saka.Month, error) {
	var errs errors.M
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		errs.Append(fmt.Errorf("%w: %q", saka.ErrInvalidYear, yearArg))
	}
	var month saka.Month
	errs.Append(month.Parse(monthArg))
	return year, month, errs.Err()
}

func (c *commands) daysInMonth(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, "days-in-month", func(ctx context.Context, _ *session) error {
		year, month, err := parseYearMonth(args[0], args[1])
		if err != nil {
			return err
		}
		n, err := saka.DaysInMonth(year, month)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("days-in-month", "year", year, "month", month.String(), "days", n)
		fmt.Fprintln(c.out, n)
		return nil
	})
}

type arithmeticOp func(cal *saka.Calendar, d *saka.Date, n int) error

var arithmeticOps = map[string]map[string]arithmeticOp{
	"add": {
		"days":   (*saka.Calendar).AddDays,
		"months": (*saka.Calendar).AddMonths,
		"years":  (*saka.Calendar).AddYears,
	},
	"subtract": {
		"days":   (*saka.Calendar).SubtractDays,
		"months": (*saka.Calendar).SubtractMonths,
		"years":  (*saka.Calendar).SubtractYears,
	},
}

func (c *commands) arithmetic(direction, unit string) func(context.Context, any, []string) error {
	op := arithmeticOps[direction][unit]
	name := direction + " " + unit
	return func(ctx context.Context, values any, args []string) error {
		return c.run(ctx, values, name, func(ctx context.Context, s *session) error {
			d, err := saka.ParseDate(args[0])
			if err != nil {
				return err
			}
			n, err := saka.ParseCount(args[1])
			if err != nil {
				return err
			}
			from := d
			if err := op(s.cal, &d, n); err != nil {
				return err
			}
			ctxlog.Logger(ctx).Debug(name, "from", from.String(), "count", n, "to", d.String())
			fmt.Fprintln(c.out, d)
			return nil
		})
	}
}

func (c *commands) equinox(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, "equinox", func(ctx context.Context, _ *session) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", saka.ErrInvalidYear, args[0])
		}
		g, err := saka.VernalEquinox(year)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("equinox", "year", year, "gregorian", g.String())
		// The equinox preceding year 1 has no Saka date.
		if d, err := saka.FromGregorian(g); err == nil {
			fmt.Fprintf(c.out, "%v (%v)\n", g, d)
			return nil
		}
		fmt.Fprintln(c.out, g)
		return nil
	})
}

func (c *commands) month(ctx context.Context, values any, args []string) error {
	return c.run(ctx, values, "month", func(ctx context.Context, s *session) error {
		var year int
		var month saka.Month
		switch len(args) {
		case 0:
			today, err := s.cal.Today()
			if err != nil {
				return err
			}
			year, month = today.Year, today.Month
		case 2:
			var err error
			if year, month, err = parseYearMonth(args[0], args[1]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("month: expected either no arguments or <year> <month>, got %v", args)
		}
		grid, err := saka.RenderMonth(year, month)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("month", "year", year, "month", month.String())
		fmt.Fprint(c.out, grid)
		return nil
	})
}
