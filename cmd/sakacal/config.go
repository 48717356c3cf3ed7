// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/saka"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config   string `subcmd:"config,,'YAML configuration file, see Config for its format'"`
	Location string `subcmd:"location,,'IANA time zone used to determine the current date, e.g. Asia/Kolkata. The local time zone is used by default.'"`
	Today    string `subcmd:"today,,'use the specified Gregorian date, in YYYY-MM-DD format, as the current date'"`
	Clamp    bool   `subcmd:"clamp,false,'clamp the day to the last day of the month when adding or subtracting months or years'"`
}

// Config represents the optional YAML configuration file, for example:
//
//	logging:
//	  level: 3
//	  file: /tmp/sakacal.log
//	  format: json
//	location: Asia/Kolkata
//	today: "2011-03-17"
//	month_shift_policy: clamp
//
// Flags that are set to a value other than their default override the
// corresponding values in the file. Consequently a flag cannot restore a
// default that the file changes, for example --log-level=0 does not lower
// a level of 3 set in the file and --log-format=json does not override
// format: text; edit the file instead.
type Config struct {
	Logging          cmdutil.LoggingConfig `yaml:"logging"`
	Location         string                `yaml:"location"`
	Today            string                `yaml:"today"`
	MonthShiftPolicy string                `yaml:"month_shift_policy"`
}

// defaultLogFormat is the default value of the --log-format flag.
const defaultLogFormat = "json"

// config returns the configuration obtained by reading the configuration
// file, if any, and then applying the flags.
func (fl *CommonFlags) config(ctx context.Context) (Config, error) {
	var cfg Config
	if len(fl.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, fl.Config, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to read config file %q: %w", fl.Config, err)
		}
	}
	lf := fl.LoggingConfig()
	if lf.Level > 0 {
		cfg.Logging.Level = lf.Level
	}
	if len(lf.File) > 0 {
		cfg.Logging.File = lf.File
	}
	if lf.Format != defaultLogFormat || len(cfg.Logging.Format) == 0 {
		cfg.Logging.Format = lf.Format
	}
	cfg.Logging.SourceCode = cfg.Logging.SourceCode || lf.SourceCode
	if len(fl.Location) > 0 {
		cfg.Location = fl.Location
	}
	if len(fl.Today) > 0 {
		cfg.Today = fl.Today
	}
	if fl.Clamp {
		cfg.MonthShiftPolicy = saka.ClampDay.String()
	}
	return cfg, nil
}

func parseMonthShiftPolicy(val string) (saka.MonthShiftPolicy, error) {
	switch val {
	case "", saka.PreserveDay.String():
		return saka.PreserveDay, nil
	case saka.ClampDay.String():
		return saka.ClampDay, nil
	}
	return saka.PreserveDay, fmt.Errorf("unknown month shift policy %q, expected %q or %q", val, saka.PreserveDay, saka.ClampDay)
}

// Calendar returns the saka.Calendar specified by the configuration.
// All invalid fields are reported.
func (cfg Config) Calendar() (*saka.Calendar, error) {
	var errs errors.M
	var opts []saka.Option
	switch {
	case len(cfg.Today) > 0:
		g, err := saka.ParseGregorian(cfg.Today)
		errs.Append(err)
		opts = append(opts, saka.WithClock(saka.FixedClock(g)))
	case len(cfg.Location) > 0:
		loc, err := time.LoadLocation(cfg.Location)
		errs.Append(err)
		opts = append(opts, saka.WithClock(saka.SystemClock{Location: loc}))
	}
	policy, err := parseMonthShiftPolicy(cfg.MonthShiftPolicy)
	errs.Append(err)
	opts = append(opts, saka.WithMonthShiftPolicy(policy))
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return saka.NewCalendar(opts...), nil
}
