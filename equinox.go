// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import (
	"cloudeng.io/saka/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// VernalEquinox returns the Gregorian date of the March equinox in the
// Gregorian year in which the specified Saka year starts. The date is
// that of the equinox in dynamical time which differs from universal
// time by at most a few minutes for modern dates. For years within a few
// millennia of the present, 1 Chaitra falls one to three days after it;
// the equinox computation loses accuracy well outside of that range.
// The equinox itself falls in the preceding Saka year.
func VernalEquinox(year int) (Gregorian, error) {
	if err := Validate(year, Chaitra, 1); err != nil {
		return Gregorian{}, err
	}
	y, m, d := julian.ToGregorian(julian.Day(solstice.March(year + EpochOffset)))
	return Gregorian{Year: y, Month: m, Day: d}, nil
}
