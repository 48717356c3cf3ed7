// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka

import "time"

// Clock provides the current Gregorian date.
type Clock interface {
	Today() Gregorian
}

// SystemClock is a Clock that reads the system time in the specified
// location, or time.Local if Location is nil.
type SystemClock struct {
	Location *time.Location
}

// Today implements Clock.
func (c SystemClock) Today() Gregorian {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return GregorianFromTime(now)
}

// FixedClock is a Clock that always returns the same date.
type FixedClock Gregorian

// Today implements Clock.
func (c FixedClock) Today() Gregorian {
	return Gregorian(c)
}
