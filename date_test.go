// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka_test

import (
	"testing"
	"time"

	"cloudeng.io/saka"
)

func TestDateParse(t *testing.T) {
	nd := newDate
	for _, tc := range []struct {
		val  string
		when saka.Date
	}{
		{"26, Phalguna 1932", nd(1932, 12, 26)},
		{"26, phal 1932", nd(1932, 12, 26)},
		{"01, Chaitra 1935", nd(1935, 1, 1)},
		{" 1,  CHAITRA  0001 ", nd(1, 1, 1)},
		{"1932-12-26", nd(1932, 12, 26)},
		{"1932/12/26", nd(1932, 12, 26)},
		{"1932-7-31", nd(1932, 7, 31)},
	} {
		var when saka.Date
		if err := when.Parse(tc.val); err != nil {
			t.Errorf("failed: %q: %v", tc.val, err)
			continue
		}
		if got, want := when, tc.when; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
		// Parsing the rendered date must produce the same date.
		var again saka.Date
		if err := again.Parse(when.String()); err != nil || again != when {
			t.Errorf("%q: got %v, %v", when.String(), again, err)
		}
	}

	for _, val := range []string{
		"",
		"26 Phalguna 1932",
		"32, Chaitra 1932",
		"26, Foo 1932",
		"26, Phalguna",
		"x, Phalguna 1932",
		"1932-13-01",
		"1932-01",
		"1932-01-xx",
		"-2011-01-01",
	} {
		var d saka.Date
		if err := d.Parse(val); err == nil {
			t.Errorf("failed to return an error: %q", val)
		}
	}
}

func TestDateString(t *testing.T) {
	for _, tc := range []struct {
		date saka.Date
		text string
	}{
		{newDate(1932, saka.Phalguna, 26), "26, Phalguna 1932"},
		{newDate(1932, saka.Asadha, 1), "01, Asadha 1932"},
		{newDate(78, saka.Chaitra, 9), "09, Chaitra 0078"},
	} {
		if got, want := tc.date.String(), tc.text; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		text, err := saka.RenderText(tc.date)
		if err != nil {
			t.Errorf("%v: %v", tc.date, err)
		}
		if got, want := text, tc.text; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, err := saka.RenderText(newDate(1932, 13, 1)); err == nil {
		t.Errorf("expected an error")
	}
}

func TestWeekday(t *testing.T) {
	d := newDate(1932, saka.Phalguna, 26)
	wd, err := saka.DayOfWeek(d)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := wd, time.Weekday(4); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.WeekdayName(), "Guruvara"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Month.String(), "Phalguna"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	names := []string{"Ravivara", "Somavara", "Mangalavara", "Budhavara", "Guruvara", "Sukravara", "Sanivara"}
	// 1 Phalguna 1932 is a Sunday.
	start := newDate(1932, saka.Phalguna, 1)
	for i := range 14 {
		d := start
		d.Day += i
		if got, want := d.Weekday(), time.Weekday(i%7); got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if got, want := d.WeekdayName(), names[i%7]; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if got, want := d.Weekday(), d.Gregorian().Time(nil).Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
	}
	if _, err := saka.DayOfWeek(newDate(0, 1, 1)); err == nil {
		t.Errorf("expected an error")
	}
}

func TestCompare(t *testing.T) {
	nd := newDate
	for _, tc := range []struct {
		a, b saka.Date
		cmp  int
	}{
		{nd(1932, 1, 1), nd(1932, 1, 1), 0},
		{nd(1932, 1, 1), nd(1932, 1, 2), -1},
		{nd(1932, 2, 1), nd(1932, 1, 31), 1},
		{nd(1931, 12, 30), nd(1932, 1, 1), -1},
	} {
		if got, want := tc.a.Compare(tc.b), tc.cmp; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.a.Compare(tc.b), tc.a.JulianDay().Sub(tc.b.JulianDay()); (got < 0) != (want < 0) || (got == 0) != (want == 0) {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func TestGregorian(t *testing.T) {
	g, err := saka.ParseGregorian("2011-03-17")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g, newGregorian(2011, 3, 17); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.String(), "2011-03-17"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.AddDays(15), newGregorian(2011, 4, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.AddDays(-17), newGregorian(2011, 2, 28); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	loc := time.FixedZone("IST", 5*60*60+30*60)
	if got, want := saka.GregorianFromTime(g.Time(loc)), g; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []string{"", "2011-02-29", "17/03/2011", "2011-3-17"} {
		if _, err := saka.ParseGregorian(val); err == nil {
			t.Errorf("%q: expected an error", val)
		}
	}
}
