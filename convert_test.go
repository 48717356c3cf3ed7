// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package saka_test

import (
	"testing"
	"time"

	"cloudeng.io/saka"
	"cloudeng.io/saka/julian"
)

func newDate(y int, m saka.Month, d int) saka.Date {
	return saka.Date{Year: y, Month: m, Day: d}
}

func newGregorian(y int, m time.Month, d int) saka.Gregorian {
	return saka.Gregorian{Year: y, Month: m, Day: d}
}

func TestKnownConversions(t *testing.T) {
	nd, ng := newDate, newGregorian
	for _, tc := range []struct {
		saka      saka.Date
		gregorian saka.Gregorian
	}{
		{nd(1, saka.Chaitra, 1), ng(79, 3, 22)},
		{nd(1921, saka.Pausa, 11), ng(2000, 1, 1)},
		{nd(1932, saka.Chaitra, 1), ng(2010, 3, 22)},
		{nd(1932, saka.Vaisakha, 1), ng(2010, 4, 21)},
		{nd(1932, saka.Jyaistha, 1), ng(2010, 5, 22)},
		{nd(1932, saka.Asadha, 1), ng(2010, 6, 22)},
		{nd(1932, saka.Sravana, 1), ng(2010, 7, 23)},
		{nd(1932, saka.Bhadra, 1), ng(2010, 8, 23)},
		{nd(1932, saka.Asvina, 1), ng(2010, 9, 23)},
		{nd(1932, saka.Kartika, 1), ng(2010, 10, 23)},
		{nd(1932, saka.Agrahayana, 1), ng(2010, 11, 22)},
		{nd(1932, saka.Pausa, 1), ng(2010, 12, 22)},
		{nd(1932, saka.Magha, 1), ng(2011, 1, 21)},
		{nd(1932, saka.Phalguna, 1), ng(2011, 2, 20)},
		{nd(1932, saka.Phalguna, 26), ng(2011, 3, 17)},
		{nd(1932, saka.Phalguna, 30), ng(2011, 3, 21)},
		{nd(1933, saka.Pausa, 11), ng(2012, 1, 1)},
		{nd(1933, saka.Phalguna, 10), ng(2012, 2, 29)},
		{nd(1933, saka.Phalguna, 30), ng(2012, 3, 20)},
		{nd(1934, saka.Chaitra, 1), ng(2012, 3, 21)},
		{nd(1934, saka.Chaitra, 31), ng(2012, 4, 20)},
		{nd(1934, saka.Vaisakha, 1), ng(2012, 4, 21)},
		{nd(1946, saka.Asvina, 1), ng(2024, 9, 23)},
		{nd(1947, saka.Chaitra, 1), ng(2025, 3, 22)},
	} {
		jd := saka.ToJulian(tc.saka.Year, tc.saka.Month, tc.saka.Day)
		if got, want := jd, tc.gregorian.JulianDay(); got != want {
			t.Errorf("%v: got %v, want %v", tc.saka, got, want)
		}
		if got, want := tc.saka.Gregorian(), tc.gregorian; got != want {
			t.Errorf("%v: got %v, want %v", tc.saka, got, want)
		}
		y, m, d := saka.FromJulian(jd)
		if got, want := newDate(y, m, d), tc.saka; got != want {
			t.Errorf("%v: got %v, want %v", tc.gregorian, got, want)
		}
		got, err := saka.FromGregorian(tc.gregorian)
		if err != nil {
			t.Errorf("%v: %v", tc.gregorian, err)
			continue
		}
		if want := tc.saka; got != want {
			t.Errorf("%v: got %v, want %v", tc.gregorian, got, want)
		}
	}
}

func TestSakaRoundTrip(t *testing.T) {
	for _, span := range [][2]int{{1, 10}, {1820, 1830}, {1900, 2000}, {9990, 9998}} {
		prev := saka.ToJulian(span[0], saka.Chaitra, 1) - 1
		for year := span[0]; year <= span[1]; year++ {
			yearLength := 0
			for month := saka.Chaitra; month <= saka.Phalguna; month++ {
				ndays, err := saka.DaysInMonth(year, month)
				if err != nil {
					t.Fatalf("%v %v: %v", year, month, err)
				}
				yearLength += ndays
				for day := 1; day <= ndays; day++ {
					jd := saka.ToJulian(year, month, day)
					if got, want := jd, prev+1; got != want {
						t.Fatalf("%v: got %v, want %v", newDate(year, month, day), got, want)
					}
					prev = jd
					y, m, d := saka.FromJulian(jd)
					if y != year || m != month || d != day {
						t.Fatalf("%v: got %v", newDate(year, month, day), newDate(y, m, d))
					}
				}
			}
			if got, want := yearLength, julian.DaysInYear(year+saka.EpochOffset); got != want {
				t.Errorf("%v: got %v, want %v", year, got, want)
			}
		}
	}
}

func TestGregorianRoundTrip(t *testing.T) {
	for _, span := range [][2]int{{79, 85}, {1896, 1904}, {1996, 2030}, {10070, 10076}} {
		g := newGregorian(span[0], time.January, 1)
		if span[0] == 79 {
			g = newGregorian(79, time.March, 22)
		}
		for g.Year <= span[1] {
			d, err := saka.FromGregorian(g)
			if err != nil {
				t.Fatalf("%v: %v", g, err)
			}
			back, err := saka.ToGregorian(d)
			if err != nil {
				t.Fatalf("%v: %v", d, err)
			}
			if back != g {
				t.Fatalf("%v: got %v via %v", g, back, d)
			}
			g = g.AddDays(1)
		}
	}
}

func TestOutOfRangeConversions(t *testing.T) {
	for _, g := range []saka.Gregorian{
		newGregorian(79, 3, 21),
		newGregorian(1, 1, 1),
		newGregorian(10078, 3, 22),
		newGregorian(2023, 2, 29),
		newGregorian(2023, 13, 1),
	} {
		if _, err := saka.FromGregorian(g); err == nil {
			t.Errorf("%v: expected an error", g)
		}
	}
	if _, err := saka.ToGregorian(newDate(0, saka.Chaitra, 1)); err == nil {
		t.Errorf("expected an error")
	}
}

func TestChaitraLength(t *testing.T) {
	for _, tc := range []struct {
		year, days int
	}{
		{1921, 30}, // 1999
		{1922, 31}, // 2000
		{1932, 30}, // 2010
		{1934, 31}, // 2012
		{2022, 30}, // 2100
	} {
		if got, want := saka.ChaitraLength(tc.year), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		n, err := saka.DaysInMonth(tc.year, saka.Chaitra)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := n, tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}
