// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian_test

import (
	"testing"

	"cloudeng.io/astrocal/julian"
)

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month julian.Month
	}{
		{"1", julian.January},
		{"01", julian.January},
		{"12", julian.December},
		{"Jan", julian.January},
		{"jan", julian.January},
		{"JANUARY", julian.January},
		{"Sept", julian.September},
		{"oct", julian.October},
		{"OcTober", julian.October},
		{"jun", julian.June},
		{"jul", julian.July},
	} {
		var m julian.Month
		if err := m.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, val := range []string{"", "0", "13", "ju", "Octobers", "xyz", "-1"} {
		var m julian.Month
		if err := m.Set(val); err == nil {
			t.Errorf("failed to return an error: %v", val)
		}
	}

	if got, want := julian.October.String(), "October"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := julian.Month(13).String(), "%!Month(13)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := julian.Friday.String(), "Friday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarDateString(t *testing.T) {
	for _, tc := range []struct {
		date julian.CalendarDate
		str  string
	}{
		{nd(1957, julian.October, 4.81), "1957-10-04.81"},
		{nd(333, julian.January, 27.5), "0333-01-27.5"},
		{nd(-584, julian.May, 28.63), "-0584-05-28.63"},
		{nd(2000, julian.December, 31), "2000-12-31"},
		{nd(0, julian.March, 1), "0000-03-01"},
		{nd(2024, julian.July, 4.123456), "2024-07-04.12346"},
	} {
		if got, want := tc.date.String(), tc.str; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestParseCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		val  string
		date julian.CalendarDate
	}{
		{"1957-10-04.81", nd(1957, julian.October, 4.81)},
		{"1957-Oct-4.81", nd(1957, julian.October, 4.81)},
		{"0333-01-27.5", nd(333, julian.January, 27.5)},
		{"-0584-05-28.63", nd(-584, julian.May, 28.63)},
		{"-584-may-28.63", nd(-584, julian.May, 28.63)},
		{"2000-12-31", nd(2000, julian.December, 31)},
		{"1957-10-45", nd(1957, julian.October, 45)},
	} {
		cd, err := julian.ParseCalendarDate(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := cd, tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		rt, err := julian.ParseCalendarDate(cd.String())
		if err != nil {
			t.Errorf("failed: %v: %v", cd, err)
			continue
		}
		if got, want := rt, cd; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, val := range []string{"", "1957", "1957-10", "1957-13-01", "x-10-01", "1957-10-x", "1957-10-01-02", "1957-10-NaN"} {
		if _, err := julian.ParseCalendarDate(val); err == nil {
			t.Errorf("failed to return an error: %v", val)
		}
	}
}
