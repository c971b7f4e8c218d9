// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import "math"

// DayOfWeek returns the day of the week for the civil day that contains
// the specified JD. The fractional part of the JD is removed so that the
// JD refers to the preceding midnight before the 1.5 day shift to the
// weekday of JD 0 is applied.
func DayOfWeek(jd float64) Weekday {
	midnight := math.Floor(jd+0.5) - 0.5
	w := math.Mod(midnight+1.5, 7)
	if w < 0 {
		w += 7
	}
	return Weekday(w)
}

// DateDayOfWeek returns the day of the week for the specified date.
func DateDayOfWeek(cd CalendarDate) (Weekday, error) {
	jd, err := ToJD(cd)
	if err != nil {
		return 0, err
	}
	return DayOfWeek(jd), nil
}

// DayOfYear returns the ordinal day of the year, 1 for January 1. Any
// fractional part of the day is ignored.
func DayOfYear(cd CalendarDate) int {
	k := 2
	if IsLeapYear(cd.Year) {
		k = 1
	}
	m := int(cd.Month)
	return 275*m/9 - k*((m+9)/12) + int(cd.Day) - 30
}

// IsLeapYear returns true if year is a leap year. Years before 1582 use
// the Julian rule and 1582 onwards the Gregorian rule, so 1582 as a whole
// is treated as Gregorian.
func IsLeapYear(year int) bool {
	if year < reformYear {
		return year%4 == 0
	}
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// Interval returns the number of days from jd1 to jd2, which is negative
// when jd2 precedes jd1.
func Interval(jd1, jd2 float64) float64 {
	return jd2 - jd1
}

// DateInterval returns the number of days from cd1 to cd2.
func DateInterval(cd1, cd2 CalendarDate) (float64, error) {
	jd1, err := ToJD(cd1)
	if err != nil {
		return 0, err
	}
	jd2, err := ToJD(cd2)
	if err != nil {
		return 0, err
	}
	return Interval(jd1, jd2), nil
}
