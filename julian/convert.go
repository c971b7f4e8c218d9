// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"fmt"
	"math"
)

const (
	// GregorianReform is the JD of 1582 October 15 0h, the first day of
	// the Gregorian calendar.
	GregorianReform = 2299160.5

	// lastJulianDayNumber is the last integer day count, after the 0.5
	// realignment to midnight, that belongs to the Julian calendar.
	lastJulianDayNumber = 2299160

	reformYear = 1582
)

// FromCalendar returns the Julian Day Number for the specified year, month
// and (fractional) day. It returns an error wrapping ErrInvalidCalendarDate
// for 1582 October 5 through 14. No other validation is performed, a day
// outside of the month simply yields a JD outside of that month.
// FromJD inverts FromCalendar only for dates from -4712 January 1.0
// (JD -0.5) onward.
func FromCalendar(year int, month Month, day float64) (float64, error) {
	y, m := year, int(month)
	if month == January || month == February {
		y--
		m += 12
	}
	var b int
	switch {
	case y > reformYear || (y == reformYear && m > int(October)) || (y == reformYear && m == int(October) && day >= 15):
		a := y / 100
		b = 2 - a + a/4
	case y < reformYear || (y == reformYear && m < int(October)) || (y == reformYear && m == int(October) && day < 5):
		b = 0
	default:
		return 0, fmt.Errorf("%v: %w", CalendarDate{Year: year, Month: month, Day: day}, ErrInvalidCalendarDate)
	}
	// The truncating conversions to int are part of the algorithm.
	days := int(365.25*float64(y+4716)) + int(30.6001*float64(m+1))
	return float64(days) + day + float64(b) - 1524.5, nil
}

// ToJD returns the Julian Day Number for the specified date, see FromCalendar.
func ToJD(cd CalendarDate) (float64, error) {
	return FromCalendar(cd.Year, cd.Month, cd.Day)
}

// MustToJD is like ToJD but panics on error.
func MustToJD(cd CalendarDate) float64 {
	jd, err := ToJD(cd)
	if err != nil {
		panic(err)
	}
	return jd
}

// FromJD returns the calendar date for the specified Julian Day Number.
// The day is rounded to 5 decimal places to remove the noise accumulated
// by the intermediate truncations. The conversions truncate towards zero
// rather than flooring, so only JDs of -0.5 or more are guaranteed to yield
// a normalized date that ToJD converts back to the same JD. Between -1.5
// and -0.5 the result is -4712 January 0.x rather than -4713 December 31.x
// and below about -1403 the result does not convert back at all.
func FromJD(jd float64) CalendarDate {
	jd += 0.5
	z := int(jd)
	f := jd - float64(z)
	a := z
	if z > lastJulianDayNumber {
		alpha := int((float64(z) - 1867216.25) / 36524.25)
		a = z + 1 + alpha - alpha/4
	}
	b := a + 1524
	c := int((float64(b) - 122.1) / 365.25)
	d := int(365.25 * float64(c))
	e := int(float64(b-d) / 30.6001)

	cd := CalendarDate{
		Day: roundDay(float64(b-d-int(30.6001*float64(e))) + f),
	}
	if e < 14 {
		cd.Month = Month(e - 1)
	} else {
		cd.Month = Month(e - 13)
	}
	if cd.Month == January || cd.Month == February {
		cd.Year = c - 4715
	} else {
		cd.Year = c - 4716
	}
	return cd
}

// DayNumber returns the integer, chronological, Julian Day Number of the
// civil day containing the date, ie. the JD of noon on that day.
func DayNumber(cd CalendarDate) (int, error) {
	jd, err := ToJD(cd)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(jd + 0.5)), nil
}
