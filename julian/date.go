// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CalendarDate represents a date in the civil calendar using astronomical
// year numbering. Day may include a fractional part that represents the
// time of day as a fraction of 24 hours, so that 4.81 is 19:26:24 on the
// 4th. The range of Day is not checked against the month.
type CalendarDate struct {
	Year  int
	Month Month
	Day   float64
}

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
func NewCalendarDate(year int, month Month, day float64) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Valid returns false for the dates that were dropped from the calendar
// when the Gregorian calendar was adopted, ie. 1582 October 5 through 14.
func (cd CalendarDate) Valid() bool {
	return cd.Year != 1582 || cd.Month != October || cd.Day < 5 || cd.Day >= 15
}

// String returns the date as YYYY-MM-DD with any fractional day appended
// to DD, eg. 1957-10-04.81 or -0584-05-28.
func (cd CalendarDate) String() string {
	var out strings.Builder
	year := cd.Year
	if year < 0 {
		out.WriteByte('-')
		year = -year
	}
	fmt.Fprintf(&out, "%04d-%02d-", year, int(cd.Month))
	day := roundDay(cd.Day)
	if day >= 0 && day < 10 {
		out.WriteByte('0')
	}
	out.WriteString(strconv.FormatFloat(day, 'f', -1, 64))
	return out.String()
}

// ParseCalendarDate parses a date in the format produced by String.
// The month may be specified numerically or by name, eg. 1957-Oct-04.81,
// and a leading '-' denotes a negative (astronomical) year.
func ParseCalendarDate(val string) (CalendarDate, error) {
	sign, rest := 1, val
	if strings.HasPrefix(rest, "-") {
		sign, rest = -1, rest[1:]
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("invalid date %q, expected format 'YYYY-MM-DD[.fraction]'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid year: %q", parts[0])
	}
	var month Month
	if err := month.Parse(parts[1]); err != nil {
		return CalendarDate{}, err
	}
	day, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || math.IsNaN(day) || math.IsInf(day, 0) {
		return CalendarDate{}, fmt.Errorf("invalid day: %q", parts[2])
	}
	return CalendarDate{Year: sign * year, Month: month, Day: day}, nil
}

// roundDay rounds to 5 decimal places, about a second of time, half to
// even.
func roundDay(day float64) float64 {
	return math.RoundToEven(day*1e5) / 1e5
}
