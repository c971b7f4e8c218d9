// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julian

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Month of the year, January is 1.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}

func (m Month) String() string {
	if m < January || m > December {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any
// longer prefix of "January" to "December" in any case. At least three
// letters are required.
func ParseMonth(val string) (Month, error) {
	if len(val) < 3 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	folder := cases.Fold()
	lc := folder.String(val)
	for i, name := range monthNames {
		if strings.HasPrefix(folder.String(name), lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %q", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// Set implements flag.Value.
func (m *Month) Set(val string) error {
	return m.Parse(val)
}

// DaysInMonth returns the number of days in the given month for the given
// year. It follows IsLeapYear and hence does not account for the days
// dropped from October 1582.
func DaysInMonth(year int, month Month) int {
	switch month {
	case February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// Weekday specifies a day of the week, Sunday is 0.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayNames[d]
}
