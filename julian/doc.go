// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package julian converts between dates in the civil (mixed Julian and
// Gregorian) calendar and Julian Day Numbers, and derives the day of the
// week, the day of the year, leap years and intervals from either form.
//
// Years use astronomical numbering, that is, 1 BCE is year 0 and 2 BCE is
// year -1. Dates before 1582 October 5 are interpreted in the proleptic
// Julian calendar and dates on or after 1582 October 15 in the Gregorian
// calendar. The ten days in between were dropped when the Gregorian calendar
// was adopted and are rejected with ErrInvalidCalendarDate.
//
// A Julian Day Number (JD) is a float64 that counts days since -4712
// January 1, 12:00 UT, so that the fractional part counts the time elapsed
// since noon:
//
//	jd, err := julian.FromCalendar(1957, julian.October, 4.81)
//	// jd == 2436116.31
//	date := julian.FromJD(jd)
//	// date == julian.CalendarDate{Year: 1957, Month: julian.October, Day: 4.81}
//
// FromJD and ToJD are exact inverses for JDs of -0.5 (-4712 January 1.0)
// and later, which covers every historical date. Earlier JDs are not
// supported.
//
// All of the functions in this package are pure and safe for concurrent use.
package julian
