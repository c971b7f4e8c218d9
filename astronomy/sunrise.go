// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"errors"
	"math"
	"time"

	"cloudeng.io/astrocal/julian"
	"github.com/nathan-osman/go-sunrise"
)

// ErrNoSunrise is returned for dates and locations where the sun does not
// rise or does not set.
var ErrNoSunrise = errors.New("the sun does not rise or set on this date")

// UnixEpoch is the JD of 1970 January 1 0h UT.
const UnixEpoch = 2440587.5

const secondsPerDay = 86400

// TimeFromJD returns the UTC time for the specified JD.
func TimeFromJD(jd float64) time.Time {
	secs, frac := math.Modf((jd - UnixEpoch) * secondsPerDay)
	return time.Unix(int64(secs), int64(math.Round(frac*1e9))).UTC()
}

// JDFromTime returns the JD for the specified time.
func JDFromTime(t time.Time) float64 {
	return UnixEpoch + (float64(t.Unix())+float64(t.Nanosecond())/1e9)/secondsPerDay
}

// civilDay returns the proleptic Gregorian year, month and day of the UT
// civil day containing date as required by time.Time.
func civilDay(date julian.CalendarDate) (int, time.Month, int, error) {
	jd, err := julian.ToJD(date)
	if err != nil {
		return 0, 0, 0, err
	}
	y, m, d := TimeFromJD(jd).Date()
	return y, m, d, nil
}

// Sunrise returns the JDs of sunrise and sunset (UT) for the specified
// date, latitude and longitude. Any fractional part of date.Day is ignored.
func Sunrise(date julian.CalendarDate, lat, long float64) (rise, set float64, err error) {
	y, m, d, err := civilDay(date)
	if err != nil {
		return 0, 0, err
	}
	r, s := sunrise.SunriseSunset(lat, long, y, m, d)
	if r.IsZero() || s.IsZero() {
		return 0, 0, ErrNoSunrise
	}
	return JDFromTime(r), JDFromTime(s), nil
}

// ApparentSolarNoon returns the JD of the midpoint between sunrise and
// sunset for the specified date, latitude and longitude.
func ApparentSolarNoon(date julian.CalendarDate, lat, long float64) (float64, error) {
	rise, set, err := Sunrise(date, lat, long)
	if err != nil {
		return 0, err
	}
	return rise + (set-rise)/2, nil
}
