// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides the times of the equinoxes and solstices,
// low accuracy solar coordinates and sunrise/sunset, all expressed as
// Julian Day Numbers as per cloudeng.io/astrocal/julian.
package astronomy

import (
	"fmt"
	"math"
	"strings"

	"cloudeng.io/astrocal/degrees"
	"cloudeng.io/astrocal/julian"
	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
	"golang.org/x/text/cases"
)

// Season identifies an equinox or solstice.
type Season int

const (
	MarchEquinox Season = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

// Northern hemisphere names for the start of each season.
const (
	Spring = MarchEquinox
	Summer = JuneSolstice
	Autumn = SeptemberEquinox
	Winter = DecemberSolstice
)

// Seasons lists all of the seasons in calendar order.
var Seasons = []Season{MarchEquinox, JuneSolstice, SeptemberEquinox, DecemberSolstice}

var seasonNames = []string{"march", "june", "september", "december"}

// String returns the name of the month in which the season starts, in
// lower case, as accepted by ParseSeason.
func (s Season) String() string {
	if s < MarchEquinox || s > DecemberSolstice {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonNames[s]
}

// ParseSeason parses a season given either as the month in which it occurs,
// eg. "march" or "mar", or its northern hemisphere name, eg. "spring".
func ParseSeason(val string) (Season, error) {
	lc := cases.Fold().String(val)
	switch lc {
	case "spring":
		return Spring, nil
	case "summer":
		return Summer, nil
	case "autumn", "fall":
		return Autumn, nil
	case "winter":
		return Winter, nil
	}
	if len(lc) >= 3 {
		for i, name := range seasonNames {
			if strings.HasPrefix(name, lc) {
				return Season(i), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid season: %q", val)
}

// Coefficients for the mean equinoxes and solstices as printed in Meeus,
// Astronomical Algorithms (2nd ed.), tables 27.A (years -1000 to 1000)
// and 27.B (years 1000 to 3000). learnmeeus/v3/solstice uses -0.05232
// for the Y^2 term of the June solstice in table 27.A, the table has
// -0.05323.
var (
	meanBefore1000 = [4][5]float64{
		{1721139.29189, 365242.13740, 0.06134, 0.00111, -0.00071},
		{1721233.25401, 365241.72562, -0.05323, 0.00907, 0.00025},
		{1721325.70455, 365242.49558, -0.11677, -0.00297, 0.00074},
		{1721414.39987, 365242.88257, -0.00769, -0.00933, -0.00006},
	}
	meanAfter1000 = [4][5]float64{
		{2451623.80984, 365242.37404, 0.05169, -0.00411, -0.00057},
		{2451716.56767, 365241.62603, 0.00325, 0.00888, -0.00030},
		{2451810.21715, 365242.01767, -0.11575, 0.00337, 0.00078},
		{2451900.05952, 365242.74049, -0.06223, -0.00823, 0.00032},
	}
)

// MeanEquinox returns the JDE of the mean equinox or solstice, JDE0, for
// the specified year. The polynomials are valid for years -1000 to 3000.
func MeanEquinox(year int, s Season) float64 {
	if year < 1000 {
		return base.Horner(float64(year)*0.001, meanBefore1000[s][:]...)
	}
	return base.Horner(float64(year-2000)*0.001, meanAfter1000[s][:]...)
}

var approximate = [4]func(int) float64{
	solstice.March,
	solstice.June,
	solstice.September,
	solstice.December,
}

// ApproximateEquinox returns the JDE of the equinox or solstice for the
// specified year, ie. the mean value with the periodic terms of table
// 27.C applied. The result is within a minute or so of the true value
// for years 1951-2050.
func ApproximateEquinox(year int, s Season) float64 {
	return approximate[s](year)
}

// RefineEquinox improves on ApproximateEquinox by repeatedly applying
// the correction 58 sin(k*90 - λ) days, where λ is the apparent solar
// longitude returned by SolarPosition, until the correction is below
// 1e-6 days or maxIterations corrections have been applied. It returns
// the JDE and the number of corrections applied.
func RefineEquinox(year int, s Season, maxIterations int) (float64, int) {
	jde := ApproximateEquinox(year, s)
	target := float64(s) * 90
	for i := 0; i < maxIterations; i++ {
		c := 58 * degrees.Sin(target-SolarPosition(jde).ApparentLongitude)
		jde += c
		if math.Abs(c) < 1e-6 {
			return jde, i + 1
		}
	}
	return jde, maxIterations
}

// JDEToCalendar returns the calendar date for the specified JDE.
func JDEToCalendar(jde float64) julian.CalendarDate {
	return julian.FromJD(jde)
}

// March returns the vernal/spring equinox.
func March(year int) julian.CalendarDate {
	return JDEToCalendar(solstice.March(year))
}

// June returns the summer solstice.
func June(year int) julian.CalendarDate {
	return JDEToCalendar(solstice.June(year))
}

// September returns the autumnal equinox.
func September(year int) julian.CalendarDate {
	return JDEToCalendar(solstice.September(year))
}

// December returns the winter solstice.
func December(year int) julian.CalendarDate {
	return JDEToCalendar(solstice.December(year))
}
