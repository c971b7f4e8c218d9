// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command julian converts between civil calendar dates and Julian Day
// Numbers and reports related calendar and astronomical facts.
//
// Dates are written as YYYY-MM-DD[.fraction] using astronomical year
// numbering (1 BCE is 0000, 2 BCE is -0001) and the month may be given by
// name, eg. 1957-Oct-04.81.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	toJDCmd := subcmd.NewCommand("tojd",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		toJD, subcmd.AtLeastNArguments(1))
	toJDCmd.Document(`convert calendar dates to Julian Day Numbers.`, "<date>...")

	toDateCmd := subcmd.NewCommand("todate",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		toDate, subcmd.AtLeastNArguments(1))
	toDateCmd.Document(`convert Julian Day Numbers to calendar dates.`, "<jd>...")

	weekdayCmd := subcmd.NewCommand("weekday",
		subcmd.MustRegisterFlagStruct(&jdOrDateFlags{}, nil, nil),
		weekday, subcmd.AtLeastNArguments(1))
	weekdayCmd.Document(`display the day of the week for calendar dates or, with --jd, Julian Day Numbers.`, "<date|jd>...")

	yearDayCmd := subcmd.NewCommand("yearday",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		yearDay, subcmd.AtLeastNArguments(1))
	yearDayCmd.Document(`display the ordinal day of the year for calendar dates.`, "<date>...")

	leapCmd := subcmd.NewCommand("leap",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		leap, subcmd.AtLeastNArguments(1))
	leapCmd.Document(`report whether years are leap years, the Julian rule applies before 1582.`, "<year>...")

	intervalCmd := subcmd.NewCommand("interval",
		subcmd.MustRegisterFlagStruct(&jdOrDateFlags{}, nil, nil),
		interval, subcmd.ExactlyNumArguments(2))
	intervalCmd.Document(`display the number of days from the first to the second date or, with --jd, Julian Day Number.`, "<from>", "<to>")

	equinoxCmd := subcmd.NewCommand("equinox",
		subcmd.MustRegisterFlagStruct(&equinoxFlags{}, nil, nil),
		equinox, subcmd.AtLeastNArguments(1))
	equinoxCmd.Document(`display the equinoxes and solstices for the specified years.`, "<year>...")

	solarCmd := subcmd.NewCommand("solar",
		subcmd.MustRegisterFlagStruct(&jdOrDateFlags{}, nil, nil),
		solarCoordinates, subcmd.AtLeastNArguments(1))
	solarCmd.Document(`display the low accuracy solar coordinates for calendar dates or, with --jd, Julian Ephemeris Days.`, "<date|jde>...")

	sunriseCmd := subcmd.NewCommand("sunrise",
		subcmd.MustRegisterFlagStruct(&sunriseFlags{}, nil, nil),
		sunriseSunset, subcmd.AtLeastNArguments(1))
	sunriseCmd.Document(`display the times of sunrise, solar noon and sunset (UT) for calendar dates.`, "<date>...")

	cmdSet = subcmd.NewCommandSet(toJDCmd, toDateCmd, weekdayCmd, yearDayCmd,
		leapCmd, intervalCmd, equinoxCmd, solarCmd, sunriseCmd)
	cmdSet.Document(`convert between civil calendar dates and Julian Day Numbers.

Dates before 1582 October 5 are in the Julian calendar and dates on or after
1582 October 15 are in the Gregorian calendar; the days in between do not
exist and are rejected. Years use astronomical numbering, 1 BCE is year 0.
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
