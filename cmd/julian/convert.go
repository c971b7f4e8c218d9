// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/astrocal/julian"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

func parseJD(val string) (float64, error) {
	jd, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid Julian Day Number: %q", val)
	}
	return jd, nil
}

// forEach calls fn for each argument, collecting the results and any
// errors so that a single bad argument does not prevent the others from
// being processed.
func forEach(ctx context.Context, args []string, fn func(arg string) (textResult, error)) ([]textResult, error) {
	results := make([]textResult, 0, len(args))
	errs := &errors.M{}
	for _, arg := range args {
		r, err := fn(arg)
		if err != nil {
			ctxlog.Logger(ctx).Warn("failed", "arg", arg, "error", err)
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		ctxlog.Logger(ctx).Debug("converted", "arg", arg)
		results = append(results, r)
	}
	return results, errs.Err()
}

// run is common to all of the commands, it sets up logging, runs the
// command for each argument and writes whatever results were obtained
// before returning any errors.
func run(ctx context.Context, cf *CommonFlags, args []string, fn func(ctx context.Context, cfg Config, arg string) (textResult, error)) error {
	ctx, cfg, done, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	results, err := forEach(ctx, args, func(arg string) (textResult, error) {
		return fn(ctx, cfg, arg)
	})
	if werr := newOutput(stdout, cf.Format).write(results); werr != nil {
		return werr
	}
	return err
}

func toJD(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	return run(ctx, fv, args, func(_ context.Context, _ Config, arg string) (textResult, error) {
		cd, err := julian.ParseCalendarDate(arg)
		if err != nil {
			return nil, err
		}
		jd, err := julian.ToJD(cd)
		if err != nil {
			return nil, err
		}
		return jdResult{Input: arg, Date: cd.String(), JD: jd}, nil
	})
}

func toDate(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	return run(ctx, fv, args, func(_ context.Context, _ Config, arg string) (textResult, error) {
		jd, err := parseJD(arg)
		if err != nil {
			return nil, err
		}
		cd := julian.FromJD(jd)
		return dateResult{
			Input:   arg,
			JD:      jd,
			Date:    cd.String(),
			Year:    cd.Year,
			Month:   int(cd.Month),
			Day:     cd.Day,
			Weekday: julian.DayOfWeek(jd).String(),
		}, nil
	})
}

// jdOrDate returns the JD for arg interpreted either as a JD or as a
// calendar date.
func jdOrDate(arg string, isJD bool) (float64, error) {
	if isJD {
		return parseJD(arg)
	}
	cd, err := julian.ParseCalendarDate(arg)
	if err != nil {
		return 0, err
	}
	return julian.ToJD(cd)
}

func weekday(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*jdOrDateFlags)
	return run(ctx, &fv.CommonFlags, args, func(_ context.Context, _ Config, arg string) (textResult, error) {
		jd, err := jdOrDate(arg, fv.JD)
		if err != nil {
			return nil, err
		}
		return weekdayResult{Input: arg, Weekday: julian.DayOfWeek(jd).String()}, nil
	})
}

func yearDay(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	return run(ctx, fv, args, func(_ context.Context, _ Config, arg string) (textResult, error) {
		cd, err := julian.ParseCalendarDate(arg)
		if err != nil {
			return nil, err
		}
		if !cd.Valid() {
			return nil, fmt.Errorf("%v: %w", cd, julian.ErrInvalidCalendarDate)
		}
		return yearDayResult{Date: cd.String(), YearDay: julian.DayOfYear(cd)}, nil
	})
}

func leap(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	return run(ctx, fv, args, func(_ context.Context, _ Config, arg string) (textResult, error) {
		year, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid year: %q", arg)
		}
		return leapResult{Year: year, Leap: julian.IsLeapYear(year)}, nil
	})
}

func interval(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*jdOrDateFlags)
	ctx, _, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	var jds [2]float64
	errs := &errors.M{}
	for i, arg := range args[:2] {
		jd, err := jdOrDate(arg, fv.JD)
		if err != nil {
			ctxlog.Logger(ctx).Warn("failed", "arg", arg, "error", err)
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		jds[i] = jd
	}
	if err := errs.Err(); err != nil {
		return err
	}
	r := intervalResult{From: args[0], To: args[1], Days: julian.Interval(jds[0], jds[1])}
	return newOutput(stdout, fv.Format).write([]textResult{r})
}
