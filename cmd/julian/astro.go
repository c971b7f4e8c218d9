// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/astrocal/astronomy"
	"cloudeng.io/astrocal/julian"
	"cloudeng.io/astrocal/location"
	"cloudeng.io/logging/ctxlog"
)

func (fv *equinoxFlags) seasons() ([]astronomy.Season, error) {
	if len(fv.Season) == 0 {
		return astronomy.Seasons, nil
	}
	s, err := astronomy.ParseSeason(fv.Season)
	if err != nil {
		return nil, err
	}
	return []astronomy.Season{s}, nil
}

func equinox(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*equinoxFlags)
	seasons, err := fv.seasons()
	if err != nil {
		return err
	}
	if fv.Refine < 0 {
		return fmt.Errorf("--refine must not be negative: %v", fv.Refine)
	}
	// Each year yields one result per season, a composite is returned
	// so that all of them are written together.
	return run(ctx, &fv.CommonFlags, args, func(ctx context.Context, _ Config, arg string) (textResult, error) {
		year, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid year: %q", arg)
		}
		results := make(equinoxResults, 0, len(seasons))
		for _, s := range seasons {
			r := equinoxResult{Year: year, Season: s.String()}
			switch {
			case fv.Mean:
				r.JDE = astronomy.MeanEquinox(year, s)
			case fv.Refine > 0:
				r.JDE, r.Iterations = astronomy.RefineEquinox(year, s, fv.Refine)
				ctxlog.Logger(ctx).Debug("refined", "year", year, "season", s, "iterations", r.Iterations)
			default:
				r.JDE = astronomy.ApproximateEquinox(year, s)
			}
			r.Date = astronomy.JDEToCalendar(r.JDE).String()
			results = append(results, r)
		}
		return results, nil
	})
}

func solarCoordinates(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*jdOrDateFlags)
	return run(ctx, &fv.CommonFlags, args, func(_ context.Context, _ Config, arg string) (textResult, error) {
		jde, err := jdOrDate(arg, fv.JD)
		if err != nil {
			return nil, err
		}
		pos := astronomy.SolarPosition(jde)
		return solarResult{
			Input:             arg,
			JDE:               jde,
			TrueLongitude:     pos.TrueLongitude,
			ApparentLongitude: pos.ApparentLongitude,
			MeanAnomaly:       pos.MeanAnomaly,
			Eccentricity:      pos.Eccentricity,
			Radius:            pos.Radius,
		}, nil
	})
}

// parseDegrees parses val into *v unless val is empty, it reports
// whether val was set.
func parseDegrees(name, val string, v *float64) (bool, error) {
	if len(val) == 0 {
		return false, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return false, fmt.Errorf("invalid %v: %q", name, val)
	}
	*v = f
	return true, nil
}

// position returns the observer's position, flags take precedence over
// the config file and a postal code takes precedence over latitude and
// longitude. A latitude or longitude flag that is set, including to
// zero, overrides only that coordinate.
func (fv *sunriseFlags) position(ctx context.Context, cfg Config) (location.Position, error) {
	loc := cfg.Location
	latSet, err := parseDegrees("latitude", fv.Latitude, &loc.Latitude)
	if err != nil {
		return location.Position{}, err
	}
	longSet, err := parseDegrees("longitude", fv.Longitude, &loc.Longitude)
	if err != nil {
		return location.Position{}, err
	}
	if latSet || longSet {
		loc.Postal = ""
	}
	if len(fv.Postal) > 0 {
		loc.Postal = fv.Postal
	}
	if len(fv.Gazetteer) > 0 {
		loc.Gazetteer = fv.Gazetteer
	}
	if len(loc.Postal) == 0 {
		return loc.Position, loc.Validate()
	}
	if len(loc.Gazetteer) == 0 {
		return location.Position{}, fmt.Errorf("a gazetteer file is required to look up postal code %q", loc.Postal)
	}
	g := location.NewGazetteer()
	if err := g.LoadFile(loc.Gazetteer); err != nil {
		return location.Position{}, err
	}
	place, err := g.ParseLookup(loc.Postal)
	if err != nil {
		return location.Position{}, err
	}
	ctxlog.Logger(ctx).Info("location", "postal", loc.Postal, "name", place.Name, "position", place.Position)
	return place.Position, nil
}

func formatJD(jd float64) string {
	return astronomy.TimeFromJD(jd).Round(time.Second).Format(time.RFC3339)
}

func sunriseSunset(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*sunriseFlags)
	ctx, cfg, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	pos, err := fv.position(ctx, cfg)
	if err != nil {
		return err
	}
	lat, long := pos.Latitude, pos.Longitude
	results, err := forEach(ctx, args, func(arg string) (textResult, error) {
		cd, err := julian.ParseCalendarDate(arg)
		if err != nil {
			return nil, err
		}
		ctxlog.Logger(ctx).Debug("sunrise", "date", cd, "latitude", lat, "longitude", long)
		rise, set, err := astronomy.Sunrise(cd, lat, long)
		if err != nil {
			return nil, err
		}
		noon, err := astronomy.ApparentSolarNoon(cd, lat, long)
		if err != nil {
			return nil, err
		}
		return sunriseResult{
			Date:    cd.String(),
			Rise:    rise,
			Noon:    noon,
			Set:     set,
			RiseUTC: formatJD(rise),
			NoonUTC: formatJD(noon),
			SetUTC:  formatJD(set),
		}, nil
	})
	if werr := newOutput(stdout, fv.Format).write(results); werr != nil {
		return werr
	}
	return err
}
