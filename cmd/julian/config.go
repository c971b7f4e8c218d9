// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"cloudeng.io/astrocal/location"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'optional YAML configuration file, see Config'"`
	Format string `subcmd:"format,text,'output format: text, yaml or json'"`
}

type jdOrDateFlags struct {
	CommonFlags
	JD bool `subcmd:"jd,false,interpret arguments as Julian Day Numbers rather than calendar dates"`
}

type equinoxFlags struct {
	CommonFlags
	Season string `subcmd:"season,,'restrict output to one of march, june, september or december (or spring, summer, autumn, winter)'"`
	Mean   bool   `subcmd:"mean,false,display the mean rather than the corrected times"`
	Refine int    `subcmd:"refine,0,maximum number of iterations used to refine the corrected times using the solar coordinates"`
}

type sunriseFlags struct {
	CommonFlags
	Latitude  string `subcmd:"latitude,,'latitude in degrees, north is positive, overrides the config file'"`
	Longitude string `subcmd:"longitude,,'longitude in degrees, east is positive, overrides the config file'"`
	Postal    string `subcmd:"postal,,'postal code of the form <admin> <postal> to be looked up in the gazetteer, eg. CA 95014'"`
	Gazetteer string `subcmd:"gazetteer,,'geonames postal code file, overrides the config file'"`
}

// Location represents an observer's position, either directly or as a
// postal code to be looked up in a geonames postal code file.
type Location struct {
	location.Position `yaml:",inline"`
	Postal            string `yaml:"postal" cmd:"postal code of the form <admin> <postal>, eg. CA 95014"`
	Gazetteer         string `yaml:"gazetteer" cmd:"geonames postal code file used to look up postal codes"`
}

// Config represents the optional configuration file.
type Config struct {
	Location Location              `yaml:"location" cmd:"default observer location for sunrise"`
	Logging  cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration, overrides the logging flags"`
}

// stdout is where all results are written.
var stdout io.Writer = os.Stdout

func loadConfig(filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(context.Background(), filename, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setup loads the config file, if any, and returns a context carrying
// the configured logger and a function to close that logger.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, Config, func(), error) {
	cfg, err := loadConfig(cf.Config)
	if err != nil {
		return ctx, cfg, nil, err
	}
	if !slices.Contains(formats, cf.Format) {
		return ctx, cfg, nil, fmt.Errorf("unsupported output format: %q, use one of %v", cf.Format, strings.Join(formats, ", "))
	}
	logCfg := cf.LoggingConfig()
	if len(cfg.Logging.Format) > 0 || len(cfg.Logging.File) > 0 {
		logCfg = cfg.Logging
	}
	logger, err := logCfg.NewLogger()
	if err != nil {
		return ctx, cfg, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("starting", "config", cf.Config, "format", cf.Format)
	return ctx, cfg, func() { logger.Close() }, nil
}
