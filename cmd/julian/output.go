// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// output writes results as a YAML or JSON list or as one line of text
// per result.
type output struct {
	w       io.Writer
	format  string
	printer *message.Printer // commas in day counts.
}

var formats = []string{"text", "yaml", "json"}

func newOutput(w io.Writer, format string) *output {
	return &output{
		w:       w,
		format:  format,
		printer: message.NewPrinter(language.English),
	}
}

type textResult interface {
	text(p *message.Printer) string
}

// expand flattens any equinoxResults so that every result is written
// as a separate item.
func expand(results []textResult) []textResult {
	flat := make([]textResult, 0, len(results))
	for _, r := range results {
		if er, ok := r.(equinoxResults); ok {
			for _, e := range er {
				flat = append(flat, e)
			}
			continue
		}
		flat = append(flat, r)
	}
	return flat
}

func (o *output) write(results []textResult) error {
	results = expand(results)
	switch o.format {
	case "yaml":
		enc := yaml.NewEncoder(o.w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		buf, err := json.Marshal(results, jsontext.WithIndent("  "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(o.w, "%s\n", buf)
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(o.w, r.text(o.printer)); err != nil {
			return err
		}
	}
	return nil
}

type jdResult struct {
	Input string  `yaml:"input" json:"input"`
	Date  string  `yaml:"date" json:"date"`
	JD    float64 `yaml:"jd" json:"jd"`
}

func (r jdResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%v: %.5f", r.Date, r.JD)
}

type dateResult struct {
	Input   string  `yaml:"input" json:"input"`
	JD      float64 `yaml:"jd" json:"jd"`
	Date    string  `yaml:"date" json:"date"`
	Year    int     `yaml:"year" json:"year"`
	Month   int     `yaml:"month" json:"month"`
	Day     float64 `yaml:"day" json:"day"`
	Weekday string  `yaml:"weekday" json:"weekday"`
}

func (r dateResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%.5f: %v %v", r.JD, r.Date, r.Weekday)
}

type weekdayResult struct {
	Input   string `yaml:"input" json:"input"`
	Weekday string `yaml:"weekday" json:"weekday"`
}

func (r weekdayResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%v: %v", r.Input, r.Weekday)
}

type yearDayResult struct {
	Date    string `yaml:"date" json:"date"`
	YearDay int    `yaml:"yearday" json:"yearday"`
}

func (r yearDayResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%v: %v", r.Date, r.YearDay)
}

type leapResult struct {
	Year int  `yaml:"year" json:"year"`
	Leap bool `yaml:"leap" json:"leap"`
}

func (r leapResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%v: %v", r.Year, r.Leap)
}

type intervalResult struct {
	From string  `yaml:"from" json:"from"`
	To   string  `yaml:"to" json:"to"`
	Days float64 `yaml:"days" json:"days"`
}

func (r intervalResult) text(p *message.Printer) string {
	return p.Sprintf("%v -> %v: %v days", r.From, r.To, r.Days)
}

type equinoxResult struct {
	Year       int     `yaml:"year" json:"year"`
	Season     string  `yaml:"season" json:"season"`
	JDE        float64 `yaml:"jde" json:"jde"`
	Date       string  `yaml:"date" json:"date"`
	Iterations int     `yaml:"iterations,omitempty" json:"iterations,omitzero"`
}

func (r equinoxResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%v %v: %.5f %v", r.Year, r.Season, r.JDE, r.Date)
}

type equinoxResults []equinoxResult

func (r equinoxResults) text(p *message.Printer) string {
	lines := make([]string, len(r))
	for i, e := range r {
		lines[i] = e.text(p)
	}
	return strings.Join(lines, "\n")
}

type solarResult struct {
	Input             string  `yaml:"input" json:"input"`
	JDE               float64 `yaml:"jde" json:"jde"`
	TrueLongitude     float64 `yaml:"true_longitude" json:"true_longitude"`
	ApparentLongitude float64 `yaml:"apparent_longitude" json:"apparent_longitude"`
	MeanAnomaly       float64 `yaml:"mean_anomaly" json:"mean_anomaly"`
	Eccentricity      float64 `yaml:"eccentricity" json:"eccentricity"`
	Radius            float64 `yaml:"radius" json:"radius"`
}

func (r solarResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%.5f: longitude %.5f apparent %.5f radius %.5f AU", r.JDE, r.TrueLongitude, r.ApparentLongitude, r.Radius)
}

type sunriseResult struct {
	Date    string  `yaml:"date" json:"date"`
	Rise    float64 `yaml:"rise" json:"rise"`
	Noon    float64 `yaml:"noon" json:"noon"`
	Set     float64 `yaml:"set" json:"set"`
	RiseUTC string  `yaml:"rise_utc" json:"rise_utc"`
	NoonUTC string  `yaml:"noon_utc" json:"noon_utc"`
	SetUTC  string  `yaml:"set_utc" json:"set_utc"`
}

func (r sunriseResult) text(_ *message.Printer) string {
	return fmt.Sprintf("%v: rise %v noon %v set %v", r.Date, r.RiseUTC, r.NoonUTC, r.SetUTC)
}
