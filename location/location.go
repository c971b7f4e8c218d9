// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package location provides observer positions, either specified
// directly or looked up by postal code using the tab separated
// postal code files distributed by www.geonames.org.
package location

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// Position represents an observer's latitude and longitude in degrees,
// north and east are positive.
type Position struct {
	Latitude  float64 `yaml:"latitude" cmd:"latitude in degrees, north is positive"`
	Longitude float64 `yaml:"longitude" cmd:"longitude in degrees, east is positive"`
}

// Validate returns an error if the position is out of range.
func (p Position) Validate() error {
	errs := &errors.M{}
	if p.Latitude < -90 || p.Latitude > 90 {
		errs.Append(fmt.Errorf("latitude out of range: %v", p.Latitude))
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		errs.Append(fmt.Errorf("longitude out of range: %v", p.Longitude))
	}
	return errs.Err()
}

func (p Position) String() string {
	return fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude)
}

// Place is a single entry in a Gazetteer.
type Place struct {
	Country string
	Postal  string
	Name    string
	Admin   string
	Position
}

// Gazetteer maps postal codes to places.
type Gazetteer struct {
	places map[string]Place
}

// NewGazetteer returns an empty Gazetteer.
func NewGazetteer() *Gazetteer {
	return &Gazetteer{places: make(map[string]Place)}
}

func key(admin, postal string) string {
	return strings.ToUpper(admin) + " " + strings.ToUpper(postal)
}

// Lookup returns the place for the specified admin code and postal
// code, eg. CA 95014 or ENG BN91.
func (g *Gazetteer) Lookup(admin, postal string) (Place, bool) {
	p, ok := g.places[key(admin, postal)]
	return p, ok
}

// ParseLookup is like Lookup but accepts a single string of the form
// "<admin> <postal>", the postal code may itself contain spaces.
func (g *Gazetteer) ParseLookup(val string) (Place, error) {
	admin, postal, ok := strings.Cut(strings.TrimSpace(val), " ")
	if !ok {
		return Place{}, fmt.Errorf("invalid postal code %q, expected '<admin> <postal>'", val)
	}
	p, ok := g.Lookup(admin, strings.TrimSpace(postal))
	if !ok {
		return Place{}, fmt.Errorf("unknown postal code: %q", val)
	}
	return p, nil
}

// Len returns the number of places in the gazetteer.
func (g *Gazetteer) Len() int {
	return len(g.places)
}

// Load reads geonames postal code data from rd. Each line has 12 tab
// separated fields: country, postal code, place name, admin name 1,
// admin code 1, admin name 2, admin code 2, admin name 3, admin code 3,
// latitude, longitude and accuracy. Blank lines are ignored and all
// malformed lines are reported.
func (g *Gazetteer) Load(rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	errs := &errors.M{}
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		p, err := parsePlace(text)
		if err != nil {
			errs.Append(fmt.Errorf("line %v: %w", line, err))
			continue
		}
		g.places[key(p.Admin, p.Postal)] = p
	}
	errs.Append(sc.Err())
	return errs.Err()
}

// LoadFile is like Load but reads from the named file.
func (g *Gazetteer) LoadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := g.Load(f); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	return nil
}

func parsePlace(text string) (Place, error) {
	parts := strings.Split(text, "\t")
	if len(parts) != 12 {
		return Place{}, fmt.Errorf("wrong number of fields: %v != 12", len(parts))
	}
	lat, err := strconv.ParseFloat(parts[9], 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid latitude: %q", parts[9])
	}
	long, err := strconv.ParseFloat(parts[10], 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid longitude: %q", parts[10])
	}
	p := Place{
		Country:  parts[0],
		Postal:   parts[1],
		Name:     parts[2],
		Admin:    parts[4],
		Position: Position{Latitude: lat, Longitude: long},
	}
	if err := p.Validate(); err != nil {
		return Place{}, err
	}
	return p, nil
}
