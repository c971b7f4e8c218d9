// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"

	"cloudeng.io/astrocal/degrees"
	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/solar"
)

// J2000 is the JDE of the J2000.0 epoch, 2000 January 1.5 TD.
const J2000 = base.J2000

// J2000Century returns the number of Julian centuries since J2000.
func J2000Century(jde float64) float64 {
	return base.J2000Century(jde)
}

// SolarCoordinates represents the geocentric position of the Sun computed
// to an accuracy of about 0.01 degrees. Angles are in degrees and, other
// than Center, are normalized to [0, 360).
type SolarCoordinates struct {
	Century           float64 // Julian centuries since J2000.
	MeanLongitude     float64 // Geometric mean longitude, L0.
	MeanAnomaly       float64 // M.
	Eccentricity      float64 // Eccentricity of the Earth's orbit, e.
	Center            float64 // Equation of center, C.
	TrueLongitude     float64 // True geometric longitude referred to the mean equinox of date.
	TrueAnomaly       float64 // v.
	Radius            float64 // Distance to the Sun in AU, R.
	ApparentLongitude float64 // Corrected for nutation and aberration.
}

// SolarPosition returns the low accuracy solar coordinates for the specified
// JDE as per Meeus chapter 25.
func SolarPosition(jde float64) SolarCoordinates {
	t := base.J2000Century(jde)
	trueLong, v := solar.True(t)
	m := solar.MeanAnomaly(t)
	// C = v - M and L0 is the true longitude less C.
	c := math.Remainder(v.Deg()-m.Deg(), 360)
	return SolarCoordinates{
		Century:           t,
		MeanLongitude:     degrees.Reduce(trueLong.Deg() - c),
		MeanAnomaly:       degrees.Reduce(m.Deg()),
		Eccentricity:      solar.Eccentricity(t),
		Center:            c,
		TrueLongitude:     degrees.Reduce(trueLong.Deg()),
		TrueAnomaly:       degrees.Reduce(v.Deg()),
		Radius:            solar.Radius(t),
		ApparentLongitude: degrees.Reduce(solar.ApparentLongitude(t).Deg()),
	}
}
