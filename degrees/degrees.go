// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package degrees provides trigonometric functions whose angles are
// expressed in degrees rather than radians.
package degrees

import (
	"math"

	"github.com/soniakeys/unit"
)

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return unit.Angle(rad).Deg()
}

// Reduce normalizes an angle into the range [0, 360) by removing whole
// multiples of 360 degrees.
func Reduce(deg float64) float64 {
	return deg - math.Floor(deg/360)*360
}

// Sin returns the sine of deg.
func Sin(deg float64) float64 {
	return unit.AngleFromDeg(deg).Sin()
}

// Cos returns the cosine of deg.
func Cos(deg float64) float64 {
	return unit.AngleFromDeg(deg).Cos()
}

// Tan returns the tangent of deg.
func Tan(deg float64) float64 {
	return unit.AngleFromDeg(deg).Tan()
}

// Asin returns the arcsine of x in degrees, in the range [-90, 90].
func Asin(x float64) float64 {
	return ToDegrees(math.Asin(x))
}

// Acos returns the arccosine of x in degrees, in the range [0, 180].
func Acos(x float64) float64 {
	return ToDegrees(math.Acos(x))
}

// Atan returns the arctangent of x in degrees, in the range [-90, 90].
func Atan(x float64) float64 {
	return ToDegrees(math.Atan(x))
}

// Atan2 returns the arctangent of y/x in degrees using the signs of both
// to determine the quadrant, in the range [-180, 180].
func Atan2(y, x float64) float64 {
	return ToDegrees(math.Atan2(y, x))
}

// Signed represents the signed integer and floating point types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns the absolute value of v. As for the builtin integer types
// the absolute value of the most negative integer is itself.
func Abs[T Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
