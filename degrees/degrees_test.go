// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package degrees_test

import (
	"math"
	"testing"

	"cloudeng.io/astrocal/degrees"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestConversions(t *testing.T) {
	for _, tc := range []struct {
		deg, rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
		{360, 2 * math.Pi},
	} {
		if got, want := degrees.ToRadians(tc.deg), tc.rad; !near(got, want) {
			t.Errorf("%v: got %v, want %v", tc.deg, got, want)
		}
		if got, want := degrees.ToDegrees(tc.rad), tc.deg; !near(got, want) {
			t.Errorf("%v: got %v, want %v", tc.rad, got, want)
		}
	}
}

func TestReduce(t *testing.T) {
	for _, tc := range []struct {
		in, out float64
	}{
		{0, 0},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-721, 359},
		{720.5, 0.5},
		{199.90988, 199.90988},
	} {
		if got, want := degrees.Reduce(tc.in), tc.out; math.Abs(got-want) > 1e-9 {
			t.Errorf("%v: got %v, want %v", tc.in, got, want)
		}
	}
	// The formula leaves some floating point noise for large angles.
	if got, want := degrees.Reduce(5492522.4593), 2.4593; math.Abs(got-want) > 1e-6 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTrig(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func(float64) float64
		in   float64
		out  float64
	}{
		{"sin", degrees.Sin, 30, 0.5},
		{"sin", degrees.Sin, 90, 1},
		{"sin", degrees.Sin, -90, -1},
		{"cos", degrees.Cos, 60, 0.5},
		{"cos", degrees.Cos, 180, -1},
		{"tan", degrees.Tan, 45, 1},
		{"asin", degrees.Asin, 0.5, 30},
		{"acos", degrees.Acos, 0.5, 60},
		{"acos", degrees.Acos, -1, 180},
		{"atan", degrees.Atan, 1, 45},
	} {
		if got, want := tc.fn(tc.in), tc.out; math.Abs(got-want) > 1e-9 {
			t.Errorf("%v(%v): got %v, want %v", tc.name, tc.in, got, want)
		}
	}
	for _, tc := range []struct {
		y, x, out float64
	}{
		{1, 1, 45},
		{1, -1, 135},
		{-1, -1, -135},
		{-1, 1, -45},
		{0, -1, 180},
	} {
		if got, want := degrees.Atan2(tc.y, tc.x), tc.out; math.Abs(got-want) > 1e-9 {
			t.Errorf("atan2(%v, %v): got %v, want %v", tc.y, tc.x, got, want)
		}
	}
	if !math.IsNaN(degrees.Asin(2)) {
		t.Errorf("expected NaN")
	}
}

func TestAbs(t *testing.T) {
	if got, want := degrees.Abs(-3), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := degrees.Abs(int8(-128)), int8(-128); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := degrees.Abs(-2.5), 2.5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := degrees.Abs(float32(1.5)), float32(1.5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := degrees.Abs(int64(-1<<40)), int64(1<<40); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
