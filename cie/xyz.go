// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE XYZ, CIELab and CIELCh color spaces,
// standard illuminants, chromatic adaptation, and the sRGB
// transfer function and primaries.
package cie

import (
	"fmt"
	"math"
)

// XYZ is a CIE 1931 tristimulus value, with Y = 1 for the reference white.
type XYZ struct {
	X, Y, Z float64
}

// Vec returns the components as an array.
func (c XYZ) Vec() [3]float64 { return [3]float64{c.X, c.Y, c.Z} }

// XYZFromVec returns the XYZ value for the given components.
func XYZFromVec(v [3]float64) XYZ { return XYZ{v[0], v[1], v[2]} }

// Transform applies the matrix m to c.
func (c XYZ) Transform(m Mat3) XYZ { return XYZFromVec(m.MulVec(c.Vec())) }

// Scale returns c with each component multiplied by the corresponding
// component of s.
func (c XYZ) Scale(s XYZ) XYZ { return XYZ{c.X * s.X, c.Y * s.Y, c.Z * s.Z} }

// IsNaN returns whether any component is NaN.
func (c XYZ) IsNaN() bool {
	return math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z)
}

// Chromaticity returns the xy chromaticity coordinates of c.
func (c XYZ) Chromaticity() (x, y float64) {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return 0, 0
	}
	return c.X / sum, c.Y / sum
}

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%.6g, %.6g, %.6g)", c.X, c.Y, c.Z)
}

// WhiteFromXY returns the XYZ value with Y = 1 for the given
// chromaticity coordinates.
func WhiteFromXY(x, y float64) XYZ {
	return XYZ{x / y, 1, (1 - x - y) / y}
}

var (
	// D50 is the ICC profile connection space illuminant, as encoded
	// in the ICC specification.
	D50 = XYZ{0.9642, 1, 0.8249}

	// D65 is the sRGB and Oklab reference white, derived from its
	// chromaticity (0.3127, 0.3290).
	D65 = WhiteFromXY(0.3127, 0.3290)
)

// BradfordCone is the Bradford cone response matrix.
var BradfordCone = Mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// Bradford returns the matrix adapting XYZ values relative to the src
// white to values relative to the dst white.
func Bradford(src, dst XYZ) Mat3 {
	s := BradfordCone.MulVec(src.Vec())
	d := BradfordCone.MulVec(dst.Vec())
	scale := Diag(d[0]/s[0], d[1]/s[1], d[2]/s[2])
	return mustInverse(BradfordCone).Mul(scale.Mul(BradfordCone))
}

var (
	// D65ToD50 adapts D65-relative XYZ to the D50 profile connection space.
	D65ToD50 = Bradford(D65, D50)

	// D50ToD65 adapts D50-relative XYZ to D65.
	D50ToD65 = mustInverse(D65ToD50)
)

// D50ToD65XYZ adapts a D50-relative value to D65.
func D50ToD65XYZ(c XYZ) XYZ { return c.Transform(D50ToD65) }

// D65ToD50XYZ adapts a D65-relative value to D50.
func D65ToD50XYZ(c XYZ) XYZ { return c.Transform(D65ToD50) }
