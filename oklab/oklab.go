// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab provides the Oklab perceptual color space and its
// cylindrical form Oklch. Oklab is defined relative to D65.
package oklab

import (
	"fmt"
	"math"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/polar"
)

// Oklab is a color in the Oklab space: L in [0, 1], a and b
// roughly in [-0.5, 0.5].
type Oklab struct {
	L, A, B float64
}

// Oklch is the cylindrical form of [Oklab]: L in [0, 1],
// chroma C >= 0 and hue H in degrees [0, 360).
type Oklch struct {
	L, C, H float64
}

var (
	// xyzToLMS converts D65-relative XYZ to the cone-like LMS space.
	xyzToLMS = cie.Mat3{
		{0.8190224379967030, 0.3619062600528904, -0.1288737815209879},
		{0.0329836539323885, 0.9292868615863434, 0.0361446663506424},
		{0.0481771893596242, 0.2642395317527308, 0.6335478284694309},
	}

	// lmsToOklab converts cube-rooted LMS to Oklab.
	lmsToOklab = cie.Mat3{
		{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
		{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
		{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
	}

	lmsToXYZ   = inverse(xyzToLMS)
	oklabToLMS = inverse(lmsToOklab)
)

func inverse(m cie.Mat3) cie.Mat3 {
	r, ok := m.Inverse()
	if !ok {
		panic("oklab: singular matrix")
	}
	return r
}

// FromXYZ converts a D65-relative XYZ value to Oklab.
func FromXYZ(c cie.XYZ) Oklab {
	lms := xyzToLMS.MulVec(c.Vec())
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	v := lmsToOklab.MulVec(lms)
	return Oklab{v[0], v[1], v[2]}
}

// XYZ converts o to a D65-relative XYZ value.
func (o Oklab) XYZ() cie.XYZ {
	lms := oklabToLMS.MulVec([3]float64{o.L, o.A, o.B})
	for i, v := range lms {
		lms[i] = v * v * v
	}
	return cie.XYZFromVec(lmsToXYZ.MulVec(lms))
}

// FromPCS converts a D50 profile connection space value to Oklab.
func FromPCS(c cie.XYZ) Oklab {
	return FromXYZ(cie.D50ToD65XYZ(c))
}

// PCS converts o to the D50 profile connection space.
func (o Oklab) PCS() cie.XYZ {
	return cie.D65ToD50XYZ(o.XYZ())
}

// Oklch returns the cylindrical form of o. The optional previous hue
// is used when o is achromatic.
func (o Oklab) Oklch(prevHue ...float64) Oklch {
	c, h := polar.FromCartesian(o.A, o.B, prevHue...)
	return Oklch{o.L, c, h}
}

// Oklab returns the Cartesian form of c.
func (c Oklch) Oklab() Oklab {
	a, b := polar.ToCartesian(c.C, c.H)
	return Oklab{c.L, a, b}
}

// Clamp returns c with lightness in [0, 1], non-negative chroma
// and hue in [0, 360).
func (c Oklch) Clamp() Oklch {
	ch, h := polar.Fold(c.C, c.H)
	return Oklch{math.Max(0, math.Min(1, c.L)), ch, h}
}

func (o Oklab) String() string {
	return fmt.Sprintf("oklab(%.4g, %.4g, %.4g)", o.L, o.A, o.B)
}

func (c Oklch) String() string {
	return fmt.Sprintf("oklch(%.4g, %.4g, %.4g)", c.L, c.C, c.H)
}
