// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBToLinear converts a gamma-encoded sRGB component to linear light.
// Negative values are handled by odd symmetry so that out-of-gamut
// values survive a round trip.
func SRGBToLinear(c float64) float64 {
	if c < 0 {
		return -SRGBToLinear(-c)
	}
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// SRGBFromLinear converts a linear-light component to gamma-encoded sRGB,
// with odd symmetry for negative values.
func SRGBFromLinear(c float64) float64 {
	if c < 0 {
		return -SRGBFromLinear(-c)
	}
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// Primaries are the chromaticities of an RGB space's red, green and
// blue primaries.
type Primaries struct {
	Red, Green, Blue XYZ
}

// SRGBPrimaries holds the sRGB primaries as chromaticities with Y = 1.
var SRGBPrimaries = Primaries{
	Red:   WhiteFromXY(0.64, 0.33),
	Green: WhiteFromXY(0.30, 0.60),
	Blue:  WhiteFromXY(0.15, 0.06),
}

// RGBToXYZMatrix returns the matrix converting linear RGB with the given
// primaries to XYZ, scaled so that RGB (1, 1, 1) maps to white.
func RGBToXYZMatrix(p Primaries, white XYZ) Mat3 {
	m := Mat3{
		{p.Red.X, p.Green.X, p.Blue.X},
		{p.Red.Y, p.Green.Y, p.Blue.Y},
		{p.Red.Z, p.Green.Z, p.Blue.Z},
	}
	s := mustInverse(m).MulVec(white.Vec())
	return m.Mul(Diag(s[0], s[1], s[2]))
}

var (
	// SRGBToXYZD65 converts linear sRGB to XYZ relative to D65.
	SRGBToXYZD65 = RGBToXYZMatrix(SRGBPrimaries, D65)

	// SRGBToXYZD50 converts linear sRGB to the D50 profile connection
	// space, via Bradford adaptation.
	SRGBToXYZD50 = D65ToD50.Mul(SRGBToXYZD65)

	// XYZD50ToSRGB is the inverse of [SRGBToXYZD50].
	XYZD50ToSRGB = mustInverse(SRGBToXYZD50)
)

// SRGBToXYZ converts gamma-encoded sRGB components to the D50
// profile connection space.
func SRGBToXYZ(r, g, b float64) XYZ {
	lin := [3]float64{SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)}
	return XYZFromVec(SRGBToXYZD50.MulVec(lin))
}

// XYZToSRGB converts a D50 profile connection space value to
// gamma-encoded sRGB components, which may be outside [0, 1].
func XYZToSRGB(c XYZ) (r, g, b float64) {
	lin := XYZD50ToSRGB.MulVec(c.Vec())
	return SRGBFromLinear(lin[0]), SRGBFromLinear(lin[1]), SRGBFromLinear(lin[2])
}
