// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polar converts between Cartesian (a, b) color planes and
// polar (chroma, hue) coordinates, with a single policy for
// achromatic colors whose hue is undefined.
package polar

import "math"

// AchromaticEpsilon is the radius at or below which a color is treated
// as achromatic. Matrix round trips leave grays with a residual radius
// around 1e-13, which must not produce a meaningful hue.
const AchromaticEpsilon = 1e-7

// NormalizeDegrees maps any angle onto [0, 360).
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 { // -tiny + 360 rounds to 360
		deg = 0
	}
	return deg
}

// FromCartesian returns the chroma (radius) and hue (degrees in [0, 360))
// of the point (a, b). When the radius is at or below [AchromaticEpsilon],
// the chroma is 0 and the hue is the first element of prevHue if given,
// else 0.
func FromCartesian(a, b float64, prevHue ...float64) (chroma, hue float64) {
	chroma = math.Hypot(a, b)
	if chroma <= AchromaticEpsilon || math.IsNaN(chroma) {
		if len(prevHue) > 0 {
			return 0, NormalizeDegrees(prevHue[0])
		}
		return 0, 0
	}
	hue = NormalizeDegrees(math.Atan2(b, a) * 180 / math.Pi)
	return chroma, hue
}

// ToCartesian returns the (a, b) point for the given chroma and hue.
// A negative chroma is interpreted as the positive chroma at the
// opposite hue, which gives the same point.
func ToCartesian(chroma, hue float64) (a, b float64) {
	rad := NormalizeDegrees(hue) * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad)
}

// Fold normalizes a (chroma, hue) pair so that chroma is non-negative
// and hue is within [0, 360).
func Fold(chroma, hue float64) (float64, float64) {
	if chroma < 0 {
		return -chroma, NormalizeDegrees(hue + 180)
	}
	return chroma, NormalizeDegrees(hue)
}

// HueDistance returns the absolute angular distance between two hues,
// in [0, 180].
func HueDistance(h1, h2 float64) float64 {
	d := math.Abs(NormalizeDegrees(h1) - NormalizeDegrees(h2))
	if d > 180 {
		d = 360 - d
	}
	return d
}
