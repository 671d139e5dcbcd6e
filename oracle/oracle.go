// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle provides the transforms between the device RGB of a
// profile and the D50 profile connection space (PCS). An [Oracle] is
// the only place where a profile's device behavior enters color
// conversions and gamut tests.
package oracle

import (
	"errors"
	"fmt"
	"math"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/models"
)

// Oracle transforms between device RGB and the D50 PCS. The boolean
// result reports whether the transform is defined for the input;
// out-of-gamut inputs are transformed without clamping wherever the
// underlying transform allows it.
type Oracle interface {
	// ToPCS transforms device RGB to PCS XYZ.
	ToPCS(rgb models.RGBValue) (cie.XYZ, bool)

	// FromPCS transforms PCS XYZ to device RGB, which may fall outside [0, 1].
	FromPCS(xyz cie.XYZ) (models.RGBValue, bool)
}

// ErrNoTransform is returned when a profile has neither matrix-shaper
// tags nor lookup tables for the requested intent.
var ErrNoTransform = errors.New("oracle: profile has no usable RGB transform")

// New returns the oracle for an RGB profile and rendering intent.
// Lookup tables are preferred over the matrix-shaper tags, except
// for the colorimetric intents of profiles that have both.
func New(p *icc.Profile, intent icc.Intent) (Oracle, error) {
	if p.Header.ColorSpace != icc.SpaceRGB {
		return nil, fmt.Errorf("oracle: color space %v is not RGB", p.Header.ColorSpace)
	}
	colorimetric := intent == icc.RelativeColorimetric || intent == icc.AbsoluteColorimetric
	if p.HasLUT(intent) && !(colorimetric && p.IsMatrixShaper()) {
		return NewLUT(p, intent)
	}
	if p.IsMatrixShaper() {
		return NewMatrixShaper(p, intent)
	}
	return nil, ErrNoTransform
}

// absoluteScale returns the component-wise factors converting relative
// PCS values to absolute ones for the intent.
func absoluteScale(p *icc.Profile, intent icc.Intent) cie.XYZ {
	if intent != icc.AbsoluteColorimetric {
		return cie.XYZ{X: 1, Y: 1, Z: 1}
	}
	w := p.MediaWhitePoint()
	return cie.XYZ{X: w.X / cie.D50.X, Y: w.Y / cie.D50.Y, Z: w.Z / cie.D50.Z}
}

func invScale(s cie.XYZ) cie.XYZ { return cie.XYZ{X: 1 / s.X, Y: 1 / s.Y, Z: 1 / s.Z} }

func defined(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// srgb is the analytic built-in sRGB transform.
type srgb struct{}

// SRGB returns the analytic sRGB oracle, which uses the exact sRGB
// primaries and transfer function.
func SRGB() Oracle { return srgb{} }

func (srgb) ToPCS(rgb models.RGBValue) (cie.XYZ, bool) {
	if rgb.IsNaN() {
		return cie.XYZ{}, false
	}
	return cie.SRGBToXYZ(rgb.R, rgb.G, rgb.B), true
}

func (srgb) FromPCS(xyz cie.XYZ) (models.RGBValue, bool) {
	if xyz.IsNaN() {
		return models.RGBValue{}, false
	}
	r, g, b := cie.XYZToSRGB(xyz)
	return models.RGBValue{R: r, G: g, B: b}, defined(r, g, b)
}
