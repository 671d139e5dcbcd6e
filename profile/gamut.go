// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"cogentcore.org/gamut/convert"
	"cogentcore.org/gamut/models"
)

// Tolerance configures the in-gamut test.
type Tolerance struct {
	// Epsilon is how far device RGB components may lie outside [0, 1].
	Epsilon float64 `default:"1e-6"`

	// CIELabDeviation is the largest CIELab distance allowed between
	// a color and its round trip through the clamped device RGB.
	CIELabDeviation float64 `default:"0.5"`

	// OklabDeviation is the Oklab counterpart of CIELabDeviation.
	OklabDeviation float64 `default:"0.005"`
}

// DefaultTolerance is the tolerance used by default.
var DefaultTolerance = Tolerance{Epsilon: 1e-6, CIELabDeviation: 0.5, OklabDeviation: 0.005}

// deviationModel returns the Cartesian model in which round trip
// deviations of values in m are measured.
func deviationModel(m models.Model) models.Model {
	switch m {
	case models.Oklab, models.Oklch:
		return models.Oklab
	case models.CIELabD65, models.CIELChD65, models.XYZD65:
		return models.CIELabD65
	}
	return models.CIELabD50
}

// Deviation returns the deviation limit for values in model m.
func (t Tolerance) Deviation(m models.Model) float64 {
	if deviationModel(m) == models.Oklab {
		return t.OklabDeviation
	}
	return t.CIELabDeviation
}

// ToRGB converts v in model m to device RGB without clamping.
// It returns false if the oracle cannot transform the color.
func (c *Context) ToRGB(m models.Model, v models.Values) (models.RGBValue, bool) {
	if m.IsDeviceFamily() {
		rgb, _ := convert.Convert(m, v, models.RGB)
		return models.RGBFromValues(rgb), true
	}
	xyz, ok := convert.ToPCS(m, v)
	if !ok {
		return models.RGBValue{}, false
	}
	return c.oracle.FromPCS(xyz)
}

// FromRGB converts device RGB to model m. The optional previous hue
// is used for achromatic results in cylindrical models.
func (c *Context) FromRGB(rgb models.RGBValue, m models.Model, prevHue ...float64) (models.Values, bool) {
	if m == models.RGB {
		return rgb.Values(), true
	}
	if m.IsDeviceFamily() {
		return convert.Convert(models.RGB, rgb.Values(), m, prevHue...)
	}
	xyz, ok := c.oracle.ToPCS(rgb)
	if !ok {
		return models.Values{}, false
	}
	return convert.FromPCS(xyz, m, prevHue...)
}

// Convert converts v between any two models, going through the
// device RGB of the context when the models are in different families.
func (c *Context) Convert(from models.Model, v models.Values, to models.Model, prevHue ...float64) (models.Values, bool) {
	if convert.Reachable(from, to) {
		return convert.Convert(from, v, to, prevHue...)
	}
	if from.IsCylindrical() && len(prevHue) == 0 {
		prevHue = []float64{convert.Normalize(from, v)[from.HueIndex()]}
	}
	rgb, ok := c.ToRGB(from, v)
	if !ok {
		return models.Values{}, false
	}
	return c.FromRGB(rgb, to, prevHue...)
}

// InGamut returns whether v in model m is displayable with the
// profile: the oracle transforms it to device RGB within the
// tolerance's epsilon of [0, 1], and the clamped RGB transforms back
// within the deviation limit. Device family values are always in
// gamut once normalized, apart from RGB outside [0, 1].
func (c *Context) InGamut(m models.Model, v models.Values, tol Tolerance) bool {
	if v.IsNaN() {
		return false
	}
	if m == models.RGB {
		return models.RGBFromValues(v).InRange(tol.Epsilon)
	}
	if m.IsDeviceFamily() {
		return true
	}
	rgb, ok := c.ToRGB(m, v)
	if !ok || !rgb.InRange(tol.Epsilon) {
		return false
	}
	dm := deviationModel(m)
	want, _ := convert.Convert(m, v, dm)
	got, ok := c.FromRGB(rgb.Clamp(), dm)
	if !ok || got.IsNaN() {
		return false
	}
	return want.Distance(got) <= tol.Deviation(m)
}
