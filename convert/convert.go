// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert converts color values between models without any
// reference to a device profile. The absolute models (XYZ, CIELab,
// CIELCh, Oklab, Oklch) form one conversion graph and the device
// models (RGB, HSL, HSV, HWB) another; crossing between the two
// requires a profile transform.
package convert

import (
	"math"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/hsx"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/oklab"
	"cogentcore.org/gamut/polar"
)

// edge is a direct conversion. prevHue is only used by conversions
// to a cylindrical model.
type edge struct {
	to models.Model
	fn func(v models.Values, prevHue []float64) models.Values
}

var graph = map[models.Model][]edge{
	models.XYZD50: {
		{models.XYZD65, func(v models.Values, _ []float64) models.Values {
			return models.Values(cie.D50ToD65XYZ(cie.XYZFromVec(v)).Vec())
		}},
		{models.CIELabD50, func(v models.Values, _ []float64) models.Values {
			l := cie.XYZFromVec(v).ToLab(cie.D50)
			return models.Values{l.L, l.A, l.B}
		}},
	},
	models.XYZD65: {
		{models.XYZD50, func(v models.Values, _ []float64) models.Values {
			return models.Values(cie.D65ToD50XYZ(cie.XYZFromVec(v)).Vec())
		}},
		{models.CIELabD65, func(v models.Values, _ []float64) models.Values {
			l := cie.XYZFromVec(v).ToLab(cie.D65)
			return models.Values{l.L, l.A, l.B}
		}},
		{models.Oklab, func(v models.Values, _ []float64) models.Values {
			o := oklab.FromXYZ(cie.XYZFromVec(v))
			return models.Values{o.L, o.A, o.B}
		}},
	},
	models.CIELabD50: {
		{models.XYZD50, labToXYZ(cie.D50)},
		{models.CIELChD50, toPolar},
	},
	models.CIELabD65: {
		{models.XYZD65, labToXYZ(cie.D65)},
		{models.CIELChD65, toPolar},
	},
	models.CIELChD50: {{models.CIELabD50, toCartesian}},
	models.CIELChD65: {{models.CIELabD65, toCartesian}},
	models.Oklab: {
		{models.XYZD65, func(v models.Values, _ []float64) models.Values {
			return models.Values(oklab.Oklab{L: v[0], A: v[1], B: v[2]}.XYZ().Vec())
		}},
		{models.Oklch, toPolar},
	},
	models.Oklch: {{models.Oklab, toCartesian}},
}

func labToXYZ(white cie.XYZ) func(models.Values, []float64) models.Values {
	return func(v models.Values, _ []float64) models.Values {
		return models.Values(cie.Lab{L: v[0], A: v[1], B: v[2]}.ToXYZ(white).Vec())
	}
}

func toPolar(v models.Values, prevHue []float64) models.Values {
	c, h := polar.FromCartesian(v[1], v[2], prevHue...)
	return models.Values{v[0], c, h}
}

func toCartesian(v models.Values, _ []float64) models.Values {
	a, b := polar.ToCartesian(v[1], v[2])
	return models.Values{v[0], a, b}
}

// paths holds the shortest conversion path for each pair of absolute
// models, excluding the source and including the destination.
var paths = func() map[[2]models.Model][]edge {
	ps := map[[2]models.Model][]edge{}
	for from := range graph {
		// breadth-first search from each model
		prev := map[models.Model]edge{}
		parent := map[models.Model]models.Model{from: from}
		queue := []models.Model{from}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range graph[cur] {
				if _, seen := parent[e.to]; seen {
					continue
				}
				parent[e.to] = cur
				prev[e.to] = e
				queue = append(queue, e.to)
			}
		}
		for to := range parent {
			var path []edge
			for m := to; m != from; m = parent[m] {
				path = append([]edge{prev[m]}, path...)
			}
			ps[[2]models.Model{from, to}] = path
		}
	}
	return ps
}()

// IsAbsolute returns whether m is one of the profile-independent
// models of the absolute conversion graph.
func IsAbsolute(m models.Model) bool {
	_, ok := graph[m]
	return ok
}

// Reachable returns whether values in the from model can be converted
// to the to model without a profile transform.
func Reachable(from, to models.Model) bool {
	if from.IsDeviceFamily() && to.IsDeviceFamily() {
		return true
	}
	_, ok := paths[[2]models.Model{from, to}]
	return ok
}

// Convert converts v from one model to another within the same family.
// The optional previous hue is used for achromatic results in a
// cylindrical target model. It returns false if the target model is not
// reachable without a profile transform.
func Convert(from models.Model, v models.Values, to models.Model, prevHue ...float64) (models.Values, bool) {
	v = Normalize(from, v)
	if from.IsDeviceFamily() && to.IsDeviceFamily() {
		return Device(FamilyOf(from, v, prevHue...), to), true
	}
	path, ok := paths[[2]models.Model{from, to}]
	if !ok {
		return models.Values{}, false
	}
	if from.IsCylindrical() && len(prevHue) == 0 {
		prevHue = []float64{v[2]} // keep the source hue for grays
	}
	for _, e := range path {
		v = e.fn(v, prevHue)
	}
	return v, true
}

// ToPCS converts v in an absolute model to the D50 profile
// connection space.
func ToPCS(from models.Model, v models.Values) (cie.XYZ, bool) {
	x, ok := Convert(from, v, models.XYZD50)
	return cie.XYZFromVec(x), ok
}

// FromPCS converts a profile connection space value to an absolute model.
func FromPCS(c cie.XYZ, to models.Model, prevHue ...float64) (models.Values, bool) {
	return Convert(models.XYZD50, models.Values(c.Vec()), to, prevHue...)
}

// FamilyOf returns the device family of v in one of the device models.
func FamilyOf(from models.Model, v models.Values, prevHue ...float64) hsx.Family {
	switch from {
	case models.HSL:
		return hsx.FromHSL(hsx.HSL{H: v[0], S: v[1], L: v[2]})
	case models.HSV:
		return hsx.FromHSV(hsx.HSV{H: v[0], S: v[1], V: v[2]})
	case models.HWB:
		return hsx.FromHWB(hsx.HWB{H: v[0], W: v[1], B: v[2]})
	}
	return hsx.FromRGB(v[0], v[1], v[2], prevHue...)
}

// Device returns the values of a device family in one of its models.
func Device(f hsx.Family, to models.Model) models.Values {
	switch to {
	case models.HSL:
		return models.Values{f.HSL.H, f.HSL.S, f.HSL.L}
	case models.HSV:
		return models.Values{f.HSV.H, f.HSV.S, f.HSV.V}
	case models.HWB:
		return models.Values{f.HWB.H, f.HWB.W, f.HWB.B}
	}
	return models.Values{f.R, f.G, f.B}
}

// Normalize brings out-of-domain values into the domain of model m:
// lightness is clamped, negative chroma is folded onto the opposite hue,
// hue is wrapped into [0, 360), and percentages are clamped to [0, 100].
// RGB and XYZ values are returned unchanged, apart from NaN becoming 0.
func Normalize(m models.Model, v models.Values) models.Values {
	for i, c := range v {
		if math.IsNaN(c) {
			v[i] = 0
		}
	}
	clamp := func(x, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, x)) }
	switch m {
	case models.HSL, models.HSV, models.HWB:
		return models.Values{polar.NormalizeDegrees(v[0]), clamp(v[1], 0, 100), clamp(v[2], 0, 100)}
	case models.CIELabD50, models.CIELabD65, models.Oklab:
		lo, hi := m.LightnessRange()
		v[0] = clamp(v[0], lo, hi)
	case models.CIELChD50, models.CIELChD65, models.Oklch:
		lo, hi := m.LightnessRange()
		c, h := polar.Fold(v[1], v[2])
		return models.Values{clamp(v[0], lo, hi), c, h}
	}
	return v
}
