// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"image/color"
	"math"
)

// RGBValue is a device RGB color of some profile. In-gamut components
// are in [0, 1]; out-of-gamut values returned by a transform may
// lie outside that range.
type RGBValue struct {
	R, G, B float64
}

// Values returns the components as [Values].
func (c RGBValue) Values() Values { return Values{c.R, c.G, c.B} }

// RGBFromValues returns the RGB value with the given components.
func RGBFromValues(v Values) RGBValue { return RGBValue{v[0], v[1], v[2]} }

// IsNaN returns whether any component is NaN.
func (c RGBValue) IsNaN() bool {
	return math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B)
}

// InRange returns whether every component is within [-eps, 1+eps].
func (c RGBValue) InRange(eps float64) bool {
	in := func(v float64) bool { return v >= -eps && v <= 1+eps }
	return !c.IsNaN() && in(c.R) && in(c.G) && in(c.B)
}

// Clamp returns c with every component clamped to [0, 1].
// NaN components become 0.
func (c RGBValue) Clamp() RGBValue {
	cl := func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return math.Max(0, math.Min(1, v))
	}
	return RGBValue{cl(c.R), cl(c.G), cl(c.B)}
}

// AsRGBA returns the 8-bit form of c with the given alpha in [0, 1],
// premultiplied as required by [color.RGBA].
func (c RGBValue) AsRGBA(alpha float64) color.RGBA {
	cc := c.Clamp()
	a := math.Max(0, math.Min(1, alpha))
	to8 := func(v float64) uint8 { return uint8(math.Round(v * a * 255)) }
	return color.RGBA{to8(cc.R), to8(cc.G), to8(cc.B), uint8(math.Round(a * 255))}
}

// RGBFromColor returns the device RGB of a standard [color.Color]
// and its alpha, undoing alpha premultiplication.
func RGBFromColor(c color.Color) (RGBValue, float64) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBValue{}, 0
	}
	fa := float64(a)
	return RGBValue{float64(r) / fa, float64(g) / fa, float64(b) / fa}, fa / 0xffff
}

// Hex returns c as a #rrggbb string, after clamping.
func (c RGBValue) Hex() string {
	cc := c.Clamp()
	to8 := func(v float64) uint8 { return uint8(math.Round(v * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to8(cc.R), to8(cc.G), to8(cc.B))
}

func (c RGBValue) String() string {
	return fmt.Sprintf("rgb(%.4g, %.4g, %.4g)", c.R, c.G, c.B)
}
