// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsx provides the HSL, HSV and HWB transforms of RGB.
// Hue is in degrees [0, 360); saturation, lightness, value,
// whiteness and blackness are percentages in [0, 100].
// RGB components are in [0, 1].
package hsx

import (
	"fmt"
	"math"

	"cogentcore.org/gamut/polar"
)

// HSL is hue, saturation, lightness.
type HSL struct {
	H, S, L float64
}

// HSV is hue, saturation, value.
type HSV struct {
	H, S, V float64
}

// HWB is hue, whiteness, blackness.
type HWB struct {
	H, W, B float64
}

// Family holds the RGB form of a color together with its HSL, HSV
// and HWB forms, which all share the same hue.
type Family struct {
	R, G, B float64
	HSL     HSL
	HSV     HSV
	HWB     HWB
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

// Hue returns the hue of the given RGB components in degrees [0, 360),
// and false if the color is achromatic.
func Hue(r, g, b float64) (float64, bool) {
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	d := mx - mn
	if d <= 0 {
		return 0, false
	}
	var h float64
	switch mx {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return polar.NormalizeDegrees(h * 60), true
}

// FromRGB returns the family of the given RGB components, which are
// clamped to [0, 1]. For achromatic colors, the hue is the first
// prevHue if given, else 0.
func FromRGB(r, g, b float64, prevHue ...float64) Family {
	r, g, b = clamp01(r), clamp01(g), clamp01(b)
	h, ok := Hue(r, g, b)
	if len(prevHue) > 0 && !ok {
		h = polar.NormalizeDegrees(prevHue[0])
	}
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	d := mx - mn

	f := Family{R: r, G: g, B: b}
	l := (mx + mn) / 2
	var sl float64
	if d > 0 {
		sl = d / (1 - math.Abs(2*l-1))
	}
	f.HSL = HSL{h, clampPercent(sl * 100), clampPercent(l * 100)}

	var sv float64
	if mx > 0 {
		sv = d / mx
	}
	f.HSV = HSV{h, clampPercent(sv * 100), clampPercent(mx * 100)}
	f.HWB = HWB{h, clampPercent((1 - sv) * mx * 100), clampPercent((1 - mx) * 100)}
	return f
}

// rgbFromChroma returns the RGB components for a hue, chroma c and
// offset m, as shared by the HSL and HSV formulas.
func rgbFromChroma(h, c, m float64) (r, g, b float64) {
	hp := polar.NormalizeDegrees(h) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return clamp01(r + m), clamp01(g + m), clamp01(b + m)
}

// RGB returns the RGB components of h. Out of range
// components are clamped.
func (h HSL) RGB() (r, g, b float64) {
	s := clampPercent(h.S) / 100
	l := clampPercent(h.L) / 100
	c := (1 - math.Abs(2*l-1)) * s
	return rgbFromChroma(h.H, c, l-c/2)
}

// RGB returns the RGB components of v. Out of range
// components are clamped.
func (v HSV) RGB() (r, g, b float64) {
	s := clampPercent(v.S) / 100
	val := clampPercent(v.V) / 100
	c := val * s
	return rgbFromChroma(v.H, c, val-c)
}

// Normalize returns w with whiteness and blackness scaled down
// proportionally when their sum exceeds 100.
func (w HWB) Normalize() HWB {
	wh, bl := clampPercent(w.W), clampPercent(w.B)
	if sum := wh + bl; sum > 100 {
		wh *= 100 / sum
		bl *= 100 / sum
	}
	return HWB{w.H, wh, bl}
}

// HSV returns the HSV form of w, after [HWB.Normalize].
func (w HWB) HSV() HSV {
	n := w.Normalize()
	q := 100 - n.B
	var s float64
	if q > 0 { // q is 0 only for black
		s = clampPercent(100 - n.W/q*100)
	}
	return HSV{n.H, s, clampPercent(q)}
}

// RGB returns the RGB components of w.
func (w HWB) RGB() (r, g, b float64) {
	return w.HSV().RGB()
}

// FromHSL returns the family of h. The given HSL form and its hue are
// kept as given, except that out-of-range values are clamped. For black,
// the HSV saturation follows the HSL saturation.
func FromHSL(h HSL) Family {
	h = HSL{polar.NormalizeDegrees(h.H), clampPercent(h.S), clampPercent(h.L)}
	r, g, b := h.RGB()
	f := FromRGB(r, g, b)
	f.withHue(h.H)
	f.HSL = h
	if h.L == 0 {
		f.HSV.S = h.S
	}
	return f
}

// FromHSV returns the family of v. The given HSV form and its hue are
// kept as given, except that out-of-range values are clamped. For black,
// the HSL saturation follows the HSV saturation.
func FromHSV(v HSV) Family {
	v = HSV{polar.NormalizeDegrees(v.H), clampPercent(v.S), clampPercent(v.V)}
	r, g, b := v.RGB()
	f := FromRGB(r, g, b)
	f.withHue(v.H)
	f.HSV = v
	if v.V == 0 {
		f.HSL.S = v.S
	}
	return f
}

// FromHWB returns the family of w. The given HWB form is kept without
// normalization, while the HSV form is that of the normalized value.
func FromHWB(w HWB) Family {
	w = HWB{polar.NormalizeDegrees(w.H), clampPercent(w.W), clampPercent(w.B)}
	v := w.HSV()
	r, g, b := v.RGB()
	f := FromRGB(r, g, b)
	f.withHue(w.H)
	f.HSV = v
	f.HWB = w
	return f
}

// withHue sets the shared hue of all forms.
func (f *Family) withHue(h float64) {
	f.HSL.H = h
	f.HSV.H = h
	f.HWB.H = h
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.4g, %.4g%%, %.4g%%)", h.H, h.S, h.L)
}

func (v HSV) String() string {
	return fmt.Sprintf("hsv(%.4g, %.4g%%, %.4g%%)", v.H, v.S, v.V)
}

func (w HWB) String() string {
	return fmt.Sprintf("hwb(%.4g, %.4g%%, %.4g%%)", w.H, w.W, w.B)
}
