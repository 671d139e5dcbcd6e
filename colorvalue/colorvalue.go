// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorvalue provides [Value], an immutable color with an
// authoritative device RGB and lazily computed projections into every
// color model.
package colorvalue

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/convert"
	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/hsx"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/oklab"
	"cogentcore.org/gamut/profile"
)

// Value is an immutable color of a profile context: device RGB in
// [0, 1] and an opacity in [0, 1]. Projections into other models are
// computed on first use and then memoized; a Value is safe for
// concurrent use.
type Value struct {
	rgb   models.RGBValue
	alpha float64
	ctx   *profile.Context

	// hue is the hue hint of each cylindrical model, used when the
	// color is achromatic.
	hue     [models.ModelsN]float64
	hasHue  [models.ModelsN]bool
	hueFrom *Value

	proj [models.ModelsN]projection
}

type projection struct {
	once sync.Once
	v    models.Values
}

// Option configures the construction of a [Value].
type Option func(v *Value)

// WithAlpha sets the opacity, which is clamped to [0, 1]. The
// default is 1.
func WithAlpha(alpha float64) Option {
	return func(v *Value) {
		if math.IsNaN(alpha) {
			alpha = 1
		}
		v.alpha = math.Max(0, math.Min(1, alpha))
	}
}

// KeepHueOf makes achromatic projections take their hue from prev,
// so that a gray picked after a color keeps that color's hue in every
// cylindrical model.
func KeepHueOf(prev *Value) Option {
	return func(v *Value) { v.hueFrom = prev }
}

func newValue(ctx *profile.Context, rgb models.RGBValue, opts []Option) *Value {
	if ctx == nil {
		ctx = profile.SRGB()
	}
	v := &Value{rgb: rgb.Clamp(), alpha: 1, ctx: ctx}
	for _, o := range opts {
		o(v)
	}
	return v
}

// FromRGB returns the value of device RGB in a profile context,
// which is the built-in sRGB if ctx is nil. Components are clamped
// to [0, 1].
func FromRGB(ctx *profile.Context, rgb models.RGBValue, opts ...Option) *Value {
	return newValue(ctx, rgb, opts)
}

// FromColor returns the value of a standard color, whose components
// are taken as device RGB of the profile context.
func FromColor(ctx *profile.Context, c color.Color, opts ...Option) *Value {
	rgb, alpha := models.RGBFromColor(c)
	return newValue(ctx, rgb, append([]Option{WithAlpha(alpha)}, opts...))
}

// FromHex returns the value of a hex color string such as #ff8000
// or #ff800080.
func FromHex(ctx *profile.Context, hex string, opts ...Option) (*Value, error) {
	rgb, alpha, err := models.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return newValue(ctx, rgb, append([]Option{WithAlpha(alpha)}, opts...)), nil
}

// FromModel returns the value of v in model m, in the profile context
// of the engine. Values in the perceptual models are first reduced in
// chroma into the gamut of the profile; the projection into m is the
// normalized and reduced v itself when that is in gamut. Achromatic
// values of a cylindrical model keep their hue in that model, and in
// the other models of the device family, whose hues are the same.
func FromModel(e *gamut.Engine, m models.Model, v models.Values, opts ...Option) (*Value, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("colorvalue.FromModel: invalid model %v", m)
	}
	if v.IsNaN() {
		return nil, fmt.Errorf("colorvalue.FromModel: NaN component in %v %v", m, v)
	}
	ctx := e.Profile()
	v = e.ReduceChroma(m, v)
	rgb, ok := ctx.ToRGB(m, v)
	if !ok || rgb.IsNaN() {
		return nil, fmt.Errorf("colorvalue.FromModel: %v %v has no device RGB in %v", m, v, ctx)
	}
	val := newValue(ctx, rgb, opts)
	if hi := m.HueIndex(); hi >= 0 {
		for _, cm := range models.All() {
			if cm == m || cm.IsCylindrical() && cm.IsDeviceFamily() && m.IsDeviceFamily() {
				val.hue[cm], val.hasHue[cm] = v[hi], true
			}
		}
	}
	if e.InGamut(m, v) {
		val.proj[m].once.Do(func() { val.proj[m].v = v })
	}
	return val, nil
}

// Profile returns the profile context of the value.
func (v *Value) Profile() *profile.Context { return v.ctx }

// RGB returns the device RGB of the value.
func (v *Value) RGB() models.RGBValue { return v.rgb }

// Alpha returns the opacity of the value.
func (v *Value) Alpha() float64 { return v.alpha }

// hueHint returns the hue to use for achromatic projections into m.
func (v *Value) hueHint(m models.Model) []float64 {
	if v.hueFrom != nil {
		return []float64{v.hueFrom.Get(m)[m.HueIndex()]}
	}
	if v.hasHue[m] {
		return []float64{v.hue[m]}
	}
	return nil
}

// Get returns the projection of the value into model m. It is
// computed once per model.
func (v *Value) Get(m models.Model) models.Values {
	if !m.IsValid() {
		return models.Values{}
	}
	p := &v.proj[m]
	p.once.Do(func() {
		if m == models.RGB {
			p.v = v.rgb.Values()
			return
		}
		var hint []float64
		if m.IsCylindrical() {
			hint = v.hueHint(m)
		}
		p.v, _ = v.ctx.FromRGB(v.rgb, m, hint...)
		if m.IsCylindrical() {
			p.v = convert.Normalize(m, p.v)
		}
	})
	return p.v
}

// XYZ returns the D50 XYZ projection, the profile connection space.
func (v *Value) XYZ() cie.XYZ { return cie.XYZFromVec(v.Get(models.XYZD50)) }

// Lab returns the CIELab projection, relative to D65.
func (v *Value) Lab() cie.Lab {
	c := v.Get(models.Lab)
	return cie.Lab{L: c[0], A: c[1], B: c[2]}
}

// LCh returns the CIELCh projection, relative to D65.
func (v *Value) LCh() cie.LCh {
	c := v.Get(models.LCh)
	return cie.LCh{L: c[0], C: c[1], H: c[2]}
}

// Oklab returns the Oklab projection.
func (v *Value) Oklab() oklab.Oklab {
	c := v.Get(models.Oklab)
	return oklab.Oklab{L: c[0], A: c[1], B: c[2]}
}

// Oklch returns the Oklch projection.
func (v *Value) Oklch() oklab.Oklch {
	c := v.Get(models.Oklch)
	return oklab.Oklch{L: c[0], C: c[1], H: c[2]}
}

// HSL returns the HSL projection.
func (v *Value) HSL() hsx.HSL {
	c := v.Get(models.HSL)
	return hsx.HSL{H: c[0], S: c[1], L: c[2]}
}

// HSV returns the HSV projection.
func (v *Value) HSV() hsx.HSV {
	c := v.Get(models.HSV)
	return hsx.HSV{H: c[0], S: c[1], V: c[2]}
}

// HWB returns the HWB projection.
func (v *Value) HWB() hsx.HWB {
	c := v.Get(models.HWB)
	return hsx.HWB{H: c[0], W: c[1], B: c[2]}
}

// Equal returns whether the device RGB and opacity of v and o are
// within the tolerance of each other. Projections, hue hints and
// profiles are not compared.
func (v *Value) Equal(o *Value, tolerance float64) bool {
	if v == nil || o == nil {
		return v == o
	}
	near := func(a, b float64) bool { return math.Abs(a-b) <= tolerance }
	return near(v.rgb.R, o.rgb.R) && near(v.rgb.G, o.rgb.G) &&
		near(v.rgb.B, o.rgb.B) && near(v.alpha, o.alpha)
}

// Hex returns the value as #rrggbb, or #rrggbbaa if it is not opaque.
func (v *Value) Hex() string {
	h := v.rgb.Hex()
	if v.alpha < 1 {
		h += fmt.Sprintf("%02x", uint8(math.Round(v.alpha*255)))
	}
	return h
}

// RGBA implements [color.Color], returning alpha-premultiplied
// device RGB.
func (v *Value) RGBA() (r, g, b, a uint32) {
	to16 := func(c float64) uint32 { return uint32(math.Round(c * v.alpha * 0xffff)) }
	return to16(v.rgb.R), to16(v.rgb.G), to16(v.rgb.B), uint32(math.Round(v.alpha * 0xffff))
}

func (v *Value) String() string {
	if v.alpha < 1 {
		return fmt.Sprintf("%v / %.3g", v.rgb, v.alpha)
	}
	return v.rgb.String()
}
