// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsx

import (
	"image/color"
	"math"
)

// FromColor returns the family of a standard [color.Color].
// Alpha premultiplication is undone first.
func FromColor(c color.Color) Family {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return FromRGB(0, 0, 0)
	}
	fa := float64(a)
	return FromRGB(float64(r)/fa, float64(g)/fa, float64(b)/fa)
}

// AsRGBA returns the 8-bit RGBA form of f with the given alpha in [0, 1].
func (f Family) AsRGBA(alpha float64) color.RGBA {
	a := clamp01(alpha)
	to8 := func(v float64) uint8 { return uint8(math.Round(v * a * 255)) }
	return color.RGBA{to8(f.R), to8(f.G), to8(f.B), uint8(math.Round(a * 255))}
}

func alphaOf(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}

// Lighten returns a color that is lighter by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func Lighten(c color.Color, amount float64) color.RGBA {
	h := FromColor(c).HSL
	h.L += amount
	return FromHSL(h).AsRGBA(alphaOf(c))
}

// Darken returns a color that is darker by the
// given absolute HSL lightness amount (0-100, ranges enforced)
func Darken(c color.Color, amount float64) color.RGBA {
	return Lighten(c, -amount)
}

// Highlight returns a color that is lighter or darker by the
// given absolute HSL lightness amount (0-100, ranges enforced),
// making the color darker if it is light and lighter otherwise.
func Highlight(c color.Color, amount float64) color.RGBA {
	if IsLight(c) {
		return Darken(c, amount)
	}
	return Lighten(c, amount)
}

// Saturate returns a color that is more saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func Saturate(c color.Color, amount float64) color.RGBA {
	h := FromColor(c).HSL
	h.S += amount
	return FromHSL(h).AsRGBA(alphaOf(c))
}

// Desaturate returns a color that is less saturated by the
// given absolute HSL saturation amount (0-100, ranges enforced)
func Desaturate(c color.Color, amount float64) color.RGBA {
	return Saturate(c, -amount)
}

// Spin returns a color whose hue is rotated by the
// given number of degrees; the result wraps around 360.
func Spin(c color.Color, amount float64) color.RGBA {
	h := FromColor(c).HSL
	h.H += amount
	return FromHSL(h).AsRGBA(alphaOf(c))
}

// IsLight returns whether the given color is light
// (has an HSL lightness greater than or equal to 60)
func IsLight(c color.Color) bool {
	return FromColor(c).HSL.L >= 60
}

// IsDark returns whether the given color is dark
// (has an HSL lightness less than 60)
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should
// be used to contrast this color (white or black),
// based on the result of [IsLight].
func ContrastColor(c color.Color) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
