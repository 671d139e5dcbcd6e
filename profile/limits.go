// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"log/slog"
	"math"

	"cogentcore.org/gamut/hsx"
	"cogentcore.org/gamut/models"
)

const (
	// MaxCIEChroma is the chroma upper bound for CIELCh when none
	// can be detected from the profile.
	MaxCIEChroma = 255

	// MaxOklabChroma is the Oklch counterpart of [MaxCIEChroma].
	MaxOklabChroma = 2

	// hueSteps is the number of fully saturated hues sampled to
	// detect the maximum chroma.
	hueSteps = 3600

	// chromaMargin scales the detected maximum chroma, before the
	// deviation limit is added, to bound the chroma of any color.
	chromaMargin = 1.02
)

// Limits are characteristics of a profile in one of the lightness,
// chroma, hue models.
type Limits struct {
	// BlackL is the lightness of the darkest displayable gray.
	BlackL float64

	// WhiteL is the lightness of the lightest displayable gray.
	WhiteL float64

	// MaxChroma bounds the chroma of every displayable color.
	MaxChroma float64
}

// Limits returns the detected limits of the profile in model m,
// which is one of CIELCh D50, CIELCh D65 and Oklch, or their Cartesian
// forms. They are detected on first use.
func (c *Context) Limits(m models.Model) Limits {
	return c.limits()[m.Polar()]
}

func (c *Context) detect() map[models.Model]Limits {
	lims := map[models.Model]Limits{}
	for _, m := range []models.Model{models.CIELChD50, models.CIELChD65, models.Oklch} {
		lo, hi := m.LightnessRange()
		l := Limits{
			BlackL:    c.grayLimit(m, lo, hi),
			WhiteL:    c.grayLimit(m, hi, lo),
			MaxChroma: c.maxChroma(m),
		}
		lims[m] = l
	}
	slog.Debug("detected profile limits", "profile", c.info.Name, "limits", lims)
	return lims
}

// grayLimit walks the grays from lightness from toward to, and returns
// the first displayable lightness, or from if there is none.
func (c *Context) grayLimit(m models.Model, from, to float64) float64 {
	in := func(l float64) bool { return c.InGamut(m, models.Values{l, 0, 0}, DefaultTolerance) }
	if in(from) {
		return from
	}
	step := (to - from) / 100
	prev := from
	for i := 1; i <= 100; i++ {
		l := from + float64(i)*step
		if in(l) {
			// refine between the last gray out of gamut and l
			fine := step / 100
			for j := 1; j < 100; j++ {
				if f := prev + float64(j)*fine; in(f) {
					return f
				}
			}
			return l
		}
		prev = l
	}
	return from
}

// maxChroma returns the upper chroma bound for model m: the largest
// chroma of the fully saturated hues, with a margin.
func (c *Context) maxChroma(m models.Model) float64 {
	best := 0.0
	for i := range hueSteps {
		r, g, b := hsx.HSV{H: float64(i) * 360 / hueSteps, S: 100, V: 100}.RGB()
		v, ok := c.FromRGB(models.RGBValue{R: r, G: g, B: b}, m)
		if ok && !v.IsNaN() {
			best = math.Max(best, v[1])
		}
	}
	if best <= 0 {
		if m == models.Oklch {
			return MaxOklabChroma
		}
		return MaxCIEChroma
	}
	return best*chromaMargin + DefaultTolerance.Deviation(m)
}
