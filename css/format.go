// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package css

import (
	"strconv"
	"strings"

	"cogentcore.org/gamut/colorvalue"
	"cogentcore.org/gamut/models"
)

// num formats v with at most dec decimals, without trailing zeros.
func num(v float64, dec int) string {
	s := strconv.FormatFloat(v, 'f', dec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func alpha(a float64) string {
	if a >= 1 {
		return ""
	}
	return " / " + num(a*100, 2) + "%"
}

// Format returns the CSS form of v in model m. CIELab and CIELCh are
// D50-relative in CSS, so both of their variants are formatted as
// lab() and lch() with D50 values. XYZ uses color().
func Format(v *colorvalue.Value, m models.Model) string {
	a := alpha(v.Alpha())
	switch m {
	case models.RGB:
		c := v.Get(models.RGB)
		return "rgb(" + num(c[0]*255, 2) + " " + num(c[1]*255, 2) + " " + num(c[2]*255, 2) + a + ")"
	case models.HSL, models.HWB:
		c := v.Get(m)
		name := "hsl("
		if m == models.HWB {
			name = "hwb("
		}
		return name + num(c[0], 2) + " " + num(c[1], 2) + "% " + num(c[2], 2) + "%" + a + ")"
	case models.HSV:
		// HSV has no CSS syntax, so it is given as its HSL equivalent
		return Format(v, models.HSL)
	case models.CIELabD50, models.CIELabD65:
		c := v.Get(models.CIELabD50)
		return "lab(" + num(c[0], 2) + " " + num(c[1], 2) + " " + num(c[2], 2) + a + ")"
	case models.CIELChD50, models.CIELChD65:
		c := v.Get(models.CIELChD50)
		return "lch(" + num(c[0], 2) + " " + num(c[1], 2) + " " + num(c[2], 2) + a + ")"
	case models.Oklab:
		c := v.Get(m)
		return "oklab(" + num(c[0], 4) + " " + num(c[1], 4) + " " + num(c[2], 4) + a + ")"
	case models.Oklch:
		c := v.Get(m)
		return "oklch(" + num(c[0], 4) + " " + num(c[1], 4) + " " + num(c[2], 2) + a + ")"
	case models.XYZD50, models.XYZD65:
		c := v.Get(m)
		space := "xyz-d50 "
		if m == models.XYZD65 {
			space = "xyz-d65 "
		}
		return "color(" + space + num(c[0], 4) + " " + num(c[1], 4) + " " + num(c[2], 4) + a + ")"
	}
	return v.Hex()
}

// FormatAll returns the CSS forms of v in the absolute models, most
// useful first: oklch, oklab, lch, lab, xyz-d50, xyz-d65. Device RGB
// forms are left out, as CSS interprets them as sRGB whatever the
// profile of v.
func FormatAll(v *colorvalue.Value) []string {
	ms := []models.Model{models.Oklch, models.Oklab, models.CIELChD50, models.CIELabD50, models.XYZD50, models.XYZD65}
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = Format(v, m)
	}
	return out
}
