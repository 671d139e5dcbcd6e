// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package models identifies the color models supported by the
// converter and provides the generic value and device RGB types.
package models

import (
	"fmt"
	"math"
	"strings"
)

// Model identifies a color model.
type Model int32

const (
	// RGB is device RGB of the active profile, with components in [0, 1].
	RGB Model = iota

	// HSL is hue, saturation, lightness of device RGB.
	HSL

	// HSV is hue, saturation, value of device RGB.
	HSV

	// HWB is hue, whiteness, blackness of device RGB.
	HWB

	// XYZD50 is CIE XYZ relative to D50, the profile connection space.
	XYZD50

	// XYZD65 is CIE XYZ relative to D65.
	XYZD65

	// CIELabD50 is CIELab relative to D50.
	CIELabD50

	// CIELChD50 is the cylindrical form of [CIELabD50].
	CIELChD50

	// CIELabD65 is CIELab relative to D65.
	CIELabD65

	// CIELChD65 is the cylindrical form of [CIELabD65].
	CIELChD65

	// Oklab is the Oklab perceptual space.
	Oklab

	// Oklch is the cylindrical form of [Oklab].
	Oklch

	// ModelsN is the number of models.
	ModelsN
)

const (
	// Lab is the default CIELab variant.
	Lab = CIELabD65

	// LCh is the default CIELCh variant.
	LCh = CIELChD65
)

var modelNames = [ModelsN]string{
	RGB:       "RGB",
	HSL:       "HSL",
	HSV:       "HSV",
	HWB:       "HWB",
	XYZD50:    "XYZ-D50",
	XYZD65:    "XYZ-D65",
	CIELabD50: "Lab-D50",
	CIELChD50: "LCh-D50",
	CIELabD65: "Lab",
	CIELChD65: "LCh",
	Oklab:     "Oklab",
	Oklch:     "Oklch",
}

func (m Model) String() string {
	if m < 0 || m >= ModelsN {
		return fmt.Sprintf("Model(%d)", int32(m))
	}
	return modelNames[m]
}

// Parse returns the model with the given name, ignoring case.
// "Lab-D65", "LCh-D65" and "XYZ" are accepted as aliases.
func Parse(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "lab-d65":
		return CIELabD65, nil
	case "lch-d65":
		return CIELChD65, nil
	case "xyz":
		return XYZD50, nil
	}
	for m, name := range modelNames {
		if strings.EqualFold(name, s) {
			return Model(m), nil
		}
	}
	return RGB, fmt.Errorf("models.Parse: unknown color model %q", s)
}

// All returns all models.
func All() []Model {
	ms := make([]Model, ModelsN)
	for i := range ms {
		ms[i] = Model(i)
	}
	return ms
}

// IsValid returns whether m is a known model.
func (m Model) IsValid() bool { return m >= 0 && m < ModelsN }

// IsDeviceFamily returns whether m is device RGB or one of its
// HSL, HSV, HWB transforms, which depend on the active profile
// only through RGB.
func (m Model) IsDeviceFamily() bool { return m >= RGB && m <= HWB }

// IsCylindrical returns whether m has a hue component.
func (m Model) IsCylindrical() bool {
	switch m {
	case HSL, HSV, HWB, CIELChD50, CIELChD65, Oklch:
		return true
	}
	return false
}

// HueIndex returns the index of the hue component in [Values],
// or -1 if m has none.
func (m Model) HueIndex() int {
	switch m {
	case HSL, HSV, HWB:
		return 0
	case CIELChD50, CIELChD65, Oklch:
		return 2
	}
	return -1
}

// IsPolarPerceptual returns whether m is one of the lightness, chroma,
// hue models that the gamut boundary search works in.
func (m Model) IsPolarPerceptual() bool {
	return m == CIELChD50 || m == CIELChD65 || m == Oklch
}

// Cartesian returns the Cartesian counterpart of a perceptual polar
// model, and m itself otherwise.
func (m Model) Cartesian() Model {
	switch m {
	case CIELChD50:
		return CIELabD50
	case CIELChD65:
		return CIELabD65
	case Oklch:
		return Oklab
	}
	return m
}

// Polar returns the polar counterpart of a perceptual Cartesian
// model, and m itself otherwise.
func (m Model) Polar() Model {
	switch m {
	case CIELabD50:
		return CIELChD50
	case CIELabD65:
		return CIELChD65
	case Oklab:
		return Oklch
	}
	return m
}

// LightnessRange returns the valid lightness range of a perceptual
// model: [0, 100] for CIELab variants and [0, 1] for Oklab.
func (m Model) LightnessRange() (lo, hi float64) {
	switch m {
	case Oklab, Oklch:
		return 0, 1
	}
	return 0, 100
}

// Components returns the component names of m.
func (m Model) Components() [3]string {
	switch m {
	case RGB:
		return [3]string{"R", "G", "B"}
	case HSL:
		return [3]string{"H", "S", "L"}
	case HSV:
		return [3]string{"H", "S", "V"}
	case HWB:
		return [3]string{"H", "W", "B"}
	case XYZD50, XYZD65:
		return [3]string{"X", "Y", "Z"}
	case CIELChD50, CIELChD65, Oklch:
		return [3]string{"L", "C", "h"}
	}
	return [3]string{"L", "a", "b"}
}

// Values are the three components of a color in some model.
type Values [3]float64

// IsNaN returns whether any component is NaN.
func (v Values) IsNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

// Distance returns the Euclidean distance between v and o.
func (v Values) Distance(o Values) float64 {
	d0, d1, d2 := v[0]-o[0], v[1]-o[1], v[2]-o[2]
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}
