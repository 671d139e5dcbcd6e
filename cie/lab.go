// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"

	"cogentcore.org/gamut/polar"
)

// Lab is a CIELab color: L in [0, 100], a and b unbounded,
// relative to the white point it was computed with.
type Lab struct {
	L, A, B float64
}

// LCh is the cylindrical form of [Lab]: lightness L in [0, 100],
// chroma C >= 0, and hue H in degrees [0, 360).
type LCh struct {
	L, C, H float64
}

const (
	labEpsilon = 216.0 / 24389.0 // (24/116)^3
	labKappa   = 841.0 / 108.0
	labOffset  = 16.0 / 116.0
	labKnee    = 24.0 / 116.0
)

// LabCompress is the CIELab f function, applied to a white-relative
// tristimulus value.
func LabCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

// LabUncompress is the inverse of [LabCompress].
func LabUncompress(f float64) float64 {
	if f > labKnee {
		return f * f * f
	}
	return (f - labOffset) / labKappa
}

// ToLab converts c to CIELab relative to the given white.
func (c XYZ) ToLab(white XYZ) Lab {
	fx := LabCompress(c.X / white.X)
	fy := LabCompress(c.Y / white.Y)
	fz := LabCompress(c.Z / white.Z)
	return Lab{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// ToXYZ converts l to XYZ relative to the given white.
func (l Lab) ToXYZ(white XYZ) XYZ {
	fy := (l.L + 16) / 116
	fx := fy + l.A/500
	fz := fy - l.B/200
	return XYZ{
		LabUncompress(fx) * white.X,
		LabUncompress(fy) * white.Y,
		LabUncompress(fz) * white.Z,
	}
}

// DeltaE returns the CIE76 color difference between l and o.
func (l Lab) DeltaE(o Lab) float64 {
	return math.Sqrt((l.L-o.L)*(l.L-o.L) + (l.A-o.A)*(l.A-o.A) + (l.B-o.B)*(l.B-o.B))
}

// LCh returns the cylindrical form of l. The optional previous hue
// is used when l is achromatic.
func (l Lab) LCh(prevHue ...float64) LCh {
	c, h := polar.FromCartesian(l.A, l.B, prevHue...)
	return LCh{l.L, c, h}
}

// Lab returns the Cartesian form of c.
func (c LCh) Lab() Lab {
	a, b := polar.ToCartesian(c.C, c.H)
	return Lab{c.L, a, b}
}

// Clamp returns c with lightness in [0, 100], non-negative chroma
// and hue in [0, 360).
func (c LCh) Clamp() LCh {
	ch, h := polar.Fold(c.C, c.H)
	return LCh{math.Max(0, math.Min(100, c.L)), ch, h}
}

func (l Lab) String() string {
	return fmt.Sprintf("lab(%.4g, %.4g, %.4g)", l.L, l.A, l.B)
}

func (c LCh) String() string {
	return fmt.Sprintf("lch(%.4g, %.4g, %.4g)", c.L, c.C, c.H)
}

// LToY returns the relative luminance Y in [0, 1] for lightness L.
func LToY(l float64) float64 {
	return LabUncompress((l + 16) / 116)
}

// YToL returns the lightness L for the relative luminance Y in [0, 1].
func YToL(y float64) float64 {
	return 116*LabCompress(y) - 16
}
