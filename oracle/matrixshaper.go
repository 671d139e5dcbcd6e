// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"fmt"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/models"
)

// MatrixShaper is the transform of an RGB matrix-shaper profile:
// per-channel tone curves followed by a colorant matrix.
type MatrixShaper struct {
	toXYZ   cie.Mat3
	fromXYZ cie.Mat3
	curves  [3]icc.Curve
	scale   cie.XYZ
}

// NewMatrixShaper returns the matrix-shaper oracle of a profile.
func NewMatrixShaper(p *icc.Profile, intent icc.Intent) (*MatrixShaper, error) {
	var cols [3]cie.XYZ
	for i, sig := range []icc.Signature{icc.TagRedColorant, icc.TagGreenColorant, icc.TagBlueColorant} {
		c, err := p.XYZ(sig)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	m := &MatrixShaper{scale: absoluteScale(p, intent)}
	for i, sig := range []icc.Signature{icc.TagRedTRC, icc.TagGreenTRC, icc.TagBlueTRC} {
		c, err := p.Curve(sig)
		if err != nil {
			return nil, err
		}
		m.curves[i] = c
	}
	m.toXYZ = cie.Mat3{
		{cols[0].X, cols[1].X, cols[2].X},
		{cols[0].Y, cols[1].Y, cols[2].Y},
		{cols[0].Z, cols[1].Z, cols[2].Z},
	}
	inv, ok := m.toXYZ.Inverse()
	if !ok {
		return nil, fmt.Errorf("oracle: singular colorant matrix")
	}
	m.fromXYZ = inv
	return m, nil
}

func (m *MatrixShaper) ToPCS(rgb models.RGBValue) (cie.XYZ, bool) {
	if rgb.IsNaN() {
		return cie.XYZ{}, false
	}
	lin := [3]float64{m.curves[0].Eval(rgb.R), m.curves[1].Eval(rgb.G), m.curves[2].Eval(rgb.B)}
	xyz := cie.XYZFromVec(m.toXYZ.MulVec(lin)).Scale(m.scale)
	return xyz, !xyz.IsNaN()
}

func (m *MatrixShaper) FromPCS(xyz cie.XYZ) (models.RGBValue, bool) {
	if xyz.IsNaN() {
		return models.RGBValue{}, false
	}
	lin := m.fromXYZ.MulVec(xyz.Scale(invScale(m.scale)).Vec())
	rgb := models.RGBValue{
		R: m.curves[0].Invert(lin[0]),
		G: m.curves[1].Invert(lin[1]),
		B: m.curves[2].Invert(lin[2]),
	}
	return rgb, defined(rgb.R, rgb.G, rgb.B)
}
