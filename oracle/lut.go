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

// LUT is the transform of a profile's lookup table tags. Lookup tables
// usually clamp, so out-of-gamut colors come back inside [0, 1]; the
// gamut test detects them by the round trip deviation instead.
type LUT struct {
	aToB, bToA *icc.LUT
	pcs        icc.Signature
	scale      cie.XYZ
}

// NewLUT returns the lookup table oracle of a profile for an intent.
func NewLUT(p *icc.Profile, intent icc.Intent) (*LUT, error) {
	if pcs := p.Header.PCS; pcs != icc.SpaceXYZ && pcs != icc.SpaceLab {
		return nil, fmt.Errorf("oracle: unsupported PCS %v", pcs)
	}
	a, b := p.LUTTagsFor(intent)
	aToB, err := p.LUT(a)
	if err != nil {
		return nil, err
	}
	bToA, err := p.LUT(b)
	if err != nil {
		return nil, err
	}
	return &LUT{aToB: aToB, bToA: bToA, pcs: p.Header.PCS, scale: absoluteScale(p, intent)}, nil
}

func (l *LUT) ToPCS(rgb models.RGBValue) (cie.XYZ, bool) {
	if rgb.IsNaN() {
		return cie.XYZ{}, false
	}
	out := l.aToB.Eval([3]float64{rgb.R, rgb.G, rgb.B})
	xyz := l.aToB.DecodePCS(out, l.pcs).Scale(l.scale)
	return xyz, !xyz.IsNaN()
}

func (l *LUT) FromPCS(xyz cie.XYZ) (models.RGBValue, bool) {
	if xyz.IsNaN() {
		return models.RGBValue{}, false
	}
	out := l.bToA.Eval(l.bToA.EncodePCS(xyz.Scale(invScale(l.scale)), l.pcs))
	return models.RGBFromValues(out), defined(out[0], out[1], out[2])
}
