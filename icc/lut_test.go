// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc_test

import (
	"testing"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/icc/icctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(in [3]float64) [3]float64 { return in }

func TestLUT8(t *testing.T) {
	p, err := icc.Parse(icctest.New().Add(icc.TagAToB0, icctest.LUT8(2, identity)).Bytes())
	require.NoError(t, err)
	l, err := p.LUT(icc.TagAToB0)
	require.NoError(t, err)
	assert.Equal(t, icc.TypeLUT8, l.Type)
	out := l.Eval([3]float64{0.2, 0.4, 0.6})
	assert.InDelta(t, 0.2, out[0], 1e-6)
	assert.InDelta(t, 0.4, out[1], 1e-6)
	assert.InDelta(t, 0.6, out[2], 1e-6)
}

func TestLUT16(t *testing.T) {
	p, err := icc.Parse(icctest.LabLUT("lab lut", 33).Bytes())
	require.NoError(t, err)
	assert.Equal(t, icc.SpaceLab, p.Header.PCS)
	assert.True(t, p.HasLUT(icc.Perceptual))
	assert.True(t, p.HasLUT(icc.RelativeColorimetric)) // falls back to A2B0
	assert.False(t, p.IsMatrixShaper())

	aToB, err := p.LUT(icc.TagAToB0)
	require.NoError(t, err)
	assert.Equal(t, icc.TypeLUT16, aToB.Type)
	lab := aToB.DecodePCS(aToB.Eval([3]float64{1, 0, 0}), icc.SpaceLab).ToLab(cie.D50)
	assert.InDelta(t, 54.29, lab.L, 0.1)
	assert.InDelta(t, 80.81, lab.A, 0.1)
	assert.InDelta(t, 69.89, lab.B, 0.1)

	bToA, err := p.LUT(icc.TagBToA0)
	require.NoError(t, err)
	gray := bToA.Eval(bToA.EncodePCS(cie.SRGBToXYZ(0.5, 0.5, 0.5), icc.SpaceLab))
	for _, v := range gray {
		assert.InDelta(t, 0.5, v, 1e-3)
	}
}

func TestLUTModular(t *testing.T) {
	p, err := icc.Parse(icctest.ModularSRGB("modular").Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint8(4), p.Header.Version.Major)

	aToB, err := p.LUT(icc.TagAToB0)
	require.NoError(t, err)
	assert.Equal(t, icc.TypeLUTAToB, aToB.Type)
	bToA, err := p.LUT(icc.TagBToA0)
	require.NoError(t, err)
	assert.Equal(t, icc.TypeLUTBToA, bToA.Type)

	for _, rgb := range [][3]float64{{1, 0, 0}, {0.2, 0.6, 0.3}, {0.9, 0.9, 0.9}} {
		want := cie.SRGBToXYZ(rgb[0], rgb[1], rgb[2])
		have := aToB.DecodePCS(aToB.Eval(rgb), icc.SpaceXYZ)
		assert.InDelta(t, want.X, have.X, 1e-3)
		assert.InDelta(t, want.Y, have.Y, 1e-3)
		assert.InDelta(t, want.Z, have.Z, 1e-3)

		back := bToA.Eval(bToA.EncodePCS(want, icc.SpaceXYZ))
		for i := range back {
			assert.InDelta(t, rgb[i], back[i], 1e-3)
		}
	}

	// out of gamut values are not clamped
	outside := cie.XYZFromVec(cie.SRGBToXYZD50.MulVec([3]float64{-0.1, 0.5, 0.5}))
	back := bToA.Eval(bToA.EncodePCS(outside, icc.SpaceXYZ))
	assert.Less(t, back[0], 0.0)
}

func TestLUTErrors(t *testing.T) {
	tag := icctest.LUT16(2, identity)
	tag[8] = 4
	p, err := icc.Parse(icctest.New().Add(icc.TagAToB0, tag).Bytes())
	require.NoError(t, err)
	_, err = p.LUT(icc.TagAToB0)
	assert.ErrorIs(t, err, icc.ErrUnsupportedType)

	tag = icctest.LUT16(3, identity)
	p, err = icc.Parse(icctest.New().Add(icc.TagAToB0, tag[:100]).Bytes())
	require.NoError(t, err)
	_, err = p.LUT(icc.TagAToB0)
	assert.ErrorIs(t, err, icc.ErrTruncated)

	p, err = icc.Parse(icctest.New().Add(icc.TagAToB0, icctest.XYZ(cie.D50)).Bytes())
	require.NoError(t, err)
	_, err = p.LUT(icc.TagAToB0)
	assert.ErrorIs(t, err, icc.ErrUnsupportedType)
}
