// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc

import (
	"math"
	"testing"

	"cogentcore.org/gamut/cie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamma(t *testing.T) {
	g := Gamma(2.2)
	assert.InDelta(t, math.Pow(0.5, 2.2), g.Eval(0.5), 1e-12)
	assert.InDelta(t, -math.Pow(0.5, 2.2), g.Eval(-0.5), 1e-12)
	assert.InDelta(t, 0.5, g.Invert(g.Eval(0.5)), 1e-12)
	assert.InDelta(t, -0.25, g.Invert(g.Eval(-0.25)), 1e-12)
}

func TestTable(t *testing.T) {
	tb := Table{0, 0.25, 1}
	assert.InDelta(t, 0.125, tb.Eval(0.25), 1e-12)
	assert.InDelta(t, 0.625, tb.Eval(0.75), 1e-12)
	assert.InDelta(t, -0.125, tb.Eval(-0.25), 1e-12)
	assert.InDelta(t, 1.375, tb.Eval(1.25), 1e-12)
	for _, x := range []float64{-0.2, 0, 0.1, 0.5, 0.9, 1, 1.3} {
		assert.InDelta(t, x, tb.Invert(tb.Eval(x)), 1e-12)
	}

	flat := Table{0, 0, 0.5, 1}
	assert.InDelta(t, 0.5, flat.Invert(0.25), 1e-12)

	desc := Table{1, 0.5, 0}
	assert.InDelta(t, 0.25, desc.Invert(0.75), 1e-12)

	assert.Equal(t, 0.3, Table{}.Eval(0.3))
}

func TestParametric(t *testing.T) {
	for _, x := range []float64{-0.1, 0, 0.02, 0.04045, 0.3, 1, 1.1} {
		assert.InDelta(t, cie.SRGBToLinear(x), SRGBCurve.Eval(x), 1e-7)
		assert.InDelta(t, x, SRGBCurve.Invert(SRGBCurve.Eval(x)), 1e-9)
	}
	p1 := Parametric{Type: 1, G: 2, A: 1, B: -0.1}
	assert.Equal(t, 0.0, p1.Eval(0.05))
	assert.InDelta(t, 0.81, p1.Eval(1), 1e-12)
	assert.InDelta(t, 0.6, p1.Invert(p1.Eval(0.6)), 1e-12)

	p2 := Parametric{Type: 2, G: 2, A: 1, B: 0, C: 0.1}
	assert.InDelta(t, 0.35, p2.Eval(0.5), 1e-12)
	assert.InDelta(t, 0.5, p2.Invert(0.35), 1e-12)

	p4 := Parametric{Type: 4, G: 1 / 2.4, A: math.Pow(1.055, 2.4), C: 12.92, D: 0.0031308, E: -0.055}
	for _, x := range []float64{-0.01, 0.001, 0.2, 0.9} {
		assert.InDelta(t, cie.SRGBFromLinear(x), p4.Eval(x), 1e-6)
		assert.InDelta(t, x, p4.Invert(p4.Eval(x)), 1e-9)
	}
}

func TestDecodeCurve(t *testing.T) {
	b := []byte("curv\x00\x00\x00\x00\x00\x00\x00\x01\x02\x33")
	c, size, err := decodeCurve(b)
	require.NoError(t, err)
	assert.Equal(t, 14, size)
	assert.InDelta(t, 2.19921875, float64(c.(Gamma)), 1e-12)

	c, size, err = decodeCurve([]byte("curv\x00\x00\x00\x00\x00\x00\x00\x00"))
	require.NoError(t, err)
	assert.Equal(t, 12, size)
	assert.Equal(t, Identity{}, c)

	_, _, err = decodeCurve([]byte("curv\x00\x00\x00\x00\x00\x00\x00\x05\x00"))
	assert.ErrorIs(t, err, ErrTruncated)

	_, _, err = decodeCurve([]byte("para\x00\x00\x00\x00\x00\x09\x00\x00"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, _, err = decodeCurve([]byte("XYZ \x00\x00\x00\x00\x00\x00\x00\x00"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
