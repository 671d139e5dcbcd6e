// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLAB(t *testing.T) {
	assert.InDelta(t, 0.887904, LabCompress(0.7), 1e-6)
	assert.InDelta(t, 0.1379544, LabCompress(0.000003), 1e-6)
	assert.InDelta(t, 0.216, LabUncompress(0.6), 1e-9)

	l := XYZ{0.1, 0.3, 0.5}.ToLab(D65)
	assert.InDelta(t, 61.654222, l.L, 1e-5)
	assert.InDelta(t, -98.672632, l.A, 1e-5)
	assert.InDelta(t, -20.402906, l.B, 1e-5)

	x := Lab{28, 14, 36.2}.ToXYZ(D65)
	assert.InDelta(t, 0.06422562, x.X, 1e-7)
	assert.InDelta(t, 0.05457378, x.Y, 1e-7)
	assert.InDelta(t, 0.00844436, x.Z, 1e-7)

	for _, v := range []float64{0, 1, 17, 50, 99} {
		assert.InDelta(t, v, YToL(LToY(v)), 1e-9)
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, c := range []XYZ{{0.2, 0.3, 0.4}, {0.001, 0.002, 0.0005}, D50, {0.9, 0.5, 0.1}} {
		back := c.ToLab(D50).ToXYZ(D50)
		assert.InDelta(t, c.X, back.X, 1e-12)
		assert.InDelta(t, c.Y, back.Y, 1e-12)
		assert.InDelta(t, c.Z, back.Z, 1e-12)
	}
}

func TestLCh(t *testing.T) {
	lch := Lab{53.237116, 80.090114, 67.203264}.LCh()
	assert.InDelta(t, 53.237116, lch.L, 1e-9)
	assert.InDelta(t, 104.55001, lch.C, 1e-4)
	assert.InDelta(t, 39.99987, lch.H, 1e-4)

	lab := lch.Lab()
	assert.InDelta(t, 80.090114, lab.A, 1e-9)
	assert.InDelta(t, 67.203264, lab.B, 1e-9)

	gray := Lab{50, 1e-13, -1e-13}.LCh(210)
	assert.Equal(t, 0.0, gray.C)
	assert.Equal(t, 210.0, gray.H)

	gray = Lab{50, 0, 0}.LCh()
	assert.Equal(t, 0.0, gray.H)

	c := LCh{120, -10, 10}.Clamp()
	assert.Equal(t, LCh{100, 10, 190}, c)

	assert.Equal(t, "lch(50, 20, 30)", LCh{50, 20, 30}.String())
}
