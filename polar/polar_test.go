// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 0.0, NormalizeDegrees(0))
	assert.InDelta(t, 350.0, NormalizeDegrees(-10), 1e-12)
	assert.InDelta(t, 20.0, NormalizeDegrees(740), 1e-12)
	assert.Equal(t, 0.0, NormalizeDegrees(-1e-20))
	assert.Equal(t, 0.0, NormalizeDegrees(math.NaN()))
}

func TestFromCartesian(t *testing.T) {
	c, h := FromCartesian(80.0901, 67.2033)
	assert.InDelta(t, 104.5500, c, 1e-3)
	assert.InDelta(t, 39.9999, h, 1e-3)

	c, h = FromCartesian(0, -1)
	assert.InDelta(t, 1.0, c, 1e-12)
	assert.InDelta(t, 270.0, h, 1e-12)

	c, h = FromCartesian(1e-13, -2e-13)
	assert.Equal(t, 0.0, c)
	assert.Equal(t, 0.0, h)

	c, h = FromCartesian(0, 0, 123)
	assert.Equal(t, 0.0, c)
	assert.Equal(t, 123.0, h)

	_, h = FromCartesian(0, 0, -90)
	assert.Equal(t, 270.0, h)
}

func TestToCartesian(t *testing.T) {
	a, b := ToCartesian(10, 90)
	assert.InDelta(t, 0.0, a, 1e-12)
	assert.InDelta(t, 10.0, b, 1e-12)

	a1, b1 := ToCartesian(-10, 30)
	a2, b2 := ToCartesian(10, 210)
	assert.InDelta(t, a2, a1, 1e-12)
	assert.InDelta(t, b2, b1, 1e-12)
}

func TestFold(t *testing.T) {
	c, h := Fold(-5, 30)
	assert.Equal(t, 5.0, c)
	assert.InDelta(t, 210.0, h, 1e-12)

	c, h = Fold(5, 400)
	assert.Equal(t, 5.0, c)
	assert.InDelta(t, 40.0, h, 1e-12)
}

func TestHueDistance(t *testing.T) {
	assert.InDelta(t, 20.0, HueDistance(350, 10), 1e-12)
	assert.InDelta(t, 180.0, HueDistance(0, 180), 1e-12)
	assert.InDelta(t, 0.0, HueDistance(0, 360), 1e-12)
}
