// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/icc/icctest"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/oracle"
	"cogentcore.org/gamut/polar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGB(t *testing.T) {
	c := SRGB()
	assert.Same(t, c, SRGB())
	assert.NotZero(t, c.ID())
	assert.Nil(t, c.ICC())
	in := c.Info()
	assert.True(t, in.BuiltIn)
	assert.Equal(t, "sRGB built-in", in.Name)
	assert.Equal(t, "4.3.0", in.Version.String())
	assert.Equal(t, icc.ClassDisplay, in.Class)
	assert.InDelta(t, cie.SRGBToXYZD50[1][0], in.Primaries[0].Y, 1e-12)
}

func TestLoadBytes(t *testing.T) {
	a, err := LoadBytes(icctest.SRGB())
	require.NoError(t, err)
	b, err := LoadBytes(icctest.SRGB(), icc.Perceptual)
	require.NoError(t, err)
	assert.Greater(t, b.ID(), a.ID())
	assert.Greater(t, a.ID(), SRGB().ID())

	in := a.Info()
	assert.Equal(t, "sRGB test profile", in.Name)
	assert.Equal(t, "No copyright, use freely", in.Copyright)
	assert.Equal(t, "2.1.0", in.Version.String())
	assert.Equal(t, icc.SpaceRGB, in.ColorSpace)
	assert.Equal(t, icc.SpaceXYZ, in.PCS)
	assert.Equal(t, DefaultIntent, in.Intent)
	assert.Equal(t, icc.Perceptual, b.Info().Intent)
	assert.True(t, in.MatrixShaper)
	assert.False(t, in.CLUT)
	assert.Len(t, in.Tags, 9)
	assert.Equal(t, 2024, in.Created.Year())
	assert.Equal(t, int64(len(icctest.SRGB())), in.Size)
	assert.InDelta(t, cie.SRGBToXYZD50[0][0], in.Primaries[0].X, 1e-4)
	assert.InDelta(t, 0, in.BlackPoint.Y, 1e-9)

	in.Tags[0] = 0
	assert.Equal(t, icc.TagDescription, a.Info().Tags[0])

	l, err := LoadBytes(icctest.LabLUT("lab", 17).Bytes())
	require.NoError(t, err)
	in = l.Info()
	assert.False(t, in.MatrixShaper)
	assert.True(t, in.CLUT)
	assert.InDelta(t, cie.SRGBToXYZD50[1][0], in.Primaries[0].Y, 0.01)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "srgb.icc")
	require.NoError(t, os.WriteFile(path, icctest.SRGB(), 0666))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Info().Path)
	assert.Contains(t, c.String(), path)

	_, err = Load(filepath.Join(dir, "missing.icc"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, filepath.Join(dir, "missing.icc"), le.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.Same(t, SRGB(), LoadOrDefault(filepath.Join(dir, "missing.icc")))
	assert.Equal(t, c.Info().Name, LoadOrDefault(path).Info().Name)
}

func TestLoadErrors(t *testing.T) {
	check := func(data []byte, target error) {
		t.Helper()
		c, err := LoadBytes(data)
		assert.Nil(t, c)
		var le *LoadError
		require.ErrorAs(t, err, &le)
		assert.ErrorIs(t, err, target)
		assert.Contains(t, err.Error(), "profile: ")
	}
	check([]byte("not a profile at all"), icc.ErrNotICC)
	check(icctest.SRGB()[:200], icc.ErrTruncated)

	b := icctest.MatrixShaper("cmyk", cie.SRGBToXYZD50, icctest.SRGBPara())
	b.ColorSpace = icc.SpaceCMYK
	check(b.Bytes(), ErrNotRGB)

	b = icctest.MatrixShaper("printer", cie.SRGBToXYZD50, icctest.SRGBPara())
	b.Class = icc.ClassOutput
	check(b.Bytes(), ErrClass)

	check(icctest.New().Add(icc.TagDescription, icctest.Desc("empty")).Bytes(), oracle.ErrNoTransform)
}

func TestConvert(t *testing.T) {
	c := SRGB()
	red := models.Values{1, 0, 0}
	lab, ok := c.Convert(models.RGB, red, models.Lab)
	require.True(t, ok)
	assert.InDelta(t, 53.2371, lab[0], 1e-3)
	assert.InDelta(t, 80.0901, lab[1], 1e-3)
	assert.InDelta(t, 67.2033, lab[2], 1e-3)

	hsl, ok := c.Convert(models.Lab, lab, models.HSL)
	require.True(t, ok)
	assert.InDelta(t, 0, polar.HueDistance(0, hsl[0]), 1e-3)
	assert.InDelta(t, 100, hsl[1], 1e-3)
	assert.InDelta(t, 50, hsl[2], 1e-3)

	// grays keep the hue of a cylindrical source
	lch, ok := c.Convert(models.HSL, models.Values{120, 0, 50}, models.LCh)
	require.True(t, ok)
	assert.Equal(t, 120.0, lch[2])

	rgb, ok := c.ToRGB(models.Oklch, models.Values{0.6279553639, 0.2576833, 29.23388})
	require.True(t, ok)
	assert.InDelta(t, 1, rgb.R, 1e-5)
	assert.InDelta(t, 0, rgb.G, 1e-5)
}

func TestInGamut(t *testing.T) {
	c := SRGB()
	tol := DefaultTolerance
	assert.True(t, c.InGamut(models.RGB, models.Values{1, 0, 0}, tol))
	assert.False(t, c.InGamut(models.RGB, models.Values{1.1, 0, 0}, tol))
	assert.False(t, c.InGamut(models.RGB, models.Values{math.NaN(), 0, 0}, tol))
	assert.True(t, c.InGamut(models.HSL, models.Values{10, 150, 50}, tol))

	assert.True(t, c.InGamut(models.LCh, models.Values{53.2371, 104.5, 39.9999}, tol))
	assert.False(t, c.InGamut(models.LCh, models.Values{53.2371, 110, 39.9999}, tol))
	assert.False(t, c.InGamut(models.LCh, models.Values{50, 150, 250}, tol))
	assert.True(t, c.InGamut(models.LCh, models.Values{100, 0, 0}, tol))
	assert.True(t, c.InGamut(models.Oklch, models.Values{0, 0, 0}, tol))
	assert.True(t, c.InGamut(models.Oklch, models.Values{1, 0, 0}, tol))
	assert.False(t, c.InGamut(models.Oklch, models.Values{0.5, 0.4, 140}, tol))
	assert.True(t, c.InGamut(models.XYZD50, cie.D50.Vec(), tol))

	assert.Equal(t, 0.005, tol.Deviation(models.Oklch))
	assert.Equal(t, 0.5, tol.Deviation(models.CIELChD50))
}

func TestLimits(t *testing.T) {
	c := SRGB()
	l := c.Limits(models.LCh)
	assert.InDelta(t, 0, l.BlackL, 1e-9)
	assert.InDelta(t, 100, l.WhiteL, 1e-9)
	assert.InDelta(t, 136.9846, l.MaxChroma, 1e-3)
	assert.Equal(t, l, c.Limits(models.Lab))

	assert.InDelta(t, 131.2036*1.02+0.5, c.Limits(models.CIELChD50).MaxChroma, 1e-3)

	l = c.Limits(models.Oklch)
	assert.InDelta(t, 0, l.BlackL, 1e-9)
	assert.InDelta(t, 1, l.WhiteL, 1e-9)
	assert.InDelta(t, 0.33394, l.MaxChroma, 1e-4)
}

func TestRoundTrip(t *testing.T) {
	modular, err := LoadBytes(icctest.ModularSRGB("modular").Bytes())
	require.NoError(t, err)
	ctxs := []struct {
		name  string
		ctx   *Context
		delta float64
	}{
		{"srgb", SRGB(), 1e-9},
		{"modular", modular, 1e-3},
	}
	ms := []models.Model{models.Lab, models.LCh, models.Oklab, models.Oklch, models.HSL, models.HSV, models.HWB}
	for _, c := range ctxs {
		for _, m := range ms {
			for i := 0; i <= 10; i++ {
				for j := 0; j <= 10; j++ {
					for k := 0; k <= 10; k++ {
						rgb := models.Values{float64(i) / 10, float64(j) / 10, float64(k) / 10}
						x, ok := c.ctx.Convert(models.RGB, rgb, m)
						require.True(t, ok, "%s %v %v", c.name, m, rgb)
						back, ok := c.ctx.Convert(m, x, models.RGB)
						require.True(t, ok, "%s %v %v", c.name, m, x)
						for n := range rgb {
							assert.InDelta(t, rgb[n], back[n], c.delta, "%s %v %v via %v", c.name, m, rgb, x)
						}
					}
				}
			}
		}
	}
}
