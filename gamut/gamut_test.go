// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamut

import (
	"sync"
	"testing"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/icc/icctest"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	redL   = 53.23711559542936
	redHue = 39.99987
	redC   = 104.55001
)

func TestRed(t *testing.T) {
	e := New(profile.SRGB())
	b := e.MaxChromaExact(redHue, redL, models.LCh)
	assert.False(t, b.Estimated)
	assert.GreaterOrEqual(t, b.Chroma, redC-e.Tolerance(models.LCh))
	assert.InDelta(t, redC, b.Chroma, 2e-3)
	assert.Equal(t, 18, b.Iterations)
	assert.Equal(t, "104.55", b.String())

	b = e.MaxChromaExact(29.23388, 0.6279553639, models.Oklch)
	assert.False(t, b.Estimated)
	assert.InDelta(t, 0.2576833, b.Chroma, 2e-5)
	assert.Equal(t, 16, b.Iterations)
}

func TestPoles(t *testing.T) {
	e := New(profile.SRGB())
	tol := e.Tolerance(models.LCh)
	for _, h := range []float64{0, 30, 140, 250, 359} {
		for _, l := range []float64{0, 100} {
			assert.Equal(t, Boundary{}, e.MaxChroma(h, l, models.LCh), "hue %v lightness %v", h, l)
		}
	}
	for h := 0.0; h < 360; h += 10 {
		for _, l := range []float64{0, 100} {
			for _, m := range []models.Model{models.LCh, models.CIELChD50} {
				b := e.MaxChroma(h, l, m)
				assert.False(t, b.Estimated)
				assert.LessOrEqual(t, b.Chroma, 2*tol, "%v hue %v lightness %v", m, h, l)
			}
		}
		assert.Equal(t, Boundary{}, e.MaxChroma(h, 1, models.Oklch))
		assert.Equal(t, Boundary{}, e.MaxChroma(h, 0, models.Oklch), "hue %v", h)
		assert.Equal(t, Boundary{}, e.MaxChromaExact(h+0.3, 0, models.Oklch), "hue %v", h)
	}
	// out of range lightness is clamped
	assert.Equal(t, Boundary{}, e.MaxChromaExact(30, 120, models.LCh))
}

func TestBudget(t *testing.T) {
	opts := DefaultOptions()
	opts.Budget = 4
	e := New(profile.SRGB(), opts)
	b := e.MaxChroma(40, 53, models.LCh)
	assert.True(t, b.Estimated)
	assert.Equal(t, 4, b.Iterations)
	assert.InDelta(t, 102.7387, b.Chroma, 1e-3)
	assert.Contains(t, b.String(), " (estimated)")

	full := New(profile.SRGB()).MaxChroma(40, 53, models.LCh)
	assert.False(t, full.Estimated)
	assert.InDelta(t, 104.1914, full.Chroma, 1e-3)
	assert.Less(t, b.Chroma, full.Chroma)
}

func TestCache(t *testing.T) {
	c := NewCache()
	opts := DefaultOptions()
	opts.Cache = c
	e := New(profile.SRGB(), opts)

	b := e.MaxChroma(39.6, 53.4, models.LCh)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, b, e.MaxChroma(40.4, 52.6, models.LCh))
	assert.Equal(t, b, e.MaxChroma(40, 53, models.Lab))
	assert.Equal(t, b, e.MaxChromaExact(40, 53, models.LCh))
	assert.Equal(t, 1, c.Len())

	// hue 360 is hue 0
	assert.Equal(t, e.MaxChroma(0, 50, models.LCh), e.MaxChroma(359.7, 50, models.LCh))
	assert.Equal(t, 2, c.Len())

	e.MaxChroma(40, 53, models.Oklch)
	e.MaxChroma(40, 0.53, models.Oklch)
	assert.Equal(t, 4, c.Len())

	other, err := profile.LoadBytes(icctest.SRGB())
	require.NoError(t, err)
	oe := New(other, opts)
	ob := oe.MaxChroma(40, 53, models.LCh)
	assert.InDelta(t, b.Chroma, ob.Chroma, 0.1)
	assert.Equal(t, 5, c.Len())

	assert.Equal(t, 1, c.Invalidate(other.ID()))
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 0, c.Invalidate(other.ID()))
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestConcurrent(t *testing.T) {
	e := New(profile.SRGB())
	var wg sync.WaitGroup
	results := make([]Boundary, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = e.MaxChroma(250, 50, models.LCh)
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
	assert.InDelta(t, 35.222, results[0].Chroma, 1e-3)
}

func TestMonotonic(t *testing.T) {
	e := New(profile.SRGB())
	for h := 0.0; h < 360; h += 15 {
		var chroma [101]float64
		cusp := 0
		for l := range chroma {
			chroma[l] = e.MaxChroma(h, float64(l), models.LCh).Chroma
			if chroma[l] > chroma[cusp] {
				cusp = l
			}
		}
		tol := e.Tolerance(models.LCh)
		for l := cusp; l < 100; l++ {
			assert.LessOrEqual(t, chroma[l+1], chroma[l]+tol, "hue %v lightness %v", h, l)
		}
		for l := cusp; l > 0; l-- {
			assert.LessOrEqual(t, chroma[l-1], chroma[l]+tol, "hue %v lightness %v", h, l)
		}
	}
}

func TestInGamut(t *testing.T) {
	e := New(profile.SRGB())
	b := e.MaxChroma(250, 50, models.LCh)
	assert.True(t, e.InGamut(models.LCh, models.Values{50, b.Chroma, 250}))
	assert.False(t, e.InGamut(models.LCh, models.Values{50, b.Chroma + 1, 250}))
}

func TestReduceChroma(t *testing.T) {
	e := New(profile.SRGB())
	v := e.ReduceChroma(models.LCh, models.Values{50, 150, 250})
	assert.Equal(t, 50.0, v[0])
	assert.Equal(t, 250.0, v[2])
	assert.InDelta(t, 35.222, v[1], 1e-3)
	assert.True(t, e.InGamut(models.LCh, v))

	in := models.Values{50, 20, 250}
	assert.Equal(t, in, e.ReduceChroma(models.LCh, in))

	lab := e.ReduceChroma(models.Lab, models.Values{50, -20, -140})
	assert.True(t, e.InGamut(models.Lab, lab))
	assert.Equal(t, 50.0, lab[0])

	ok := e.ReduceChroma(models.Oklch, models.Values{0.5, 0.4, 140})
	assert.True(t, e.InGamut(models.Oklch, ok))
	assert.Less(t, ok[1], 0.4)

	assert.Equal(t, models.Values{1, 0, 0.5}, e.ReduceChroma(models.RGB, models.Values{1.2, -0.1, 0.5}))

	xyz := e.ReduceChroma(models.XYZD50, models.Values{0.1, 0.5, 0.9})
	assert.True(t, e.InGamut(models.XYZD50, xyz))
}

func TestMaxChromaColor(t *testing.T) {
	e := New(profile.SRGB())
	v := e.MaxChromaColor(40, models.LCh)
	assert.InDelta(t, 53.2, v[0], 1e-6)
	assert.InDelta(t, 104.4934, v[1], 1e-3)
	assert.Equal(t, 40.0, v[2])
	assert.True(t, e.InGamut(models.LCh, v))

	assert.Equal(t, models.Values{}, e.MaxChromaColor(40, models.HSL))
}

func TestOtherModels(t *testing.T) {
	e := New(profile.SRGB())
	assert.Equal(t, Boundary{Estimated: true}, e.MaxChroma(40, 50, models.HSL))
	assert.Equal(t, Boundary{Estimated: true}, e.MaxChromaExact(40, 50, models.XYZD50))
}

func TestLUTProfile(t *testing.T) {
	ctx, err := profile.LoadBytes(icctest.ModularSRGB("modular").Bytes())
	require.NoError(t, err)
	e := New(ctx)
	b := e.MaxChromaExact(redHue, redL, models.LCh)
	assert.False(t, b.Estimated)
	assert.InDelta(t, redC, b.Chroma, 0.5)
	assert.Greater(t, ctx.Limits(models.LCh).MaxChroma, redC)
}

// dimWhite returns an input profile whose white is darker than
// the PCS white, so that the lightest grays are not displayable.
func dimWhite(t *testing.T) *profile.Context {
	b := icctest.MatrixShaper("dim", cie.SRGBToXYZD50, icctest.SRGBPara())
	b.Class = icc.ClassInput
	b.Add(icc.TagMediaWhitePoint, icctest.XYZ(cie.XYZ{X: 0.8 * cie.D50.X, Y: 0.8, Z: 0.8 * cie.D50.Z}))
	ctx, err := profile.LoadBytes(b.Bytes())
	require.NoError(t, err)
	return ctx
}

func TestDimWhite(t *testing.T) {
	ctx := dimWhite(t)
	e := New(ctx)
	lim := ctx.Limits(models.CIELChD50)
	assert.InDelta(t, 91.68, lim.WhiteL, 0.02)
	assert.Equal(t, 0.0, lim.BlackL)

	// above the white point nothing is displayable, not even gray
	assert.Equal(t, Boundary{Estimated: true}, e.MaxChromaExact(40, 100, models.CIELChD50))
	assert.Equal(t, Boundary{}, e.MaxChromaExact(40, lim.WhiteL, models.CIELChD50))

	v := e.ReduceChroma(models.CIELChD50, models.Values{100, 30, 40})
	assert.Equal(t, models.Values{lim.WhiteL, 0, 40}, v)
	assert.True(t, e.InGamut(models.CIELChD50, v))

	lab := e.ReduceChroma(models.CIELabD50, models.Values{98, 10, 10})
	assert.True(t, e.InGamut(models.CIELabD50, lab))
	assert.InDelta(t, lim.WhiteL, lab[0], 1e-9)

	mid := e.ReduceChroma(models.CIELChD50, models.Values{50, 150, 250})
	assert.Equal(t, 50.0, mid[0])
	assert.True(t, e.InGamut(models.CIELChD50, mid))
}

func TestRetire(t *testing.T) {
	c := NewCache()
	opts := DefaultOptions()
	opts.Cache = c
	e := New(profile.SRGB(), opts)
	b := e.MaxChroma(250, 50, models.LCh)
	assert.Equal(t, 1, c.Len())
	assert.False(t, e.Retired())

	e.Retire()
	assert.True(t, e.Retired())
	assert.Equal(t, 1, c.Invalidate(profile.SRGB().ID()))
	// a retired engine still answers, but leaves nothing behind
	assert.Equal(t, b, e.MaxChroma(250, 50, models.LCh))
	assert.Equal(t, e.MaxChromaExact(40, 60, models.LCh), e.MaxChroma(40, 60, models.LCh))
	assert.Equal(t, 0, c.Len())

	fresh := New(profile.SRGB(), opts)
	assert.Equal(t, b, fresh.MaxChroma(250, 50, models.LCh))
	assert.Equal(t, 1, c.Len())
}
