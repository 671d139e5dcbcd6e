// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package css

import (
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/gamut/colorvalue"
	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		model models.Model
		want  models.Values
		alpha float64
	}{
		{"#f00", models.RGB, models.Values{1, 0, 0}, 1},
		{"#ff000080", models.RGB, models.Values{1, 0, 0}, 128.0 / 255},
		{"red", models.RGB, models.Values{1, 0, 0}, 1},
		{"  Green; ", models.RGB, models.Values{0, 128.0 / 255, 0}, 1},
		{"transparent", models.RGB, models.Values{}, 0},
		{"rgb(255 0 0)", models.RGB, models.Values{1, 0, 0}, 1},
		{"rgb(100% 50% 0% / 50%)", models.RGB, models.Values{1, 0.5, 0}, 0.5},
		{"rgba(255, 0, 0, 0.25)", models.RGB, models.Values{1, 0, 0}, 0.25},
		{"rgb(none 255 none / none)", models.RGB, models.Values{0, 1, 0}, 1},
		{"hsl(120deg 100% 25%)", models.HSL, models.Values{120, 100, 25}, 1},
		{"hsla(120, 100%, 25%, 2)", models.HSL, models.Values{120, 100, 25}, 1},
		{"hsl(0.5turn 10% 20%)", models.HSL, models.Values{180, 10, 20}, 1},
		{"hsl(200grad 10% 20%)", models.HSL, models.Values{180, 10, 20}, 1},
		{"hsl(-90 10% 20%)", models.HSL, models.Values{270, 10, 20}, 1},
		{"hwb(90 10% 20%)", models.HWB, models.Values{90, 10, 20}, 1},
		{"lab(50 20 -30)", models.CIELabD50, models.Values{50, 20, -30}, 1},
		{"lab(50% 100% -100%)", models.CIELabD50, models.Values{50, 125, -125}, 1},
		{"lch(50 30 400)", models.CIELChD50, models.Values{50, 30, 40}, 1},
		{"lch(50% 20% 40)", models.CIELChD50, models.Values{50, 30, 40}, 1},
		{"oklab(0.5 0.1 -0.1)", models.Oklab, models.Values{0.5, 0.1, -0.1}, 1},
		{"oklab(50% 25% -25%)", models.Oklab, models.Values{0.5, 0.1, -0.1}, 1},
		{"oklch(0.6 0.1 30 / 0.5)", models.Oklch, models.Values{0.6, 0.1, 30}, 0.5},
		{"oklch(60% 50% 30)", models.Oklch, models.Values{0.6, 0.2, 30}, 1},
		{"color(srgb 1 0.5 0)", models.RGB, models.Values{1, 0.5, 0}, 1},
		{"color(xyz-d50 0.4 0.2 0.01)", models.XYZD50, models.Values{0.4, 0.2, 0.01}, 1},
		{"color(xyz 0.4 0.2 0.01)", models.XYZD65, models.Values{0.4, 0.2, 0.01}, 1},
		{"color(xyz-d65 40% 20% 1%)", models.XYZD65, models.Values{0.4, 0.2, 0.01}, 1},
	}
	for _, test := range tests {
		c, err := Parse(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.model, c.Model, test.in)
		assert.InDelta(t, test.alpha, c.Alpha, 1e-9, test.in)
		for i := range 3 {
			assert.InDelta(t, test.want[i], c.Values[i], 1e-9, test.in)
		}
	}

	c, err := Parse("hsl(3.14159265358979rad 0% 0%)")
	require.NoError(t, err)
	assert.InDelta(t, 180, c.Values[0], 1e-9)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"#ggg",
		"lab(50, 20, -30)",
		"rgb(255 0)",
		"rgb(255 0 0 0)",
		"rgb(255, 0 0)",
		"rgb(255, 0, 0 / 1)",
		"rgb(a b c)",
		"hsl(1foo 0% 0%)",
		"color(display-p3 1 0 0)",
		"foo(1 2 3)",
		"oklch(0.5 0.1 30 / )",
		"lighten-x",
	} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}

	_, err := Parse("gren")
	require.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), `did you mean "green"`)

	_, err = Parse("lighten-20")
	assert.ErrorContains(t, err, "base color")
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "green", Suggest("gren"))
	assert.Equal(t, "cornflowerblue", Suggest("cornflowerblu"))
}

func TestParseRelative(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	c, err := ParseRelative("lighten-20", black)
	require.NoError(t, err)
	assert.Equal(t, models.RGB, c.Model)
	assert.InDelta(t, 0.2, c.Values[0], 1e-9)
	assert.InDelta(t, 0.2, c.Values[2], 1e-9)

	c, err = ParseRelative("darken-50", color.RGBA{255, 255, 255, 255})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c.Values[1], 0.003)

	c, err = ParseRelative("desaturate-100", color.RGBA{255, 0, 0, 255})
	require.NoError(t, err)
	assert.InDelta(t, c.Values[0], c.Values[1], 0.003)

	_, err = ParseRelative("spin-20", black)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestValue(t *testing.T) {
	e := gamut.New(profile.SRGB())
	c, err := Parse("lab(50 20 -30)")
	require.NoError(t, err)
	v, err := c.Value(e)
	require.NoError(t, err)
	rgb := v.RGB()
	assert.InDelta(t, 0.52116, rgb.R, 2e-3)
	assert.InDelta(t, 0.42366, rgb.G, 2e-3)
	assert.InDelta(t, 0.66851, rgb.B, 2e-3)

	c, err = Parse("oklch(0.7 0.4 150 / 40%)")
	require.NoError(t, err)
	v, err = c.Value(e)
	require.NoError(t, err)
	assert.True(t, v.RGB().InRange(1e-6))
	assert.InDelta(t, 0.4, v.Alpha(), 1e-9)
}

func TestFormat(t *testing.T) {
	red := colorvalue.FromRGB(nil, models.RGBValue{R: 1})
	assert.Equal(t, "rgb(255 0 0)", Format(red, models.RGB))
	assert.Equal(t, "hsl(0 100% 50%)", Format(red, models.HSL))
	assert.Equal(t, "hsl(0 100% 50%)", Format(red, models.HSV))
	assert.Equal(t, "hwb(0 0% 0%)", Format(red, models.HWB))
	assert.Equal(t, "oklch(0.628 0.2577 29.23)", Format(red, models.Oklch))
	assert.Equal(t, "oklab(0.628 0.2249 0.1258)", Format(red, models.Oklab))
	assert.Equal(t, "lab(54.29 80.81 69.89)", Format(red, models.CIELabD50))
	assert.Equal(t, "lab(54.29 80.81 69.89)", Format(red, models.Lab))
	assert.Equal(t, "lch(54.29 106.84 40.85)", Format(red, models.LCh))
	assert.True(t, strings.HasPrefix(Format(red, models.XYZD50), "color(xyz-d50 0.436"))
	assert.True(t, strings.HasPrefix(Format(red, models.XYZD65), "color(xyz-d65 0.4124 "))

	half := colorvalue.FromRGB(nil, models.RGBValue{R: 1}, colorvalue.WithAlpha(0.5))
	assert.Equal(t, "rgb(255 0 0 / 50%)", Format(half, models.RGB))

	all := FormatAll(red)
	require.Len(t, all, 6)
	assert.True(t, strings.HasPrefix(all[0], "oklch("))
	assert.True(t, strings.HasPrefix(all[5], "color(xyz-d65 "))
}

func TestFormatParse(t *testing.T) {
	e := gamut.New(profile.SRGB())
	v, err := colorvalue.FromHex(nil, "#3a7bd5")
	require.NoError(t, err)
	for _, s := range FormatAll(v) {
		c, err := Parse(s)
		require.NoError(t, err, s)
		back, err := c.Value(e)
		require.NoError(t, err, s)
		assert.Equal(t, "#3a7bd5", back.Hex(), s)
	}
}
