// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates sets of colors inside the gamut of a profile.
package palette

import (
	"fmt"
	"math"

	"cogentcore.org/gamut/colorvalue"
	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/models"
)

// Swatch is one color of a palette with the Oklch coordinates it was
// made from.
type Swatch struct {
	Hue       float64
	Lightness float64
	Chroma    float64
	Value     *colorvalue.Value
}

func (s Swatch) String() string {
	return fmt.Sprintf("oklch(%.3f %.4f %.1f) %s", s.Lightness, s.Chroma, s.Hue, s.Value.Hex())
}

// Swatches returns a grid of Oklch colors with one row per lightness
// and one column per hue. All swatches of a row have the same chroma,
// the largest one that is in gamut for every hue of the row, so that
// rows look uniform.
func Swatches(e *gamut.Engine, hues, lightnesses []float64) ([][]Swatch, error) {
	rows := make([][]Swatch, len(lightnesses))
	for r, l := range lightnesses {
		chroma := math.Inf(1)
		for _, h := range hues {
			chroma = min(chroma, e.MaxChromaExact(h, l, models.Oklch).Chroma)
		}
		if math.IsInf(chroma, 1) {
			chroma = 0
		}
		rows[r] = make([]Swatch, len(hues))
		for c, h := range hues {
			v, err := colorvalue.FromModel(e, models.Oklch, models.Values{l, chroma, h})
			if err != nil {
				return nil, fmt.Errorf("palette.Swatches: lightness %g hue %g: %w", l, h, err)
			}
			rows[r][c] = Swatch{Hue: h, Lightness: l, Chroma: chroma, Value: v}
		}
	}
	return rows, nil
}

// EvenHues returns n hues evenly spaced around the circle from start.
func EvenHues(start float64, n int) []float64 {
	hues := make([]float64, n)
	for i := range hues {
		hues[i] = math.Mod(start+float64(i)*360/float64(n), 360)
	}
	return hues
}

// EvenLightnesses returns n Oklch lightnesses evenly spaced strictly
// between black and white.
func EvenLightnesses(n int) []float64 {
	ls := make([]float64, n)
	for i := range ls {
		ls[i] = float64(i+1) / float64(n+1)
	}
	return ls
}

// blue, red, green, yellow, violet, aqua, orange, blueviolet
var (
	spacedHues        = []float64{255, 25, 150, 105, 340, 210, 60, 300}
	spacedOffsets     = []float64{0, -0.05, 0, 0.1, 0, 0, 0.05, 0}
	spacedLightnesses = []float64{0.65, 0.8, 0.5, 0.65, 0.8}
	spacedChromas     = []float64{0.9, 0.9, 0.9, 0.3, 0.3}
)

// Spaced returns a maximally widely spaced sequence of colors for
// progressive values of the index, using Oklch with the chroma taken
// as a fraction of the gamut boundary. This is useful, for example,
// for assigning colors in graphs.
func Spaced(e *gamut.Engine, idx int) *colorvalue.Value {
	idx = max(idx, 0)
	ncats := len(spacedHues)
	hi := idx % ncats
	ri := (idx / ncats) % len(spacedLightnesses)
	hue := spacedHues[hi]
	l := spacedOffsets[hi] + spacedLightnesses[ri]
	c := spacedChromas[ri] * e.MaxChroma(hue, l, models.Oklch).Chroma
	v, err := colorvalue.FromModel(e, models.Oklch, models.Values{l, c, hue})
	if err != nil {
		// the coordinates above are always valid
		panic(err)
	}
	return v
}
