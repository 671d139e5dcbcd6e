// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gamut inspects the gamut of ICC display profiles: their
// maximum chroma boundaries, conversions of colors into them, and
// diagrams and palettes of what they can show.
package main

import (
	"fmt"
	"strings"

	"cogentcore.org/core/cli"
	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/profile"
)

// Config is the configuration information for the gamut cli.
type Config struct {

	// Profile is the ICC profile file to use. The built-in sRGB
	// profile is used if it is empty or cannot be loaded.
	Profile string `flag:"p,profile"`

	// Intent is the rendering intent: perceptual, relative-colorimetric,
	// saturation or absolute-colorimetric.
	Intent string `default:"absolute-colorimetric"`

	// Model is the polar perceptual model to work in: Oklch, LCh or LCh-D50.
	Model string `default:"Oklch" flag:"m,model"`

	// Color is the CSS color to convert.
	Color string `cmd:"convert" posarg:"0" required:"-"`

	// Hue is the hue in degrees, of the boundary for max-chroma,
	// of the diagram for diagram, or of the first column for palette.
	Hue float64

	// Lightness is the lightness as a percentage of the range of Model.
	Lightness float64 `default:"70"`

	// HueStep is the hue step of the table, in degrees.
	HueStep float64 `cmd:"table" default:"10"`

	// LightnessStep is the lightness step of the table,
	// as a percentage of the range of Model.
	LightnessStep float64 `cmd:"table" default:"10"`

	// Format is the format of the table: toml, yaml or json.
	// It defaults to the extension of Output.
	Format string `cmd:"table"`

	// Output is the file to write the table or diagram to.
	// The table is written to standard output if it is empty.
	Output string `flag:"o,output"`

	// Plane is the diagram to draw: hue for the chroma-hue
	// plane at Lightness, or lightness for the chroma-lightness
	// plane at Hue.
	Plane string `cmd:"diagram" default:"hue"`

	// Size is the size of the diagram in pixels.
	Size int `cmd:"diagram" default:"256"`

	// Hues is the number of columns of the palette.
	Hues int `cmd:"palette" default:"12"`

	// Lightnesses is the number of rows of the palette.
	Lightnesses int `cmd:"palette" default:"7"`

	// Budget is the maximum number of steps of a boundary search.
	Budget int `default:"64"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("gamut", "Gamut inspects the gamut of ICC display profiles.")
	opts.DefaultFiles = []string{"gamut.toml"}
	cli.Run(opts, &Config{}, Info, Convert, MaxChroma, Table, Diagram, Palette, Watch)
}

// model returns the model of the config.
func (c *Config) model() (models.Model, error) {
	m, err := models.Parse(c.Model)
	if err != nil {
		return m, err
	}
	if !m.IsPolarPerceptual() {
		return m, fmt.Errorf("model %v is not one of Oklch, LCh or LCh-D50", m)
	}
	return m, nil
}

// lightness converts a percentage of the lightness range of m.
func lightness(m models.Model, pct float64) float64 {
	lo, hi := m.LightnessRange()
	return lo + pct/100*(hi-lo)
}

// context returns the profile context of the config,
// falling back on sRGB.
func (c *Config) context() (*profile.Context, error) {
	intent, err := icc.ParseIntent(strings.ToLower(c.Intent))
	if err != nil {
		return nil, err
	}
	if c.Profile == "" {
		return profile.SRGB(), nil
	}
	return profile.LoadOrDefault(c.Profile, intent), nil
}

func (c *Config) options() gamut.Options {
	o := gamut.DefaultOptions()
	if c.Budget > 0 {
		o.Budget = c.Budget
	}
	return o
}

// engine returns the boundary engine and the model of the config.
func (c *Config) engine() (*gamut.Engine, models.Model, error) {
	m, err := c.model()
	if err != nil {
		return nil, m, err
	}
	ctx, err := c.context()
	if err != nil {
		return nil, m, err
	}
	return gamut.New(ctx, c.options()), m, nil
}
