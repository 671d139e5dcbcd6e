// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/models"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// BoundaryTable is a table of maximum chromas of a profile.
type BoundaryTable struct {
	Profile string `json:"profile" toml:"profile" yaml:"profile"`
	Model   string `json:"model" toml:"model" yaml:"model"`
	Rows    []Row  `json:"rows" toml:"rows" yaml:"rows"`
}

// Row is one boundary of a [BoundaryTable].
type Row struct {
	Hue       float64 `json:"hue" toml:"hue" yaml:"hue"`
	Lightness float64 `json:"lightness" toml:"lightness" yaml:"lightness"`
	Chroma    float64 `json:"chroma" toml:"chroma" yaml:"chroma"`
	Estimated bool    `json:"estimated,omitempty" toml:"estimated,omitempty" yaml:"estimated,omitempty"`
}

// steps returns the values from lo to hi inclusive by step.
func steps(lo, hi, step float64) []float64 {
	if step <= 0 {
		return []float64{lo}
	}
	n := int(math.Floor((hi-lo)/step + 1e-9))
	vs := make([]float64, n+1)
	for i := range vs {
		vs[i] = lo + float64(i)*step
	}
	return vs
}

func boundaryTable(e *gamut.Engine, m models.Model, hueStep, lightnessStep float64) *BoundaryTable {
	t := &BoundaryTable{Profile: e.Profile().Info().Name, Model: m.String()}
	lo, hi := m.LightnessRange()
	hues := steps(0, 360, hueStep)
	if len(hues) > 1 && hues[len(hues)-1] >= 360 {
		hues = hues[:len(hues)-1]
	}
	for _, pct := range steps(0, 100, lightnessStep) {
		l := lo + pct/100*(hi-lo)
		for _, h := range hues {
			b := e.MaxChromaExact(h, l, m)
			t.Rows = append(t.Rows, Row{Hue: h, Lightness: l, Chroma: b.Chroma, Estimated: b.Estimated})
		}
	}
	return t
}

// formatOf returns the table format for the extension of the file.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return "toml"
}

// Encode returns the table in the given format: toml, yaml or json.
func (t *BoundaryTable) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		return toml.Marshal(t)
	case "yaml", "yml":
		return yaml.Marshal(t)
	case "json":
		return json.MarshalIndent(t, "", "\t")
	}
	return nil, fmt.Errorf("table: unknown format %q, must be toml, yaml or json", format)
}
