// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package css parses and formats colors in the syntax of
// CSS Color Module Level 4.
package css

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/gamut/colorvalue"
	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/hsx"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/polar"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/image/colornames"
)

// Color is a parsed CSS color: components in one model and an opacity.
type Color struct {
	Model  models.Model
	Values models.Values
	Alpha  float64
}

// Value returns the color value of c in the profile of the engine,
// reduced in chroma into its gamut if needed.
func (c Color) Value(e *gamut.Engine, opts ...colorvalue.Option) (*colorvalue.Value, error) {
	return colorvalue.FromModel(e, c.Model, c.Values, append([]colorvalue.Option{colorvalue.WithAlpha(c.Alpha)}, opts...)...)
}

// ErrSyntax is the error for strings that are not CSS colors.
var ErrSyntax = errors.New("invalid CSS color")

var function = regexp.MustCompile(`^([a-z][a-z0-9-]*)\s*\((.*)\)$`)

// Parse parses a CSS color: a hex color, a named color, transparent,
// or one of the rgb(), rgba(), hsl(), hsla(), hwb(), lab(), lch(),
// oklab(), oklch() and color() functions, in the modern space
// separated syntax with an optional / alpha, or the legacy comma
// separated syntax. A trailing semicolon is ignored.
func Parse(s string) (Color, error) {
	return ParseRelative(s, nil)
}

// ParseRelative is like [Parse], but also accepts the forms
// lighten-PCT, darken-PCT, saturate-PCT and desaturate-PCT, which
// adjust the base color in HSL by PCT percent.
func ParseRelative(s string, base color.Color) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	str = strings.TrimSpace(strings.TrimSuffix(str, ";"))
	if str == "" {
		return Color{}, fmt.Errorf("css.Parse: %w: empty string", ErrSyntax)
	}
	if str[0] == '#' {
		rgb, alpha, err := models.ParseHex(str)
		if err != nil {
			return Color{}, fmt.Errorf("css.Parse: %w: %w", ErrSyntax, err)
		}
		return Color{Model: models.RGB, Values: rgb.Values(), Alpha: alpha}, nil
	}
	if m := function.FindStringSubmatch(str); m != nil {
		c, err := parseFunction(m[1], m[2])
		if err != nil {
			return Color{}, fmt.Errorf("css.Parse: %q: %w", s, err)
		}
		return c, nil
	}
	if str == "transparent" {
		return Color{Model: models.RGB}, nil
	}
	if c, ok := colornames.Map[str]; ok {
		return fromColor(c), nil
	}
	if cmd, pct, ok := strings.Cut(str, "-"); ok {
		return relative(cmd, pct, base)
	}
	return Color{}, fmt.Errorf("css.Parse: %w: unknown color name %q; did you mean %q?", ErrSyntax, str, Suggest(str))
}

func fromColor(c color.Color) Color {
	rgb, alpha := models.RGBFromColor(c)
	return Color{Model: models.RGB, Values: rgb.Values(), Alpha: alpha}
}

func relative(cmd, pct string, base color.Color) (Color, error) {
	amount, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return Color{}, fmt.Errorf("css.Parse: error getting percent from %q: %w", pct, err)
	}
	if base == nil {
		return Color{}, fmt.Errorf("css.Parse: base color must be given for %s", cmd)
	}
	switch cmd {
	case "lighten":
		return fromColor(hsx.Lighten(base, amount)), nil
	case "darken":
		return fromColor(hsx.Darken(base, amount)), nil
	case "saturate":
		return fromColor(hsx.Saturate(base, amount)), nil
	case "desaturate":
		return fromColor(hsx.Desaturate(base, amount)), nil
	}
	return Color{}, fmt.Errorf("css.Parse: %w: unknown transformation %q", ErrSyntax, cmd)
}

// Suggest returns the named color most similar to name.
func Suggest(name string) string {
	best, score := "", -1.0
	lev := metrics.NewLevenshtein()
	for _, n := range colornames.Names {
		if s := strutil.Similarity(name, n, lev); s > score {
			best, score = n, s
		}
	}
	return best
}

// arguments splits the arguments of a color function into its
// components and the alpha, which is "none" when omitted.
func arguments(name, args string) ([]string, string, error) {
	if strings.Contains(args, ",") {
		switch name {
		case "rgb", "rgba", "hsl", "hsla":
		default:
			return nil, "", fmt.Errorf("%w: commas in %s()", ErrSyntax, name)
		}
		if strings.Contains(args, "/") {
			return nil, "", fmt.Errorf("%w: mixed legacy and modern syntax", ErrSyntax)
		}
		parts := strings.Split(args, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
			if parts[i] == "" || strings.ContainsAny(parts[i], " \t") {
				return nil, "", fmt.Errorf("%w: argument %d", ErrSyntax, i+1)
			}
		}
		switch len(parts) {
		case 3:
			return parts, "none", nil
		case 4:
			return parts[:3], parts[3], nil
		}
		return nil, "", fmt.Errorf("%w: %d arguments", ErrSyntax, len(parts))
	}
	comps, alpha, hasAlpha := strings.Cut(args, "/")
	fields := strings.Fields(comps)
	want := 3
	if name == "color" {
		want = 4
	}
	if len(fields) != want {
		return nil, "", fmt.Errorf("%w: %d arguments", ErrSyntax, len(fields))
	}
	if !hasAlpha {
		return fields, "none", nil
	}
	alpha = strings.TrimSpace(alpha)
	if alpha == "" || strings.ContainsAny(alpha, " \t/") {
		return nil, "", fmt.Errorf("%w: alpha %q", ErrSyntax, alpha)
	}
	return fields, alpha, nil
}

// number parses a number, a percentage of full, or none.
func number(arg string, full, none float64) (float64, error) {
	if arg == "none" {
		return none, nil
	}
	scale := 1.0
	if p, ok := strings.CutSuffix(arg, "%"); ok {
		arg, scale = p, full/100
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: number %q", ErrSyntax, arg)
	}
	return v * scale, nil
}

// percent parses a percentage in [0, 100], accepting plain numbers too.
func percent(arg string) (float64, error) {
	if arg == "none" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: percentage %q", ErrSyntax, arg)
	}
	return v, nil
}

var angleUnits = []struct {
	unit  string
	scale float64
}{
	{"deg", 1},
	{"grad", 360.0 / 400},
	{"rad", 180 / math.Pi},
	{"turn", 360},
}

// hue parses an angle in degrees, gradians, radians or turns,
// normalized to [0, 360).
func hue(arg string) (float64, error) {
	if arg == "none" {
		return 0, nil
	}
	scale := 1.0
	for _, u := range angleUnits {
		if p, ok := strings.CutSuffix(arg, u.unit); ok {
			arg, scale = p, u.scale
			break
		}
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: hue %q", ErrSyntax, arg)
	}
	return polar.NormalizeDegrees(v * scale), nil
}

func parseFunction(name, args string) (Color, error) {
	fields, alphaArg, err := arguments(name, args)
	if err != nil {
		return Color{}, err
	}
	var c Color
	errs := make([]error, 4)
	num := func(i int, full float64) float64 {
		var v float64
		v, errs[i] = number(fields[i], full, 0)
		return v
	}
	switch name {
	case "rgb", "rgba":
		c.Model = models.RGB
		c.Values = models.Values{num(0, 255) / 255, num(1, 255) / 255, num(2, 255) / 255}
	case "hsl", "hsla", "hwb":
		c.Model = models.HSL
		if name == "hwb" {
			c.Model = models.HWB
		}
		c.Values[0], errs[0] = hue(fields[0])
		c.Values[1], errs[1] = percent(fields[1])
		c.Values[2], errs[2] = percent(fields[2])
	case "lab":
		c.Model = models.CIELabD50
		c.Values = models.Values{num(0, 100), num(1, 125), num(2, 125)}
	case "oklab":
		c.Model = models.Oklab
		c.Values = models.Values{num(0, 1), num(1, 0.4), num(2, 0.4)}
	case "lch", "oklch":
		c.Model = models.CIELChD50
		full := [2]float64{100, 150}
		if name == "oklch" {
			c.Model = models.Oklch
			full = [2]float64{1, 0.4}
		}
		c.Values[0], c.Values[1] = num(0, full[0]), num(1, full[1])
		c.Values[2], errs[2] = hue(fields[2])
	case "color":
		switch fields[0] {
		case "srgb":
			c.Model = models.RGB
		case "xyz-d50":
			c.Model = models.XYZD50
		case "xyz", "xyz-d65":
			c.Model = models.XYZD65
		default:
			return Color{}, fmt.Errorf("%w: unsupported color space %q", ErrSyntax, fields[0])
		}
		fields = fields[1:]
		c.Values = models.Values{num(0, 1), num(1, 1), num(2, 1)}
	default:
		return Color{}, fmt.Errorf("%w: unknown function %s()", ErrSyntax, name)
	}
	c.Alpha, errs[3] = number(alphaArg, 1, 1)
	c.Alpha = math.Max(0, math.Min(1, c.Alpha))
	if err := errors.Join(errs...); err != nil {
		return Color{}, err
	}
	return c, nil
}
