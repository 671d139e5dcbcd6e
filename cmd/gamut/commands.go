// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/gamut/colorvalue"
	"cogentcore.org/gamut/css"
	"cogentcore.org/gamut/diagram"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/palette"
	"cogentcore.org/gamut/profile"
	"cogentcore.org/gamut/session"
	"github.com/muesli/termenv"
)

// Info prints the metadata and detected limits of the profile.
func Info(c *Config) error { //cli:cmd -root
	ctx, err := c.context()
	if err != nil {
		return err
	}
	printInfo(ctx)
	return nil
}

func printInfo(ctx *profile.Context) {
	in := ctx.Info()
	fmt.Printf("%s\n", in.Name)
	if in.Path != "" {
		fmt.Printf("  file:         %s (%d bytes)\n", in.Path, in.Size)
	}
	if in.Copyright != "" {
		fmt.Printf("  copyright:    %s\n", in.Copyright)
	}
	if in.Version != nil {
		fmt.Printf("  version:      %s\n", in.Version)
	}
	fmt.Printf("  class:        %s, %s to %s\n", in.Class, in.ColorSpace, in.PCS)
	fmt.Printf("  intent:       %s\n", in.Intent)
	fmt.Printf("  transform:    matrix/TRC %v, CLUT %v\n", in.MatrixShaper, in.CLUT)
	fmt.Printf("  white point:  %v\n", in.WhitePoint)
	fmt.Printf("  black point:  %v\n", in.BlackPoint)
	for _, m := range []models.Model{models.LCh, models.CIELChD50, models.Oklch} {
		l := ctx.Limits(m)
		fmt.Printf("  %-13s black L %.4g, white L %.4g, max chroma %.4g\n", m.String()+":", l.BlackL, l.WhiteL, l.MaxChroma)
	}
	if logx.UserLevel <= slog.LevelDebug {
		fmt.Printf("  tags:         %v\n", in.Tags)
	}
}

// swatch returns a swatch of v for the terminal.
func swatch(v *colorvalue.Value) string {
	o := termenv.NewOutput(os.Stdout)
	return o.String("      ").Background(o.Color(v.Hex()[:7])).String()
}

// Convert converts a CSS color into every model of the profile.
func Convert(c *Config) error {
	e, _, err := c.engine()
	if err != nil {
		return err
	}
	if c.Color == "" {
		return fmt.Errorf("convert: a color must be given")
	}
	col, err := css.Parse(c.Color)
	if err != nil {
		return err
	}
	v, err := col.Value(e)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s in %s\n", swatch(v), v.Hex(), e.Profile())
	for _, m := range models.All() {
		fmt.Printf("  %-8s %.6g\n", m.String()+":", v.Get(m))
	}
	for _, s := range css.FormatAll(v) {
		fmt.Printf("  %s\n", s)
	}
	return nil
}

// MaxChroma prints the maximum chroma of the model at Hue and Lightness.
func MaxChroma(c *Config) error {
	e, m, err := c.engine()
	if err != nil {
		return err
	}
	l := lightness(m, c.Lightness)
	b := e.MaxChromaExact(c.Hue, l, m)
	fmt.Printf("%v hue %g lightness %g: max chroma %v in %d steps\n", m, c.Hue, l, b, b.Iterations)
	return nil
}

// Table writes a table of maximum chromas over hues and lightnesses.
func Table(c *Config) error {
	e, m, err := c.engine()
	if err != nil {
		return err
	}
	t := boundaryTable(e, m, c.HueStep, c.LightnessStep)
	format := c.Format
	if format == "" {
		format = formatOf(c.Output)
	}
	b, err := t.Encode(format)
	if err != nil {
		return err
	}
	if c.Output == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	slog.Info("writing boundary table", "file", c.Output, "rows", len(t.Rows))
	return os.WriteFile(c.Output, b, 0666)
}

// Diagram draws a gamut diagram into Output as a PNG.
func Diagram(c *Config) error {
	e, m, err := c.engine()
	if err != nil {
		return err
	}
	out := c.Output
	if out == "" {
		out = "gamut.png"
	}
	opts := diagram.Options{Model: m, Supersample: 2}
	var img image.Image
	switch c.Plane {
	case "hue":
		img, err = diagram.ChromaHue(context.Background(), e, lightness(m, c.Lightness), c.Size, opts)
	case "lightness":
		img, err = diagram.ChromaLightness(context.Background(), e, c.Hue, image.Pt(c.Size, c.Size), opts)
	default:
		return fmt.Errorf("diagram: unknown plane %q, must be hue or lightness", c.Plane)
	}
	if err != nil {
		return err
	}
	slog.Info("saving diagram", "file", out)
	return diagram.Save(out, img)
}

// Palette prints a palette of swatches with uniform chroma per row.
func Palette(c *Config) error {
	e, _, err := c.engine()
	if err != nil {
		return err
	}
	rows, err := palette.Swatches(e, palette.EvenHues(c.Hue, c.Hues), palette.EvenLightnesses(c.Lightnesses))
	if err != nil {
		return err
	}
	for _, row := range rows {
		var b strings.Builder
		for _, s := range row {
			b.WriteString(swatch(s.Value))
		}
		if len(row) > 0 {
			fmt.Fprintf(&b, " L %.3f C %.4f", row[0].Lightness, row[0].Chroma)
		}
		fmt.Println(b.String())
	}
	return nil
}

// Watch watches the profile file and prints its limits
// each time it changes, until interrupted.
func Watch(c *Config) error {
	if c.Profile == "" {
		return session.ErrNoPath
	}
	ctx, err := c.context()
	if err != nil {
		return err
	}
	s := session.New(ctx, c.options())
	s.OnChange(printInfo)
	sig, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	printInfo(ctx)
	if err := s.Watch(sig); err != nil {
		return err
	}
	<-sig.Done()
	slog.Info("stopped watching", "profile", c.Profile)
	return nil
}
