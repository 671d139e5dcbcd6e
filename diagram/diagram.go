// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram draws gamut diagrams: slices of a polar perceptual
// color space where the colors inside the gamut of a profile are
// painted and the others are left transparent.
package diagram

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/gamut/gamut"
	"cogentcore.org/gamut/models"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
)

// Options are the options for drawing a diagram.
type Options struct {

	// Model is the polar perceptual model of the diagram.
	Model models.Model

	// Supersample is the factor by which the diagram is drawn larger
	// and then resized down, to smooth the gamut boundary.
	Supersample int `default:"2" min:"1"`
}

// DefaultOptions returns the default diagram options.
func DefaultOptions() Options {
	return Options{Model: models.Oklch, Supersample: 2}
}

func options(opts []Options) (Options, error) {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if !o.Model.IsPolarPerceptual() {
		return o, fmt.Errorf("diagram: model %v is not polar perceptual", o.Model)
	}
	o.Supersample = max(o.Supersample, 1)
	return o, nil
}

// ChromaHue draws the slice of constant lightness of the model as a
// disc of the given size in pixels, with chroma growing from the center
// up to the maximum chroma of the profile and hue going around it
// counterclockwise from the right. The context is checked between
// rows; once it is done the partial image is dropped and its error
// is returned.
func ChromaHue(ctx context.Context, e *gamut.Engine, lightness float64, size int, opts ...Options) (image.Image, error) {
	o, err := options(opts)
	if err != nil {
		return nil, err
	}
	pc := e.Profile()
	maxC := pc.Limits(o.Model).MaxChroma
	n := size * o.Supersample
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	half := float32(n) / 2
	for y := range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dy := half - (float32(y) + 0.5)
		for x := range n {
			dx := float32(x) + 0.5 - half
			r := math32.Hypot(dx, dy) / half
			if r > 1 {
				continue
			}
			hue := float64(math32.Atan2(dy, dx) * 180 / math32.Pi)
			if hue < 0 {
				hue += 360
			}
			chroma := float64(r) * maxC
			if chroma > e.MaxChroma(hue, lightness, o.Model).Chroma {
				continue
			}
			img.SetRGBA(x, y, pixel(e, o.Model, models.Values{lightness, chroma, hue}))
		}
	}
	return resize(img, size, size), nil
}

// ChromaLightness draws the slice of constant hue of the model as an
// image of the given size in pixels, with chroma growing to the right
// up to the maximum chroma of the profile and lightness growing upward
// from black to white. The context is checked between rows like in
// [ChromaHue].
func ChromaLightness(ctx context.Context, e *gamut.Engine, hue float64, size image.Point, opts ...Options) (image.Image, error) {
	o, err := options(opts)
	if err != nil {
		return nil, err
	}
	pc := e.Profile()
	maxC := pc.Limits(o.Model).MaxChroma
	lo, hi := o.Model.LightnessRange()
	w, h := size.X*o.Supersample, size.Y*o.Supersample
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		l := hi - (float64(y)+0.5)/float64(h)*(hi-lo)
		bound := e.MaxChroma(hue, l, o.Model).Chroma
		for x := range w {
			chroma := (float64(x) + 0.5) / float64(w) * maxC
			if chroma > bound {
				break
			}
			img.SetRGBA(x, y, pixel(e, o.Model, models.Values{l, chroma, hue}))
		}
	}
	return resize(img, size.X, size.Y), nil
}

// pixel returns the device color of v, clamped into range, as v is at
// most a cache bucket away from the boundary.
func pixel(e *gamut.Engine, m models.Model, v models.Values) color.RGBA {
	rgb, ok := e.Profile().ToRGB(m, v)
	if !ok || rgb.IsNaN() {
		return color.RGBA{}
	}
	return rgb.AsRGBA(1)
}

func resize(img *image.RGBA, w, h int) image.Image {
	if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// Save saves the image to the given file as a PNG.
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("diagram.Save: %w", err)
	}
	return nil
}
