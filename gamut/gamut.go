// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut finds the gamut boundary of a profile: the maximum
// chroma, for a hue and lightness in a perceptual model, that still
// maps to displayable device RGB.
package gamut

import (
	"fmt"
	"math"
	"sync/atomic"

	"cogentcore.org/gamut/convert"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/polar"
	"cogentcore.org/gamut/profile"
)

// Options configures an [Engine].
type Options struct {
	// CIETolerance is the chroma resolution of searches in CIELCh.
	CIETolerance float64 `default:"0.001"`

	// OklabTolerance is the chroma resolution of searches in Oklch.
	OklabTolerance float64 `default:"0.00001"`

	// Budget is the maximum number of bisection steps of a search.
	// A search that exhausts it returns an estimated boundary.
	Budget int `default:"64"`

	// Gamut is the tolerance of the in-gamut test.
	Gamut profile.Tolerance

	// HueBucket is the hue bucket size of the cache, in degrees.
	HueBucket float64 `default:"1"`

	// CIELightnessBucket is the CIELCh lightness bucket size of the cache.
	CIELightnessBucket float64 `default:"1"`

	// OklabLightnessBucket is the Oklch lightness bucket size of the cache.
	OklabLightnessBucket float64 `default:"0.01"`

	// Cache is where boundaries are cached. It may be shared between
	// engines of different profiles. A new cache is used if it is nil.
	Cache *Cache `display:"-"`
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		CIETolerance:         0.001,
		OklabTolerance:       0.00001,
		Budget:               64,
		Gamut:                profile.DefaultTolerance,
		HueBucket:            1,
		CIELightnessBucket:   1,
		OklabLightnessBucket: 0.01,
	}
}

// Boundary is the result of a gamut boundary search.
type Boundary struct {
	// Chroma is the maximum in-gamut chroma found.
	Chroma float64

	// Estimated is whether Chroma is not guaranteed to be within the
	// tolerance of the true boundary: the budget ran out, or no
	// in-gamut chroma exists at all.
	Estimated bool

	// Iterations is the number of bisection steps used.
	Iterations int
}

func (b Boundary) String() string {
	s := fmt.Sprintf("%.6g", b.Chroma)
	if b.Estimated {
		s += " (estimated)"
	}
	return s
}

// Engine searches the gamut boundary of one profile context.
// It is safe for concurrent use.
type Engine struct {
	ctx   *profile.Context
	opts  Options
	cache *Cache

	retired atomic.Bool
}

// New returns an engine for the given profile context, using the
// [DefaultOptions] when no options are given.
func New(ctx *profile.Context, opts ...Options) *Engine {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	e := &Engine{ctx: ctx, opts: o, cache: o.Cache}
	if e.cache == nil {
		e.cache = NewCache()
	}
	return e
}

// Profile returns the profile context of the engine.
func (e *Engine) Profile() *profile.Context { return e.ctx }

// Options returns the options of the engine.
func (e *Engine) Options() Options { return e.opts }

// Cache returns the boundary cache of the engine.
func (e *Engine) Cache() *Cache { return e.cache }

// Retire marks the engine as replaced. It keeps answering, but the
// boundaries it computes from now on, including those of searches
// already running, are not left in the cache.
func (e *Engine) Retire() { e.retired.Store(true) }

// Retired returns whether [Engine.Retire] was called.
func (e *Engine) Retired() bool { return e.retired.Load() }

// Tolerance returns the chroma resolution of searches in model m.
func (e *Engine) Tolerance(m models.Model) float64 {
	if m.Polar() == models.Oklch {
		return e.opts.OklabTolerance
	}
	return e.opts.CIETolerance
}

func (e *Engine) lightnessBucket(m models.Model) float64 {
	if m == models.Oklch {
		return e.opts.OklabLightnessBucket
	}
	return e.opts.CIELightnessBucket
}

// MaxChroma returns the maximum in-gamut chroma for a hue and
// lightness in model m, which is CIELCh (D50 or D65) or Oklch; their
// Cartesian forms are accepted too. Hue and lightness snap to the
// nearest cache bucket, and the boundary of the bucket is computed
// once and then cached. Other models return a zero, estimated boundary.
func (e *Engine) MaxChroma(hue, lightness float64, m models.Model) Boundary {
	m = m.Polar()
	if !m.IsPolarPerceptual() {
		return Boundary{Estimated: true}
	}
	k := e.key(hue, lightness, m)
	if b, ok := e.cache.load(k); ok {
		return b
	}
	hb, lb := e.opts.HueBucket, e.lightnessBucket(m)
	b := e.search(float64(k.hue)*hb, float64(k.lightness)*lb, m)
	if e.retired.Load() {
		return b
	}
	b = e.cache.store(k, b)
	if e.retired.Load() {
		e.cache.delete(k)
	}
	return b
}

// MaxChromaExact is like [Engine.MaxChroma] for the exact hue and
// lightness given, without the cache.
func (e *Engine) MaxChromaExact(hue, lightness float64, m models.Model) Boundary {
	m = m.Polar()
	if !m.IsPolarPerceptual() {
		return Boundary{Estimated: true}
	}
	return e.search(hue, lightness, m)
}

func (e *Engine) key(hue, lightness float64, m models.Model) key {
	hb, lb := e.opts.HueBucket, e.lightnessBucket(m)
	nh := int32(math.Round(360 / hb))
	h := int32(math.Round(polar.NormalizeDegrees(hue)/hb)) % nh
	lo, hi := m.LightnessRange()
	if math.IsNaN(lightness) {
		lightness = lo
	}
	l := int32(math.Round(math.Max(lo, math.Min(hi, lightness)) / lb))
	return key{profile: e.ctx.ID(), model: m, hue: h, lightness: l}
}

// search bisects the chroma range of a hue and lightness between the
// tolerance and the detected chroma limit of the profile. At or beyond
// the black and white points of the profile the boundary is chroma 0.
func (e *Engine) search(hue, lightness float64, m models.Model) Boundary {
	lo, hi := m.LightnessRange()
	if math.IsNaN(lightness) {
		lightness = lo
	}
	lightness = math.Max(lo, math.Min(hi, lightness))
	hue = polar.NormalizeDegrees(hue)
	in := func(c float64) bool {
		return e.ctx.InGamut(m, models.Values{lightness, c, hue}, e.opts.Gamut)
	}
	lim := e.ctx.Limits(m)
	if lightness <= lim.BlackL || lightness >= lim.WhiteL {
		return Boundary{Estimated: !in(0)}
	}
	tol := e.Tolerance(m)
	if !in(tol) {
		return Boundary{Estimated: !in(0)}
	}
	low, high := tol, lim.MaxChroma
	if in(high) {
		return Boundary{Chroma: high}
	}
	n := 0
	for high-low >= tol {
		if n >= e.opts.Budget {
			return Boundary{Chroma: low, Estimated: true, Iterations: n}
		}
		mid := (low + high) / 2
		if in(mid) {
			low = mid
		} else {
			high = mid
		}
		n++
	}
	return Boundary{Chroma: low, Iterations: n}
}

// InGamut returns whether v in model m is displayable with the profile.
func (e *Engine) InGamut(m models.Model, v models.Values) bool {
	return e.ctx.InGamut(m, v, e.opts.Gamut)
}

// ReduceChroma returns v with its lightness clamped between the black
// and white points of the profile and its chroma reduced, keeping hue,
// until it is displayable with the profile. Values in models without
// chroma are reduced in the closest perceptual model: device RGB is
// clamped and XYZ is reduced in CIELCh.
func (e *Engine) ReduceChroma(m models.Model, v models.Values) models.Values {
	v = convert.Normalize(m, v)
	if e.InGamut(m, v) {
		return v
	}
	switch {
	case m == models.RGB:
		return models.RGBFromValues(v).Clamp().Values()
	case m.IsDeviceFamily():
		return v
	case m.IsPolarPerceptual():
		lim := e.ctx.Limits(m)
		l := math.Max(lim.BlackL, math.Min(lim.WhiteL, v[0]))
		b := e.MaxChromaExact(v[2], l, m)
		return models.Values{l, math.Min(v[1], b.Chroma), v[2]}
	}
	pm := m.Polar()
	if !pm.IsPolarPerceptual() {
		pm = models.CIELChD50
		if m == models.XYZD65 {
			pm = models.CIELChD65
		}
	}
	p, _ := convert.Convert(m, v, pm)
	r, _ := convert.Convert(pm, e.ReduceChroma(pm, p), m)
	return r
}

// MaxChromaColor returns the most chromatic displayable color of a
// hue in model m, as lightness, chroma, hue values.
func (e *Engine) MaxChromaColor(hue float64, m models.Model) models.Values {
	m = m.Polar()
	if !m.IsPolarPerceptual() {
		return models.Values{}
	}
	hue = polar.NormalizeDegrees(hue)
	lo, hi := m.LightnessRange()
	step := e.lightnessBucket(m)
	best := models.Values{lo, 0, hue}
	for l := lo; l <= hi+step/2; l += step {
		if b := e.MaxChroma(hue, l, m); b.Chroma > best[1] {
			best = models.Values{l, b.Chroma, hue}
		}
	}
	// refine around the best bucket with exact searches
	center := best[0]
	for i := range 21 {
		l := center - step + float64(i)*step/10
		if l < lo || l > hi {
			continue
		}
		if b := e.MaxChromaExact(hue, l, m); b.Chroma > best[1] {
			best = models.Values{l, b.Chroma, hue}
		}
	}
	return best
}
