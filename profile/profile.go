// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile provides the profile context: one loaded ICC
// profile, or the built-in sRGB, together with its metadata, its
// transform oracle and the characteristics detected from it.
// Contexts are immutable and safe for concurrent use.
package profile

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/oracle"
	"github.com/Masterminds/semver/v3"
)

// Info is the metadata of a profile.
type Info struct {
	// Path is the file the profile was loaded from, if any.
	Path string

	// Size is the size of the profile data in bytes.
	Size int64

	// Name is the profile description.
	Name string

	Copyright    string
	Manufacturer string
	Model        string

	// Class is the profile class, such as mntr for display profiles.
	Class icc.Signature

	// ColorSpace is the device color space, always RGB.
	ColorSpace icc.Signature

	// PCS is the profile connection space, XYZ or Lab.
	PCS icc.Signature

	// Version is the ICC version of the profile.
	Version *semver.Version

	Created time.Time

	// Intent is the rendering intent the context transforms with.
	Intent icc.Intent

	// MatrixShaper is whether the profile has colorant and tone curve tags.
	MatrixShaper bool

	// CLUT is whether the profile has lookup tables for Intent.
	CLUT bool

	Tags []icc.Signature

	WhitePoint cie.XYZ
	BlackPoint cie.XYZ

	// Primaries are the PCS values of the device red, green and blue.
	Primaries [3]cie.XYZ

	// BuiltIn is whether this is the built-in sRGB context.
	BuiltIn bool
}

// Context is a loaded profile with its transform oracle. Every
// context has a process-unique ID, which increases with every
// context created.
type Context struct {
	id     uint64
	info   Info
	oracle oracle.Oracle
	icc    *icc.Profile
	limits func() map[models.Model]Limits
}

var lastID atomic.Uint64

func newContext(info Info, o oracle.Oracle, p *icc.Profile) *Context {
	c := &Context{id: lastID.Add(1), info: info, oracle: o, icc: p}
	c.limits = sync.OnceValue(c.detect)
	return c
}

// ID returns the identity of the context, used to key cached results.
func (c *Context) ID() uint64 { return c.id }

// Info returns a copy of the profile metadata.
func (c *Context) Info() Info {
	in := c.info
	in.Tags = slices.Clone(c.info.Tags)
	return in
}

// Oracle returns the transform oracle of the context.
func (c *Context) Oracle() oracle.Oracle { return c.oracle }

// ICC returns the decoded profile, or nil for the built-in sRGB.
func (c *Context) ICC() *icc.Profile { return c.icc }

func (c *Context) String() string {
	if c.info.Path != "" {
		return c.info.Name + " (" + c.info.Path + ")"
	}
	return c.info.Name
}

var builtIn = sync.OnceValue(func() *Context {
	m := cie.SRGBToXYZD50
	info := Info{
		Name:         "sRGB built-in",
		Copyright:    "No copyright, use freely",
		Class:        icc.ClassDisplay,
		ColorSpace:   icc.SpaceRGB,
		PCS:          icc.SpaceXYZ,
		Version:      semver.New(4, 3, 0, "", ""),
		Intent:       DefaultIntent,
		MatrixShaper: true,
		WhitePoint:   cie.D50,
		BuiltIn:      true,
	}
	for i := range info.Primaries {
		info.Primaries[i] = cie.XYZ{X: m[0][i], Y: m[1][i], Z: m[2][i]}
	}
	return newContext(info, oracle.SRGB(), nil)
})

// SRGB returns the built-in sRGB context. It is the same context
// for the lifetime of the process.
func SRGB() *Context { return builtIn() }
