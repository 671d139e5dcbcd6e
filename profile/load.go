// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
	"cogentcore.org/gamut/models"
	"cogentcore.org/gamut/oracle"
	"github.com/mitchellh/go-homedir"
)

// DefaultIntent is the rendering intent used when none is given.
const DefaultIntent = icc.AbsoluteColorimetric

var (
	// ErrNotRGB is the reason for profiles whose device space is not RGB.
	ErrNotRGB = errors.New("profile color space is not RGB")

	// ErrClass is the reason for profiles that are not display,
	// input or color space profiles.
	ErrClass = errors.New("unsupported profile class")
)

// LoadError is returned when a profile cannot be loaded. Err is
// the reason, which may be one of the icc or profile errors.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "profile: " + e.Err.Error()
	}
	return fmt.Sprintf("profile: loading %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load loads the ICC profile at the given path, which may start
// with ~ for the home directory. The optional intent defaults to
// [DefaultIntent]. Any failure is reported as a [*LoadError].
func Load(path string, intent ...icc.Intent) (*Context, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, &LoadError{Path: p, Err: err}
	}
	c, err := load(b, p, intent)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded color profile", "path", p, "name", c.info.Name, "id", c.id)
	return c, nil
}

// LoadBytes is like [Load] for profile data in memory.
func LoadBytes(data []byte, intent ...icc.Intent) (*Context, error) {
	return load(data, "", intent)
}

// LoadOrDefault is like [Load], but logs the error and returns
// the built-in sRGB context if the profile cannot be loaded.
func LoadOrDefault(path string, intent ...icc.Intent) *Context {
	c, err := Load(path, intent...)
	if errors.Log(err) != nil {
		return SRGB()
	}
	return c
}

func load(b []byte, path string, intents []icc.Intent) (*Context, error) {
	fail := func(err error) (*Context, error) {
		return nil, &LoadError{Path: path, Err: err}
	}
	intent := DefaultIntent
	if len(intents) > 0 {
		intent = intents[0]
	}
	if !icc.Sniff(b) {
		return fail(icc.ErrNotICC)
	}
	p, err := icc.Parse(b)
	if err != nil {
		return fail(err)
	}
	if p.Header.ColorSpace != icc.SpaceRGB {
		return fail(fmt.Errorf("%w: %v", ErrNotRGB, p.Header.ColorSpace))
	}
	switch p.Header.Class {
	case icc.ClassDisplay, icc.ClassInput, icc.ClassColorSpace:
	default:
		return fail(fmt.Errorf("%w %v", ErrClass, p.Header.Class))
	}
	o, err := oracle.New(p, intent)
	if err != nil {
		return fail(err)
	}
	return newContext(infoOf(p, o, path, int64(len(b)), intent), o, p), nil
}

func infoOf(p *icc.Profile, o oracle.Oracle, path string, size int64, intent icc.Intent) Info {
	h := p.Header
	text := func(sig icc.Signature) string {
		s, _ := p.Text(sig)
		return s
	}
	info := Info{
		Path:         path,
		Size:         size,
		Name:         text(icc.TagDescription),
		Copyright:    text(icc.TagCopyright),
		Manufacturer: text(icc.TagManufacturer),
		Model:        text(icc.TagModel),
		Class:        h.Class,
		ColorSpace:   h.ColorSpace,
		PCS:          h.PCS,
		Version:      h.Version.Semver(),
		Created:      h.Created,
		Intent:       intent,
		MatrixShaper: p.IsMatrixShaper(),
		CLUT:         p.HasLUT(intent),
		Tags:         p.Tags(),
		WhitePoint:   cie.D50,
	}
	if w, err := p.XYZ(icc.TagMediaWhitePoint); err == nil {
		info.WhitePoint = w
	}
	if k, err := p.XYZ(icc.TagMediaBlackPoint); err == nil {
		info.BlackPoint = k
	} else {
		info.BlackPoint, _ = o.ToPCS(models.RGBValue{})
	}
	colorants := []icc.Signature{icc.TagRedColorant, icc.TagGreenColorant, icc.TagBlueColorant}
	for i := range info.Primaries {
		if info.MatrixShaper {
			info.Primaries[i], _ = p.XYZ(colorants[i])
			continue
		}
		var rgb models.RGBValue
		switch i {
		case 0:
			rgb.R = 1
		case 1:
			rgb.G = 1
		default:
			rgb.B = 1
		}
		info.Primaries[i], _ = o.ToPCS(rgb)
	}
	return info
}
