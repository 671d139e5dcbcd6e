// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icc reads the parts of ICC color profiles needed to transform
// between device RGB and the profile connection space: the header,
// text and XYZ tags, tone curves, and lookup table tags.
package icc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"cogentcore.org/gamut/cie"
)

var (
	// ErrNotICC is returned for data that does not carry the ICC file signature.
	ErrNotICC = errors.New("icc: not an ICC profile")

	// ErrTruncated is returned when the data ends before a structure it declares.
	ErrTruncated = errors.New("icc: truncated data")

	// ErrMissingTag is returned when a requested tag is not in the profile.
	ErrMissingTag = errors.New("icc: missing tag")

	// ErrUnsupportedType is returned for tag types this package does not decode.
	ErrUnsupportedType = errors.New("icc: unsupported tag type")
)

// Profile is a decoded ICC profile. Tag contents are decoded on demand.
type Profile struct {
	Header Header

	tags  map[Signature][]byte
	order []Signature
}

// Decode reads and parses a profile from r.
func Decode(r io.Reader) (*Profile, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse parses a profile from its binary form.
func Parse(b []byte) (*Profile, error) {
	h, err := decodeHeader(b)
	if err != nil {
		return nil, err
	}
	if h.Size != 0 && int(h.Size) < len(b) {
		b = b[:h.Size]
	}
	if len(b) < headerSize+4 {
		return nil, fmt.Errorf("%w: no tag table", ErrTruncated)
	}
	n := int(binary.BigEndian.Uint32(b[headerSize:]))
	if n < 0 || headerSize+4+n*tagEntrySize > len(b) {
		return nil, fmt.Errorf("%w: tag table with %d entries", ErrTruncated, n)
	}
	p := &Profile{Header: h, tags: make(map[Signature][]byte, n)}
	for i := range n {
		e := b[headerSize+4+i*tagEntrySize:]
		sig := Signature(binary.BigEndian.Uint32(e))
		off := int64(binary.BigEndian.Uint32(e[4:]))
		size := int64(binary.BigEndian.Uint32(e[8:]))
		if off+size > int64(len(b)) || size < 8 {
			return nil, fmt.Errorf("%w: tag %v at %d+%d", ErrTruncated, sig, off, size)
		}
		if _, dup := p.tags[sig]; !dup {
			p.order = append(p.order, sig)
		}
		p.tags[sig] = b[off : off+size]
	}
	return p, nil
}

// Tags returns the tag signatures of the profile in file order.
func (p *Profile) Tags() []Signature { return slices.Clone(p.order) }

// Has returns whether the profile has the given tag.
func (p *Profile) Has(sig Signature) bool {
	_, ok := p.tags[sig]
	return ok
}

// Raw returns the undecoded data of a tag, starting with its type signature.
func (p *Profile) Raw(sig Signature) ([]byte, error) {
	b, ok := p.tags[sig]
	if !ok {
		return nil, fmt.Errorf("%w %v", ErrMissingTag, sig)
	}
	return b, nil
}

// TypeOf returns the type signature of a tag.
func (p *Profile) TypeOf(sig Signature) (Signature, error) {
	b, err := p.Raw(sig)
	if err != nil {
		return 0, err
	}
	return Signature(binary.BigEndian.Uint32(b)), nil
}

// XYZ decodes an XYZ tag, such as a colorant or a white point.
func (p *Profile) XYZ(sig Signature) (cie.XYZ, error) {
	b, err := p.Raw(sig)
	if err != nil {
		return cie.XYZ{}, err
	}
	if t := Signature(binary.BigEndian.Uint32(b)); t != TypeXYZ {
		return cie.XYZ{}, fmt.Errorf("%w %v for tag %v", ErrUnsupportedType, t, sig)
	}
	if len(b) < 20 {
		return cie.XYZ{}, fmt.Errorf("%w: XYZ tag %v", ErrTruncated, sig)
	}
	return readXYZNumber(b[8:]), nil
}

// Curve decodes a curv or para tag.
func (p *Profile) Curve(sig Signature) (Curve, error) {
	b, err := p.Raw(sig)
	if err != nil {
		return nil, err
	}
	c, _, err := decodeCurve(b)
	if err != nil {
		return nil, fmt.Errorf("tag %v: %w", sig, err)
	}
	return c, nil
}

// LUT decodes an mft1, mft2, mAB or mBA tag.
func (p *Profile) LUT(sig Signature) (*LUT, error) {
	b, err := p.Raw(sig)
	if err != nil {
		return nil, err
	}
	input := p.Header.ColorSpace
	if sig == TagBToA0 || sig == TagBToA1 || sig == TagBToA2 {
		input = p.Header.PCS
	}
	l, err := decodeLUT(b, input == SpaceXYZ)
	if err != nil {
		return nil, fmt.Errorf("tag %v: %w", sig, err)
	}
	return l, nil
}

// MediaWhitePoint returns the media white point used for absolute
// colorimetric scaling. Version 2 display profiles and profiles
// without a wtpt tag use D50.
func (p *Profile) MediaWhitePoint() cie.XYZ {
	if p.Header.Class == ClassDisplay && p.Header.Version.Major < 4 {
		return cie.D50
	}
	w, err := p.XYZ(TagMediaWhitePoint)
	if err != nil || w.Y <= 0 {
		return cie.D50
	}
	return w
}

// IsMatrixShaper returns whether the profile has the colorant and
// tone curve tags of an RGB matrix-shaper profile.
func (p *Profile) IsMatrixShaper() bool {
	for _, s := range []Signature{TagRedColorant, TagGreenColorant, TagBlueColorant, TagRedTRC, TagGreenTRC, TagBlueTRC} {
		if !p.Has(s) {
			return false
		}
	}
	return true
}

// LUTTags returns the device-to-PCS and PCS-to-device tag signatures
// for a rendering intent.
func LUTTags(intent Intent) (aToB, bToA Signature) {
	switch intent {
	case Perceptual:
		return TagAToB0, TagBToA0
	case Saturation:
		return TagAToB2, TagBToA2
	}
	return TagAToB1, TagBToA1
}

// HasLUT returns whether the profile has lookup tables in both
// directions for an intent, falling back to the perceptual tables
// as the ICC specification requires.
func (p *Profile) HasLUT(intent Intent) bool {
	a, b := p.LUTTagsFor(intent)
	return p.Has(a) && p.Has(b)
}

// LUTTagsFor returns the lookup table tags to use for an intent,
// falling back to A2B0 and B2A0 when the intent's tags are missing.
func (p *Profile) LUTTagsFor(intent Intent) (aToB, bToA Signature) {
	a, b := LUTTags(intent)
	if !p.Has(a) {
		a = TagAToB0
	}
	if !p.Has(b) {
		b = TagBToA0
	}
	return a, b
}
