// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icctest builds synthetic ICC profiles for tests.
package icctest

import (
	"encoding/binary"
	"math"
	"time"
	"unicode/utf16"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
)

// Builder assembles a profile from a header and tags.
type Builder struct {
	Class      icc.Signature
	ColorSpace icc.Signature
	PCS        icc.Signature
	Version    icc.Version
	Intent     icc.Intent
	Created    time.Time

	// Magic overrides the acsp file signature when non-zero.
	Magic icc.Signature

	sigs []icc.Signature
	data [][]byte
}

// New returns a builder for a version 2.1 RGB display profile
// with an XYZ PCS.
func New() *Builder {
	return &Builder{
		Class:      icc.ClassDisplay,
		ColorSpace: icc.SpaceRGB,
		PCS:        icc.SpaceXYZ,
		Version:    icc.Version{Major: 2, Minor: 1},
		Created:    time.Date(2024, 5, 17, 12, 30, 0, 0, time.UTC),
	}
}

// Add adds a tag. Tags with identical data share storage.
func (b *Builder) Add(sig icc.Signature, data []byte) *Builder {
	b.sigs = append(b.sigs, sig)
	b.data = append(b.data, data)
	return b
}

// Bytes returns the encoded profile.
func (b *Builder) Bytes() []byte {
	n := len(b.sigs)
	tableEnd := 128 + 4 + 12*n
	out := make([]byte, tableEnd)
	be := binary.BigEndian
	be.PutUint32(out[128:], uint32(n))
	offsets := map[string]int{}
	for i, d := range b.data {
		off, ok := offsets[string(d)]
		if !ok {
			for len(out)%4 != 0 {
				out = append(out, 0)
			}
			off = len(out)
			offsets[string(d)] = off
			out = append(out, d...)
		}
		e := out[132+12*i:]
		be.PutUint32(e, uint32(b.sigs[i]))
		be.PutUint32(e[4:], uint32(off))
		be.PutUint32(e[8:], uint32(len(d)))
	}
	for len(out)%4 != 0 {
		out = append(out, 0)
	}

	be.PutUint32(out[0:], uint32(len(out)))
	be.PutUint32(out[4:], uint32(icc.Sig("lcms")))
	out[8] = b.Version.Major
	out[9] = b.Version.Minor<<4 | b.Version.Bugfix&0x0f
	be.PutUint32(out[12:], uint32(b.Class))
	be.PutUint32(out[16:], uint32(b.ColorSpace))
	be.PutUint32(out[20:], uint32(b.PCS))
	if !b.Created.IsZero() {
		c := b.Created
		for i, v := range []int{c.Year(), int(c.Month()), c.Day(), c.Hour(), c.Minute(), c.Second()} {
			be.PutUint16(out[24+2*i:], uint16(v))
		}
	}
	magic := b.Magic
	if magic == 0 {
		magic = icc.Sig("acsp")
	}
	be.PutUint32(out[36:], uint32(magic))
	be.PutUint32(out[48:], uint32(icc.Sig("CGCR")))
	be.PutUint32(out[52:], uint32(icc.Sig("test")))
	be.PutUint32(out[64:], uint32(b.Intent))
	putXYZNumber(out[68:], cie.D50)
	be.PutUint32(out[80:], uint32(icc.Sig("CGCR")))
	return out
}

func s15Fixed16(v float64) uint32 {
	return uint32(int32(math.Round(v * 65536)))
}

func putXYZNumber(b []byte, c cie.XYZ) {
	binary.BigEndian.PutUint32(b, s15Fixed16(c.X))
	binary.BigEndian.PutUint32(b[4:], s15Fixed16(c.Y))
	binary.BigEndian.PutUint32(b[8:], s15Fixed16(c.Z))
}

func typed(t icc.Signature, size int) []byte {
	b := make([]byte, size)
	binary.BigEndian.PutUint32(b, uint32(t))
	return b
}

// XYZ returns an XYZType tag.
func XYZ(c cie.XYZ) []byte {
	b := typed(icc.TypeXYZ, 20)
	putXYZNumber(b[8:], c)
	return b
}

// Desc returns a version 2 textDescriptionType tag.
func Desc(s string) []byte {
	b := typed(icc.TypeTextDescription, 12+len(s)+1+8+3+67)
	binary.BigEndian.PutUint32(b[8:], uint32(len(s)+1))
	copy(b[12:], s)
	return b
}

// Text returns a textType tag.
func Text(s string) []byte {
	b := typed(icc.TypeText, 8+len(s)+1)
	copy(b[8:], s)
	return b
}

// MLUC returns a multiLocalizedUnicodeType tag.
func MLUC(recs ...icc.Localized) []byte {
	be := binary.BigEndian
	b := typed(icc.TypeMultiLocalized, 16+12*len(recs))
	be.PutUint32(b[8:], uint32(len(recs)))
	be.PutUint32(b[12:], 12)
	for i, r := range recs {
		u := utf16.Encode([]rune(r.Text))
		str := make([]byte, 2*len(u))
		for j, c := range u {
			be.PutUint16(str[2*j:], c)
		}
		e := b[16+12*i:]
		copy(e[0:2], r.Language)
		copy(e[2:4], r.Country)
		be.PutUint32(e[4:], uint32(len(str)))
		be.PutUint32(e[8:], uint32(len(b)))
		b = append(b, str...)
	}
	return b
}

// Gamma returns a curveType tag with a single gamma value.
func Gamma(g float64) []byte {
	b := typed(icc.TypeCurve, 14)
	binary.BigEndian.PutUint32(b[8:], 1)
	binary.BigEndian.PutUint16(b[12:], uint16(math.Round(g*256)))
	return b
}

// Table returns a curveType tag sampling f over [0, 1] at n points.
// A nil f gives the identity curve with no entries.
func Table(n int, f func(float64) float64) []byte {
	if f == nil {
		return typed(icc.TypeCurve, 12)
	}
	b := typed(icc.TypeCurve, 12+2*n)
	binary.BigEndian.PutUint32(b[8:], uint32(n))
	for i := range n {
		binary.BigEndian.PutUint16(b[12+2*i:], u16(f(float64(i)/float64(n-1))))
	}
	return b
}

// Para returns a parametricCurveType tag.
func Para(fn int, params ...float64) []byte {
	b := typed(icc.TypeParametricCurve, 12+4*len(params))
	binary.BigEndian.PutUint16(b[8:], uint16(fn))
	for i, p := range params {
		binary.BigEndian.PutUint32(b[12+4*i:], s15Fixed16(p))
	}
	return b
}

// SRGBPara returns the sRGB transfer function as a parametric curve tag.
func SRGBPara() []byte {
	return Para(3, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045)
}

func u16(v float64) uint16 {
	return uint16(math.Round(math.Max(0, math.Min(1, v)) * 65535))
}

// MatrixShaper returns a matrix-shaper RGB display profile with the
// given primaries, D50-adapted colorants and tone curve tag, which is
// shared by the three channels.
func MatrixShaper(name string, toXYZD50 cie.Mat3, trc []byte) *Builder {
	b := New()
	b.Add(icc.TagDescription, Desc(name)).
		Add(icc.TagCopyright, Text("No copyright, use freely")).
		Add(icc.TagMediaWhitePoint, XYZ(cie.D50)).
		Add(icc.TagRedColorant, XYZ(cie.XYZ{X: toXYZD50[0][0], Y: toXYZD50[1][0], Z: toXYZD50[2][0]})).
		Add(icc.TagGreenColorant, XYZ(cie.XYZ{X: toXYZD50[0][1], Y: toXYZD50[1][1], Z: toXYZD50[2][1]})).
		Add(icc.TagBlueColorant, XYZ(cie.XYZ{X: toXYZD50[0][2], Y: toXYZD50[1][2], Z: toXYZD50[2][2]})).
		Add(icc.TagRedTRC, trc).
		Add(icc.TagGreenTRC, trc).
		Add(icc.TagBlueTRC, trc)
	return b
}

// SRGB returns the bytes of an sRGB matrix-shaper profile.
func SRGB() []byte {
	return MatrixShaper("sRGB test profile", cie.SRGBToXYZD50, SRGBPara()).Bytes()
}
