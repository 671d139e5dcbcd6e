// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icctest

import (
	"encoding/binary"
	"math"

	"cogentcore.org/gamut/cie"
	"cogentcore.org/gamut/icc"
)

// GridFunc computes the normalized outputs of a lookup table
// at normalized input grid coordinates.
type GridFunc func(in [3]float64) [3]float64

func sampleGrid(grid int, f GridFunc, put func(v float64)) {
	for i := range grid {
		for j := range grid {
			for k := range grid {
				g := float64(grid - 1)
				out := f([3]float64{float64(i) / g, float64(j) / g, float64(k) / g})
				for _, v := range out {
					put(v)
				}
			}
		}
	}
}

// LUT16 returns an mft2 tag with identity matrix and curves and
// the given grid.
func LUT16(grid int, f GridFunc) []byte {
	b := typed(icc.TypeLUT16, 52)
	b[8], b[9], b[10] = 3, 3, byte(grid)
	for i := range 3 {
		binary.BigEndian.PutUint32(b[12+16*i:], s15Fixed16(1))
	}
	binary.BigEndian.PutUint16(b[48:], 2)
	binary.BigEndian.PutUint16(b[50:], 2)
	put := func(v float64) { b = binary.BigEndian.AppendUint16(b, u16(v)) }
	identity := func() {
		for range 3 {
			put(0)
			put(1)
		}
	}
	identity()
	sampleGrid(grid, f, put)
	identity()
	return b
}

// LUT8 returns an mft1 tag with identity matrix and curves and
// the given grid.
func LUT8(grid int, f GridFunc) []byte {
	b := typed(icc.TypeLUT8, 48)
	b[8], b[9], b[10] = 3, 3, byte(grid)
	for i := range 3 {
		binary.BigEndian.PutUint32(b[12+16*i:], s15Fixed16(1))
	}
	put := func(v float64) { b = append(b, byte(math.Round(math.Max(0, math.Min(1, v))*255))) }
	identity := func() {
		for range 3 {
			for i := range 256 {
				put(float64(i) / 255)
			}
		}
	}
	identity()
	sampleGrid(grid, f, put)
	identity()
	return b
}

// Modular describes an mAB or mBA tag. B is required; the other
// elements are omitted when nil.
type Modular struct {
	A, M, B [3][]byte

	// Matrix is 3x3 row-major followed by three offsets.
	Matrix *[12]float64

	Grid int
	CLUT GridFunc
}

// AToB returns m encoded as an mAB tag.
func (m Modular) AToB() []byte { return m.encode(icc.TypeLUTAToB) }

// BToA returns m encoded as an mBA tag.
func (m Modular) BToA() []byte { return m.encode(icc.TypeLUTBToA) }

func (m Modular) encode(t icc.Signature) []byte {
	be := binary.BigEndian
	b := typed(t, 32)
	b[8], b[9] = 3, 3
	align := func() {
		for len(b)%4 != 0 {
			b = append(b, 0)
		}
	}
	curves := func(at int, cs [3][]byte) {
		if cs[0] == nil {
			return
		}
		be.PutUint32(b[at:], uint32(len(b)))
		for _, c := range cs {
			b = append(b, c...)
			align()
		}
	}
	curves(12, m.B)
	if m.Matrix != nil {
		be.PutUint32(b[16:], uint32(len(b)))
		for _, v := range m.Matrix {
			b = be.AppendUint32(b, s15Fixed16(v))
		}
	}
	curves(20, m.M)
	if m.CLUT != nil {
		be.PutUint32(b[24:], uint32(len(b)))
		hdr := make([]byte, 20)
		hdr[0], hdr[1], hdr[2] = byte(m.Grid), byte(m.Grid), byte(m.Grid)
		hdr[16] = 2
		b = append(b, hdr...)
		sampleGrid(m.Grid, m.CLUT, func(v float64) { b = be.AppendUint16(b, u16(v)) })
		align()
	}
	curves(28, m.A)
	return b
}

// MatrixOf returns a modular matrix with no offsets.
func MatrixOf(m cie.Mat3) *[12]float64 {
	return &[12]float64{m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2], m[2][0], m[2][1], m[2][2]}
}

// xyzScale is the u1Fixed15 normalization of XYZ PCS values in tables.
const xyzScale = 65535.0 / 32768.0

// labEncode returns normalized Lab for the given PCS value,
// in the version 2 16-bit encoding when legacy is set.
func labEncode(c cie.XYZ, legacy bool) [3]float64 {
	lab := c.ToLab(cie.D50)
	v := [3]float64{lab.L / 100, (lab.A + 128) / 255, (lab.B + 128) / 255}
	if legacy {
		for i := range v {
			v[i] *= 65280.0 / 65535.0
		}
	}
	return v
}

func labDecode(v [3]float64, legacy bool) cie.XYZ {
	if legacy {
		for i := range v {
			v[i] *= 65535.0 / 65280.0
		}
	}
	return cie.Lab{L: v[0] * 100, A: v[1]*255 - 128, B: v[2]*255 - 128}.ToXYZ(cie.D50)
}

// SRGBToLab samples the sRGB to Lab PCS transform, for an A2B table.
func SRGBToLab(legacy bool) GridFunc {
	return func(in [3]float64) [3]float64 {
		return labEncode(cie.SRGBToXYZ(in[0], in[1], in[2]), legacy)
	}
}

// LabToSRGB samples the Lab PCS to sRGB transform, clamped to [0, 1],
// for a B2A table.
func LabToSRGB(legacy bool) GridFunc {
	return func(in [3]float64) [3]float64 {
		r, g, b := cie.XYZToSRGB(labDecode(in, legacy))
		return [3]float64{r, g, b}
	}
}

// LabLUT returns a version 2 sRGB profile with Lab PCS and mft2
// tables of the given grid size for the perceptual intent.
func LabLUT(name string, grid int) *Builder {
	b := New()
	b.PCS = icc.SpaceLab
	b.Version = icc.Version{Major: 2, Minor: 4}
	b.Add(icc.TagDescription, Desc(name)).
		Add(icc.TagMediaWhitePoint, XYZ(cie.D50)).
		Add(icc.TagAToB0, LUT16(grid, SRGBToLab(true))).
		Add(icc.TagBToA0, LUT16(grid, LabToSRGB(true)))
	return b
}

// ModularSRGB returns a version 4 sRGB profile with XYZ PCS whose
// A2B0 and B2A0 tags are mAB and mBA tables made of curves and
// matrices only.
func ModularSRGB(name string) *Builder {
	identity := Table(0, nil)
	ids := [3][]byte{identity, identity, identity}
	decode := SRGBPara()
	encode := Para(4, 1/2.4, math.Pow(1.055, 2.4), 0, 12.92, 0.0031308, -0.055, 0)

	toXYZ := cie.SRGBToXYZD50
	var scaledTo, scaledFrom cie.Mat3
	from := cie.XYZD50ToSRGB
	for i := range 3 {
		for j := range 3 {
			scaledTo[i][j] = toXYZ[i][j] / xyzScale
			scaledFrom[i][j] = from[i][j] * xyzScale
		}
	}
	aToB := Modular{
		A:      [3][]byte{decode, decode, decode},
		M:      ids,
		Matrix: MatrixOf(scaledTo),
		B:      ids,
	}
	bToA := Modular{
		B:      ids,
		Matrix: MatrixOf(scaledFrom),
		M:      [3][]byte{encode, encode, encode},
	}
	b := New()
	b.Version = icc.Version{Major: 4, Minor: 3}
	b.Add(icc.TagDescription, MLUC(
		icc.Localized{Language: "en", Country: "US", Text: name},
		icc.Localized{Language: "de", Country: "DE", Text: name + " (Deutsch)"},
	)).
		Add(icc.TagCopyright, MLUC(icc.Localized{Language: "en", Country: "US", Text: "Public domain"})).
		Add(icc.TagMediaWhitePoint, XYZ(cie.D50)).
		Add(icc.TagAToB0, aToB.AToB()).
		Add(icc.TagBToA0, bToA.BToA())
	return b
}
