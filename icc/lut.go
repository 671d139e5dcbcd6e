// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc

import (
	"encoding/binary"
	"fmt"
	"math"

	"cogentcore.org/gamut/cie"
)

// LUT is a decoded lookup table tag with three input and three output
// channels. It evaluates on normalized values; the PCS side is
// converted with [LUT.EncodePCS] and [LUT.DecodePCS].
type LUT struct {
	// Type is the tag type the table was decoded from.
	Type Signature

	stages []stage
}

type stage interface {
	apply(v [3]float64) [3]float64
}

type curveStage [3]Curve

func (s curveStage) apply(v [3]float64) [3]float64 {
	return [3]float64{s[0].Eval(v[0]), s[1].Eval(v[1]), s[2].Eval(v[2])}
}

type matrixStage struct {
	m      cie.Mat3
	offset [3]float64
}

func (s matrixStage) apply(v [3]float64) [3]float64 {
	r := s.m.MulVec(v)
	return [3]float64{r[0] + s.offset[0], r[1] + s.offset[1], r[2] + s.offset[2]}
}

// clutStage is a color lookup table with trilinear interpolation.
// The first input varies slowest.
type clutStage struct {
	grid [3]int
	data []float64
}

func (s clutStage) at(i, j, k int) [3]float64 {
	o := ((i*s.grid[1]+j)*s.grid[2] + k) * 3
	return [3]float64{s.data[o], s.data[o+1], s.data[o+2]}
}

func (s clutStage) apply(v [3]float64) [3]float64 {
	var idx [3]int
	var frac [3]float64
	for c := range 3 {
		x := v[c]
		if math.IsNaN(x) {
			x = 0
		}
		pos := math.Max(0, math.Min(1, x)) * float64(s.grid[c]-1)
		idx[c] = min(int(pos), s.grid[c]-2)
		frac[c] = pos - float64(idx[c])
	}
	var r [3]float64
	for corner := range 8 {
		w := 1.0
		var p [3]int
		for c := range 3 {
			if corner&(4>>c) != 0 {
				p[c] = idx[c] + 1
				w *= frac[c]
			} else {
				p[c] = idx[c]
				w *= 1 - frac[c]
			}
		}
		if w == 0 {
			continue
		}
		o := s.at(p[0], p[1], p[2])
		for c := range 3 {
			r[c] += w * o[c]
		}
	}
	return r
}

// Eval evaluates the table on normalized input values.
func (l *LUT) Eval(in [3]float64) [3]float64 {
	v := in
	for _, s := range l.stages {
		v = s.apply(v)
	}
	return v
}

const (
	xyzEncodingScale  = 65535.0 / 32768.0
	legacyLabEncoding = 65535.0 / 65280.0
)

// legacyLab returns whether the table uses the version 2 16-bit
// Lab encoding.
func (l *LUT) legacyLab() bool { return l.Type == TypeLUT16 }

// EncodePCS returns the normalized table input for a D50-relative
// PCS value, with the PCS encoded as XYZ or Lab.
func (l *LUT) EncodePCS(c cie.XYZ, pcs Signature) [3]float64 {
	if pcs == SpaceLab {
		lab := c.ToLab(cie.D50)
		v := [3]float64{lab.L / 100, (lab.A + 128) / 255, (lab.B + 128) / 255}
		if l.legacyLab() {
			for i := range v {
				v[i] /= legacyLabEncoding
			}
		}
		return v
	}
	return [3]float64{c.X / xyzEncodingScale, c.Y / xyzEncodingScale, c.Z / xyzEncodingScale}
}

// DecodePCS returns the D50-relative PCS value of a normalized table
// output, with the PCS encoded as XYZ or Lab.
func (l *LUT) DecodePCS(v [3]float64, pcs Signature) cie.XYZ {
	if pcs == SpaceLab {
		if l.legacyLab() {
			for i := range v {
				v[i] *= legacyLabEncoding
			}
		}
		lab := cie.Lab{L: v[0] * 100, A: v[1]*255 - 128, B: v[2]*255 - 128}
		return lab.ToXYZ(cie.D50)
	}
	return cie.XYZ{X: v[0] * xyzEncodingScale, Y: v[1] * xyzEncodingScale, Z: v[2] * xyzEncodingScale}
}

func decodeLUT(b []byte, inputXYZ bool) (*LUT, error) {
	if len(b) < 12 {
		return nil, fmt.Errorf("%w: lut", ErrTruncated)
	}
	t := Signature(binary.BigEndian.Uint32(b))
	if in, out := b[8], b[9]; in != 3 || out != 3 {
		return nil, fmt.Errorf("%w: lut with %d inputs and %d outputs", ErrUnsupportedType, in, out)
	}
	switch t {
	case TypeLUT8, TypeLUT16:
		return decodeLUTLegacy(b, t, inputXYZ)
	case TypeLUTAToB, TypeLUTBToA:
		return decodeLUTModular(b, t)
	}
	return nil, fmt.Errorf("%w %v for a lut", ErrUnsupportedType, t)
}

// decodeLUTLegacy decodes the mft1 and mft2 types.
func decodeLUTLegacy(b []byte, t Signature, inputXYZ bool) (*LUT, error) {
	be := binary.BigEndian
	if len(b) < 52 {
		return nil, fmt.Errorf("%w: %v header", ErrTruncated, t)
	}
	g := int(b[10])
	if g < 2 {
		return nil, fmt.Errorf("%w: %v with %d grid points", ErrUnsupportedType, t, g)
	}
	var m cie.Mat3
	for i := range 9 {
		m[i/3][i%3] = s15Fixed16(b[12+4*i:])
	}

	inN, outN, width, pos := 256, 256, 1, 48
	if t == TypeLUT16 {
		inN = int(be.Uint16(b[48:]))
		outN = int(be.Uint16(b[50:]))
		width, pos = 2, 52
	}
	clutN := g * g * g * 3
	need := pos + width*(3*inN+clutN+3*outN)
	if len(b) < need {
		return nil, fmt.Errorf("%w: %v needs %d bytes, has %d", ErrTruncated, t, need, len(b))
	}
	read := func(n int) []float64 {
		v := make([]float64, n)
		for i := range v {
			if width == 1 {
				v[i] = float64(b[pos]) / 255
			} else {
				v[i] = float64(be.Uint16(b[pos:])) / 65535
			}
			pos += width
		}
		return v
	}
	var in, out curveStage
	for c := range 3 {
		in[c] = Table(read(inN))
	}
	clut := clutStage{grid: [3]int{g, g, g}, data: read(clutN)}
	for c := range 3 {
		out[c] = Table(read(outN))
	}

	l := &LUT{Type: t}
	if inputXYZ && m != cie.Diag(1, 1, 1) {
		l.stages = append(l.stages, matrixStage{m: m})
	}
	l.stages = append(l.stages, in, clut, out)
	return l, nil
}

// decodeLUTModular decodes the mAB and mBA types.
func decodeLUTModular(b []byte, t Signature) (*LUT, error) {
	be := binary.BigEndian
	if len(b) < 32 {
		return nil, fmt.Errorf("%w: %v header", ErrTruncated, t)
	}
	offB := int(be.Uint32(b[12:]))
	offMatrix := int(be.Uint32(b[16:]))
	offM := int(be.Uint32(b[20:]))
	offCLUT := int(be.Uint32(b[24:]))
	offA := int(be.Uint32(b[28:]))
	if offB == 0 {
		return nil, fmt.Errorf("%w: %v without B curves", ErrUnsupportedType, t)
	}

	curves := func(off int) (curveStage, error) {
		var cs curveStage
		for c := range 3 {
			if off >= len(b) {
				return cs, fmt.Errorf("%w: %v curves", ErrTruncated, t)
			}
			cv, size, err := decodeCurve(b[off:])
			if err != nil {
				return cs, err
			}
			cs[c] = cv
			off += (size + 3) &^ 3
		}
		return cs, nil
	}
	matrix := func(off int) (matrixStage, error) {
		var ms matrixStage
		if off+48 > len(b) {
			return ms, fmt.Errorf("%w: %v matrix", ErrTruncated, t)
		}
		for i := range 9 {
			ms.m[i/3][i%3] = s15Fixed16(b[off+4*i:])
		}
		for i := range 3 {
			ms.offset[i] = s15Fixed16(b[off+36+4*i:])
		}
		return ms, nil
	}
	clut := func(off int) (clutStage, error) {
		var cs clutStage
		if off+20 > len(b) {
			return cs, fmt.Errorf("%w: %v clut", ErrTruncated, t)
		}
		n := 3
		for c := range 3 {
			cs.grid[c] = int(b[off+c])
			if cs.grid[c] < 2 {
				return cs, fmt.Errorf("%w: %v with %d grid points", ErrUnsupportedType, t, cs.grid[c])
			}
			n *= cs.grid[c]
		}
		prec := int(b[off+16])
		if prec != 1 && prec != 2 {
			return cs, fmt.Errorf("%w: %v clut precision %d", ErrUnsupportedType, t, prec)
		}
		pos := off + 20
		if pos+n*prec > len(b) {
			return cs, fmt.Errorf("%w: %v clut data", ErrTruncated, t)
		}
		cs.data = make([]float64, n)
		for i := range cs.data {
			if prec == 1 {
				cs.data[i] = float64(b[pos+i]) / 255
			} else {
				cs.data[i] = float64(be.Uint16(b[pos+2*i:])) / 65535
			}
		}
		return cs, nil
	}

	l := &LUT{Type: t}
	add := func(s stage, err error) error {
		if err != nil {
			return err
		}
		l.stages = append(l.stages, s)
		return nil
	}
	var steps []func() error
	bCurves := func() error { return add(curves(offB)) }
	mat := func() error {
		if offMatrix == 0 {
			return nil
		}
		return add(matrix(offMatrix))
	}
	mCurves := func() error {
		if offM == 0 {
			return nil
		}
		return add(curves(offM))
	}
	lookup := func() error {
		if offCLUT == 0 {
			return nil
		}
		return add(clut(offCLUT))
	}
	aCurves := func() error {
		if offA == 0 {
			return nil
		}
		return add(curves(offA))
	}
	if t == TypeLUTAToB {
		steps = []func() error{aCurves, lookup, mCurves, mat, bCurves}
	} else {
		steps = []func() error{bCurves, mat, mCurves, lookup, aCurves}
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return l, nil
}
