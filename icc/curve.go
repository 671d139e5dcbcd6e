// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
)

// Curve is a one-dimensional tone curve. Eval maps encoded values to
// linear values and Invert maps back. Both extend beyond [0, 1] so that
// out-of-range values are not silently clamped.
type Curve interface {
	Eval(x float64) float64
	Invert(y float64) float64
}

// Identity is the identity curve.
type Identity struct{}

func (Identity) Eval(x float64) float64   { return x }
func (Identity) Invert(y float64) float64 { return y }

// Gamma is a pure power curve, extended to negative values by symmetry.
type Gamma float64

func (g Gamma) Eval(x float64) float64 {
	return math.Copysign(math.Pow(math.Abs(x), float64(g)), x)
}

func (g Gamma) Invert(y float64) float64 {
	return math.Copysign(math.Pow(math.Abs(y), 1/float64(g)), y)
}

// Table is a sampled curve with equally spaced inputs over [0, 1] and
// outputs normalized to [0, 1]. It is interpolated linearly and
// extrapolated along its end segments.
type Table []float64

func (t Table) Eval(x float64) float64 {
	n := len(t)
	switch n {
	case 0:
		return x
	case 1:
		return t[0]
	}
	pos := x * float64(n-1)
	i := int(math.Floor(pos))
	i = max(0, min(n-2, i))
	f := pos - float64(i)
	return t[i] + f*(t[i+1]-t[i])
}

func (t Table) Invert(y float64) float64 {
	n := len(t)
	if n < 2 {
		return y
	}
	asc := t[n-1] >= t[0]
	// first index whose value is beyond y
	j := sort.Search(n, func(k int) bool {
		if asc {
			return t[k] > y
		}
		return t[k] < y
	})
	i := max(0, min(n-2, j-1))
	if t[i+1] == t[i] {
		// use the nearest segment that is not flat
		k := i
		for k < n-2 && t[k+1] == t[k] {
			k++
		}
		if t[k+1] == t[k] {
			for k = i; k > 0 && t[k+1] == t[k]; k-- {
			}
		}
		i = k
	}
	d := t[i+1] - t[i]
	if d == 0 {
		return float64(i) / float64(n-1)
	}
	return (float64(i) + (y-t[i])/d) / float64(n-1)
}

// Parametric is an ICC parametric curve of function type 0 to 4.
type Parametric struct {
	Type                int
	G, A, B, C, D, E, F float64
}

var paraParams = []int{1, 3, 4, 5, 7}

func (p Parametric) Eval(x float64) float64 {
	switch p.Type {
	case 0:
		return Gamma(p.G).Eval(x)
	case 1:
		if x >= -p.B/p.A {
			return math.Pow(p.A*x+p.B, p.G)
		}
		return 0
	case 2:
		if x >= -p.B/p.A {
			return math.Pow(p.A*x+p.B, p.G) + p.C
		}
		return p.C
	case 3:
		if x >= p.D {
			return math.Pow(p.A*x+p.B, p.G)
		}
		return p.C * x
	case 4:
		if x >= p.D {
			return math.Pow(p.A*x+p.B, p.G) + p.E
		}
		return p.C*x + p.F
	}
	return x
}

func (p Parametric) Invert(y float64) float64 {
	switch p.Type {
	case 0:
		return Gamma(p.G).Invert(y)
	case 1:
		if y > 0 {
			return (math.Pow(y, 1/p.G) - p.B) / p.A
		}
		return -p.B / p.A
	case 2:
		if y > p.C {
			return (math.Pow(y-p.C, 1/p.G) - p.B) / p.A
		}
		return -p.B / p.A
	case 3:
		if y >= math.Pow(p.A*p.D+p.B, p.G) {
			return (math.Pow(y, 1/p.G) - p.B) / p.A
		}
		if p.C == 0 {
			return 0
		}
		return y / p.C
	case 4:
		if y >= math.Pow(p.A*p.D+p.B, p.G)+p.E {
			return (math.Pow(y-p.E, 1/p.G) - p.B) / p.A
		}
		if p.C == 0 {
			return 0
		}
		return (y - p.F) / p.C
	}
	return y
}

// SRGBCurve is the sRGB transfer function as a parametric curve.
var SRGBCurve = Parametric{Type: 3, G: 2.4, A: 1 / 1.055, B: 0.055 / 1.055, C: 1 / 12.92, D: 0.04045}

// decodeCurve decodes a curv or para element at the start of b,
// returning the curve and the number of bytes it occupies.
func decodeCurve(b []byte) (Curve, int, error) {
	if len(b) < 12 {
		return nil, 0, fmt.Errorf("%w: curve", ErrTruncated)
	}
	be := binary.BigEndian
	switch t := Signature(be.Uint32(b)); t {
	case TypeCurve:
		n := int(be.Uint32(b[8:]))
		size := 12 + 2*n
		if len(b) < size {
			return nil, 0, fmt.Errorf("%w: curv with %d entries", ErrTruncated, n)
		}
		switch n {
		case 0:
			return Identity{}, size, nil
		case 1:
			return Gamma(float64(be.Uint16(b[12:])) / 256), size, nil
		}
		tb := make(Table, n)
		for i := range tb {
			tb[i] = float64(be.Uint16(b[12+2*i:])) / 65535
		}
		return tb, size, nil
	case TypeParametricCurve:
		ft := int(be.Uint16(b[8:]))
		if ft >= len(paraParams) {
			return nil, 0, fmt.Errorf("%w: parametric function type %d", ErrUnsupportedType, ft)
		}
		np := paraParams[ft]
		size := 12 + 4*np
		if len(b) < size {
			return nil, 0, fmt.Errorf("%w: para type %d", ErrTruncated, ft)
		}
		v := make([]float64, 7)
		for i := range np {
			v[i] = s15Fixed16(b[12+4*i:])
		}
		p := Parametric{Type: ft, G: v[0], A: v[1], B: v[2], C: v[3], D: v[4], E: v[5], F: v[6]}
		if ft == 0 {
			return Gamma(p.G), size, nil
		}
		return p, size, nil
	default:
		return nil, 0, fmt.Errorf("%w %v for a curve", ErrUnsupportedType, t)
	}
}
