// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc

import (
	"encoding/binary"
	"fmt"
	"time"

	"cogentcore.org/gamut/cie"
	"github.com/Masterminds/semver/v3"
)

// Intent is an ICC rendering intent.
type Intent uint32

const (
	Perceptual Intent = iota
	RelativeColorimetric
	Saturation
	AbsoluteColorimetric
)

var intentNames = []string{"perceptual", "relative-colorimetric", "saturation", "absolute-colorimetric"}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return fmt.Sprintf("Intent(%d)", uint32(i))
}

// ParseIntent returns the intent with the given name.
func ParseIntent(s string) (Intent, error) {
	for i, n := range intentNames {
		if n == s {
			return Intent(i), nil
		}
	}
	return AbsoluteColorimetric, fmt.Errorf("icc.ParseIntent: unknown rendering intent %q", s)
}

// Version is the ICC specification version a profile conforms to.
type Version struct {
	Major, Minor, Bugfix uint8
}

// Semver returns v as a semantic version.
func (v Version) Semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Bugfix), "", "")
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}

// Header is the fixed 128-byte ICC profile header.
type Header struct {
	Size         uint32
	CMM          Signature
	Version      Version
	Class        Signature
	ColorSpace   Signature
	PCS          Signature
	Created      time.Time
	Flags        uint32
	Manufacturer Signature
	Model        Signature
	Intent       Intent
	Illuminant   cie.XYZ
	Creator      Signature
	ID           [16]byte
}

func s15Fixed16(b []byte) float64 {
	return float64(int32(binary.BigEndian.Uint32(b))) / 65536
}

func readXYZNumber(b []byte) cie.XYZ {
	return cie.XYZ{X: s15Fixed16(b), Y: s15Fixed16(b[4:]), Z: s15Fixed16(b[8:])}
}

func decodeHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < headerSize {
		return h, fmt.Errorf("%w: header is %d bytes", ErrTruncated, len(b))
	}
	if Signature(binary.BigEndian.Uint32(b[36:])) != magicAcsp {
		return h, ErrNotICC
	}
	be := binary.BigEndian
	h.Size = be.Uint32(b[0:])
	h.CMM = Signature(be.Uint32(b[4:]))
	h.Version = Version{Major: b[8], Minor: b[9] >> 4, Bugfix: b[9] & 0x0f}
	h.Class = Signature(be.Uint32(b[12:]))
	h.ColorSpace = Signature(be.Uint32(b[16:]))
	h.PCS = Signature(be.Uint32(b[20:]))
	dt := make([]int, 6)
	for i := range dt {
		dt[i] = int(be.Uint16(b[24+2*i:]))
	}
	if dt[0] != 0 {
		h.Created = time.Date(dt[0], time.Month(dt[1]), dt[2], dt[3], dt[4], dt[5], 0, time.UTC)
	}
	h.Flags = be.Uint32(b[44:])
	h.Manufacturer = Signature(be.Uint32(b[48:]))
	h.Model = Signature(be.Uint32(b[52:]))
	h.Intent = Intent(be.Uint32(b[64:]) & 0xffff)
	h.Illuminant = readXYZNumber(b[68:])
	h.Creator = Signature(be.Uint32(b[80:]))
	copy(h.ID[:], b[84:100])
	return h, nil
}
