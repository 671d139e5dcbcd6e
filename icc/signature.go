// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc

import "strings"

// Signature is a four-byte ICC identifier, such as a tag,
// type, class or color space signature.
type Signature uint32

// Sig returns the signature of a four-character string.
// Shorter strings are padded with spaces.
func Sig(s string) Signature {
	var b [4]byte
	for i := range b {
		b[i] = ' '
		if i < len(s) {
			b[i] = s[i]
		}
	}
	return Signature(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func (s Signature) String() string {
	b := []byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)}
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			b[i] = '?'
		}
	}
	return strings.TrimRight(string(b), " ")
}

// Profile classes.
const (
	ClassInput      Signature = 0x73636e72 // scnr
	ClassDisplay    Signature = 0x6d6e7472 // mntr
	ClassOutput     Signature = 0x70727472 // prtr
	ClassLink       Signature = 0x6c696e6b // link
	ClassAbstract   Signature = 0x61627374 // abst
	ClassColorSpace Signature = 0x73706163 // spac
	ClassNamedColor Signature = 0x6e6d636c // nmcl
)

// Color spaces.
const (
	SpaceRGB  Signature = 0x52474220 // 'RGB '
	SpaceXYZ  Signature = 0x58595a20 // 'XYZ '
	SpaceLab  Signature = 0x4c616220 // 'Lab '
	SpaceGray Signature = 0x47524159 // GRAY
	SpaceCMYK Signature = 0x434d594b // CMYK
)

// Tag signatures.
const (
	TagDescription       Signature = 0x64657363 // desc
	TagCopyright         Signature = 0x63707274 // cprt
	TagManufacturer      Signature = 0x646d6e64 // dmnd
	TagModel             Signature = 0x646d6464 // dmdd
	TagMediaWhitePoint   Signature = 0x77747074 // wtpt
	TagMediaBlackPoint   Signature = 0x626b7074 // bkpt
	TagRedColorant       Signature = 0x7258595a // rXYZ
	TagGreenColorant     Signature = 0x6758595a // gXYZ
	TagBlueColorant      Signature = 0x6258595a // bXYZ
	TagRedTRC            Signature = 0x72545243 // rTRC
	TagGreenTRC          Signature = 0x67545243 // gTRC
	TagBlueTRC           Signature = 0x62545243 // bTRC
	TagAToB0             Signature = 0x41324230 // A2B0
	TagAToB1             Signature = 0x41324231 // A2B1
	TagAToB2             Signature = 0x41324232 // A2B2
	TagBToA0             Signature = 0x42324130 // B2A0
	TagBToA1             Signature = 0x42324131 // B2A1
	TagBToA2             Signature = 0x42324132 // B2A2
	TagChromaticAdaption Signature = 0x63686164 // chad
)

// Tag type signatures.
const (
	TypeTextDescription Signature = 0x64657363 // desc
	TypeMultiLocalized  Signature = 0x6d6c7563 // mluc
	TypeText            Signature = 0x74657874 // text
	TypeXYZ             Signature = 0x58595a20 // 'XYZ '
	TypeCurve           Signature = 0x63757276 // curv
	TypeParametricCurve Signature = 0x70617261 // para
	TypeLUT8            Signature = 0x6d667431 // mft1
	TypeLUT16           Signature = 0x6d667432 // mft2
	TypeLUTAToB         Signature = 0x6d414220 // 'mAB '
	TypeLUTBToA         Signature = 0x6d424120 // 'mBA '
	TypeS15Fixed16Array Signature = 0x73663332 // sf32
)

// magicAcsp is the file signature at offset 36 of every profile.
const magicAcsp Signature = 0x61637370

const (
	headerSize   = 128
	tagEntrySize = 12
)
