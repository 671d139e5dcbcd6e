// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc

import (
	"encoding/binary"

	"github.com/h2non/filetype"
)

// FileType is the filetype registration of ICC profiles.
var FileType = filetype.NewType("icc", "application/vnd.iccprofile")

func init() {
	filetype.AddMatcher(FileType, IsProfile)
}

// IsProfile returns whether buf starts like an ICC profile,
// by the acsp file signature at offset 36.
func IsProfile(buf []byte) bool {
	return len(buf) >= headerSize && Signature(binary.BigEndian.Uint32(buf[36:])) == magicAcsp
}

// Sniff returns whether buf is recognized as an ICC profile
// by the registered file type matchers.
func Sniff(buf []byte) bool {
	return filetype.Is(buf, FileType.Extension)
}
