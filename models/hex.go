// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import (
	"fmt"
	"strings"
)

// ParseHex parses a #rgb, #rgba, #rrggbb or #rrggbbaa color string,
// with or without the leading #, returning its RGB and alpha.
func ParseHex(hex string) (RGBValue, float64, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	r, g, b, a := 0, 0, 0, 255
	var err error
	switch len(hex) {
	case 3, 4:
		c := []*int{&r, &g, &b, &a}[:len(hex)]
		for i, p := range c {
			if _, err = fmt.Sscanf(hex[i:i+1], "%1x", p); err != nil {
				break
			}
			*p |= *p << 4
		}
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return RGBValue{}, 0, fmt.Errorf("models.ParseHex: invalid length %d of %q", len(hex), hex)
	}
	if err != nil {
		return RGBValue{}, 0, fmt.Errorf("models.ParseHex: could not process %q: %w", hex, err)
	}
	return RGBValue{float64(r) / 255, float64(g) / 255, float64(b) / 255}, float64(a) / 255, nil
}
