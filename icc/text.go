// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// Localized is one record of a multi-localized text tag.
type Localized struct {
	Language string // ISO 639-1, such as "en"
	Country  string // ISO 3166-1, such as "US"
	Text     string
}

var systemLanguage = sync.OnceValue(func() language.Tag {
	s, err := locale.GetLocale()
	if err != nil {
		slog.Debug("icc: system locale unavailable", "err", err)
		return language.AmericanEnglish
	}
	t, err := language.Parse(s)
	if err != nil {
		slog.Debug("icc: unparsable system locale", "locale", s, "err", err)
		return language.AmericanEnglish
	}
	return t
})

// Text decodes a desc, mluc or text tag, choosing the record that
// best matches the system language.
func (p *Profile) Text(sig Signature) (string, error) {
	return p.TextFor(sig, systemLanguage())
}

// TextFor decodes a desc, mluc or text tag, choosing the record that
// best matches the given language.
func (p *Profile) TextFor(sig Signature, lang language.Tag) (string, error) {
	b, err := p.Raw(sig)
	if err != nil {
		return "", err
	}
	switch t := Signature(binary.BigEndian.Uint32(b)); t {
	case TypeText:
		return asciiz(b[8:]), nil
	case TypeTextDescription:
		if len(b) < 12 {
			return "", fmt.Errorf("%w: desc tag %v", ErrTruncated, sig)
		}
		n := int(binary.BigEndian.Uint32(b[8:]))
		if 12+n > len(b) {
			return "", fmt.Errorf("%w: desc tag %v", ErrTruncated, sig)
		}
		return asciiz(b[12 : 12+n]), nil
	case TypeMultiLocalized:
		recs, err := decodeMLUC(b)
		if err != nil {
			return "", fmt.Errorf("tag %v: %w", sig, err)
		}
		return BestMatch(recs, lang), nil
	default:
		return "", fmt.Errorf("%w %v for text tag %v", ErrUnsupportedType, t, sig)
	}
}

// Localizations returns all records of an mluc tag.
func (p *Profile) Localizations(sig Signature) ([]Localized, error) {
	b, err := p.Raw(sig)
	if err != nil {
		return nil, err
	}
	if t := Signature(binary.BigEndian.Uint32(b)); t != TypeMultiLocalized {
		return nil, fmt.Errorf("%w %v for localized tag %v", ErrUnsupportedType, t, sig)
	}
	return decodeMLUC(b)
}

func asciiz(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

func decodeMLUC(b []byte) ([]Localized, error) {
	be := binary.BigEndian
	if len(b) < 16 {
		return nil, fmt.Errorf("%w: mluc", ErrTruncated)
	}
	n := int(be.Uint32(b[8:]))
	recSize := int(be.Uint32(b[12:]))
	if recSize < 12 || 16+n*recSize > len(b) {
		return nil, fmt.Errorf("%w: mluc with %d records", ErrTruncated, n)
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	recs := make([]Localized, 0, n)
	for i := range n {
		r := b[16+i*recSize:]
		length := int(be.Uint32(r[4:]))
		off := int(be.Uint32(r[8:]))
		if off+length > len(b) {
			return nil, fmt.Errorf("%w: mluc record %d", ErrTruncated, i)
		}
		s, err := dec.Bytes(b[off : off+length])
		if err != nil {
			return nil, err
		}
		recs = append(recs, Localized{
			Language: strings.TrimRight(string(r[0:2]), "\x00 "),
			Country:  strings.TrimRight(string(r[2:4]), "\x00 "),
			Text:     strings.TrimRight(string(s), "\x00"),
		})
	}
	return recs, nil
}

// BestMatch returns the text of the record matching lang: first by
// language and region, then by language alone, then American English,
// and finally the first record.
func BestMatch(recs []Localized, lang language.Tag) string {
	if len(recs) == 0 {
		return ""
	}
	base, _ := lang.Base()
	region, _ := lang.Region()
	find := func(l, c string) (string, bool) {
		for _, r := range recs {
			if strings.EqualFold(r.Language, l) && (c == "" || strings.EqualFold(r.Country, c)) {
				return r.Text, true
			}
		}
		return "", false
	}
	if s, ok := find(base.String(), region.String()); ok {
		return s
	}
	if s, ok := find(base.String(), ""); ok {
		return s
	}
	if s, ok := find("en", "US"); ok {
		return s
	}
	return recs[0].Text
}
