// Package name decodes VFB name records: platform/encoding/language/name
// identifiers followed by a code-point sequence interpreted as Mac-Roman
// bytes or UTF-16 code units depending on platform id.
//
// Grounded in original_source/vfb-reader/src/names.rs. Every integer field,
// including the four identifiers and the code-point count, is read through
// the charstring encoding, not as a raw fixed-width field — a detail easy
// to miss if the four identifiers are assumed to be raw 16-bit reads.
package name

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"go.fontlab.dev/vfb/charstring"
)

// byteReader is satisfied structurally by *vfb/cursor.Cursor.
type byteReader interface {
	ReadU8() (uint8, error)
}

// Record is one decoded name table entry.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      string
}

// ReadRecords decodes an encoded count N followed by N Records.
func ReadRecords(r byteReader) ([]Record, error) {
	n, err := charstring.ReadValue(r)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	out := make([]Record, n)
	for i := range out {
		rec, err := readOne(r)
		if err != nil {
			return nil, err
		}
		out[i] = rec
	}
	return out, nil
}

func readOne(r byteReader) (Record, error) {
	platformID, err := readU16Value(r)
	if err != nil {
		return Record{}, err
	}
	encodingID, err := readU16Value(r)
	if err != nil {
		return Record{}, err
	}
	languageID, err := readU16Value(r)
	if err != nil {
		return Record{}, err
	}
	nameID, err := readU16Value(r)
	if err != nil {
		return Record{}, err
	}
	length, err := charstring.ReadValue(r)
	if err != nil {
		return Record{}, err
	}
	codePoints := make([]int32, length)
	for i := range codePoints {
		v, err := charstring.ReadValue(r)
		if err != nil {
			return Record{}, err
		}
		codePoints[i] = v
	}

	return Record{
		PlatformID: platformID,
		EncodingID: encodingID,
		LanguageID: languageID,
		NameID:     nameID,
		Value:      decode(platformID, codePoints),
	}, nil
}

func readU16Value(r byteReader) (uint16, error) {
	v, err := charstring.ReadValue(r)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// decode renders a code-point sequence as Mac-Roman bytes when
// platformID == 1, otherwise as UTF-16 code units. Decode failures degrade
// silently to an empty string, matching the original's behaviour.
func decode(platformID uint16, codePoints []int32) string {
	if platformID == 1 {
		raw := make([]byte, len(codePoints))
		for i, cp := range codePoints {
			if cp < 0 || cp > 0xFF {
				return ""
			}
			raw[i] = byte(cp)
		}
		s, err := charmap.Macintosh.NewDecoder().String(string(raw))
		if err != nil {
			return ""
		}
		return s
	}

	units := make([]uint16, len(codePoints))
	for i, cp := range codePoints {
		if cp < 0 || cp > 0xFFFF {
			return ""
		}
		units[i] = uint16(cp)
	}
	return string(utf16.Decode(units))
}
