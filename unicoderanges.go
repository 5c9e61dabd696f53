package vfb

import "go.fontlab.dev/vfb/cursor"

// UnicodeRanges is the payload of key 2021 ("unicoderanges"): the four
// OS/2 ulUnicodeRange bitfields, read as plain little-endian uint32s
// (the four OS/2 ulUnicodeRange fields).
type UnicodeRanges [4]uint32

func readUnicodeRanges(c *cursor.Cursor) (UnicodeRanges, error) {
	var r UnicodeRanges
	for i := range r {
		v, err := c.ReadU32()
		if err != nil {
			return r, err
		}
		r[i] = v
	}
	return r, nil
}
