package vfb

import "go.fontlab.dev/vfb/cursor"

// EncodingRecord is the payload of the Encoding/Encoding Default entries:
// a glyph index and the glyph name it maps to.
type EncodingRecord struct {
	GlyphIndex uint16
	GlyphName  string
}

func readEncoding(c *cursor.Cursor) (EncodingRecord, error) {
	gid, err := c.ReadU16()
	if err != nil {
		return EncodingRecord{}, err
	}
	name, err := c.ReadStrRemainder()
	if err != nil {
		return EncodingRecord{}, err
	}
	return EncodingRecord{GlyphIndex: gid, GlyphName: name}, nil
}
