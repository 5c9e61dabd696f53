package vfb

import (
	"go.fontlab.dev/vfb/charstring"
	"go.fontlab.dev/vfb/cursor"
)

// Header is the fixed preamble of a VFB file: a one-byte tag, the 5-byte
// "WLF10" signature, a format marker, an opaque chunk whose interior is
// never interpreted, an optional
// creator key→value map, two one-byte trailers and a closing two-byte
// field.
//
// Grounded in original_source/vfb-reader/src/header.rs's read_header.
type Header struct {
	Tag      uint8
	FileType string
	Marker   uint16
	Chunk    []byte
	Creator  map[int32]int32
	Trailer0 uint8
	Trailer1 uint8
	Trailer2 uint16
}

// defaultCreator is substituted when the chunk does not end with the
// 0x0A 0x00 marker that signals a following creator block, matching
// header.rs's synthesized default of {1: 1, 2: 0x05030001, 3: 0}.
func defaultCreator() map[int32]int32 {
	return map[int32]int32{1: 1, 2: 0x05030001, 3: 0}
}

func readHeader(c *cursor.Cursor) (Header, error) {
	var h Header

	tag, err := c.ReadU8()
	if err != nil {
		return h, err
	}
	h.Tag = tag

	fileType, err := c.ReadStr(5)
	if err != nil {
		return h, err
	}
	h.FileType = fileType

	marker, err := c.ReadU16()
	if err != nil {
		return h, err
	}
	h.Marker = marker

	chunkSize, err := c.ReadU16()
	if err != nil {
		return h, err
	}
	chunk, err := c.ReadBytes(int(chunkSize))
	if err != nil {
		return h, err
	}
	h.Chunk = chunk

	hasCreatorBlock := len(chunk) >= 2 && chunk[len(chunk)-2] == 0x0A && chunk[len(chunk)-1] == 0x00
	if hasCreatorBlock {
		// The creator block's own declared length is never consulted: the
		// map reader is self-terminating on a zero key.
		if _, err := c.ReadU16(); err != nil {
			return h, err
		}
		creator, err := charstring.ReadKeyValueMap(c)
		if err != nil {
			return h, err
		}
		h.Creator = creator

		trailer0, err := c.ReadU8()
		if err != nil {
			return h, err
		}
		trailer1, err := c.ReadU8()
		if err != nil {
			return h, err
		}
		h.Trailer0, h.Trailer1 = trailer0, trailer1
	} else {
		h.Creator = defaultCreator()
		h.Trailer0, h.Trailer1 = 6, 1
	}

	trailer2, err := c.ReadU16()
	if err != nil {
		return h, err
	}
	h.Trailer2 = trailer2

	return h, nil
}
