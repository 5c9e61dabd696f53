package vfb

import (
	"go.fontlab.dev/vfb/cursor"
)

// sizeWidthFlag marks bit 15 of the raw key as selecting a 32-bit payload
// size instead of the default 16-bit one.
const sizeWidthFlag uint16 = 0x8000

// readEntries runs the top-level entry loop: read a (key, size) header,
// open a sub-cursor bounded to exactly size bytes, dispatch on the real
// key, and close the sub-cursor (draining any unread remainder) before
// moving to the next entry. The loop stops, without emitting a final
// entry, when it reads the EOF marker key.
func readEntries(c *cursor.Cursor) ([]Entry, error) {
	var entries []Entry

	for {
		rawKey, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		key := rawKey &^ sizeWidthFlag

		var size uint32
		if rawKey&sizeWidthFlag != 0 {
			size, err = c.ReadU32()
		} else {
			var size16 uint16
			size16, err = c.ReadU16()
			size = uint32(size16)
		}
		if err != nil {
			return nil, err
		}

		if key == eofKey {
			sub := c.Scoped(size)
			if err := sub.Close(); err != nil {
				return nil, err
			}
			return entries, nil
		}

		sub := c.Scoped(size)
		entry, err := readOneEntry(sub, key)
		closeErr := sub.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
}

// readOneEntry dispatches one already-scoped sub-cursor to its key's
// reader. An unknown key is tolerated: the caller's sub-cursor close will
// still drain the declared size, so the stream stays correctly positioned,
// and readOneEntry simply emits no entry.
func readOneEntry(sub *cursor.Cursor, key uint16) (*Entry, error) {
	info, known := keyCatalogue[key]
	if !known {
		return nil, nil
	}

	value, err := decodePayload(sub, info.Shape)
	if err != nil {
		return nil, wrapEntry(info.Name, sub.StreamPosition(), err)
	}

	return &Entry{Key: key, Name: info.Name, Value: value}, nil
}
