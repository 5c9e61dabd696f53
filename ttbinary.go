package vfb

import "go.fontlab.dev/vfb/cursor"

// TrueTypeTable is the payload of key 2014 ("TrueTypeTable"): a 4-byte
// ASCII table tag, preserved in its on-disk byte order, followed by the
// table's raw bytes.
type TrueTypeTable struct {
	Tag  [4]byte
	Data []byte
}

func readTrueTypeTable(c *cursor.Cursor) (TrueTypeTable, error) {
	var t TrueTypeTable
	for i := range t.Tag {
		b, err := c.ReadU8()
		if err != nil {
			return t, err
		}
		t.Tag[i] = b
	}
	data, err := c.ReadBytesRemainder()
	if err != nil {
		return t, err
	}
	t.Data = data
	return t, nil
}
