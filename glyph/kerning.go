package glyph

import (
	"go.fontlab.dev/vfb/charstring"
	"go.fontlab.dev/vfb/cursor"
)

// readKerning decodes an encoded pair count, then for each pair a
// right-neighbour glyph id followed by masterCount encoded kern values.
func readKerning(c *cursor.Cursor, masterCount int) (map[int32][]int32, error) {
	count, err := charstring.ReadValue(c)
	if err != nil {
		return nil, err
	}
	out := make(map[int32][]int32, count)
	for i := int32(0); i < count; i++ {
		rightGlyph, err := charstring.ReadValue(c)
		if err != nil {
			return nil, err
		}
		values, err := charstring.ReadValueList(c, masterCount)
		if err != nil {
			return nil, err
		}
		out[rightGlyph] = values
	}
	return out, nil
}
