package glyph

import (
	"go.fontlab.dev/vfb/charstring"
	"go.fontlab.dev/vfb/cursor"
)

// Hint is one stem hint: a position and a width, one pair per master.
type Hint struct {
	Position int32
	Width    int32
}

// HintMask is one hint-replacement mask record: a one-byte sub-key
// (1 = horizontal, 2 = vertical, 0xFF = replacement point) and a single
// encoded value.
type HintMask struct {
	Kind  uint8
	Value int32
}

// Hints is the decoded payload of glyph sub-key 3: a horizontal stem list,
// a vertical stem list, and a list of hint-replacement masks.
type Hints struct {
	Horizontal [][]Hint
	Vertical   [][]Hint
	Masks      []HintMask
}

func readHints(c *cursor.Cursor, masterCount int) (Hints, error) {
	var h Hints

	horiz, err := readHintGroups(c, masterCount)
	if err != nil {
		return h, err
	}
	h.Horizontal = horiz

	vert, err := readHintGroups(c, masterCount)
	if err != nil {
		return h, err
	}
	h.Vertical = vert

	maskCount, err := charstring.ReadValue(c)
	if err != nil {
		return h, err
	}
	masks := make([]HintMask, maskCount)
	for i := range masks {
		kind, err := c.ReadU8()
		if err != nil {
			return h, err
		}
		v, err := charstring.ReadValue(c)
		if err != nil {
			return h, err
		}
		masks[i] = HintMask{Kind: kind, Value: v}
	}
	h.Masks = masks

	return h, nil
}

func readHintGroups(c *cursor.Cursor, masterCount int) ([][]Hint, error) {
	count, err := charstring.ReadValue(c)
	if err != nil {
		return nil, err
	}
	groups := make([][]Hint, count)
	for i := range groups {
		group := make([]Hint, masterCount)
		for m := range group {
			pos, err := charstring.ReadValue(c)
			if err != nil {
				return nil, err
			}
			width, err := charstring.ReadValue(c)
			if err != nil {
				return nil, err
			}
			group[m] = Hint{Position: pos, Width: width}
		}
		groups[i] = group
	}
	return groups, nil
}
