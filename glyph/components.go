package glyph

import (
	"go.fontlab.dev/vfb/charstring"
	"go.fontlab.dev/vfb/cursor"
)

// ComponentPlacement is one master's transform for a referenced component.
type ComponentPlacement struct {
	XOffset int32
	YOffset int32
	XScale  float64
	YScale  float64
}

// Component is one glyph reference with a per-master placement.
type Component struct {
	GlyphIndex int32
	Placements []ComponentPlacement
}

func readComponents(c *cursor.Cursor, masterCount int) ([]Component, error) {
	count, err := charstring.ReadValue(c)
	if err != nil {
		return nil, err
	}
	out := make([]Component, count)
	for i := range out {
		gi, err := charstring.ReadValue(c)
		if err != nil {
			return nil, err
		}
		placements := make([]ComponentPlacement, masterCount)
		for m := range placements {
			xOff, err := charstring.ReadValue(c)
			if err != nil {
				return nil, err
			}
			yOff, err := charstring.ReadValue(c)
			if err != nil {
				return nil, err
			}
			xScale, err := c.ReadF64()
			if err != nil {
				return nil, err
			}
			yScale, err := c.ReadF64()
			if err != nil {
				return nil, err
			}
			placements[m] = ComponentPlacement{
				XOffset: xOff,
				YOffset: yOff,
				XScale:  xScale,
				YScale:  yScale,
			}
		}
		out[i] = Component{GlyphIndex: gi, Placements: placements}
	}
	return out, nil
}
