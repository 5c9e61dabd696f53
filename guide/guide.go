// Package guide decodes VFB guide lists: per-master position/angle pairs
// grouped into a horizontal list followed by a vertical list.
//
// Grounded in original_source/vfb-reader/src/guides.rs.
package guide

import (
	"math"

	"go.fontlab.dev/vfb/charstring"
)

// byteReader is satisfied structurally by *vfb/cursor.Cursor.
type byteReader interface {
	ReadU8() (uint8, error)
}

// Guide is one guide line: a position and an angle in degrees, computed
// from the raw encoded angle as atan2(raw, 10000).
type Guide struct {
	Position int32
	Angle    float64
}

// Guides holds the horizontal and vertical guide lists of a glyph or of
// the document's global guides. Each inner slice has one Guide per master.
type Guides struct {
	Horizontal [][]Guide
	Vertical   [][]Guide
}

// Read decodes a Guides payload: an encoded count of horizontal guide
// groups, each containing masterCount (position, raw-angle) pairs, then
// the identical structure for vertical guide groups.
func Read(r byteReader, masterCount int) (Guides, error) {
	var g Guides

	h, err := readGroups(r, masterCount)
	if err != nil {
		return g, err
	}
	g.Horizontal = h

	v, err := readGroups(r, masterCount)
	if err != nil {
		return g, err
	}
	g.Vertical = v

	return g, nil
}

func readGroups(r byteReader, masterCount int) ([][]Guide, error) {
	count, err := charstring.ReadValue(r)
	if err != nil {
		return nil, err
	}
	groups := make([][]Guide, count)
	for i := range groups {
		group := make([]Guide, masterCount)
		for m := range group {
			pos, err := charstring.ReadValue(r)
			if err != nil {
				return nil, err
			}
			rawAngle, err := charstring.ReadValue(r)
			if err != nil {
				return nil, err
			}
			group[m] = Guide{
				Position: pos,
				Angle:    radToDeg(math.Atan2(float64(rawAngle), 10000)),
			}
		}
		groups[i] = group
	}
	return groups, nil
}

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
