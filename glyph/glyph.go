// Package glyph decodes a VFB glyph payload: a literal 4-byte header
// followed by a one-byte-keyed sub-entry loop (unlike top-level entries,
// glyph sub-entries carry no declared size — each reader consumes exactly
// as many bytes as its shape requires) terminated by sub-key 0x0F.
//
// Grounded in original_source/vfb-reader/src/glyph.rs.
package glyph

import (
	"fmt"

	"go.fontlab.dev/vfb/charstring"
	"go.fontlab.dev/vfb/cursor"
	"go.fontlab.dev/vfb/guide"
)

// header is the literal 4-byte preamble every glyph payload must begin
// with.
var header = [4]byte{0x01, 0x09, 0x07, 0x01}

const terminator = 0x0F

// InvalidHeaderError reports a glyph payload whose leading 4 bytes did not
// match the expected literal header.
type InvalidHeaderError struct {
	Got [4]byte
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("vfb/glyph: invalid glyph header % x, want % x", e.Got[:], header[:])
}

// Glyph is one decoded glyph payload.
type Glyph struct {
	Name         string
	Metrics      []Metrics
	Hints        Hints
	Guides       guide.Guides
	Components   []Component
	Kerning      map[int32][]int32
	Outline      *Outline
	Binary       []byte
	Instructions []byte
}

// Metrics is one master's left side bearing and advance width.
type Metrics struct {
	LeftSideBearing int32
	AdvanceWidth    int32
}

var subEntryNames = map[uint8]string{
	1:  "GlyphName",
	2:  "Metrics",
	3:  "Hints",
	4:  "Guides",
	5:  "Components",
	6:  "Kerning",
	8:  "Outlines",
	9:  "Binary",
	10: "Instructions",
}

// Decode reads a glyph payload from c: the literal header, then the
// sub-entry loop. masterCount governs the fan-out of every per-master
// field.
func Decode(c *cursor.Cursor, masterCount int) (*Glyph, error) {
	var got [4]byte
	for i := range got {
		b, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		got[i] = b
	}
	if got != header {
		return nil, &InvalidHeaderError{Got: got}
	}

	g := &Glyph{}
	for {
		key, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		if key == terminator {
			return g, nil
		}
		if err := g.readSubEntry(c, key, masterCount); err != nil {
			return nil, err
		}
	}
}

func (g *Glyph) readSubEntry(c *cursor.Cursor, key uint8, masterCount int) error {
	switch key {
	case 1:
		s, err := c.ReadStrWithLen()
		if err != nil {
			return err
		}
		g.Name = s
	case 2:
		m, err := readMetrics(c, masterCount)
		if err != nil {
			return err
		}
		g.Metrics = m
	case 3:
		h, err := readHints(c, masterCount)
		if err != nil {
			return err
		}
		g.Hints = h
	case 4:
		gd, err := guide.Read(c, masterCount)
		if err != nil {
			return err
		}
		g.Guides = gd
	case 5:
		comps, err := readComponents(c, masterCount)
		if err != nil {
			return err
		}
		g.Components = comps
	case 6:
		k, err := readKerning(c, masterCount)
		if err != nil {
			return err
		}
		g.Kerning = k
	case 8:
		o, err := readOutline(c)
		if err != nil {
			return err
		}
		g.Outline = o
	case 9:
		b, err := readToTerminator(c)
		if err != nil {
			return err
		}
		g.Binary = b
	case 10:
		b, err := readToTerminator(c)
		if err != nil {
			return err
		}
		g.Instructions = b
	default:
		// Sub-key 7 is absent from the glyph key space: sub-entries run
		// 1-10, but 7 is never assigned.
		return fmt.Errorf("vfb/glyph: unhandled sub-key %d", key)
	}
	return nil
}

// readToTerminator reads everything left in the glyph's bounded window
// except its final byte, which the sub-entry loop then reads as the 0x0F
// terminator. On an unbounded cursor it reads nothing.
func readToTerminator(c *cursor.Cursor) ([]byte, error) {
	n := c.Remaining() - 1
	if n <= 0 {
		return nil, nil
	}
	return c.ReadBytes(int(n))
}

func readMetrics(c *cursor.Cursor, masterCount int) ([]Metrics, error) {
	out := make([]Metrics, masterCount)
	for i := range out {
		lsb, err := charstring.ReadValue(c)
		if err != nil {
			return nil, err
		}
		adv, err := charstring.ReadValue(c)
		if err != nil {
			return nil, err
		}
		out[i] = Metrics{LeftSideBearing: lsb, AdvanceWidth: adv}
	}
	return out, nil
}
