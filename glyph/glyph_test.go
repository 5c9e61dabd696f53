package glyph

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"go.fontlab.dev/vfb/cursor"
)

func putF64(buf []byte, v float64) {
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
}

func TestDecodeRejectsInvalidHeader(t *testing.T) {
	c := cursor.New(bytes.NewReader([]byte{0x01, 0x09, 0x07, 0x02}))
	_, err := Decode(c, 1)
	var hdrErr *InvalidHeaderError
	if !errors.As(err, &hdrErr) {
		t.Fatalf("Decode error = %v, want *InvalidHeaderError", err)
	}
}

func TestDecodeNameAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header[:])

	// Sub-key 1: length-prefixed glyph name "A".
	buf.WriteByte(1)
	buf.WriteByte(encValue(1)) // length 1
	buf.WriteByte('A')

	// Sub-key 2: metrics, masterCount=2, pairs of encoded values.
	buf.WriteByte(2)
	buf.WriteByte(encValue(10))
	buf.Write([]byte{0xF8, 0x88}) // 500, two-byte form
	buf.WriteByte(encValue(12))
	buf.Write([]byte{0xF8, 0x92}) // 510, two-byte form

	buf.WriteByte(terminator)

	c := cursor.New(bytes.NewReader(buf.Bytes()))
	g, err := Decode(c, 2)
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if g.Name != "A" {
		t.Fatalf("Name = %q, want %q", g.Name, "A")
	}
	if len(g.Metrics) != 2 {
		t.Fatalf("len(Metrics) = %d, want 2", len(g.Metrics))
	}
	if g.Metrics[0] != (Metrics{LeftSideBearing: 10, AdvanceWidth: 500}) {
		t.Fatalf("Metrics[0] = %+v", g.Metrics[0])
	}
}

func TestDecodeUnknownSubKeySeven(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header[:])
	buf.WriteByte(7) // absent from the glyph key space

	c := cursor.New(bytes.NewReader(buf.Bytes()))
	_, err := Decode(c, 1)
	if err == nil {
		t.Fatalf("expected an error for sub-key 7")
	}
}

func TestReadComponents(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(encValue(1)) // component count
	buf.WriteByte(encValue(3)) // glyph index
	buf.WriteByte(encValue(1)) // x offset
	buf.WriteByte(encValue(2)) // y offset
	var scaleBuf [8]byte
	putF64(scaleBuf[:], 1.0)
	buf.Write(scaleBuf[:])
	putF64(scaleBuf[:], 1.0)
	buf.Write(scaleBuf[:])

	c := cursor.New(bytes.NewReader(buf.Bytes()))
	comps, err := readComponents(c, 1)
	if err != nil {
		t.Fatalf("readComponents: unexpected error: %v", err)
	}
	if len(comps) != 1 || comps[0].GlyphIndex != 3 {
		t.Fatalf("comps = %+v", comps)
	}
	if comps[0].Placements[0].XScale != 1.0 || comps[0].Placements[0].YScale != 1.0 {
		t.Fatalf("placement = %+v", comps[0].Placements[0])
	}
}

func TestReadKerning(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(encValue(1))  // pair count
	buf.WriteByte(encValue(7))  // right glyph id
	buf.WriteByte(encValue(-5)) // kern value for the one master

	c := cursor.New(bytes.NewReader(buf.Bytes()))
	kerning, err := readKerning(c, 1)
	if err != nil {
		t.Fatalf("readKerning: unexpected error: %v", err)
	}
	values, ok := kerning[7]
	if !ok || len(values) != 1 || values[0] != -5 {
		t.Fatalf("kerning[7] = %v, %v", values, ok)
	}
}
