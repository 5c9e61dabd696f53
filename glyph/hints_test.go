package glyph

import (
	"bytes"
	"testing"

	"go.fontlab.dev/vfb/cursor"
)

func TestReadHints(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(encValue(1))   // horizontal hint count
	buf.WriteByte(encValue(100)) // position
	buf.WriteByte(encValue(20))  // width
	buf.WriteByte(encValue(0))   // vertical hint count
	buf.WriteByte(encValue(1))   // mask count
	buf.WriteByte(1)             // mask kind: horizontal
	buf.WriteByte(encValue(0))   // mask value

	c := cursor.New(bytes.NewReader(buf.Bytes()))
	hints, err := readHints(c, 1)
	if err != nil {
		t.Fatalf("readHints: unexpected error: %v", err)
	}
	if len(hints.Horizontal) != 1 || hints.Horizontal[0][0] != (Hint{Position: 100, Width: 20}) {
		t.Fatalf("Horizontal = %+v", hints.Horizontal)
	}
	if len(hints.Vertical) != 0 {
		t.Fatalf("Vertical = %+v, want empty", hints.Vertical)
	}
	if len(hints.Masks) != 1 || hints.Masks[0].Kind != 1 {
		t.Fatalf("Masks = %+v", hints.Masks)
	}
}
