package vfb

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.fontlab.dev/vfb/cursor"
	"go.fontlab.dev/vfb/glyph"
)

// minimalHeader builds a header whose chunk does not end in 0x0A 0x00, so
// readHeader takes the synthetic-defaults branch.
func minimalHeader() []byte {
	var buf bytes.Buffer
	buf.WriteByte(0x00)               // tag
	buf.WriteString("WLF10")          // file type signature
	buf.Write([]byte{0x01, 0x00})     // marker
	buf.Write([]byte{0x02, 0x00})     // chunk length = 2
	buf.Write([]byte{0x00, 0x00})     // chunk bytes (not the 0x0A 0x00 marker)
	buf.Write([]byte{0x00, 0x00})     // trailer2
	return buf.Bytes()
}

func TestReadEntriesFramingScenario(t *testing.T) {
	// Framing scenario: an entry with key 0 and a zero-byte payload (not
	// in the catalogue, so skipped), then the EOF entry (key 5) with a
	// zero-byte payload, ends the document with no emitted entries.
	input := []byte{0x00, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00}
	c := cursor.New(bytes.NewReader(input))

	entries, err := readEntries(c)
	if err != nil {
		t.Fatalf("readEntries: unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("readEntries = %v, want no entries", entries)
	}
}

func TestReadEntriesUnknownKeyTolerance(t *testing.T) {
	// Unknown key 0xABCD with a 3-byte payload must be skipped, leaving
	// the stream positioned correctly for the entry that follows.
	var buf bytes.Buffer
	buf.Write([]byte{0xCD, 0xAB})       // raw key 0xABCD, size-width flag unset
	buf.Write([]byte{0x03, 0x00})       // size = 3
	buf.Write([]byte{0x11, 0x22, 0x33}) // payload to be skipped
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00}) // EOF

	c := cursor.New(bytes.NewReader(buf.Bytes()))
	entries, err := readEntries(c)
	if err != nil {
		t.Fatalf("readEntries: unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("readEntries = %v, want no entries (unknown key silently skipped)", entries)
	}
}

func TestReadEntriesDecodesKnownKey(t *testing.T) {
	// ms_charset (1054) is a plain uint16 payload.
	msCharsetKey := uint16(1054)
	var entry bytes.Buffer
	entry.Write([]byte{byte(msCharsetKey), byte(msCharsetKey >> 8)})
	entry.Write([]byte{0x02, 0x00})    // size = 2
	entry.Write([]byte{0x01, 0x00})    // payload: uint16 = 1
	entry.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00}) // EOF

	c := cursor.New(bytes.NewReader(entry.Bytes()))
	entries, err := readEntries(c)
	if err != nil {
		t.Fatalf("readEntries: unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("readEntries = %v, want exactly one entry", entries)
	}
	if entries[0].Name != "ms_charset" {
		t.Fatalf("entry name = %q, want %q", entries[0].Name, "ms_charset")
	}
	if v, ok := entries[0].Value.(uint16); !ok || v != 1 {
		t.Fatalf("entry value = %v, want uint16(1)", entries[0].Value)
	}
}

func TestDecodeHeaderSyntheticDefaults(t *testing.T) {
	doc, err := Decode(bytes.NewReader(append(minimalHeader(), []byte{0x00, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00}...)))
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	want := defaultCreator()
	if diff := cmp.Diff(want, doc.Header.Creator); diff != "" {
		t.Fatalf("Header.Creator mismatch (-want +got):\n%s", diff)
	}
	if doc.Header.Trailer0 != 6 || doc.Header.Trailer1 != 1 {
		t.Fatalf("Header trailers = %d, %d; want 6, 1", doc.Header.Trailer0, doc.Header.Trailer1)
	}
}

func TestGlyphHeaderRejection(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x09, 0x07, 0x01, 0xFF}) // wrong literal header
	c := cursor.New(bytes.NewReader(buf.Bytes()))

	_, err := glyph.Decode(c, 1)
	var hdrErr *glyph.InvalidHeaderError
	if !errors.As(err, &hdrErr) {
		t.Fatalf("glyph.Decode error = %v, want *glyph.InvalidHeaderError", err)
	}
}
