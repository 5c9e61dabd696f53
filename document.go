// Package vfb decodes VFB binary font-source containers, as produced by the
// FontLab family of editors, into a structured, in-memory document tree.
//
// The package is organised the way seehuhn.de/go/pdf/font/sfnt decodes
// OpenType tables: a buffered cursor (package vfb/cursor) feeds a
// per-key dispatch table (this package's entry catalogue) which in turn
// delegates the most complex payloads — glyph outlines, hints, guides,
// name records, TrueType values — to their own sub-packages.
package vfb

// Document is the decoded form of one VFB file: a header record followed
// by the ordered sequence of top-level entries the file contained. The EOF
// marker entry (key 5) is consumed while decoding but never appended here.
type Document struct {
	Header  Header
	Entries []Entry
}

// Entry is one top-level (key, payload) record. Go has no closed sum
// types, so Value holds whichever concrete type the entry catalogue
// assigns to Key — RawData for keys with no specific shape, or one of the
// named payload types (EncodingRecord, *glyph.Glyph, []name.Record, ...)
// otherwise.
type Entry struct {
	Key   uint16
	Name  string
	Value any
}

// RawData is the payload of a known key with no more specific decoded
// shape, captured verbatim.
type RawData []byte
