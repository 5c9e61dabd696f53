package vfb

import (
	"io"
	"os"

	"go.fontlab.dev/vfb/cursor"
)

// Decode reads a complete VFB document from r: the header preamble, then
// every top-level entry up to and including the EOF marker (which is
// consumed but not retained).
func Decode(r io.Reader) (*Document, error) {
	c := cursor.New(r)

	header, err := readHeader(c)
	if err != nil {
		return nil, err
	}

	entries, err := readEntries(c)
	if err != nil {
		return nil, err
	}

	return &Document{Header: header, Entries: entries}, nil
}

// DecodeFile opens path and decodes it as a VFB document, wrapping any
// open failure as a FileOpenError distinct from a mid-stream ReadError.
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f)
}
