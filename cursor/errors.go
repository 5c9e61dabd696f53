package cursor

import "fmt"

// ReadError wraps an underlying I/O failure with the stream position and
// the operation being attempted, mirroring the context
// seehuhn.de/go/pdf/font/parser.Parser.Error attaches to its own failures.
type ReadError struct {
	Op  string
	Pos int64
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("vfb: %s at offset %d: %v", e.Op, e.Pos, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// OverreadError reports an attempt to read past the end of a bounded
// (Scoped) window.
type OverreadError struct {
	Pos       int64
	Requested int
	Remaining int
}

func (e *OverreadError) Error() string {
	return fmt.Sprintf("vfb: read past end of window at offset %d: requested %d bytes, %d remaining", e.Pos, e.Requested, e.Remaining)
}
