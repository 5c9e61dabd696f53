package vfb

import "fmt"

// FileOpenError wraps a failure to open the input file, as distinct from a
// failure while reading its contents (ReadError).
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("vfb: open %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// OverflowError reports a declared size that cannot be represented as a
// host index (the vfb format's 32-bit size fields can exceed what this
// platform's int can address).
type OverflowError struct {
	Value uint32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("vfb: declared size %d overflows host index range", e.Value)
}

// UninitializedEntryError reports a decompile request against an entry
// whose payload was never populated.
type UninitializedEntryError struct {
	Name string
}

func (e *UninitializedEntryError) Error() string {
	return fmt.Sprintf("vfb: entry %q has no decoded payload", e.Name)
}

// InvalidGlyphHeaderError reports a glyph payload whose literal 4-byte
// preamble did not match 01 09 07 01.
type InvalidGlyphHeaderError struct {
	Got [4]byte
}

func (e *InvalidGlyphHeaderError) Error() string {
	return fmt.Sprintf("vfb: invalid glyph header % x, want 01 09 07 01", e.Got[:])
}

// InvalidPathCommandError reports an outline node command nibble outside
// {0,1,3,4}.
type InvalidPathCommandError struct {
	Nibble byte
}

func (e *InvalidPathCommandError) Error() string {
	return fmt.Sprintf("vfb: invalid path command nibble 0x%x", e.Nibble)
}

// UnknownEntryKeyError reports a sub-key rejected by a strict dispatcher
// (the TrueType value list), in contrast to the tolerant top-level loop,
// which silently skips unknown keys instead of returning this error.
type UnknownEntryKeyError struct {
	Key uint8
}

func (e *UnknownEntryKeyError) Error() string {
	return fmt.Sprintf("vfb: unknown entry key 0x%x", e.Key)
}

// entryError attaches the human name of the entry being decoded and its
// byte offset to an underlying failure, mirroring
// font/parser.Parser.Error's context-attaching convention.
type entryError struct {
	Name string
	Pos  int64
	Err  error
}

func (e *entryError) Error() string {
	return fmt.Sprintf("vfb: entry %q at offset %d: %v", e.Name, e.Pos, e.Err)
}

func (e *entryError) Unwrap() error { return e.Err }

func wrapEntry(name string, pos int64, err error) error {
	if err == nil {
		return nil
	}
	return &entryError{Name: name, Pos: pos, Err: err}
}
