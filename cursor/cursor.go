// Package cursor implements the sequential byte reader that every VFB
// payload decoder is built on top of: fixed-width little-endian primitive
// reads, the handful of string-reading conventions a VFB file mixes
// (fixed-length, length-prefixed, tail-consuming), and a scoped sub-cursor
// that bounds a nested decoder to the window declared by its enclosing
// entry.
//
// This mirrors the role seehuhn.de/go/pdf/font/parser.Parser plays for sfnt
// tables: a small buffered reader with typed accessors and a position
// counter used to locate errors, rather than a general io.ReadSeeker.
package cursor

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"go.fontlab.dev/vfb/charstring"
)

// maxRemainderRead bounds Cursor.ReadBytesRemainder, matching the VFB
// format's largest observed unbounded string/blob field.
const maxRemainderRead = 65535

// state is shared by a Cursor and every SubCursor derived from it: the
// master count set by the MasterCount entry, so it is visible to every
// nested reader without being threaded through as an explicit parameter,
// and the absolute read position, since the underlying *bufio.Reader is
// shared too and a parent Cursor's own payload is very often consumed
// entirely through a child SubCursor rather than by the parent itself.
type state struct {
	masterCount int
	pos         int64 // absolute bytes consumed from the underlying reader so far
}

// Cursor reads framed VFB data sequentially from an underlying byte source.
// It has no random-access seek; any seeking happens on the file the
// top-level Cursor is opened on, not within the decoder itself.
type Cursor struct {
	r           *bufio.Reader
	windowStart int64 // absolute offset (in st.pos terms) where this cursor's window begins
	limit       int64 // bytes allowed in this window; -1 means unbounded
	st          *state
}

// New wraps r as a top-level Cursor with no read limit and a master count
// of 1, the VFB default.
func New(r io.Reader) *Cursor {
	return &Cursor{
		r:     bufio.NewReader(r),
		limit: -1,
		st:    &state{masterCount: 1},
	}
}

// MasterCount returns the number of masters currently in effect.
func (c *Cursor) MasterCount() int { return c.st.masterCount }

// SetMasterCount records the master count. It is called exactly once, by
// the reader for the MasterCount entry; every other entry only reads it.
func (c *Cursor) SetMasterCount(n int) { c.st.masterCount = n }

// StreamPosition returns the absolute byte offset, relative to the start of
// the whole input, that has been read so far. This is tracked once in the
// shared state rather than per-Cursor, so it stays correct even when a
// parent Cursor's declared payload is read entirely through a child
// SubCursor: error messages stay locatable in the original file regardless
// of which Cursor in the chain performed the read.
func (c *Cursor) StreamPosition() int64 { return c.st.pos }

// consumed reports how many bytes have been read from this cursor's own
// window so far.
func (c *Cursor) consumed() int64 { return c.st.pos - c.windowStart }

// Remaining reports how many bytes remain in a bounded window, or -1 if
// this cursor has no declared limit.
func (c *Cursor) Remaining() int64 {
	if c.limit < 0 {
		return -1
	}
	return c.limit - c.consumed()
}

// Scoped opens a child cursor that reports EOF after exactly size bytes,
// regardless of how much the enclosing declared payload size actually is.
// The caller must call Close on the returned SubCursor once the nested
// reader is done, so that any unread remainder of the window is drained and
// the parent's position advances past it: under-reads advance the parent to
// the end of the window on drop.
func (c *Cursor) Scoped(size uint32) *Cursor {
	return &Cursor{
		r:           c.r,
		windowStart: c.st.pos,
		limit:       int64(size),
		st:          c.st,
	}
}

// Close drains any bytes left unread in a bounded window. It is a no-op on
// an unbounded cursor. Calling Close more than once is safe.
func (c *Cursor) Close() error {
	if c.limit < 0 {
		return nil
	}
	remaining := c.limit - c.consumed()
	if remaining <= 0 {
		return nil
	}
	n, err := io.CopyN(io.Discard, c.r, remaining)
	c.st.pos += n
	if err != nil {
		return c.wrapErr("drain remainder", err)
	}
	return nil
}

func (c *Cursor) fill(buf []byte) error {
	if c.limit >= 0 && c.consumed()+int64(len(buf)) > c.limit {
		return &OverreadError{Pos: c.StreamPosition(), Requested: len(buf), Remaining: int(c.limit - c.consumed())}
	}
	n, err := io.ReadFull(c.r, buf)
	c.st.pos += int64(n)
	if err != nil {
		return c.wrapErr("read", err)
	}
	return nil
}

func (c *Cursor) wrapErr(op string, err error) error {
	return &ReadError{Op: op, Pos: c.StreamPosition(), Err: err}
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	var buf [1]byte
	if err := c.fill(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadU16 reads one little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	var buf [2]byte
	if err := c.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadU32 reads one little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	var buf [4]byte
	if err := c.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadU64 reads one little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	var buf [8]byte
	if err := c.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadI16 reads one little-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadI32 reads one little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadF64 reads one little-endian IEEE-754 double.
func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBytes reads n raw bytes verbatim.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := c.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadBytesRemainder reads everything this cursor's window still has,
// bounded by maxRemainderRead. Only meaningful on a bounded (Scoped)
// cursor; on an unbounded cursor it reads nothing.
func (c *Cursor) ReadBytesRemainder() ([]byte, error) {
	remaining := c.Remaining()
	if remaining <= 0 {
		return nil, nil
	}
	if remaining > maxRemainderRead {
		remaining = maxRemainderRead
	}
	return c.ReadBytes(int(remaining))
}

// ReadStr reads n bytes and decodes them as a string using the configured
// string encoding (Windows-1252 by default; see strings_windows1252.go and
// strings_utf8.go).
func (c *Cursor) ReadStr(n int) (string, error) {
	raw, err := c.ReadBytes(n)
	if err != nil {
		return "", err
	}
	s, err := decodeString(raw)
	if err != nil {
		return "", c.wrapErr("decode string", err)
	}
	return s, nil
}

// ReadStrWithLen reads a charstring-encoded length prefix, then that many
// bytes as a string.
func (c *Cursor) ReadStrWithLen() (string, error) {
	n, err := charstring.ReadValue(c)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", &OverreadError{Pos: c.StreamPosition(), Requested: int(n), Remaining: int(c.Remaining())}
	}
	return c.ReadStr(int(n))
}

// ReadStrRemainder decodes everything left in this cursor's window as a
// string.
func (c *Cursor) ReadStrRemainder() (string, error) {
	raw, err := c.ReadBytesRemainder()
	if err != nil {
		return "", err
	}
	s, err := decodeString(raw)
	if err != nil {
		return "", c.wrapErr("decode string", err)
	}
	return s, nil
}
