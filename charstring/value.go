// Package charstring implements the variable-length signed integer
// encoding VFB borrows from the Adobe Type 1 charstring format, plus the
// two composite readers built on it: a length-prefixed list of values and
// a key/value map terminated by a zero key.
//
// The encoding is grounded in
// seehuhn.de/go/pdf/font/cff/t2decode.go's decodeCharString, which performs
// the same byte-range dispatch for Type 2 charstrings; VFB reuses the
// numeric ranges of the older Type 1 variant (see
// vfb-reader/src/buffer.rs's read_value in the retrieved original sources),
// most visibly in the 5-byte form, which Type 1 stores as a plain
// big-endian int32 rather than Type 2's 16.16 fixed-point value.
package charstring

import "fmt"

// byteReader is the minimal capability ReadValue needs from its source.
// It is satisfied structurally by *vfb/cursor.Cursor without charstring
// importing cursor, keeping the dependency graph acyclic: cursor imports
// charstring to implement its own length-prefixed string reads, so
// charstring must not import cursor back.
type byteReader interface {
	ReadU8() (uint8, error)
}

// BadValueError reports a first byte that does not belong to any of the
// encoding's defined forms (values below 0x20 are invalid).
type BadValueError struct {
	Byte byte
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("charstring: invalid lead byte 0x%02x", e.Byte)
}

// ReadValue decodes one variable-length signed integer:
//
//	0x20..0xF6   -> single byte,   value = b - 0x8B           (-107..107)
//	0xF7..0xFA   -> two bytes,     value = (b0-0xF7)*256 + b1 + 108
//	0xFB..0xFE   -> two bytes,     value = -(b0-0xFB)*256 - b1 - 108
//	0xFF         -> five bytes,    value = big-endian int32 of the next 4
//	anything else (< 0x20)        -> BadValueError
//
// The 5-byte form is big-endian despite every other multi-byte field in a
// VFB file being little-endian; this asymmetry is preserved deliberately.
func ReadValue(r byteReader) (int32, error) {
	b0, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	switch {
	case b0 >= 0x20 && b0 <= 0xF6:
		return int32(b0) - 139, nil
	case b0 >= 0xF7 && b0 <= 0xFA:
		b1, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		return (int32(b0)-0xF7)*256 + int32(b1) + 108, nil
	case b0 >= 0xFB && b0 <= 0xFE:
		b1, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		return -(int32(b0)-0xFB)*256 - int32(b1) - 108, nil
	case b0 == 0xFF:
		var v int32
		for i := 0; i < 4; i++ {
			b, err := r.ReadU8()
			if err != nil {
				return 0, err
			}
			v = v<<8 | int32(b)
		}
		return v, nil
	default:
		return 0, &BadValueError{Byte: b0}
	}
}
