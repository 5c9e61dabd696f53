package charstring

import (
	"bytes"
	"errors"
	"testing"
)

// bufReader adapts a byte slice to the byteReader interface ReadValue
// needs, tracking how many bytes have been consumed so tests can assert
// exact consumption counts.
type bufReader struct {
	data []byte
	pos  int
}

func (r *bufReader) ReadU8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("eof")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func TestReadValue(t *testing.T) {
	cases := []struct {
		name    string
		bytes   []byte
		want    int32
		wantErr bool
	}{
		{"min one-byte", []byte{0x20}, -107, false},
		{"negative one-byte", []byte{0x8A}, -1, false},
		{"zero", []byte{0x8B}, 0, false},
		{"max one-byte", []byte{0xF6}, 107, false},
		{"min positive two-byte", []byte{0xF7, 0x00}, 108, false},
		{"max positive two-byte", []byte{0xFA, 0xFF}, 1131, false},
		{"min negative two-byte", []byte{0xFB, 0x00}, -108, false},
		{"max negative two-byte", []byte{0xFE, 0xFF}, -1131, false},
		{"five-byte zero", []byte{0xFF, 0x00, 0x00, 0x00, 0x00}, 0, false},
		{"five-byte positive", []byte{0xFF, 0x00, 0x00, 0x10, 0x00}, 4096, false},
		{"five-byte minus one", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, -1, false},
		{"five-byte negative", []byte{0xFF, 0xFF, 0xFF, 0xEF, 0xFF}, -4097, false},
		{"bad value", []byte{0x00}, 0, true},
		{"bad value at boundary", []byte{0x1F}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &bufReader{data: tc.bytes}
			got, err := ReadValue(r)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ReadValue(%x) = %d, nil; want error", tc.bytes, got)
				}
				var bv *BadValueError
				if !errors.As(err, &bv) {
					t.Fatalf("ReadValue(%x) error = %v, want *BadValueError", tc.bytes, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadValue(%x) unexpected error: %v", tc.bytes, err)
			}
			if got != tc.want {
				t.Fatalf("ReadValue(%x) = %d, want %d", tc.bytes, got, tc.want)
			}
			if r.pos != len(tc.bytes) {
				t.Fatalf("ReadValue(%x) consumed %d bytes, want %d", tc.bytes, r.pos, len(tc.bytes))
			}
		})
	}
}

func TestReadKeyValueMap(t *testing.T) {
	input := []byte{0x01, 0x8C, 0x02, 0xFF, 0x05, 0x00, 0x04, 0x80, 0x03, 0xFF, 0x00, 0x00, 0x12, 0x08, 0x00}
	r := &bufReader{data: input}

	got, err := ReadKeyValueMap(r)
	if err != nil {
		t.Fatalf("ReadKeyValueMap: unexpected error: %v", err)
	}

	want := map[int32]int32{1: 1, 2: 0x05000480, 3: 4616}
	if len(got) != len(want) {
		t.Fatalf("ReadKeyValueMap = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("ReadKeyValueMap[%d] = %d, want %d", k, got[k], v)
		}
	}
	if _, hasZero := got[0]; hasZero {
		t.Fatalf("ReadKeyValueMap must not contain the terminating zero key")
	}
	if r.pos != len(input) {
		t.Fatalf("ReadKeyValueMap consumed %d bytes, want %d (up to and including the terminator)", r.pos, len(input))
	}
}

func TestReadValueListConsumesExactCount(t *testing.T) {
	r := &bufReader{data: []byte{0x8B, 0x8C, 0x8D}} // 0, 1, 2
	got, err := ReadValueList(r, 3)
	if err != nil {
		t.Fatalf("ReadValueList: unexpected error: %v", err)
	}
	want := []int32{0, 1, 2}
	if !bytes.Equal(int32sToBytes(got), int32sToBytes(want)) {
		t.Fatalf("ReadValueList = %v, want %v", got, want)
	}
}

func int32sToBytes(vs []int32) []byte {
	out := make([]byte, len(vs))
	for i, v := range vs {
		out[i] = byte(v)
	}
	return out
}
