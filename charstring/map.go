package charstring

// ReadKeyValueMap reads (one-byte key, charstring-encoded value) pairs
// until a key of 0 is read; the terminating pair is consumed but the zero
// key is not included in the result. This is the shape the VFB header
// uses for its creator table (vfb-reader/src/header.rs's
// read_key_value_map).
func ReadKeyValueMap(r byteReader) (map[int32]int32, error) {
	out := make(map[int32]int32)
	for {
		key, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		if key == 0 {
			return out, nil
		}
		val, err := ReadValue(r)
		if err != nil {
			return nil, err
		}
		out[int32(key)] = val
	}
}
