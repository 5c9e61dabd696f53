package charstring

// ReadValueList reads exactly count charstring-encoded values; no count
// prefix is read (see ReadCountAndValues for that). It is the shape used throughout VFB for
// per-master value tuples (metrics, kerning deltas, guide positions), see
// vfb-reader/src/glyph.rs's read_glyph_metrics and read_kerning.
func ReadValueList(r byteReader, count int) ([]int32, error) {
	out := make([]int32, count)
	for i := range out {
		v, err := ReadValue(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadCountAndValues reads a charstring-encoded count n, then n
// charstring-encoded values.
func ReadCountAndValues(r byteReader) ([]int32, error) {
	n, err := ReadValue(r)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	return ReadValueList(r, int(n))
}
