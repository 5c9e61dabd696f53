package ttinfo

// byteReader is satisfied structurally by *vfb/cursor.Cursor.
type byteReader interface {
	ReadU8() (uint8, error)
}

// Panose is the ten-byte PANOSE classification tuple, used both as
// top-level key 1118 and as TrueType value sub-key 0x4C.
type Panose [10]int8

func ReadPanose(r byteReader) (Panose, error) {
	var p Panose
	for i := range p {
		b, err := r.ReadU8()
		if err != nil {
			return p, err
		}
		p[i] = int8(b)
	}
	return p, nil
}
