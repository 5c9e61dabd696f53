package ttinfo

import "fmt"

// UnknownKeyError reports a TrueType value sub-key outside the defined
// keys 0x33..0x54, 0x56..0x58 and 0x5C (0x55 and 0x59..0x5B are not
// defined). Unlike the
// top-level entry loop, this dispatcher is strict: an unrecognised key is
// an error, not a silent skip.
type UnknownKeyError struct {
	Key uint8
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("vfb/ttinfo: unknown TrueType value key 0x%02x", e.Key)
}
