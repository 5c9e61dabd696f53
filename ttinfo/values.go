package ttinfo

import (
	"go.fontlab.dev/vfb/charstring"
)

// valueReader is the capability ReadValues needs: one-byte reads for the
// sub-key loop, plus whatever charstring.ReadValue needs.
type valueReader interface {
	ReadU8() (uint8, error)
}

// Value is one decoded TrueType value sub-entry.
type Value struct {
	Key   uint8
	Name  string
	Value any
}

// HeadFlags is the decoded payload of sub-key 0x39: the low 16 bits of the
// packed value are the TrueType head table flags, the high 16 bits are
// TrueTypeOptions.
type HeadFlags struct {
	Flags   uint16
	Options TrueTypeOptions
}

// CodePageRange is the decoded payload of sub-key 0x54.
type CodePageRange struct {
	CP1, CP2 int32
}

var valueNames = map[uint8]string{
	0x33: "max_zones",
	0x34: "max_twilight_points",
	0x35: "max_storage",
	0x36: "max_function_defs",
	0x37: "max_instruction_defs",
	0x38: "max_stack_elements",
	0x39: "head_flags",
	0x3a: "head_units_per_em",
	0x3b: "head_mac_style",
	0x3c: "head_lowest_rec_ppem",
	0x3d: "head_font_direction_hint",
	0x3e: "os2_us_weight_class",
	0x3f: "os2_us_width_class",
	0x40: "os2_fs_type",
	0x41: "os2_y_subscript_x_size",
	0x42: "os2_y_subscript_y_size",
	0x43: "os2_y_subscript_x_offset",
	0x44: "os2_y_subscript_y_offset",
	0x45: "os2_y_superscript_x_size",
	0x46: "os2_y_superscript_y_size",
	0x47: "os2_y_superscript_x_offset",
	0x48: "os2_y_superscript_y_offset",
	0x49: "os2_y_strikeout_size",
	0x4a: "os2_y_strikeout_position",
	0x4b: "os2_s_family_class",
	0x4c: "OpenTypeOS2Panose",
	0x4d: "OpenTypeOS2TypoAscender",
	0x4e: "OpenTypeOS2TypoDescender",
	0x4f: "OpenTypeOS2TypoLineGap",
	0x50: "os2_fs_selection",
	0x51: "OpenTypeOS2WinAscent",
	0x52: "OpenTypeOS2WinDescent",
	0x53: "hdmx_ppms1",
	0x54: "os2_ul_code_page_range",
	0x56: "head_creation",
	0x57: "head_creation2",
	0x58: "hdmx_ppms2",
	0x5c: "Average Width",
}

// terminator is the TrueType value-list end marker.
const terminator = 0x32

// ReadValues reads the sub-key-tagged record loop until the terminator
// sub-key, returning one Value per recognised sub-key. An unrecognised
// sub-key is an UnknownKeyError, unlike the tolerant top-level entry loop.
func ReadValues(r interface {
	ReadU8() (uint8, error)
}) ([]Value, error) {
	var out []Value
	for {
		key, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		if key == terminator {
			return out, nil
		}
		v, err := readOne(r, key)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func readOne(r interface {
	ReadU8() (uint8, error)
}, key uint8) (Value, error) {
	name, known := valueNames[key]
	if !known {
		return Value{}, &UnknownKeyError{Key: key}
	}

	switch key {
	case 0x39:
		packed, err := charstring.ReadValue(r)
		if err != nil {
			return Value{}, err
		}
		hf := HeadFlags{
			Flags:   uint16(packed & 0xFFFF),
			Options: TrueTypeOptions(uint16(packed>>16) & 0xFFFF),
		}
		return Value{Key: key, Name: name, Value: hf}, nil
	case 0x4c:
		p, err := ReadPanose(r)
		if err != nil {
			return Value{}, err
		}
		return Value{Key: key, Name: name, Value: p}, nil
	case 0x53, 0x58:
		bs, err := readCountedBytes(r)
		if err != nil {
			return Value{}, err
		}
		return Value{Key: key, Name: name, Value: bs}, nil
	case 0x54:
		cp1, err := charstring.ReadValue(r)
		if err != nil {
			return Value{}, err
		}
		cp2, err := charstring.ReadValue(r)
		if err != nil {
			return Value{}, err
		}
		return Value{Key: key, Name: name, Value: CodePageRange{CP1: cp1, CP2: cp2}}, nil
	default:
		v, err := charstring.ReadValue(r)
		if err != nil {
			return Value{}, err
		}
		return Value{Key: key, Name: name, Value: v}, nil
	}
}

func readCountedBytes(r interface {
	ReadU8() (uint8, error)
}) ([]byte, error) {
	n, err := charstring.ReadValue(r)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	out := make([]byte, n)
	for i := range out {
		b, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
