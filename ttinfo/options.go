// Package ttinfo decodes the TrueType/OpenType value sub-entries VFB
// stores under its "ttinfo" key (1264): a one-byte-keyed record loop in
// the 0x33..0x5C range, strictly rejecting unrecognised sub-keys, plus the
// PANOSE tuple and the PostScript and TrueType hinting-option bit flags
// that live alongside it.
//
// Grounded in original_source/vfb-reader/src/truetype.rs and
// original_source/vfb-reader/src/postscript.rs.
package ttinfo

// TrueTypeOptions are packed into the high 16 bits of the head_flags
// sub-entry (key 0x39), alongside the low-16-bit TrueType head table
// flags.
type TrueTypeOptions uint16

const (
	UseCustomTTValues TrueTypeOptions = 1 << 0
	CreateVDMX        TrueTypeOptions = 1 << 1
	AddNullCRSpace    TrueTypeOptions = 1 << 2
)

func (o TrueTypeOptions) Has(bit TrueTypeOptions) bool { return o&bit != 0 }

// PostScriptGlobalHintingOptions corresponds to top-level key 1093
// ("PostScript Hinting Options").
type PostScriptGlobalHintingOptions uint16

const GenerateFlex PostScriptGlobalHintingOptions = 1 << 0

func (o PostScriptGlobalHintingOptions) Has(bit PostScriptGlobalHintingOptions) bool {
	return o&bit != 0
}

// PostScriptGlyphHintingOptions is carried per glyph in the original
// format (key 2010, "Glyph Hinting Options"); the top-level key catalogue
// (package vfb, keys.go) gives that entry no more specific shape, so it is
// decoded as RawData and this type is kept here as
// the documented bit layout for anyone decoding that payload further.
type PostScriptGlyphHintingOptions uint32

const (
	HintReplacement  PostScriptGlyphHintingOptions = 1 << 29
	Horizontal3Stem  PostScriptGlyphHintingOptions = 1 << 30
	Vertical3Stem    PostScriptGlyphHintingOptions = 1 << 31
)

func (o PostScriptGlyphHintingOptions) Has(bit PostScriptGlyphHintingOptions) bool {
	return o&bit != 0
}
