package vfb

import (
	"fmt"

	"go.fontlab.dev/vfb/charstring"
	"go.fontlab.dev/vfb/cursor"
	"go.fontlab.dev/vfb/glyph"
	"go.fontlab.dev/vfb/guide"
	"go.fontlab.dev/vfb/name"
	"go.fontlab.dev/vfb/ttinfo"
)

// payloadShape classifies how a top-level key's payload is decoded. Most
// shapes are generic (a string, a raw uint16, a charstring value); a
// handful name a specific structured decoder.
type payloadShape int

const (
	shapeEmpty payloadShape = iota
	shapeStringRemainder
	shapeUInt16
	shapeEncodedValue
	shapeValueList       // charstring-encoded count, then that many values
	shapePerMasterValues // exactly MasterCount charstring values, no count prefix
	shapeRaw
	shapeEncoding
	shapeGlyph
	shapeMasterCount
	shapePanose
	shapePostScriptGlobalOptions
	shapeGuides
	shapeNameRecords
	shapeUnicodeRanges
	shapeTrueTypeTable
	shapeTrueTypeValues
)

// keyInfo is one row of the closed top-level key catalogue: the key's
// human-readable name (used in error messages and as the JSON field name
// by the out-of-scope serialiser) and its payload shape.
type keyInfo struct {
	Name  string
	Shape payloadShape
}

// eofKey is the top-level entry loop's terminator; it carries no payload
// and is not part of the document's entry list.
const eofKey uint16 = 5

// keyCatalogue is the closed, static dispatch table: every top-level key
// name in original_source/vfb-reader/src/vfb_constants.rs, with the
// payload shape assigned either by an explicit reader in
// original_source/vfb-reader/src/entries.rs or by the naming-convention
// and name-correspondence rules recorded in DESIGN.md where no explicit
// reader survived distillation.
var keyCatalogue = map[uint16]keyInfo{
	1501: {"Encoding Default", shapeEncoding},
	1500: {"Encoding", shapeEncoding},
	1502: {"1502", shapeUInt16},
	518:  {"518", shapeEmpty},
	257:  {"257", shapeStringRemainder},
	1026: {"font_name", shapeStringRemainder},
	1503: {"Master Count", shapeMasterCount},
	1517: {"weight_vector", shapeValueList},
	1044: {"unique_id", shapeEncodedValue},
	1046: {"version", shapeStringRemainder},
	1038: {"notice", shapeStringRemainder},
	1025: {"full_name", shapeStringRemainder},
	1027: {"family_name", shapeStringRemainder},
	1024: {"pref_family_name", shapeStringRemainder},
	1056: {"menu_name", shapeStringRemainder},
	1092: {"apple_name", shapeStringRemainder},
	1028: {"weight", shapeStringRemainder},
	1065: {"width", shapeStringRemainder},
	1069: {"License", shapeStringRemainder},
	1070: {"License URL", shapeStringRemainder},
	1037: {"copyright", shapeStringRemainder},
	1061: {"trademark", shapeStringRemainder},
	1062: {"designer", shapeStringRemainder},
	1063: {"designer_url", shapeStringRemainder},
	1064: {"vendor_url", shapeStringRemainder},
	1039: {"source", shapeStringRemainder},
	1034: {"is_fixed_pitch", shapeUInt16},
	1048: {"weight_code", shapeUInt16},
	1029: {"italic_angle", shapeUInt16},
	1047: {"slant_angle", shapeUInt16},
	1030: {"underline_position", shapeUInt16},
	1031: {"underline_thickness", shapeUInt16},
	1054: {"ms_charset", shapeUInt16},
	1118: {"panose", shapePanose},
	1128: {"tt_version", shapeStringRemainder},
	1129: {"tt_u_id", shapeStringRemainder},
	1127: {"style_name", shapeStringRemainder},
	1137: {"pref_style_name", shapeStringRemainder},
	1139: {"mac_compatible", shapeStringRemainder},
	1140: {"1140", shapeRaw},
	1121: {"vendor", shapeStringRemainder},
	1133: {"xuid", shapeRaw},
	1134: {"xuid_num", shapeUInt16},
	1132: {"year", shapeUInt16},
	1130: {"version_major", shapeUInt16},
	1131: {"version_minor", shapeUInt16},
	1135: {"upm", shapeUInt16},
	1090: {"fond_id", shapeUInt16},
	1093: {"PostScript Hinting Options", shapePostScriptGlobalOptions},
	1068: {"1068", shapeRaw},
	1530: {"blue_values_num", shapeUInt16},
	1531: {"other_blues_num", shapeUInt16},
	1532: {"family_blues_num", shapeUInt16},
	1533: {"family_other_blues_num", shapeUInt16},
	1534: {"stem_snap_h_num", shapeUInt16},
	1535: {"stem_snap_v_num", shapeUInt16},
	1267: {"font_style", shapeUInt16},
	1057: {"pcl_id", shapeUInt16},
	1058: {"vp_id", shapeUInt16},
	1060: {"ms_id", shapeUInt16},
	1059: {"pcl_chars_set", shapeStringRemainder},
	1261: {"Binary cvt Table", shapeRaw},
	1262: {"Binary prep Table", shapeRaw},
	1263: {"Binary fpgm Table", shapeRaw},
	1265: {"gasp", shapeRaw},
	1264: {"ttinfo", shapeTrueTypeValues},
	1271: {"vdmx", shapeRaw},
	1270: {"hhea_line_gap", shapeUInt16},
	1278: {"hhea_ascender", shapeUInt16},
	1279: {"hhea_descender", shapeUInt16},
	1266: {"TrueType Stem PPEMs 2 And 3", shapeRaw},
	1268: {"TrueType Stem PPEMs", shapeRaw},
	1524: {"TrueType Stem PPEMs 1", shapeRaw},
	1269: {"TrueType Stems", shapeRaw},
	1255: {"TrueType Zones", shapeRaw},
	2021: {"unicoderanges", shapeUnicodeRanges},
	1272: {"stemsnaplimit", shapeUInt16},
	1274: {"zoneppm", shapeUInt16},
	1275: {"codeppm", shapeUInt16},
	1604: {"1604", shapeUInt16},
	2032: {"2032", shapeUInt16},
	1273: {"TrueType Zone Deltas", shapeRaw},
	1138: {"fontnames", shapeNameRecords},
	1141: {"Custom CMAPs", shapeRaw},
	1136: {"PCLT Table", shapeRaw},
	2022: {"Export PCLT Table", shapeUInt16},
	2025: {"note", shapeStringRemainder},
	2030: {"2030", shapeRaw},
	2016: {"customdata", shapeStringRemainder},
	2024: {"OpenType Metrics Class Flags", shapeRaw},
	2026: {"OpenType Kerning Class Flags", shapeRaw},
	2014: {"TrueTypeTable", shapeTrueTypeTable},
	1276: {"features", shapeRaw},
	1277: {"OpenType Class", shapeStringRemainder},
	513:  {"513", shapeRaw},
	271:  {"271", shapeRaw},
	1513: {"Axis Count", shapeUInt16},
	1514: {"Axis Name", shapeStringRemainder},
	1523: {"Anisotropic Interpolation Mappings", shapeRaw},
	1515: {"Axis Mappings Count", shapeUInt16},
	1516: {"Axis Mappings", shapeValueList},
	1504: {"Master Name", shapeStringRemainder},
	1505: {"Master Location", shapeValueList},
	1247: {"Primary Instance Locations", shapeRaw},
	1254: {"Primary Instances", shapeRaw},
	1536: {"PostScript Info", shapeRaw},
	527:  {"527", shapeRaw},
	1294: {"Global Guides", shapeGuides},
	1296: {"Global Guide Properties", shapeRaw},
	1295: {"Global Mask", shapeRaw},
	1066: {"default_character", shapeStringRemainder},
	2001: {"Glyph", shapeGlyph},
	2008: {"Links", shapeRaw},
	2007: {"image", shapeRaw},
	2013: {"Glyph Bitmaps", shapeRaw},
	2023: {"2023", shapePerMasterValues},
	2019: {"Glyph Sketch", shapeRaw},
	2010: {"Glyph Hinting Options", shapeRaw},
	2009: {"mask", shapeRaw},
	2011: {"mask.metrics", shapeRaw},
	2028: {"mask.metrics_mm", shapeRaw},
	2027: {"Glyph Origin", shapeRaw},
	1250: {"unicodes", shapeRaw},
	2034: {"2034", shapeStringRemainder},
	1253: {"Glyph Unicode Non-BMP", shapeRaw},
	2012: {"mark", shapeUInt16},
	2015: {"glyph.customdata", shapeStringRemainder},
	2017: {"glyph.note", shapeStringRemainder},
	2018: {"Glyph GDEF Data", shapeRaw},
	2020: {"Glyph Anchors Supplemental", shapeRaw},
	2029: {"Glyph Anchors MM", shapeRaw},
	2031: {"Glyph Guide Properties", shapeRaw},
	1743: {"OpenType Export Options", shapeRaw},
	1744: {"Export Options", shapeRaw},
	1742: {"Mapping Mode", shapeRaw},
	1410: {"1410", shapeRaw},
}

// KeyToName returns the human-readable name the catalogue assigns to key,
// and whether key is known at all.
func KeyToName(key uint16) (string, bool) {
	info, ok := keyCatalogue[key]
	return info.Name, ok
}

// NameToKey is the inverse of KeyToName, used for diagnostics and
// round-trip checks.
func NameToKey(name string) (uint16, bool) {
	for k, info := range keyCatalogue {
		if info.Name == name {
			return k, true
		}
	}
	return 0, false
}

// decodePayload invokes the reader named by shape against c, which must
// already be scoped to exactly the entry's declared size.
func decodePayload(c *cursor.Cursor, shape payloadShape) (any, error) {
	switch shape {
	case shapeEmpty:
		if c.Remaining() != 0 {
			return nil, fmt.Errorf("vfb: expected empty payload, %d bytes remain", c.Remaining())
		}
		return nil, nil
	case shapeStringRemainder:
		return c.ReadStrRemainder()
	case shapeUInt16:
		return c.ReadU16()
	case shapeEncodedValue:
		return charstring.ReadValue(c)
	case shapeValueList:
		return charstring.ReadCountAndValues(c)
	case shapePerMasterValues:
		return charstring.ReadValueList(c, c.MasterCount())
	case shapeRaw:
		return c.ReadBytesRemainder()
	case shapeEncoding:
		return readEncoding(c)
	case shapeGlyph:
		return glyph.Decode(c, c.MasterCount())
	case shapeMasterCount:
		v, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		c.SetMasterCount(int(v))
		return v, nil
	case shapePanose:
		return ttinfo.ReadPanose(c)
	case shapePostScriptGlobalOptions:
		v, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		return ttinfo.PostScriptGlobalHintingOptions(v), nil
	case shapeGuides:
		return guide.Read(c, c.MasterCount())
	case shapeNameRecords:
		return name.ReadRecords(c)
	case shapeUnicodeRanges:
		return readUnicodeRanges(c)
	case shapeTrueTypeTable:
		return readTrueTypeTable(c)
	case shapeTrueTypeValues:
		return ttinfo.ReadValues(c)
	default:
		return nil, fmt.Errorf("vfb: unhandled payload shape %d", shape)
	}
}
