//go:build !vfb_utf8

package cursor

import "golang.org/x/text/encoding/charmap"

// decodeString decodes raw bytes as Windows-1252, the encoding FontLab used
// for 8-bit string fields on Windows. Build with -tags vfb_utf8 to decode
// the same fields as UTF-8 instead (see strings_utf8.go), matching the
// build-time choice the original reader exposed as a compile flag.
func decodeString(raw []byte) (string, error) {
	return charmap.Windows1252.NewDecoder().String(string(raw))
}
