//go:build vfb_utf8

package cursor

import (
	"fmt"
	"unicode/utf8"
)

// decodeString validates raw as UTF-8 and returns it as-is. Selected with
// -tags vfb_utf8; the default build decodes the same fields as
// Windows-1252 (see strings_windows1252.go).
func decodeString(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("invalid UTF-8 sequence")
	}
	return string(raw), nil
}
