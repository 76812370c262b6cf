// Package charset decodes the name bytes embedded in container entries. The original console assets are Western European
// text, not guaranteed valid UTF-8, so names are decoded as Windows-1252
// rather than assumed ASCII.
package charset

import (
	"golang.org/x/text/encoding/charmap"
)

// DecodeWindows1252 decodes b as Windows-1252, cutting it at its first NUL
// byte. Decoding errors fall back to the raw bytes unchanged: names are
// display metadata, not structural fields, so a malformed byte must never
// fail the surrounding entry read.
func DecodeWindows1252(b []byte) string {
	trimmed := trimTrailingZero(b)
	if len(trimmed) == 0 {
		return ""
	}

	decoded, err := charmap.Windows1252.NewDecoder().String(string(trimmed))
	if err != nil {
		return string(trimmed)
	}
	return decoded
}

func trimTrailingZero(b []byte) []byte {
	if i := indexZero(b); i >= 0 {
		return b[:i]
	}
	return b
}

func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}

// EncodeWindows1252 encodes s back to Windows-1252 bytes, zero-padded (or
// truncated) to exactly n bytes. Used only when re-serializing a name that
// was decoded by this package, preserving round-trip fidelity.
func EncodeWindows1252(s string, n int) []byte {
	out := make([]byte, n)
	encoded, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		encoded = s
	}
	copy(out, encoded)
	return out
}
