// Package hxaudio reads and writes the hxd/hxc/hx2/hxg/hxx/hx3 container
// family: self-describing bundles of typed audio-asset entries that
// reference one another by 64-bit identifiers, whose leaves are
// platform-specific audio streams wrapped in a RIFF/WAVE envelope.
package hxaudio

import (
	"fmt"
	"strings"

	"github.com/kelindar/hxaudio/internal/stream"
)

// Variant identifies one of the six platform-tagged container formats.
// Each variant fixes an endianness, a platform tag injected into
// non-cross-version class names, and the set of audio format codes it is
// expected to carry.
type Variant int

const (
	HXD Variant = iota // PC, big-endian
	HXC                // PC, little-endian
	HX2                // PlayStation 2, little-endian
	HXG                // GameCube, big-endian
	HXX                // Xbox, big-endian
	HX3                // PlayStation 3, little-endian
)

// variantInfo describes the fixed properties of a Variant.
type variantInfo struct {
	tag       string
	endian    stream.Endian
	codecs    []AudioFormat
	hasName   bool // WavResObj carries a length-prefixed name (HXC only)
	hasSize   bool // WavResObj carries an extra size field (HXG, HX2)
	wideFlags bool // IdObjPtr carries a 32-bit flags + opaque successor (HXG only)
}

var variantTable = map[Variant]variantInfo{
	HXD: {tag: "PC", endian: stream.Big, codecs: []AudioFormat{FormatPCM, FormatUBI, FormatMP3}},
	HXC: {tag: "PC", endian: stream.Little, codecs: []AudioFormat{FormatPCM, FormatUBI, FormatMP3}, hasName: true},
	HX2: {tag: "PS2", endian: stream.Little, codecs: []AudioFormat{FormatPCM, FormatPSX}, hasSize: true},
	HXG: {tag: "GC", endian: stream.Big, codecs: []AudioFormat{FormatPCM, FormatDSP}, hasSize: true, wideFlags: true},
	HXX: {tag: "XBox", endian: stream.Big, codecs: []AudioFormat{FormatPCM, FormatIMA}},
	HX3: {tag: "PS3", endian: stream.Little, codecs: []AudioFormat{FormatPCM, FormatMP3}},
}

// info returns the variant's fixed properties, panicking on an invalid
// Variant value: it is always a programmer error to construct one by hand
// rather than through VariantFromExt or one of the Variant constants.
func (v Variant) info() variantInfo {
	info, ok := variantTable[v]
	if !ok {
		panic(fmt.Sprintf("hxaudio: invalid variant %d", int(v)))
	}
	return info
}

// Endian returns the variant's fixed byte order.
func (v Variant) Endian() stream.Endian { return v.info().endian }

// PlatformTag returns the variant's class-name platform tag (e.g. "PS2").
func (v Variant) PlatformTag() string { return v.info().tag }

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case HXD:
		return "HXD"
	case HXC:
		return "HXC"
	case HX2:
		return "HX2"
	case HXG:
		return "HXG"
	case HXX:
		return "HXX"
	case HX3:
		return "HX3"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// VariantFromExt maps a container filename extension (with or without the
// leading dot, case-insensitively) to its Variant. It returns
// ErrInvalidArgument for any unrecognized extension.
func VariantFromExt(ext string) (Variant, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "hxd":
		return HXD, nil
	case "hxc":
		return HXC, nil
	case "hx2":
		return HX2, nil
	case "hxg":
		return HXG, nil
	case "hxx":
		return HXX, nil
	case "hx3":
		return HX3, nil
	default:
		return 0, fmt.Errorf("%w: unsupported extension %q", ErrInvalidArgument, ext)
	}
}
