package hxaudio

import "errors"

// Error sentinels for the typed taxonomy of spec §7. Each is returned
// wrapped with additional context via %w, and should be matched with
// errors.Is rather than by string comparison.
var (
	// ErrInvalidArgument covers a null/empty filename or an unsupported
	// variant derived from a file extension.
	ErrInvalidArgument = errors.New("hxaudio: invalid argument")

	// ErrIOFailed is returned when a caller-supplied read/write callback
	// reports failure (a nil buffer on read, or an explicit error on write).
	ErrIOFailed = errors.New("hxaudio: I/O callback failed")

	// ErrInvalidHeader is returned when the index-table magic does not
	// match "INDX".
	ErrInvalidHeader = errors.New("hxaudio: invalid index header")

	// ErrInvalidIndexType is returned when the index type is neither 1 nor 2.
	ErrInvalidIndexType = errors.New("hxaudio: invalid index type")

	// ErrEmptyFile is returned when the index table declares zero entries.
	ErrEmptyFile = errors.New("hxaudio: empty container")

	// ErrHeaderMismatch is returned when an entry's records contradict
	// themselves: a non-zero reserved word in its index record, a non-zero
	// default CUUID on an HXG WavResData with per-language links, or a
	// WaveFileIdObj whose external flag disagrees with its data/datx
	// subchunk. Entry bodies are read without a class-name or CUUID header,
	// so no body is compared against the index.
	ErrHeaderMismatch = errors.New("hxaudio: entry header mismatch")

	// ErrUnknownClass is returned for a class name not present in the
	// registry. Per spec, this is a warn-and-skip condition during a read,
	// not a short-circuiting failure — it is exposed for callers (and the
	// error callback) but does not abort the read unless WithStrict is set.
	ErrUnknownClass = errors.New("hxaudio: unknown class")

	// ErrMalformedFrame is returned by the PSX-ADPCM decoder when a frame's
	// predictor nibble exceeds 4.
	ErrMalformedFrame = errors.New("hxaudio: malformed adpcm frame")

	// ErrUnsupportedConversion is returned when asked to convert between
	// audio formats for which no codec path exists.
	ErrUnsupportedConversion = errors.New("hxaudio: unsupported format conversion")

	// ErrWaveHeaderInvalid is returned when a WaveFileIdObj's embedded
	// RIFF/WAVE header fails magic-number validation.
	ErrWaveHeaderInvalid = errors.New("hxaudio: invalid wave header")
)
