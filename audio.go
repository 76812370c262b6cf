package hxaudio

import "github.com/kelindar/hxaudio/internal/stream"

// AudioFormat is the wire format code carried by an audio stream.
type AudioFormat uint32

const (
	FormatPCM AudioFormat = 1
	FormatUBI AudioFormat = 2
	FormatPSX AudioFormat = 3
	FormatDSP AudioFormat = 4
	FormatIMA AudioFormat = 5
	FormatMP3 AudioFormat = 0x55
)

// Endian is the container's byte-order policy, re-exported from the
// internal stream package so callers never need to import it directly.
type Endian = stream.Endian

const (
	LittleEndian = stream.Little
	BigEndian    = stream.Big
)

// AudioStream is the decoded description of a WaveFileIdObj's payload: its
// format, shape, and raw bytes, plus a back-reference to the entry that
// owns it.
type AudioStream struct {
	Channels   int
	Endian     Endian
	SampleRate uint32
	NumSamples uint32
	Format     AudioFormat
	Owner      CUUID
	Data       []byte
}
