// Package wave serializes the fixed 44-byte RIFF/WAVE header that wraps
// every audio stream in a container, regardless of the container's own
// endianness: the produced .wav envelope is always little-endian, per the
// RIFF specification.
package wave

import (
	"encoding/binary"
	"errors"
)

// Magic numbers, read as little-endian uint32s straight off the wire.
const (
	MagicRIFF = 0x46464952 // "RIFF"
	MagicWAVE = 0x45564157 // "WAVE"
	MagicFmt  = 0x20746D66 // "fmt "
	MagicData = 0x61746164 // "data"
	MagicDatx = 0x78746164 // "datx" — external-reference stub
)

// HeaderSize is the fixed byte length of the serialized envelope.
const HeaderSize = 44

// ErrInvalidHeader is returned when the RIFF, WAVE or fmt magic numbers do
// not match while decoding.
var ErrInvalidHeader = errors.New("wave: invalid RIFF/WAVE header")

// Header is the fixed-layout RIFF/WAVE header described in the container
// format: a "fmt " chunk followed by a data (or datx) subchunk whose size
// field is either the payload length (inline) or always 8 (external,
// holding a size/offset pair that lives outside this header).
type Header struct {
	FormatCode    uint16 // 1 = PCM, see the container's audio format codes
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	External      bool   // true selects the "datx" subchunk id
	DataSize      uint32 // inline payload size, or 8 when External
}

// Default returns the container's default envelope: mono, 16-bit PCM at
// 22050 Hz, matching the reference decoder's fallback when no format
// information is available.
func Default() Header {
	return Header{
		FormatCode:    1,
		Channels:      1,
		SampleRate:    22050,
		BitsPerSample: 16,
	}
}

func (h Header) blockAlign() uint16 {
	return h.Channels * h.BitsPerSample / 8
}

func (h Header) byteRate() uint32 {
	return h.SampleRate * uint32(h.blockAlign())
}

// Encode serializes h into a HeaderSize-byte little-endian buffer.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], MagicRIFF)
	binary.LittleEndian.PutUint32(buf[4:8], 36+h.DataSize)
	binary.LittleEndian.PutUint32(buf[8:12], MagicWAVE)
	binary.LittleEndian.PutUint32(buf[12:16], MagicFmt)
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], h.FormatCode)
	binary.LittleEndian.PutUint16(buf[22:24], h.Channels)
	binary.LittleEndian.PutUint32(buf[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], h.byteRate())
	binary.LittleEndian.PutUint16(buf[32:34], h.blockAlign())
	binary.LittleEndian.PutUint16(buf[34:36], h.BitsPerSample)
	if h.External {
		binary.LittleEndian.PutUint32(buf[36:40], MagicDatx)
		binary.LittleEndian.PutUint32(buf[40:44], 8)
	} else {
		binary.LittleEndian.PutUint32(buf[36:40], MagicData)
		binary.LittleEndian.PutUint32(buf[40:44], h.DataSize)
	}
	return buf
}

// Decode parses a HeaderSize-byte little-endian buffer into a Header. It
// fails with ErrInvalidHeader if any of the RIFF, WAVE or "fmt " magic
// numbers are wrong.
func Decode(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrInvalidHeader
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != MagicRIFF ||
		binary.LittleEndian.Uint32(buf[8:12]) != MagicWAVE ||
		binary.LittleEndian.Uint32(buf[12:16]) != MagicFmt {
		return Header{}, ErrInvalidHeader
	}

	h := Header{
		FormatCode:    binary.LittleEndian.Uint16(buf[20:22]),
		Channels:      binary.LittleEndian.Uint16(buf[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(buf[24:28]),
		BitsPerSample: binary.LittleEndian.Uint16(buf[34:36]),
	}

	subchunk2ID := binary.LittleEndian.Uint32(buf[36:40])
	h.DataSize = binary.LittleEndian.Uint32(buf[40:44])
	switch subchunk2ID {
	case MagicDatx:
		h.External = true
	case MagicData:
		h.External = false
	default:
		return Header{}, ErrInvalidHeader
	}

	return h, nil
}
