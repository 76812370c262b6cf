// Package psx implements Sony PlayStation PSX-ADPCM decoding: a 4-bit
// predictive codec with 5 fixed predictor-coefficient pairs and 28 samples
// packed into each 16-byte frame.
package psx

import (
	"errors"
	"math"
)

// FrameSize is the byte length of one PSX-ADPCM frame.
const FrameSize = 16

// SamplesPerFrame is the number of PCM samples each frame decodes to.
const SamplesPerFrame = 28

// ErrMalformedFrame is returned when a frame's predictor nibble exceeds 4,
// the highest index with a defined coefficient pair.
var ErrMalformedFrame = errors.New("psx: malformed frame: predictor out of range")

// coefficients are the fixed (alpha, beta) predictor pairs; index is the
// frame's predictor nibble (0-4).
var coefficients = [5][2]float64{
	{0.0, 0.0},
	{0.9375, 0.0},
	{1.796875, -0.8125},
	{1.53125, -0.859375},
	{1.90625, -0.9375},
}

func saturateInt16(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}

// DecodedSize returns the byte size of interleaved PCM16 output for
// numFrames PSX-ADPCM frames.
func DecodedSize(numFrames int) int {
	return numFrames * SamplesPerFrame * 2
}

// Decode decodes a sequence of 16-byte PSX-ADPCM frames into interleaved
// little-endian PCM16 samples, carrying hst1/hst2 predictor history across
// frames. data's length must be a multiple of FrameSize; a trailing partial
// frame is ignored.
func Decode(data []byte) ([]byte, error) {
	numFrames := len(data) / FrameSize
	out := make([]byte, 0, DecodedSize(numFrames))

	var hst1, hst2 int16
	for f := 0; f < numFrames; f++ {
		frame := data[f*FrameSize : (f+1)*FrameSize]

		predictor := int(frame[0] >> 4)
		shift := uint(frame[0] & 0xF)
		if predictor > 4 {
			return nil, ErrMalformedFrame
		}
		alpha, beta := coefficients[predictor][0], coefficients[predictor][1]

		for i := 0; i < SamplesPerFrame; i++ {
			b := frame[2+i/2]
			var nibble byte
			if i%2 == 0 {
				nibble = b & 0xF
			} else {
				nibble = b >> 4
			}

			raw := int32(nibble)
			if raw >= 8 {
				raw -= 16
			}
			shifted := (raw << 12) >> shift

			pred := alpha*float64(hst1) + beta*float64(hst2)
			sample := saturateInt16(float64(shifted) + pred)

			hst2 = hst1
			hst1 = sample

			out = append(out, byte(uint16(sample)), byte(uint16(sample)>>8))
		}
	}

	return out, nil
}
