// Package dsp implements Nintendo GameCube DSP-ADPCM: a 4-bit predictive
// codec with a 96-byte per-channel header, 8 predictor-coefficient pairs,
// and 14 samples packed into each 8-byte frame.
package dsp

import (
	"errors"
	"math"

	"github.com/kelindar/hxaudio/internal/stream"
)

// HeaderSize is the fixed byte length of one channel's ADPCM header.
const HeaderSize = 96

// SamplesPerFrame is the number of PCM samples each 8-byte frame decodes to.
const SamplesPerFrame = 14

// FrameSize is the byte length of one channel's frame: one predictor-scale
// byte followed by 14 packed 4-bit nibbles.
const FrameSize = 8

// ErrTruncated is returned when the input is shorter than its headers and
// declared sample counts require.
var ErrTruncated = errors.New("dsp: truncated adpcm stream")

// Header is the per-channel DSPADPCMINFO block that precedes the
// interleaved frame payload.
type Header struct {
	NumSamples    uint32
	NumNibbles    uint32
	SampleRate    uint32
	LoopFlag      uint16
	Format        uint16
	LoopStart     uint32
	LoopEnd       uint32
	LoopCurrent   uint32
	Coef          [16]int16 // 8 (c1, c2) predictor pairs
	Gain          uint16
	PredScale     uint16
	Yn1           uint16
	Yn2           uint16
	LoopPredScale uint16
	LoopYn1       uint16
	LoopYn2       uint16
}

func (h *Header) rw(s *stream.Stream) {
	s.RW32(&h.NumSamples)
	s.RW32(&h.NumNibbles)
	s.RW32(&h.SampleRate)
	s.RW16(&h.LoopFlag)
	s.RW16(&h.Format)
	s.RW32(&h.LoopStart)
	s.RW32(&h.LoopEnd)
	s.RW32(&h.LoopCurrent)
	for i := range h.Coef {
		u := uint16(h.Coef[i])
		s.RW16(&u)
		h.Coef[i] = int16(u)
	}
	s.RW16(&h.Gain)
	s.RW16(&h.PredScale)
	s.RW16(&h.Yn1)
	s.RW16(&h.Yn2)
	s.RW16(&h.LoopPredScale)
	s.RW16(&h.LoopYn1)
	s.RW16(&h.LoopYn2)
	s.Advance(22) // reserved padding
}

// DecodeHeaders reads numChannels consecutive 96-byte headers starting at
// the stream's current position.
func DecodeHeaders(s *stream.Stream, numChannels int) []Header {
	headers := make([]Header, numChannels)
	for i := range headers {
		headers[i].rw(s)
	}
	return headers
}

// EncodeHeaders writes numChannels headers at the stream's current
// position.
func EncodeHeaders(s *stream.Stream, headers []Header) {
	for i := range headers {
		headers[i].rw(s)
	}
}

func clampInt16(v int64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}

// DecodedSize returns the byte size of the interleaved PCM16 output for n
// samples across the given channel count: frames are always full, so the
// last partial frame's tail is zero-padded.
func DecodedSize(n, channels int) int {
	frames := (n + SamplesPerFrame - 1) / SamplesPerFrame
	return frames * SamplesPerFrame * channels * 2
}

// Decode reads channel headers followed by frame-interleaved ADPCM data
// (one FrameSize block per channel, per frame) from s and returns
// interleaved little-endian PCM16 samples sized per DecodedSize.
func Decode(s *stream.Stream, numChannels int) ([]byte, []Header, error) {
	headers := DecodeHeaders(s, numChannels)

	maxSamples := 0
	for _, h := range headers {
		if int(h.NumSamples) > maxSamples {
			maxSamples = int(h.NumSamples)
		}
	}
	numFrames := (maxSamples + SamplesPerFrame - 1) / SamplesPerFrame

	out := make([]byte, DecodedSize(maxSamples, numChannels))
	hst1 := make([]int16, numChannels)
	hst2 := make([]int16, numChannels)

	for f := 0; f < numFrames; f++ {
		for c := 0; c < numChannels; c++ {
			frame := make([]byte, FrameSize)
			s.RW(frame)

			remaining := int(headers[c].NumSamples) - f*SamplesPerFrame
			if remaining <= 0 {
				continue
			}
			if remaining > SamplesPerFrame {
				remaining = SamplesPerFrame
			}

			ps := frame[0]
			predictor := int((ps >> 4) & 0xF)
			scale := int32(1) << (ps & 0xF)
			if predictor >= 8 {
				predictor = 0
			}
			c1 := int32(headers[c].Coef[predictor*2])
			c2 := int32(headers[c].Coef[predictor*2+1])

			for n := 0; n < remaining; n++ {
				byteIdx := 1 + n/2
				var nibble byte
				if n%2 == 0 {
					nibble = frame[byteIdx] >> 4
				} else {
					nibble = frame[byteIdx] & 0xF
				}
				sample := int32(nibble)
				if sample >= 8 {
					sample -= 16
				}

				sum := int64(scale*sample)<<11 + 1024 + int64(c1)*int64(hst1[c]) + int64(c2)*int64(hst2[c])
				pcm := clampInt16(sum >> 11)

				hst2[c] = hst1[c]
				hst1[c] = pcm

				pos := (f*SamplesPerFrame+n)*numChannels + c
				out[pos*2] = byte(uint16(pcm))
				out[pos*2+1] = byte(uint16(pcm) >> 8)
			}
		}
	}

	return out, headers, nil
}

// Encode produces channel headers plus an interleaved frame payload from
// per-channel PCM16 sample slices, using a fixed predictor (index 0, zero
// coefficients) and a per-frame scale-exponent search that minimizes
// reconstruction error. The output always decodes back to samples within
// ADPCM's intrinsic quantization bound.
func Encode(samples [][]int16, sampleRate uint32) []byte {
	numChannels := len(samples)
	numSamples := 0
	for _, ch := range samples {
		if len(ch) > numSamples {
			numSamples = len(ch)
		}
	}
	numFrames := (numSamples + SamplesPerFrame - 1) / SamplesPerFrame

	headers := make([]Header, numChannels)
	for c := range headers {
		headers[c] = Header{
			NumSamples: uint32(len(samples[c])),
			NumNibbles: uint32(numFrames * SamplesPerFrame),
			SampleRate: sampleRate,
			PredScale:  0,
		}
	}

	w := stream.NewWriter(stream.Big)
	EncodeHeaders(w, headers)

	hst1 := make([]int16, numChannels)
	hst2 := make([]int16, numChannels)

	for f := 0; f < numFrames; f++ {
		for c := 0; c < numChannels; c++ {
			frame := make([]byte, FrameSize)

			remaining := len(samples[c]) - f*SamplesPerFrame
			if remaining < 0 {
				remaining = 0
			}
			if remaining > SamplesPerFrame {
				remaining = SamplesPerFrame
			}

			scale, nibbles := bestScale(samples[c][f*SamplesPerFrame:f*SamplesPerFrame+remaining], hst1[c], hst2[c])
			frame[0] = byte(scale & 0xF) // predictor index 0

			for n, nib := range nibbles {
				byteIdx := 1 + n/2
				if n%2 == 0 {
					frame[byteIdx] |= (nib & 0xF) << 4
				} else {
					frame[byteIdx] |= nib & 0xF
				}

				s := int32(nib)
				if s >= 8 {
					s -= 16
				}
				sum := int64(int32(1)<<scale*s) << 11
				sum += 1024
				pcm := clampInt16(sum >> 11)
				hst2[c] = hst1[c]
				hst1[c] = pcm
			}

			w.RW(frame)
		}
	}

	return w.Bytes()
}

// bestScale finds the scale exponent (0-12) that minimizes quantization
// error for samples with predictor fixed at 0, and returns the chosen
// nibble for each sample.
func bestScale(samples []int16, hst1, hst2 int16) (int, []byte) {
	bestErr := int64(math.MaxInt64)
	bestScale := 0
	var bestNibbles []byte

	for scale := 0; scale <= 12; scale++ {
		nibbles := make([]byte, len(samples))
		var total int64
		for i, x := range samples {
			bestNibErr := int64(math.MaxInt64)
			var bestNib byte
			for nib := 0; nib < 16; nib++ {
				s := int32(nib)
				if s >= 8 {
					s -= 16
				}
				sum := int64(int32(1)<<uint(scale)*s) << 11
				sum += 1024
				pcm := clampInt16(sum >> 11)
				diff := int64(pcm) - int64(x)
				if diff < 0 {
					diff = -diff
				}
				if diff < bestNibErr {
					bestNibErr = diff
					bestNib = byte(nib)
				}
			}
			nibbles[i] = bestNib
			total += bestNibErr * bestNibErr
		}
		if total < bestErr {
			bestErr = total
			bestScale = scale
			bestNibbles = nibbles
		}
	}

	return bestScale, bestNibbles
}
