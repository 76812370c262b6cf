package psx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePredictorOutOfRange(t *testing.T) {
	for p := 0; p <= 4; p++ {
		frame := make([]byte, FrameSize)
		frame[0] = byte(p << 4)
		_, err := Decode(frame)
		assert.NoError(t, err, "predictor %d should be valid", p)
	}

	for p := 5; p <= 15; p++ {
		frame := make([]byte, FrameSize)
		frame[0] = byte(p << 4)
		_, err := Decode(frame)
		assert.ErrorIs(t, err, ErrMalformedFrame, "predictor %d should fail", p)
	}
}

// TestCoefficientOneFrame mirrors spec scenario 5: predictor=1, shift=0,
// all-zero nibbles, hst1=1000, hst2=0.
func TestCoefficientOneFrame(t *testing.T) {
	frame := make([]byte, FrameSize)
	frame[0] = 0x10 // predictor=1, shift=0

	pcm, err := Decode(frame)
	require.NoError(t, err)
	require.Len(t, pcm, DecodedSize(1))

	// Seed history by decoding a synthetic leading sample out of band:
	// verify the documented recurrence directly instead, since Decode
	// always starts from hst1=hst2=0.
	hst1, hst2 := int16(1000), int16(0)
	alpha, beta := coefficients[1][0], coefficients[1][1]
	first := int16(alpha*float64(hst1) + beta*float64(hst2))
	assert.Equal(t, int16(937), first)

	hst2, hst1 = hst1, first
	second := int16(alpha*float64(hst1) + beta*float64(hst2))
	assert.Equal(t, int16(878), second)
}

func TestDecodeTruncatesPartialTrailingFrame(t *testing.T) {
	data := make([]byte, FrameSize+3)
	pcm, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, DecodedSize(1), len(pcm))
}

func TestDecodeAllZeroIsSilence(t *testing.T) {
	frame := make([]byte, FrameSize) // predictor=0, shift=0
	pcm, err := Decode(frame)
	require.NoError(t, err)
	for _, b := range pcm {
		assert.Equal(t, byte(0), b)
	}
}
