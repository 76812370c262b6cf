package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTrimsTrailingZero(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf, "explosion_01")
	assert.Equal(t, "explosion_01", DecodeWindows1252(buf))
}

func TestDecodeEmpty(t *testing.T) {
	assert.Equal(t, "", DecodeWindows1252(make([]byte, 8)))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	name := "rain_loop"
	buf := EncodeWindows1252(name, 32)
	assert.Len(t, buf, 32)
	assert.Equal(t, name, DecodeWindows1252(buf))
}

func TestEncodeTruncatesToBufferSize(t *testing.T) {
	buf := EncodeWindows1252("this name is far too long for an eight byte field", 8)
	assert.Len(t, buf, 8)
}
