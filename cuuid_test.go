package hxaudio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCUUIDZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.False(t, CUUID(1).IsZero())
}

func TestCUUIDString(t *testing.T) {
	assert.Equal(t, "0000000000000001", CUUID(1).String())
	assert.Equal(t, "DEADBEEFCAFEF00D", CUUID(0xDEADBEEFCAFEF00D).String())
}
