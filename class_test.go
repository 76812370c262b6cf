package hxaudio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNameCrossVersion(t *testing.T) {
	// Cross-version classes never carry the platform tag, regardless of variant.
	for _, v := range []Variant{HXD, HXC, HX2, HXG, HXX, HX3} {
		assert.Equal(t, "CEventResData", ClassEventResData.ClassName(v))
		assert.Equal(t, "CSwitchResData", ClassSwitchResData.ClassName(v))
		assert.Equal(t, "CRandomResData", ClassRandomResData.ClassName(v))
		assert.Equal(t, "CProgramResData", ClassProgramResData.ClassName(v))
	}
}

func TestClassNamePlatformTagged(t *testing.T) {
	cases := []struct {
		v    Variant
		want string
	}{
		{HXD, "CPCWavResData"},
		{HXC, "CPCWavResData"},
		{HX2, "CPS2WavResData"},
		{HXG, "CGCWavResData"},
		{HXX, "CXBoxWavResData"},
		{HX3, "CPS3WavResData"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassWavResData.ClassName(c.v))
	}
}

func TestParseClassNameRoundTrip(t *testing.T) {
	for _, v := range []Variant{HXD, HXC, HX2, HXG, HXX, HX3} {
		for class := range classRegistry {
			name := class.ClassName(v)
			got, ok := ParseClassName(name)
			assert.True(t, ok, "variant %v class %v name %q", v, class, name)
			assert.Equal(t, class, got)
		}
	}
}

func TestParseClassNameUnknown(t *testing.T) {
	_, ok := ParseClassName("CBogusClass")
	assert.False(t, ok)

	_, ok = ParseClassName("NotEvenAClassName")
	assert.False(t, ok)
}

func TestParseClassNameXBoxNotMistakenForPC(t *testing.T) {
	// "XBox" must be stripped whole, not partially matched by a shorter tag.
	got, ok := ParseClassName("CXBoxWavResData")
	assert.True(t, ok)
	assert.Equal(t, ClassWavResData, got)
}
