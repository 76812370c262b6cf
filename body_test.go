package hxaudio

import (
	"testing"

	"github.com/kelindar/hxaudio/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripBody(t *testing.T, v Variant, write func(*stream.Stream) error, read func(*stream.Stream, readContext) error, fileSize uint32) {
	t.Helper()
	w := stream.NewWriter(v.Endian())
	require.NoError(t, write(w))

	r := stream.NewReader(w.Bytes(), v.Endian())
	require.NoError(t, read(r, readContext{Variant: v, FileSize: fileSize}))
}

func TestSwitchResDataRoundTrip(t *testing.T) {
	orig := &SwitchResData{
		Flags: 1, Unknown1: 2, Unknown2: 3, StartIndex: 4,
		Cases: []SwitchCase{{Index: 0, Link: CUUID(10)}, {Index: 1, Link: CUUID(20)}},
	}
	got := &SwitchResData{}
	roundTripBody(t, HXD,
		func(s *stream.Stream) error { return orig.writeTo(s, HXD) },
		func(s *stream.Stream, ctx readContext) error { return got.readFrom(s, ctx) },
		0,
	)
	assert.Equal(t, orig, got)
}

func TestRandomResDataRoundTrip(t *testing.T) {
	orig := &RandomResData{
		Flags: 7, Offset: 1.5, Throw: 0.25,
		Choices: []RandomChoice{{Probability: 0.5, Link: CUUID(1)}, {Probability: 0.5, Link: CUUID(2)}},
	}
	got := &RandomResData{}
	roundTripBody(t, HXC,
		func(s *stream.Stream) error { return orig.writeTo(s, HXC) },
		func(s *stream.Stream, ctx readContext) error { return got.readFrom(s, ctx) },
		0,
	)
	assert.Equal(t, orig, got)
}

func TestEventResDataRoundTrip(t *testing.T) {
	orig := &EventResData{Type: 3, Name: "Footstep", Flags: 0x1, Link: CUUID(99), Floats: [4]float32{1, 2, 3, 4}}
	got := &EventResData{}
	roundTripBody(t, HX2,
		func(s *stream.Stream) error { return orig.writeTo(s, HX2) },
		func(s *stream.Stream, ctx readContext) error { return got.readFrom(s, ctx) },
		0,
	)
	assert.Equal(t, orig, got)
}

func TestProgramResDataBlobSizeAndLinkScan(t *testing.T) {
	// classNameLen=16, fileSize=4+16+8+9 so blobSize=9 bytes: "E" + CUUID
	// high word == 3 encoded big-endian, consumed within the tiny blob.
	v := HXD // big-endian
	data := []byte{'E', 0, 0, 0, 3, 0, 0, 0, 7}
	fileSize := uint32(4 + 16 + 8 + len(data))

	w := stream.NewWriter(v.Endian())
	p := &ProgramResData{Data: data}
	require.NoError(t, p.writeTo(w, v))

	got := &ProgramResData{}
	r := stream.NewReader(w.Bytes(), v.Endian())
	require.NoError(t, got.readFrom(r, readContext{Variant: v, FileSize: fileSize, ClassNameLen: 16}))

	assert.Equal(t, data, got.Data)
	require.Len(t, got.Links, 1)
	assert.Equal(t, CUUID(uint64(3)<<32|7), got.Links[0])
}

func TestProgramResDataNegativeBlobSizeClampsToZero(t *testing.T) {
	p := &ProgramResData{}
	err := p.readFrom(stream.NewReader(nil, stream.Big), readContext{FileSize: 0, ClassNameLen: 1000})
	require.NoError(t, err)
	assert.Empty(t, p.Data)
}

func TestWavResDataSingleDefaultLink(t *testing.T) {
	orig := &WavResData{Obj: WavResObj{ID: 5, Flags: 0}, Default: CUUID(77)}
	got := &WavResData{}
	roundTripBody(t, HXG,
		func(s *stream.Stream) error { return orig.writeTo(s, HXG) },
		func(s *stream.Stream, ctx readContext) error { return got.readFrom(s, ctx) },
		0,
	)
	assert.Equal(t, CUUID(77), got.Default)
	assert.Empty(t, got.Links)
}

func TestWavResDataHXGRejectsNonZeroDefaultWithMultiple(t *testing.T) {
	orig := &WavResData{
		Obj:     WavResObj{ID: 1, Flags: flagMultiple},
		Default: CUUID(1), // invalid: HXG requires zero default when multiple is set
		Links:   []WavLanguageLink{{Language: LangEN, Target: CUUID(2)}},
	}
	w := stream.NewWriter(HXG.Endian())
	require.NoError(t, orig.writeTo(w, HXG))

	got := &WavResData{}
	err := got.readFrom(stream.NewReader(w.Bytes(), HXG.Endian()), readContext{Variant: HXG})
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestWavResObjNamePresenceByVariant(t *testing.T) {
	orig := WavResObj{ID: 1, Name: "foo", Floats: [3]float32{1, 2, 3}, Flags: 9}

	w := stream.NewWriter(HXC.Endian())
	require.NoError(t, orig.writeTo(w, HXC))
	got := WavResObj{}
	require.NoError(t, got.readFrom(stream.NewReader(w.Bytes(), HXC.Endian()), readContext{Variant: HXC}))
	assert.Equal(t, "foo", got.Name)

	w2 := stream.NewWriter(HXG.Endian())
	require.NoError(t, orig.writeTo(w2, HXG))
	got2 := WavResObj{}
	require.NoError(t, got2.readFrom(stream.NewReader(w2.Bytes(), HXG.Endian()), readContext{Variant: HXG}))
	assert.Empty(t, got2.Name, "HXG carries no name in the wire format")
}
