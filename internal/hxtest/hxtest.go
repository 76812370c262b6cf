// Package hxtest builds synthetic in-memory containers for tests,
// replacing the teacher's on-disk fixture directory (there is no
// external test-data checkout to depend on here).
package hxtest

import (
	"fmt"
	"testing"

	"github.com/kelindar/hxaudio"
	"github.com/stretchr/testify/require"
)

// Store is an in-memory stand-in for a filesystem, backing the
// ReadFunc/WriteFunc callbacks a Container needs without touching disk.
type Store struct {
	files map[string][]byte
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{files: map[string][]byte{}}
}

// Put seeds filename with data, as if it had already been written.
func (s *Store) Put(filename string, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[filename] = buf
}

// Read implements hxaudio.ReadFunc.
func (s *Store) Read(filename string, offset, size uint32) ([]byte, error) {
	data, ok := s.files[filename]
	if !ok {
		return nil, fmt.Errorf("hxtest: no such file %q", filename)
	}
	if offset == 0 && size == 0 {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}
	end := int(offset) + int(size)
	if end > len(data) {
		end = len(data)
	}
	if int(offset) > end {
		return nil, nil
	}
	out := make([]byte, end-int(offset))
	copy(out, data[offset:end])
	return out, nil
}

// Write implements hxaudio.WriteFunc.
func (s *Store) Write(filename string, data []byte, _ uint32) error {
	s.Put(filename, data)
	return nil
}

// Build returns a synthetic container for variant: one EventResData
// named "Explosion" linking to a WavResData with a single English
// language link to a WaveFileIdObj carrying a short inline PCM payload.
func Build(variant hxaudio.Variant) *hxaudio.Container {
	c := hxaudio.New(variant)

	eventID := hxaudio.CUUID(1)
	wavID := hxaudio.CUUID(2)
	waveID := hxaudio.CUUID(3)

	pcm := []byte{0, 0, 1, 0, 2, 0, 3, 0}

	wave := &hxaudio.WaveFileIdObj{
		Ptr:           hxaudio.IdObjPtr{ID: 1},
		FormatCode:    hxaudio.FormatPCM,
		Channels:      1,
		SampleRate:    22050,
		BitsPerSample: 16,
		Inline:        pcm,
	}

	wav := &hxaudio.WavResData{
		Obj: hxaudio.WavResObj{ID: 1, Flags: 0x02},
		Links: []hxaudio.WavLanguageLink{
			{Language: hxaudio.LangEN, Target: waveID},
		},
	}

	event := &hxaudio.EventResData{Type: 1, Name: "Explosion", Link: wavID}

	c.AddEntry(&hxaudio.Entry{CUUID: eventID, Class: hxaudio.ClassEventResData, Body: event})
	c.AddEntry(&hxaudio.Entry{
		CUUID: wavID, Class: hxaudio.ClassWavResData, Body: wav,
		LanguageLinks: []hxaudio.LanguageLink{{Language: hxaudio.LangEN, Target: waveID}},
	})
	c.AddEntry(&hxaudio.Entry{CUUID: waveID, Class: hxaudio.ClassWaveFileIdObj, Body: wave})

	return c
}

// With builds a fixture container for variant, round-trips it through
// an in-memory Store, and hands the re-read container to fn.
func With(t *testing.T, variant hxaudio.Variant, fn func(*testing.T, *hxaudio.Container)) {
	t.Helper()

	store := NewStore()
	original := Build(variant)
	require.NoError(t, original.Write("fixture", hxaudio.WithWriteFunc(store.Write)))

	c, err := hxaudio.Open("fixture", variant, hxaudio.WithReadFunc(store.Read))
	require.NoError(t, err)

	fn(t, c)
}
