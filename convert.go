package hxaudio

import (
	"errors"
	"fmt"

	"github.com/kelindar/hxaudio/internal/dsp"
	"github.com/kelindar/hxaudio/internal/psx"
	"github.com/kelindar/hxaudio/internal/stream"
)

// Convert transforms raw audio bytes from one format to another. PCM→PCM
// is a copy; DSP→PCM and PSX→PCM invoke the respective decoders; PCM→DSP
// invokes the DSP encoder (predictor fixed at 0, scale chosen per
// frame); any other pair fails with ErrUnsupportedConversion.
//
// DSP-ADPCM headers are always big-endian (the format is intrinsically
// GameCube's), independent of the container variant the caller got data
// bytes from. channels and sampleRate are ignored by branches that don't
// need them.
func Convert(data []byte, from, to AudioFormat, channels int, sampleRate uint32) ([]byte, error) {
	if channels <= 0 {
		channels = 1
	}

	switch {
	case from == FormatPCM && to == FormatPCM:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil

	case from == FormatDSP && to == FormatPCM:
		s := stream.NewReader(data, stream.Big)
		pcm, _, err := dsp.Decode(s, channels)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedConversion, err)
		}
		return pcm, nil

	case from == FormatPSX && to == FormatPCM:
		pcm, err := psx.Decode(data)
		if err != nil {
			if errors.Is(err, psx.ErrMalformedFrame) {
				return nil, ErrMalformedFrame
			}
			return nil, err
		}
		return pcm, nil

	case from == FormatPCM && to == FormatDSP:
		return dsp.Encode(deinterleavePCM16(data, channels), sampleRate), nil

	default:
		return nil, fmt.Errorf("%w: format %v to %v", ErrUnsupportedConversion, from, to)
	}
}

// deinterleavePCM16 splits little-endian interleaved PCM16 bytes into one
// sample slice per channel.
func deinterleavePCM16(data []byte, channels int) [][]int16 {
	n := len(data) / 2 / channels
	out := make([][]int16, channels)
	for c := range out {
		out[c] = make([]int16, n)
	}
	for i := 0; i < n; i++ {
		for c := 0; c < channels; c++ {
			idx := (i*channels + c) * 2
			if idx+1 >= len(data) {
				continue
			}
			out[c][i] = int16(uint16(data[idx]) | uint16(data[idx+1])<<8)
		}
	}
	return out
}

// Payload returns e's raw audio bytes, fetching them through the
// container's configured ReadFunc when the entry is external.
func (c *Container) Payload(e *Entry) ([]byte, error) {
	wf, ok := e.Body.(*WaveFileIdObj)
	if !ok {
		return nil, fmt.Errorf("%w: entry %s is not a wave-file entry", ErrInvalidArgument, e.CUUID)
	}
	if !wf.External() {
		return wf.Inline, nil
	}

	if c.onRead == nil {
		return nil, fmt.Errorf("%w: entry %s is external but no read function is configured", ErrInvalidArgument, e.CUUID)
	}
	buf, err := c.onRead(wf.Filename, wf.ExternalOffset, wf.ExternalSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailed, err)
	}
	if buf == nil {
		return nil, fmt.Errorf("%w: external read for %q returned no data", ErrIOFailed, wf.Filename)
	}
	return buf, nil
}

// Decode returns e's audio stream decoded to interleaved PCM16, using
// the format carried by its WaveFileIdObj envelope.
func (c *Container) Decode(e *Entry) (*AudioStream, error) {
	wf, ok := e.Body.(*WaveFileIdObj)
	if !ok {
		return nil, fmt.Errorf("%w: entry %s is not a wave-file entry", ErrInvalidArgument, e.CUUID)
	}

	payload, err := c.Payload(e)
	if err != nil {
		return nil, err
	}

	pcm, err := Convert(payload, wf.FormatCode, FormatPCM, int(wf.Channels), wf.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", e.CUUID, err)
	}

	channels := int(wf.Channels)
	if channels <= 0 {
		channels = 1
	}

	return &AudioStream{
		Channels:   channels,
		Endian:     LittleEndian,
		SampleRate: wf.SampleRate,
		NumSamples: uint32(len(pcm) / 2 / channels),
		Format:     FormatPCM,
		Owner:      e.CUUID,
		Data:       pcm,
	}, nil
}
