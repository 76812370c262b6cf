package hxaudio

import (
	"fmt"
	"strings"

	"github.com/kelindar/hxaudio/internal/stream"
	"github.com/kelindar/hxaudio/internal/wave"
)

// flagExternal marks an IdObjPtr/WaveFileIdObj whose payload lives in a
// sibling stream file rather than inline in this container.
const flagExternal = 0x01

// IdObjPtr is the fixed header embedded as the first field of
// WaveFileIdObj. Every variant but HXG stores an 8-bit flags byte; HXG
// widens it to a full 32-bit word followed by a 32-bit opaque successor
// field.
type IdObjPtr struct {
	ID        uint32
	Float     float32
	Flags     uint32
	Successor uint32 // HXG only
}

func (o *IdObjPtr) readFrom(s *stream.Stream, ctx readContext) error {
	s.RW32(&o.ID)
	s.RWFloat(&o.Float)
	if ctx.Variant == HXG {
		s.RW32(&o.Flags)
		s.RW32(&o.Successor)
		return nil
	}
	var b uint8
	s.RW8(&b)
	o.Flags = uint32(b)
	return nil
}

func (o *IdObjPtr) writeTo(s *stream.Stream, v Variant) error {
	s.RW32(&o.ID)
	s.RWFloat(&o.Float)
	if v == HXG {
		s.RW32(&o.Flags)
		s.RW32(&o.Successor)
		return nil
	}
	b := uint8(o.Flags)
	s.RW8(&b)
	return nil
}

// WaveFileIdObj is the leaf of the asset graph: a single platform audio
// stream wrapped in a RIFF/WAVE envelope, either inline or referencing a
// sibling stream file.
type WaveFileIdObj struct {
	Ptr IdObjPtr

	Name string // derived by the post-read naming pass; empty until then

	Filename string // only meaningful when external

	FormatCode    AudioFormat
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16

	ExternalSize   uint32 // external only: size within the sibling stream file
	ExternalOffset uint32 // external only: offset within the sibling stream file

	Inline   []byte // raw payload bytes, present only when not external
	Trailing []byte // bytes left over after the declared payload, verbatim
}

func (w *WaveFileIdObj) Class() Class { return ClassWaveFileIdObj }

// External reports whether the payload lives in a sibling stream file.
func (w *WaveFileIdObj) External() bool {
	return w.Ptr.Flags&flagExternal != 0
}

func (w *WaveFileIdObj) readFrom(s *stream.Stream, ctx readContext) error {
	start := s.Pos()
	if err := w.Ptr.readFrom(s, ctx); err != nil {
		return err
	}

	external := w.External()
	if external {
		s.RWString(&w.Filename)
		// Preserve the last-committed behavior: HX2 strips the legacy
		// ".\" prefix on read and re-adds it on write (see DESIGN.md).
		if ctx.Variant == HX2 {
			w.Filename = strings.TrimPrefix(w.Filename, `.\`)
		}
	} else {
		w.Filename = ""
	}

	hdrBuf := make([]byte, wave.HeaderSize)
	s.RW(hdrBuf)
	hdr, err := wave.Decode(hdrBuf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWaveHeaderInvalid, err)
	}
	w.FormatCode = AudioFormat(hdr.FormatCode)
	w.Channels = hdr.Channels
	w.SampleRate = hdr.SampleRate
	w.BitsPerSample = hdr.BitsPerSample

	switch {
	case external && !hdr.External:
		return fmt.Errorf("%w: external WaveFileIdObj must use the datx subchunk", ErrHeaderMismatch)
	case !external && hdr.External:
		return fmt.Errorf("%w: inline WaveFileIdObj must use the data subchunk", ErrHeaderMismatch)
	}

	if external {
		s.RW32(&w.ExternalSize)
		s.RW32(&w.ExternalOffset)
		w.Inline = nil
	} else {
		w.Inline = make([]byte, hdr.DataSize)
		s.RW(w.Inline)
	}

	if consumed := s.Pos() - start; int(ctx.FileSize) > consumed {
		w.Trailing = make([]byte, int(ctx.FileSize)-consumed)
		s.RW(w.Trailing)
	} else {
		w.Trailing = nil
	}

	return nil
}

func (w *WaveFileIdObj) writeTo(s *stream.Stream, v Variant) error {
	if err := w.Ptr.writeTo(s, v); err != nil {
		return err
	}

	external := w.External()
	if external {
		filename := w.Filename
		if v == HX2 {
			filename = `.\` + filename
		}
		s.RWString(&filename)
	}

	hdr := wave.Header{
		FormatCode:    uint16(w.FormatCode),
		Channels:      w.Channels,
		SampleRate:    w.SampleRate,
		BitsPerSample: w.BitsPerSample,
		External:      external,
	}
	if external {
		hdr.DataSize = 8
	} else {
		hdr.DataSize = uint32(len(w.Inline))
	}
	s.RW(hdr.Encode())

	if external {
		size, offset := w.ExternalSize, w.ExternalOffset
		s.RW32(&size)
		s.RW32(&offset)
	} else {
		s.RW(w.Inline)
	}

	s.RW(w.Trailing)
	return nil
}
