package hxaudio

import (
	"fmt"

	"github.com/kelindar/hxaudio/internal/charset"
	"github.com/kelindar/hxaudio/internal/stream"
)

// flagMultiple marks a WavResObj as carrying a per-language link list
// instead of a single default CUUID.
const flagMultiple = 0x02

// WavResObj is the fixed header embedded as the first field of
// WavResData. Its name is only present in the wire format on the PC (HXC)
// variant, as a 32-bit length followed by that many bytes, and is bounded
// by 256 bytes; every other variant's stream carries no name at all, and
// the in-memory Name is cleared on read.
type WavResObj struct {
	ID     uint32
	Name   string
	Size   uint32 // HXG, HX2 only
	Floats [3]float32
	Flags  uint8
}

const wavResObjNameSize = 256

func (w *WavResObj) readFrom(s *stream.Stream, ctx readContext) error {
	s.RW32(&w.ID)

	info := ctx.Variant.info()
	if info.hasName {
		var n uint32
		s.RW32(&n)
		buf := make([]byte, n)
		s.RW(buf)
		if len(buf) > wavResObjNameSize {
			buf = buf[:wavResObjNameSize]
		}
		w.Name = charset.DecodeWindows1252(buf)
	} else {
		w.Name = ""
	}

	if info.hasSize {
		s.RW32(&w.Size)
	}

	for i := range w.Floats {
		s.RWFloat(&w.Floats[i])
	}
	s.RW8(&w.Flags)
	return nil
}

func (w *WavResObj) writeTo(s *stream.Stream, v Variant) error {
	s.RW32(&w.ID)

	info := v.info()
	if info.hasName {
		buf := charset.EncodeWindows1252(w.Name, wavResObjNameSize)
		n := uint32(0)
		for int(n) < len(buf) && buf[n] != 0 {
			n++
		}
		s.RW32(&n)
		s.RW(buf[:n])
	}

	if info.hasSize {
		s.RW32(&w.Size)
	}

	for i := range w.Floats {
		s.RWFloat(&w.Floats[i])
	}
	s.RW8(&w.Flags)
	return nil
}

// WavLanguageLink is WavResData's own inline (language, target) pair, used
// when its WavResObj sets the "multiple" flag. Unlike the index's
// per-entry language-link records (see Entry.LanguageLinks), it carries no
// opaque word — the body is self-contained, with no need to round-trip an
// opaque index field.
type WavLanguageLink struct {
	Language Language
	Target   CUUID
}

// WavResData links an event to the WaveFileIdObj(s) that actually carry
// playable audio, either a single default link or one per language.
type WavResData struct {
	Obj     WavResObj
	Default CUUID
	Links   []WavLanguageLink
}

func (w *WavResData) Class() Class { return ClassWavResData }

func (w *WavResData) readFrom(s *stream.Stream, ctx readContext) error {
	if err := w.Obj.readFrom(s, ctx); err != nil {
		return err
	}

	def := uint64(w.Default)
	s.RWCUUID(&def)
	w.Default = CUUID(def)

	if w.Obj.Flags&flagMultiple == 0 {
		w.Links = nil
		return nil
	}

	if ctx.Variant == HXG && !w.Default.IsZero() {
		return fmt.Errorf("%w: HXG WavResData with multiple links must have a zero default CUUID", ErrHeaderMismatch)
	}

	var count uint32
	s.RW32(&count)
	w.Links = make([]WavLanguageLink, count)
	for i := range w.Links {
		var code uint32
		s.RWMagic(&code)
		var target uint64
		s.RWCUUID(&target)
		w.Links[i] = WavLanguageLink{Language: languageFromCode(code), Target: CUUID(target)}
	}
	return nil
}

func (w *WavResData) writeTo(s *stream.Stream, v Variant) error {
	if err := w.Obj.writeTo(s, v); err != nil {
		return err
	}

	def := uint64(w.Default)
	s.RWCUUID(&def)

	if w.Obj.Flags&flagMultiple == 0 {
		return nil
	}

	count := uint32(len(w.Links))
	s.RW32(&count)
	for _, link := range w.Links {
		code := link.Language.code()
		s.RWMagic(&code)
		target := uint64(link.Target)
		s.RWCUUID(&target)
	}
	return nil
}
