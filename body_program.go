package hxaudio

import (
	"encoding/binary"

	"github.com/kelindar/hxaudio/internal/stream"
)

// ProgramResData is a small bytecode program whose grammar this library
// does not decode; its body is captured verbatim, and a heuristic scan
// recovers any CUUID references it may embed. Per spec, the recovered
// list is advisory, not authoritative — callers should not rely on it for
// anything beyond a best-effort dependency hint.
type ProgramResData struct {
	Data []byte

	// Links holds CUUIDs the heuristic scan recovered from Data whose
	// high 32 bits equal 3. It is rebuilt on every read and ignored on
	// write (Data is written back verbatim, so the scan's output cannot
	// drift from the bytes it was derived from).
	Links []CUUID
}

func (p *ProgramResData) Class() Class { return ClassProgramResData }

func (p *ProgramResData) readFrom(s *stream.Stream, ctx readContext) error {
	blobSize := int(ctx.FileSize) - (4 + int(ctx.ClassNameLen) + 8)
	if blobSize < 0 {
		blobSize = 0
	}
	p.Data = make([]byte, blobSize)
	s.RW(p.Data)
	p.Links = scanProgramLinks(p.Data, ctx.Variant)
	return nil
}

func (p *ProgramResData) writeTo(s *stream.Stream, _ Variant) error {
	s.RW(p.Data)
	return nil
}

// scanProgramLinks implements the ProgramResData heuristic: walk the blob
// looking for the byte 'E', skip one additional byte on HXC, then read a
// CUUID (high word, low word). On HX2 the two halves are further swapped
// after reading. A recovered CUUID is kept only when its high 32 bits
// equal 3, the convention the heuristic uses to distinguish a real
// embedded link from an incidental 'E' byte.
func scanProgramLinks(data []byte, v Variant) []CUUID {
	var links []CUUID
	order := byteOrder(v.Endian())

	for i := 0; i < len(data); i++ {
		if data[i] != 'E' {
			continue
		}

		pos := i + 1
		if v == HXC {
			pos++
		}
		if pos+8 > len(data) {
			continue
		}

		hi := order.Uint32(data[pos : pos+4])
		lo := order.Uint32(data[pos+4 : pos+8])
		if v == HX2 {
			hi, lo = lo, hi
		}

		if hi == 3 {
			links = append(links, CUUID(uint64(hi)<<32|uint64(lo)))
		}
	}

	return links
}

func byteOrder(e Endian) binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
