package hxaudio

import "github.com/kelindar/hxaudio/internal/stream"

// SwitchCase selects a linked resource by a caller-supplied case index.
type SwitchCase struct {
	Index uint32
	Link  CUUID
}

// SwitchResData dispatches to one of several linked resources based on an
// external case index.
type SwitchResData struct {
	Flags      uint32
	Unknown1   uint32
	Unknown2   uint32
	StartIndex uint32
	Cases      []SwitchCase
}

func (r *SwitchResData) Class() Class { return ClassSwitchResData }

func (r *SwitchResData) readFrom(s *stream.Stream, _ readContext) error {
	s.RW32(&r.Flags)
	s.RW32(&r.Unknown1)
	s.RW32(&r.Unknown2)
	s.RW32(&r.StartIndex)

	var count uint32
	s.RW32(&count)
	r.Cases = make([]SwitchCase, count)
	for i := range r.Cases {
		s.RW32(&r.Cases[i].Index)
		link := uint64(r.Cases[i].Link)
		s.RWCUUID(&link)
		r.Cases[i].Link = CUUID(link)
	}
	return nil
}

func (r *SwitchResData) writeTo(s *stream.Stream, _ Variant) error {
	s.RW32(&r.Flags)
	s.RW32(&r.Unknown1)
	s.RW32(&r.Unknown2)
	s.RW32(&r.StartIndex)

	count := uint32(len(r.Cases))
	s.RW32(&count)
	for _, c := range r.Cases {
		idx := c.Index
		s.RW32(&idx)
		link := uint64(c.Link)
		s.RWCUUID(&link)
	}
	return nil
}
