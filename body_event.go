package hxaudio

import "github.com/kelindar/hxaudio/internal/stream"

// EventResData is a named trigger that links to a single playable
// resource entry — typically a WavResData, or one of
// Switch/Random/ProgramResData.
type EventResData struct {
	Type  uint32
	Name  string
	Flags uint32
	Link  CUUID
	Floats [4]float32
}

func (e *EventResData) Class() Class { return ClassEventResData }

func (e *EventResData) readFrom(s *stream.Stream, _ readContext) error {
	s.RW32(&e.Type)
	s.RWString(&e.Name)
	s.RW32(&e.Flags)
	link := uint64(e.Link)
	s.RWCUUID(&link)
	e.Link = CUUID(link)
	for i := range e.Floats {
		s.RWFloat(&e.Floats[i])
	}
	return nil
}

func (e *EventResData) writeTo(s *stream.Stream, _ Variant) error {
	s.RW32(&e.Type)
	s.RWString(&e.Name)
	s.RW32(&e.Flags)
	link := uint64(e.Link)
	s.RWCUUID(&link)
	for i := range e.Floats {
		s.RWFloat(&e.Floats[i])
	}
	return nil
}
