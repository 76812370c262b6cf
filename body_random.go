package hxaudio

import "github.com/kelindar/hxaudio/internal/stream"

// RandomChoice is one weighted entry in a RandomResData's pick list.
type RandomChoice struct {
	Probability float32
	Link        CUUID
}

// RandomResData picks at random, weighted by Probability, among its
// linked resources.
type RandomResData struct {
	Flags   uint32
	Offset  float32
	Throw   float32
	Choices []RandomChoice
}

func (r *RandomResData) Class() Class { return ClassRandomResData }

func (r *RandomResData) readFrom(s *stream.Stream, _ readContext) error {
	s.RW32(&r.Flags)
	s.RWFloat(&r.Offset)
	s.RWFloat(&r.Throw)

	var count uint32
	s.RW32(&count)
	r.Choices = make([]RandomChoice, count)
	for i := range r.Choices {
		s.RWFloat(&r.Choices[i].Probability)
		link := uint64(r.Choices[i].Link)
		s.RWCUUID(&link)
		r.Choices[i].Link = CUUID(link)
	}
	return nil
}

func (r *RandomResData) writeTo(s *stream.Stream, _ Variant) error {
	s.RW32(&r.Flags)
	s.RWFloat(&r.Offset)
	s.RWFloat(&r.Throw)

	count := uint32(len(r.Choices))
	s.RW32(&count)
	for _, c := range r.Choices {
		prob := c.Probability
		s.RWFloat(&prob)
		link := uint64(c.Link)
		s.RWCUUID(&link)
	}
	return nil
}
