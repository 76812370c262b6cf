package hxaudio

import (
	"fmt"
	"iter"

	"github.com/kelindar/hxaudio/internal/stream"
)

// indexMagic is "INDX" read/written via RWMagic's fixed natural byte
// order, independent of the container's own endianness.
const indexMagic = 0x58444E49

// Container is a mapping from CUUID to entry, preserving insertion
// order, plus the variant and index-table bookkeeping needed to write
// itself back out.
type Container struct {
	Variant     Variant
	IndexOffset uint32
	IndexType   uint32

	entries []*Entry
	lookup  map[CUUID]int

	filename string
	onRead   ReadFunc
	onWrite  WriteFunc
	onError  ErrorFunc
	strict   bool
}

// New returns an empty Container for the given variant. It exists
// mainly so tests and fixture builders can assemble a synthetic entry
// graph to exercise Write and the round-trip path; the library itself
// only ever round-trips what it reads, it does not offer an authoring
// API beyond direct struct construction.
func New(variant Variant, opts ...Option) *Container {
	c := &Container{Variant: variant, IndexType: 2, lookup: map[CUUID]int{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open reads filename through the configured ReadFunc (see WithReadFunc)
// and decodes it as a container of the given variant.
func Open(filename string, variant Variant, opts ...Option) (*Container, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrInvalidArgument)
	}

	c := &Container{Variant: variant, filename: filename, lookup: map[CUUID]int{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.onRead == nil {
		return nil, fmt.Errorf("%w: no read function configured", ErrInvalidArgument)
	}

	buf, err := c.onRead(filename, 0, 0)
	if err != nil {
		return nil, c.fail(fmt.Errorf("%w: %v", ErrIOFailed, err))
	}
	if buf == nil {
		return nil, c.fail(fmt.Errorf("%w: read callback returned no data for %q", ErrIOFailed, filename))
	}

	if err := c.readAll(buf); err != nil {
		return nil, c.fail(err)
	}
	return c, nil
}

// Write serializes the container and persists it through the configured
// WriteFunc (see WithWriteFunc), applying any additional options first.
func (c *Container) Write(filename string, opts ...Option) error {
	for _, opt := range opts {
		opt(c)
	}
	if c.onWrite == nil {
		return fmt.Errorf("%w: no write function configured", ErrInvalidArgument)
	}

	buf, err := c.writeAll()
	if err != nil {
		return c.fail(err)
	}
	if err := c.onWrite(filename, buf, 0); err != nil {
		return c.fail(fmt.Errorf("%w: %v", ErrIOFailed, err))
	}
	return nil
}

func (c *Container) fail(err error) error {
	c.reportError(err)
	return err
}

func (c *Container) reportError(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}

// Lookup returns the entry addressed by id, if any.
func (c *Container) Lookup(id CUUID) (*Entry, bool) {
	idx, ok := c.lookup[id]
	if !ok {
		return nil, false
	}
	return c.entries[idx], true
}

// Entries iterates the container's entries in insertion (file) order.
func (c *Container) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Links iterates every (source, target) CUUID edge recorded in the
// index's per-entry link lists, across the whole container.
func (c *Container) Links() iter.Seq2[CUUID, CUUID] {
	return func(yield func(CUUID, CUUID) bool) {
		for _, e := range c.entries {
			for _, target := range e.Links {
				if !yield(e.CUUID, target) {
					return
				}
			}
		}
	}
}

// LanguageLinks iterates every (source CUUID, LanguageLink) pair
// recorded in the index's per-entry language-link lists, across the
// whole container.
func (c *Container) LanguageLinks() iter.Seq2[CUUID, LanguageLink] {
	return func(yield func(CUUID, LanguageLink) bool) {
		for _, e := range c.entries {
			for _, ll := range e.LanguageLinks {
				if !yield(e.CUUID, ll) {
					return
				}
			}
		}
	}
}

// AddEntry appends e to the container and indexes it by CUUID. It is
// meant for test fixtures and the mock package, not general authoring.
func (c *Container) AddEntry(e *Entry) {
	if c.lookup == nil {
		c.lookup = map[CUUID]int{}
	}
	c.lookup[e.CUUID] = len(c.entries)
	c.entries = append(c.entries, e)
}

// newBody returns a zero-valued Body for c, or nil if c has no
// registered concrete type.
func newBody(c Class) Body {
	switch c {
	case ClassEventResData:
		return &EventResData{}
	case ClassWavResData:
		return &WavResData{}
	case ClassSwitchResData:
		return &SwitchResData{}
	case ClassRandomResData:
		return &RandomResData{}
	case ClassProgramResData:
		return &ProgramResData{}
	case ClassWaveFileIdObj:
		return &WaveFileIdObj{}
	default:
		return nil
	}
}

type indexRecord struct {
	class         Class
	className     string
	classNameLen  uint32
	cuuid         CUUID
	offset        uint32
	size          uint32
	links         []CUUID
	languageLinks []LanguageLink
}

func (c *Container) readAll(buf []byte) error {
	s := stream.NewReader(buf, c.Variant.Endian())

	var offset uint32
	s.RW32(&offset)
	c.IndexOffset = offset
	s.Seek(int(offset))

	var magic uint32
	s.RWMagic(&magic)
	if magic != indexMagic {
		return fmt.Errorf("%w: index magic %#x", ErrInvalidHeader, magic)
	}

	var indexType uint32
	s.RW32(&indexType)
	if indexType != 1 && indexType != 2 {
		return fmt.Errorf("%w: %d", ErrInvalidIndexType, indexType)
	}
	c.IndexType = indexType

	var count uint32
	s.RW32(&count)
	if count == 0 {
		return ErrEmptyFile
	}

	records := make([]indexRecord, 0, count)
	for i := uint32(0); i < count; i++ {
		rec, err := c.readIndexRecord(s, indexType)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	c.entries = make([]*Entry, 0, len(records))
	c.lookup = make(map[CUUID]int, len(records))
	for _, rec := range records {
		entry := &Entry{
			CUUID:         rec.cuuid,
			Class:         rec.class,
			ClassNameRaw:  rec.className,
			Offset:        rec.offset,
			Size:          rec.size,
			Links:         rec.links,
			LanguageLinks: rec.languageLinks,
		}

		if rec.class == ClassInvalid {
			entry.Raw = sliceAt(buf, rec.offset, rec.size)
		} else {
			body := newBody(rec.class)
			ctx := readContext{Variant: c.Variant, FileSize: rec.size, ClassNameLen: rec.classNameLen}
			saved := s.Pos()
			s.Seek(int(rec.offset))
			if err := body.readFrom(s, ctx); err != nil {
				return fmt.Errorf("entry %s: %w", entry.CUUID, err)
			}
			s.Seek(saved)
			entry.Body = body
		}

		c.lookup[entry.CUUID] = len(c.entries)
		c.entries = append(c.entries, entry)
	}

	c.postRead()
	return nil
}

func (c *Container) readIndexRecord(s *stream.Stream, indexType uint32) (indexRecord, error) {
	var nameLen uint32
	s.RW32(&nameLen)
	nameBuf := make([]byte, nameLen)
	s.RW(nameBuf)
	name := string(nameBuf)

	class, ok := ParseClassName(name)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownClass, name)
		c.reportError(err)
		if c.strict {
			return indexRecord{}, err
		}
		class = ClassInvalid
	}

	var cuuidRaw uint64
	s.RWCUUID(&cuuidRaw)

	var fileOffset, fileSize, zero, linkCount uint32
	s.RW32(&fileOffset)
	s.RW32(&fileSize)
	s.RW32(&zero)
	if zero != 0 {
		return indexRecord{}, fmt.Errorf("%w: entry %s reserved word is %d, want 0", ErrHeaderMismatch, CUUID(cuuidRaw), zero)
	}
	s.RW32(&linkCount)

	rec := indexRecord{class: class, className: name, classNameLen: nameLen, cuuid: CUUID(cuuidRaw), offset: fileOffset, size: fileSize}

	if indexType != 2 {
		return rec, nil
	}

	rec.links = make([]CUUID, linkCount)
	for i := range rec.links {
		var link uint64
		s.RWCUUID(&link)
		rec.links[i] = CUUID(link)
	}

	var langCount uint32
	s.RW32(&langCount)
	rec.languageLinks = make([]LanguageLink, langCount)
	for i := range rec.languageLinks {
		var code, opaque uint32
		s.RWMagic(&code)
		s.RW32(&opaque)
		var target uint64
		s.RWCUUID(&target)
		rec.languageLinks[i] = LanguageLink{Language: languageFromCode(code), Opaque: opaque, Target: CUUID(target)}
	}

	return rec, nil
}

func sliceAt(buf []byte, offset, size uint32) []byte {
	start := int(offset)
	if start < 0 || start > len(buf) {
		return nil
	}
	end := start + int(size)
	if end > len(buf) {
		end = len(buf)
	}
	raw := make([]byte, end-start)
	copy(raw, buf[start:end])
	return raw
}

// postRead propagates human-readable names down the entry graph. Both
// passes are idempotent and independent of entry order: (a) on HXG,
// whose WavResObj carries no name of its own, copy each EventResData's
// name onto the WavResData it links to; (b) for every WavResData's own
// per-language links, name the referenced WaveFileIdObj
// "<parent>_<lang>".
func (c *Container) postRead() {
	if c.Variant == HXG {
		for _, e := range c.entries {
			event, ok := e.Body.(*EventResData)
			if !ok {
				continue
			}
			target, ok := c.Lookup(event.Link)
			if !ok {
				continue
			}
			if wav, ok := target.Body.(*WavResData); ok {
				wav.Obj.Name = event.Name
			}
		}
	}

	for _, e := range c.entries {
		wav, ok := e.Body.(*WavResData)
		if !ok {
			continue
		}
		for _, link := range wav.Links {
			target, ok := c.Lookup(link.Target)
			if !ok {
				continue
			}
			if wf, ok := target.Body.(*WaveFileIdObj); ok {
				wf.Name = wav.Obj.Name + "_" + link.Language.String()
			}
		}
	}
}

func (c *Container) writeAll() ([]byte, error) {
	main := stream.NewWriter(c.Variant.Endian())

	var reserved uint32
	main.RW32(&reserved)

	idx := stream.NewWriterSize(c.Variant.Endian(), len(c.entries)*255)
	magic := uint32(indexMagic)
	idx.RWMagic(&magic)
	indexType := uint32(2)
	idx.RW32(&indexType)
	count := uint32(len(c.entries))
	idx.RW32(&count)

	for _, e := range c.entries {
		bodyStart := main.Pos()
		if e.Body != nil {
			if err := e.Body.writeTo(main, c.Variant); err != nil {
				return nil, fmt.Errorf("entry %s: %w", e.CUUID, err)
			}
		} else {
			main.RW(e.Raw)
		}
		e.Offset = uint32(bodyStart)
		e.Size = uint32(main.Pos() - bodyStart)

		writeIndexRecord(idx, e, c.Variant)
	}

	indexStart := main.Pos()
	main.RW(idx.Bytes())

	if c.Variant == HXG || c.Variant == HX2 {
		main.RW(make([]byte, 32))
	}

	out := main.Bytes()
	patch := stream.NewWriter(c.Variant.Endian())
	val := uint32(indexStart)
	patch.RW32(&val)
	copy(out[0:4], patch.Bytes())

	return out, nil
}

// writeIndexRecord serializes e's index-type-2 record: class-name
// length and bytes, CUUID, file offset and size, the reserved zero
// word, then the link and language-link lists. e.Offset/e.Size must
// already reflect where the body was just written.
func writeIndexRecord(idx *stream.Stream, e *Entry, v Variant) {
	name := e.ClassNameRaw
	if e.Class != ClassInvalid {
		name = e.Class.ClassName(v)
	}
	nameBytes := []byte(name)
	nameLen := uint32(len(nameBytes))
	idx.RW32(&nameLen)
	idx.RW(nameBytes)

	cuuid := uint64(e.CUUID)
	idx.RWCUUID(&cuuid)

	offset, size, zero := e.Offset, e.Size, uint32(0)
	idx.RW32(&offset)
	idx.RW32(&size)
	idx.RW32(&zero)

	linkCount := uint32(len(e.Links))
	idx.RW32(&linkCount)
	for _, l := range e.Links {
		link := uint64(l)
		idx.RWCUUID(&link)
	}

	langCount := uint32(len(e.LanguageLinks))
	idx.RW32(&langCount)
	for _, ll := range e.LanguageLinks {
		code := ll.Language.code()
		idx.RWMagic(&code)
		opaque := ll.Opaque
		idx.RW32(&opaque)
		target := uint64(ll.Target)
		idx.RWCUUID(&target)
	}
}
