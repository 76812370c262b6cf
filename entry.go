package hxaudio

import "github.com/kelindar/hxaudio/internal/stream"

// LanguageLink associates a locale with a specific wave-file entry. The
// opaque field is carried verbatim; the container never interprets it.
type LanguageLink struct {
	Language Language
	Opaque   uint32
	Target   CUUID
}

// Entry is one typed record in the container, addressed by its CUUID.
type Entry struct {
	CUUID CUUID
	Class Class
	Body  Body

	Offset uint32 // byte offset within the file; filled on read, written on write
	Size   uint32 // byte size within the file; filled on read, written on write

	Links         []CUUID        // index type 2 only
	LanguageLinks []LanguageLink // index type 2 only

	// Raw holds the entry's body bytes verbatim when Class did not
	// resolve to a registered Body (ErrUnknownClass): the container
	// cannot interpret the payload, but still round-trips it.
	Raw []byte

	// ClassNameRaw is the literal serialized class name as read from the
	// index, used on write in place of Class.ClassName(variant) when
	// Class is ClassInvalid (an unrecognized class must round-trip its
	// original name, since it has no registry entry to regenerate one).
	ClassNameRaw string
}

// readContext carries the ambient information a class's body decoder needs
// beyond the raw byte stream: the variant in force and, for
// ProgramResData, the entry's declared file size and class-name length.
type readContext struct {
	Variant      Variant
	FileSize     uint32
	ClassNameLen uint32
}

// Body is the tagged-variant payload of an entry: one concrete type per
// Class, each knowing how to read and write itself against the shared
// stream schema. Cross-entry references inside a body are always by
// CUUID; resolving them against the owning Container happens separately,
// in the post-read pass.
type Body interface {
	Class() Class
	readFrom(s *stream.Stream, ctx readContext) error
	writeTo(s *stream.Stream, v Variant) error
}
