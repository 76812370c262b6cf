// Package mock assembles synthetic Container fixtures for callers that
// need a populated entry graph without parsing a real container file.
package mock

import "github.com/kelindar/hxaudio"

// Builder accumulates CUUID-keyed entries and assembles them into a
// Container in insertion order.
type Builder struct {
	variant hxaudio.Variant
	entries map[hxaudio.CUUID]*hxaudio.Entry
	order   []hxaudio.CUUID
}

// New starts an empty Builder for variant.
func New(variant hxaudio.Variant) *Builder {
	return &Builder{variant: variant, entries: map[hxaudio.CUUID]*hxaudio.Entry{}}
}

// Add registers body under id, deriving its Class from body.Class().
// Re-adding an existing id replaces its whole entry, dropping any links
// added for it, without disturbing insertion order.
func (b *Builder) Add(id hxaudio.CUUID, body hxaudio.Body) *Builder {
	if _, exists := b.entries[id]; !exists {
		b.order = append(b.order, id)
	}
	b.entries[id] = &hxaudio.Entry{CUUID: id, Class: body.Class(), Body: body}
	return b
}

// Link appends index-type-2 CUUID links onto id's entry. It is a no-op
// if id has not been added yet.
func (b *Builder) Link(id hxaudio.CUUID, targets ...hxaudio.CUUID) *Builder {
	if e, ok := b.entries[id]; ok {
		e.Links = append(e.Links, targets...)
	}
	return b
}

// LanguageLink appends an index-level language-link record onto id's
// entry. It is a no-op if id has not been added yet.
func (b *Builder) LanguageLink(id hxaudio.CUUID, lang hxaudio.Language, opaque uint32, target hxaudio.CUUID) *Builder {
	if e, ok := b.entries[id]; ok {
		e.LanguageLinks = append(e.LanguageLinks, hxaudio.LanguageLink{Language: lang, Opaque: opaque, Target: target})
	}
	return b
}

// Build assembles the accumulated entries into a Container.
func (b *Builder) Build() *hxaudio.Container {
	c := hxaudio.New(b.variant)
	for _, id := range b.order {
		c.AddEntry(b.entries[id])
	}
	return c
}
