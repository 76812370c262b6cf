package hxaudio

import (
	"errors"
	"testing"

	"github.com/kelindar/hxaudio/internal/hxtest"
	"github.com/kelindar/hxaudio/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerRoundTripAllVariants(t *testing.T) {
	for _, v := range []Variant{HXD, HXC, HX2, HXG, HXX, HX3} {
		t.Run(v.String(), func(t *testing.T) {
			hxtest.With(t, v, func(t *testing.T, c *Container) {
				require.Equal(t, v, c.Variant)
				require.Equal(t, uint32(2), c.IndexType)

				var cuuids []CUUID
				for e := range c.Entries() {
					cuuids = append(cuuids, e.CUUID)
				}
				assert.ElementsMatch(t, []CUUID{1, 2, 3}, cuuids)

				event, ok := c.Lookup(CUUID(1))
				require.True(t, ok)
				ev, ok := event.Body.(*EventResData)
				require.True(t, ok)
				assert.Equal(t, "Explosion", ev.Name)

				wave, ok := c.Lookup(CUUID(3))
				require.True(t, ok)
				wf, ok := wave.Body.(*WaveFileIdObj)
				require.True(t, ok)
				// The fixture's WavResObj has no name of its own; only HXG
				// copies the event's name onto it during the post-read pass.
				wantName := "_EN"
				if v == HXG {
					wantName = "Explosion_EN"
				}
				assert.Equal(t, wantName, wf.Name)
			})
		})
	}
}

func TestContainerLanguageLinksIterate(t *testing.T) {
	hxtest.With(t, HXC, func(t *testing.T, c *Container) {
		var langs []Language
		for _, ll := range c.LanguageLinks() {
			langs = append(langs, ll.Language)
		}
		assert.Contains(t, langs, LangEN)
	})
}

// rawIndexOnly builds a minimal container buffer with no entries, for
// exercising the index-header error paths directly.
func rawIndexOnly(endian stream.Endian, magic, indexType, count uint32) []byte {
	idx := stream.NewWriter(endian)
	m := magic
	idx.RWMagic(&m)
	it := indexType
	idx.RW32(&it)
	c := count
	idx.RW32(&c)

	main := stream.NewWriter(endian)
	var reserved uint32
	main.RW32(&reserved)
	offset := uint32(main.Pos())
	main.RW(idx.Bytes())

	out := main.Bytes()
	patch := stream.NewWriter(endian)
	val := offset
	patch.RW32(&val)
	copy(out[0:4], patch.Bytes())
	return out
}

func TestContainerEmptyFile(t *testing.T) {
	buf := rawIndexOnly(stream.Little, indexMagic, 2, 0)
	store := hxtest.NewStore()
	store.Put("empty.hxc", buf)

	_, err := Open("empty.hxc", HXC, WithReadFunc(store.Read))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestContainerBadMagic(t *testing.T) {
	buf := rawIndexOnly(stream.Little, 0x12345678, 2, 1)
	store := hxtest.NewStore()
	store.Put("bad.hxc", buf)

	_, err := Open("bad.hxc", HXC, WithReadFunc(store.Read))
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestContainerBadIndexType(t *testing.T) {
	buf := rawIndexOnly(stream.Little, indexMagic, 3, 1)
	store := hxtest.NewStore()
	store.Put("badtype.hxc", buf)

	_, err := Open("badtype.hxc", HXC, WithReadFunc(store.Read))
	assert.ErrorIs(t, err, ErrInvalidIndexType)
}

func TestContainerOpenRequiresFilename(t *testing.T) {
	_, err := Open("", HXC, WithReadFunc(func(string, uint32, uint32) ([]byte, error) { return nil, nil }))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestContainerOpenRequiresReadFunc(t *testing.T) {
	_, err := Open("x.hxc", HXC)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// buildUnknownClassBuf writes a single index-type-2 record for an unknown class,
// plus a zero-byte body, and returns the full container buffer.
func buildUnknownClassBuf(endian stream.Endian) []byte {
	idx := stream.NewWriter(endian)
	m := uint32(indexMagic)
	idx.RWMagic(&m)
	it := uint32(2)
	idx.RW32(&it)
	cnt := uint32(1)
	idx.RW32(&cnt)

	name := "CBogusClass"
	nameLen := uint32(len(name))
	idx.RW32(&nameLen)
	idx.RW([]byte(name))
	cuuid := uint64(42)
	idx.RWCUUID(&cuuid)
	offset, size, zero, links := uint32(4), uint32(0), uint32(0), uint32(0)
	idx.RW32(&offset)
	idx.RW32(&size)
	idx.RW32(&zero)
	idx.RW32(&links)
	langs := uint32(0)
	idx.RW32(&langs)

	main := stream.NewWriter(endian)
	var reserved uint32
	main.RW32(&reserved)
	indexStart := main.Pos()
	main.RW(idx.Bytes())

	out := main.Bytes()
	patch := stream.NewWriter(endian)
	val := uint32(indexStart)
	patch.RW32(&val)
	copy(out[0:4], patch.Bytes())
	return out
}

func TestContainerUnknownClassWarnAndSkip(t *testing.T) {
	buf := buildUnknownClassBuf(stream.Little)
	store := hxtest.NewStore()
	store.Put("unk.hxc", buf)

	var reported []error
	c, err := Open("unk.hxc", HXC,
		WithReadFunc(store.Read),
		WithErrorFunc(func(e error) { reported = append(reported, e) }),
	)
	require.NoError(t, err)

	e, ok := c.Lookup(CUUID(42))
	require.True(t, ok)
	assert.Equal(t, ClassInvalid, e.Class)
	assert.Equal(t, "CBogusClass", e.ClassNameRaw)

	found := false
	for _, r := range reported {
		if errors.Is(r, ErrUnknownClass) {
			found = true
		}
	}
	assert.True(t, found, "expected ErrUnknownClass to be reported")
}

func TestContainerUnknownClassStrictAborts(t *testing.T) {
	buf := buildUnknownClassBuf(stream.Little)
	store := hxtest.NewStore()
	store.Put("unk.hxc", buf)

	_, err := Open("unk.hxc", HXC, WithReadFunc(store.Read), WithStrict())
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestContainerWriteRequiresWriteFunc(t *testing.T) {
	c := New(HXC)
	err := c.Write("x.hxc")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
