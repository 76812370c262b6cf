package hxaudio

// ReadFunc fetches size bytes at offset from the named file. A top-level
// container read calls it once with offset and size both 0, meaning "the
// whole file"; a WaveFileIdObj marked external calls it again with the
// stub's own (filename, offset, size) to fetch the payload from a sibling
// stream file. Returning a nil slice with a nil error is treated the same
// as ErrIOFailed.
type ReadFunc func(filename string, offset, size uint32) ([]byte, error)

// WriteFunc writes data to the named file starting at offset. A
// container write calls it once with offset 0 and the full serialized
// buffer.
type WriteFunc func(filename string, data []byte, offset uint32) error

// ErrorFunc receives a diagnostic for conditions the container can
// recover from (e.g. ErrUnknownClass) as well as a copy of each error
// Open or Write returns once reading or writing has begun. Errors about a
// missing filename or callback, and errors from Payload and Decode, are
// returned without being reported.
type ErrorFunc func(err error)
