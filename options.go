package hxaudio

// Option configures a Container at construction time.
type Option func(*Container)

// WithReadFunc supplies the callback used to fetch the container's own
// bytes on Open and an external WaveFileIdObj's payload on demand.
func WithReadFunc(fn ReadFunc) Option {
	return func(c *Container) { c.onRead = fn }
}

// WithWriteFunc supplies the callback used to persist a container's
// serialized bytes on Write.
func WithWriteFunc(fn WriteFunc) Option {
	return func(c *Container) { c.onWrite = fn }
}

// WithErrorFunc supplies a callback invoked for warn-and-skip conditions
// (ErrUnknownClass) and immediately before Open or Write returns an error
// from reading, decoding or writing (see ErrorFunc).
func WithErrorFunc(fn ErrorFunc) Option {
	return func(c *Container) { c.onError = fn }
}

// WithStrict makes an otherwise-recoverable ErrUnknownClass abort the
// read instead of skipping the entry and continuing.
func WithStrict() Option {
	return func(c *Container) { c.strict = true }
}
