// Package hxfile is the reference, in-process implementation of the
// hxaudio read/write/error callback contracts (see hxaudio.ReadFunc,
// hxaudio.WriteFunc, hxaudio.ErrorFunc): it backs a Container with real
// files on disk instead of the caller hand-rolling os.ReadFile plumbing.
//
// Input files are memory-mapped with codeberg.org/go-mmap/mmap, the same
// library the wider retrieval pack uses for its own out-of-core archive
// readers, so opening a multi-gigabyte container or sibling stream file
// for a handful of random-access entry reads does not require slurping
// the whole thing into the heap up front.
package hxfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/go-mmap/mmap"
)

// Store maps container/stream filenames to files rooted at Dir, serving
// hxaudio.ReadFunc reads from a memory-mapped cache and hxaudio.WriteFunc
// writes through a plain os.File. It is safe for concurrent use.
type Store struct {
	// Dir is the directory every filename passed to Read/Write is
	// resolved against. Empty means the current working directory.
	Dir string

	mu    sync.Mutex
	files map[string]*mmap.File
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, files: map[string]*mmap.File{}}
}

func (s *Store) path(filename string) string {
	if s.Dir == "" {
		return filename
	}
	return filepath.Join(s.Dir, filename)
}

// open returns the cached memory-mapped handle for filename, opening it
// on first use.
func (s *Store) open(filename string) (*mmap.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.files[filename]; ok {
		return f, nil
	}

	f, err := mmap.Open(s.path(filename))
	if err != nil {
		return nil, err
	}
	s.files[filename] = f
	return f, nil
}

// Read implements hxaudio.ReadFunc. offset == 0 && size == 0 means "read
// the whole file" — the convention Container.Open and an external
// WaveFileIdObj's datx stub both rely on, the former for the top-level
// container and the latter only when its own declared size is genuinely
// zero.
func (s *Store) Read(filename string, offset, size uint32) ([]byte, error) {
	f, err := s.open(filename)
	if err != nil {
		return nil, fmt.Errorf("hxfile: open %q: %w", filename, err)
	}

	if offset == 0 && size == 0 {
		info, err := os.Stat(s.path(filename))
		if err != nil {
			return nil, fmt.Errorf("hxfile: stat %q: %w", filename, err)
		}
		size = uint32(info.Size())
	}

	buf := make([]byte, size)
	n, err := f.ReadAt(buf, int64(offset))
	if err != nil && n == 0 {
		return nil, fmt.Errorf("hxfile: read %q at %d: %w", filename, offset, err)
	}
	return buf[:n], nil
}

// Write implements hxaudio.WriteFunc, truncating filename (relative to
// Dir) and writing data at offset. A file actively held open for reading
// by this same Store must be closed (via Close) before it is
// overwritten, since the memory mapping is not coherent with a
// concurrent truncate.
func (s *Store) Write(filename string, data []byte, offset uint32) error {
	f, err := os.OpenFile(s.path(filename), os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("hxfile: open %q for write: %w", filename, err)
	}
	defer f.Close()

	if _, err := f.WriteAt(data, int64(offset)); err != nil {
		return fmt.Errorf("hxfile: write %q at %d: %w", filename, offset, err)
	}
	return nil
}

// Close releases every memory-mapped file this Store has opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, f := range s.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("hxfile: close %q: %w", name, err)
		}
		delete(s.files, name)
	}
	return firstErr
}

// LogErrors returns an hxaudio.ErrorFunc that writes each diagnostic to w
// in the reference CLI's format. It is a convenient default for
// WithErrorFunc when a caller doesn't need structured handling.
func LogErrors(w func(string)) func(error) {
	return func(err error) {
		if err == nil {
			return
		}
		w(fmt.Sprintf("hxaudio: %v", err))
	}
}
