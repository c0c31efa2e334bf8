package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/scriptfile/fs/core"
)

// File wraps billy.File to implement core.File and its optional capabilities.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend implementation.
// It also stores a reference to the filesystem to support Stat() calls.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
	key  string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close releases every lock held through f and closes the underlying file.
func (f *File) Close() error {
	locks.release(f.key, f)
	return f.file.Close()
}

// Stat returns metadata for the open file.
// Backends whose files carry their own Stat are preferred over a path
// lookup so the result survives a concurrent rename.
func (f *File) Stat() (fs.FileInfo, error) {
	if st, ok := f.file.(interface{ Stat() (fs.FileInfo, error) }); ok {
		return st.Stat()
	}
	return f.fs.Stat(f.name)
}

// Name returns the name provided to OpenFile.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Truncate implements core.Truncater.
func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Sync implements core.Syncer.
// For backends without Sync (e.g., memfs), this is a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// fd returns the OS descriptor of a local file.
func (f *File) fd() (uintptr, bool) {
	if d, ok := f.file.(interface{ Fd() uintptr }); ok {
		return d.Fd(), true
	}
	return 0, false
}

// Descriptor returns the OS descriptor behind f, or -1 for files that have
// none (memory files).
func (f *File) Descriptor() int64 {
	if fd, ok := f.fd(); ok {
		return int64(fd)
	}
	return -1
}

// Compile-time interface checks.
var (
	_ core.File       = (*File)(nil)
	_ io.Seeker       = (*File)(nil)
	_ core.Truncater  = (*File)(nil)
	_ core.Syncer     = (*File)(nil)
	_ core.Locker     = (*File)(nil)
	_ core.Descriptor = (*File)(nil)
)
