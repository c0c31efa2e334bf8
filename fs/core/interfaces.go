package core

import (
	"io"
	"io/fs"
	"time"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem a file handle opens, inspects and removes files on.
//
// All filesystem providers MUST implement this interface, which is composed
// of ReadFS, WriteFS and ManageFS.
type FS interface {
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Stat returns file metadata.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file exists.
	// A false result with a non-nil error indicates the existence
	// could not be determined, not that the file doesn't exist.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// OpenFile opens a file with the specified flags and permissions.
	// The flags are a bitmask (O_RDONLY, O_WRONLY, O_RDWR, O_CREATE,
	// O_TRUNC, O_APPEND, O_EXCL).
	//
	// If the file is created, the permission mode perm is used (before umask).
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary.
	// If the file already exists, WriteFile truncates it before writing.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// ManageFS defines file management operations.
type ManageFS interface {
	// Remove removes the named file.
	// If the path does not exist, Remove returns an error (typically ErrNotExist).
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath.
	// If newpath already exists and is not a directory, Rename replaces it.
	Rename(oldpath, newpath string) error
}

// File represents an open file handle.
//
// Provider files are always seekable; pipes and borrowed streams that are
// not seekable satisfy the narrower Stream interface instead.
type File interface {
	Stream
	io.Seeker

	// Stat returns metadata for the open file.
	Stat() (fs.FileInfo, error)
}

// Stream is the minimal byte stream a file handle can operate on.
type Stream interface {
	io.Reader
	io.Writer
	io.Closer

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// Optional File capabilities (use type assertions):
//
// - Truncater: Truncate(size int64) error
// - Syncer: Sync() error
// - Locker: whole-file share locks and byte-range locks
// - Descriptor: Descriptor() int64

// Truncater allows truncating a file to a specified size.
type Truncater interface {
	// Truncate changes the size of the file.
	// It does not change the I/O offset.
	// If the file is larger than size, the extra data is discarded.
	// If the file is smaller than size, it is extended with null bytes.
	Truncate(size int64) error
}

// Syncer allows syncing file contents to stable storage.
type Syncer interface {
	// Sync commits the current contents of the file to stable storage.
	Sync() error
}

// Descriptor exposes the operating system descriptor behind a file.
type Descriptor interface {
	// Descriptor returns the descriptor, or -1 when the file has none.
	Descriptor() int64
}

// LockMode selects how a whole-file lock is shared with other handles.
type LockMode int

const (
	// LockShared may be held by any number of handles at once.
	LockShared LockMode = iota
	// LockExclusive excludes every other holder.
	LockExclusive
)

// String returns a string representation of the LockMode.
func (m LockMode) String() string {
	if m == LockExclusive {
		return "exclusive"
	}
	return "shared"
}

// Locker provides advisory locks on an open file.
//
// Locks never block: contention is reported immediately as ErrLocked.
// Locks are released when the file is closed.
//
//	if l, ok := file.(Locker); ok {
//	    if err := l.TryLock(LockExclusive); errors.Is(err, ErrLocked) {
//	        // another handle owns the file
//	    }
//	}
type Locker interface {
	// TryLock acquires a whole-file lock in the given mode.
	TryLock(mode LockMode) error

	// Unlock releases the whole-file lock.
	Unlock() error

	// LockRange exclusively locks length bytes starting at offset.
	LockRange(offset, length int64) error

	// UnlockRange releases a range previously locked with LockRange.
	UnlockRange(offset, length int64) error
}

// MetadataFS defines metadata operations (typically local filesystems only).
//
//	if mfs, ok := filesystem.(MetadataFS); ok {
//	    err := mfs.Chmod("file.txt", 0600)
//	}
type MetadataFS interface {
	// Chmod changes the mode/permissions of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}
