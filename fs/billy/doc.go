// Package billy provides go-billy-backed implementations of core.FS.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// filesystems. Files returned by either provider implement core.File plus
// the Truncater, Syncer, Locker and Descriptor capabilities; LocalFS also
// implements core.MetadataFS.
//
// Usage:
//
//	// Local filesystem; relative names resolve against the working directory
//	fsys := billy.NewLocal()
//
//	// Local filesystem confined to a directory
//	fsys := billy.NewLocal(billy.WithRoot("/var/lib/app"))
//
//	f, err := fsys.OpenFile("settings.ini", os.O_RDWR|os.O_CREATE, 0o644)
//
// # Memory Filesystem
//
// For testing or temporary storage, use the in-memory filesystem:
//
//	fsys := billy.NewMemory()
//	err := fsys.WriteFile("temp.txt", []byte("data"), 0o644)
//
// # Locking
//
// Locks are advisory and never block. Every lock is recorded in a
// package-level table so handles within one process exclude each other on
// both providers. Local files additionally take flock(2) whole-file locks
// and, on Linux, open file description byte-range locks, which exclude
// other processes too.
//
// # Thread Safety
//
// FS instances (LocalFS, MemoryFS) are safe for concurrent use by
// multiple goroutines. File handles are not safe for concurrent use.
package billy
