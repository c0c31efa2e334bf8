// Package core provides the storage interfaces a file handle is written
// against.
//
// Providers (see fs/billy) implement FS to open, stat and remove files.
// Files they return implement File and optionally the capability
// interfaces below, discovered with type assertions:
//
//   - Truncater: change the file length
//   - Syncer: commit writes to stable storage
//   - Locker: advisory whole-file and byte-range locks
//   - Descriptor: the OS file descriptor, when one exists
//
// Filesystems may also implement MetadataFS to change permission bits and
// modification times.
//
// Errors returned by providers are the io/fs sentinels re-exported here, or
// the coded ErrUnsupported and ErrLocked values from the errors package.
package core
