package core

import (
	"io/fs"

	"github.com/jmgilman/scriptfile/errors"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed file.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when an operation is not supported by the provider.
	// For example, metadata changes on an in-memory filesystem.
	ErrUnsupported = errors.New(errors.CodeUnsupported, "operation not supported")

	// ErrLocked is returned by Locker methods when the lock is held by
	// another file handle and the request would block.
	ErrLocked = errors.New(errors.CodeLocked, "file is locked")

	// ErrNotLocked is returned by Locker.UnlockRange when the range is not
	// held by the calling handle.
	ErrNotLocked = errors.New(errors.CodeInvalidInput, "range is not locked")
)
