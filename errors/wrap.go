package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an Error, its classification, operation and path
// are preserved. Otherwise the default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := f.Seek(0, io.SeekStart); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to rewind")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	wrapped := &fileError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		cause:          err,
	}

	var inner Error
	if errors.As(err, &inner) {
		wrapped.classification = inner.Classification()
		wrapped.op = inner.Op()
		wrapped.path = inner.Path()
	}

	return wrapped
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeIO, "short write", map[string]interface{}{
//	    "want": len(p),
//	    "got":  n,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	return WithContextMap(Wrap(err, code, message), ctx)
}
