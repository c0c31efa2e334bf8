package errors

import (
	stderrors "errors"
	"io"
	"io/fs"
	"syscall"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var fileErr errors.Error
//	if errors.As(err, &fileErr) {
//	    code := fileErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not an Error.
//
// The code is taken from the outermost Error in the chain.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var fileErr Error
	if stderrors.As(err, &fileErr) {
		return fileErr.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not an Error.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var fileErr Error
	if stderrors.As(err, &fileErr) {
		return fileErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not an Error (safe default).
//
// Example:
//
//	for attempt := 0; attempt < attempts; attempt++ {
//	    err = tryOpen()
//	    if !errors.IsRetryable(err) {
//	        break
//	    }
//	    time.Sleep(delay)
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// Classify converts an arbitrary error into an Error.
//
// Errors that already carry a code are returned unchanged. Filesystem and
// syscall errors are mapped onto the matching code and wrapped so the
// original remains reachable through errors.Is. Anything else becomes
// CodeIO. Returns nil if err is nil.
func Classify(err error) Error {
	if err == nil {
		return nil
	}

	var fileErr Error
	if stderrors.As(err, &fileErr) {
		return fileErr
	}

	code := CodeIO
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		code = CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		code = CodeForbidden
	case stderrors.Is(err, fs.ErrClosed):
		code = CodeNotOpen
	case stderrors.Is(err, stderrors.ErrUnsupported):
		code = CodeUnsupported
	case stderrors.Is(err, syscall.EWOULDBLOCK), stderrors.Is(err, syscall.EAGAIN):
		code = CodeLocked
	case stderrors.Is(err, syscall.ENOMEM):
		code = CodeResourceExhausted
	case stderrors.Is(err, io.ErrUnexpectedEOF), stderrors.Is(err, io.ErrShortWrite):
		code = CodeIO
	}

	return Wrap(err, code, describe(code))
}

// describe returns the stock message used when Classify wraps an error.
func describe(code ErrorCode) string {
	switch code {
	case CodeNotFound:
		return "file not found"
	case CodeAlreadyExists:
		return "file already exists"
	case CodeForbidden:
		return "permission denied"
	case CodeNotOpen:
		return "file is not open"
	case CodeUnsupported:
		return "operation not supported"
	case CodeLocked:
		return "file is locked"
	case CodeResourceExhausted:
		return "out of memory"
	default:
		return "i/o failure"
	}
}
