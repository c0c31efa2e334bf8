package errors

import "fmt"

// New creates a new Error with the given code and message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeNotOpen, "file is not open")
func New(code ErrorCode, message string) Error {
	return &fileError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "unsupported record size %d", size)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// WithOp records the failing operation and path on err.
// Returns a new Error; the original is left untouched.
//
// If err is not an Error, it is first passed through Classify.
// Returns nil if err is nil.
//
// Example:
//
//	if err := f.Truncate(n); err != nil {
//	    return errors.WithOp(err, "truncate", h.Name())
//	}
func WithOp(err error, op, path string) Error {
	if err == nil {
		return nil
	}

	fe := asFileError(Classify(err))
	fe.op = op
	fe.path = path
	return fe
}
