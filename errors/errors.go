package errors

// Error extends the standard error interface with structured information.
//
// Error provides error codes for categorization, classification for retry
// logic, the operation and path that failed, contextual metadata, and
// compatibility with standard library error handling (errors.Is, errors.As,
// errors.Unwrap).
type Error interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Op returns the handle operation that failed (e.g. "open", "readBin").
	// Returns "" if none was recorded.
	Op() string

	// Path returns the file name or command the operation acted on.
	// Returns "" if none was recorded.
	Path() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
