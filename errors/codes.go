package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural log output.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates the file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates an exclusive create found an existing file.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeForbidden indicates the operating system denied access.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeLocked indicates the file or byte range is locked by another holder.
	CodeLocked ErrorCode = "LOCKED"

	// Handle errors.

	// CodeNotOpen indicates an operation that requires an open stream was
	// attempted on a closed handle.
	CodeNotOpen ErrorCode = "NOT_OPEN"

	// CodeUnsupported indicates the underlying stream or provider lacks the
	// capability (e.g. seeking a pipe, chmod on a memory filesystem).
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// Validation errors.

	// CodeInvalidInput indicates a malformed argument: a bad mode string,
	// an unsupported record size, an empty INI key.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Data errors.

	// CodeIO indicates a read, write, seek or stat failed or came up short.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeCodec indicates encoded text could not be decoded.
	CodeCodec ErrorCode = "CODEC_FAILED"

	// Process errors.

	// CodeExecutionFailed indicates a piped subprocess failed to start or
	// exited unsuccessfully.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// System errors.

	// CodeResourceExhausted indicates a buffer could not be allocated.
	CodeResourceExhausted ErrorCode = "RESOURCE_EXHAUSTED"

	// CodeInternal indicates an internal invariant was violated.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
