// Package errors provides structured error handling for file handles.
//
// This package extends Go's standard error handling with error codes,
// classification (retryable vs permanent), the failing operation and path,
// and context metadata. It maintains full compatibility with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidInput, "unsupported binary size")
//	err := errors.Newf(errors.CodeInvalidInput, "invalid mode %q", mode)
//
// Wrapping errors with the operation that failed:
//
//	f, err := fsys.OpenFile(name, flags, 0o644)
//	if err != nil {
//	    return errors.WithOp(errors.Classify(err), "open", name)
//	}
//
// Retry logic:
//
//	if errors.IsRetryable(err) {
//	    time.Sleep(delay)
//	    continue
//	}
//
// # Error Codes
//
//   - Resource errors: CodeNotFound, CodeAlreadyExists, CodeForbidden, CodeLocked
//   - Handle errors: CodeNotOpen, CodeUnsupported
//   - Validation errors: CodeInvalidInput
//   - Data errors: CodeIO, CodeCodec
//   - Process errors: CodeExecutionFailed
//   - System errors: CodeResourceExhausted, CodeInternal, CodeUnknown
//
// Each code has a default classification. Only CodeLocked is retryable by
// default: lock contention on an exclusive open is the one transient
// condition a handle retries on its own.
//
// # Classifying OS errors
//
// Classify maps io/fs and syscall errors onto codes so callers can switch
// on GetCode instead of inspecting platform-specific errno values:
//
//	if errors.GetCode(errors.Classify(err)) == errors.CodeNotFound {
//	    // file does not exist
//	}
package errors
