package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Example: another handle holds an exclusive lock on the file.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: malformed mode strings, missing files, permission denials.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Retryable errors (contention clears when the other holder closes)
	CodeLocked: ClassificationRetryable,

	// Permanent errors
	CodeNotFound:          ClassificationPermanent,
	CodeAlreadyExists:     ClassificationPermanent,
	CodeForbidden:         ClassificationPermanent,
	CodeNotOpen:           ClassificationPermanent,
	CodeUnsupported:       ClassificationPermanent,
	CodeInvalidInput:      ClassificationPermanent,
	CodeIO:                ClassificationPermanent,
	CodeCodec:             ClassificationPermanent,
	CodeExecutionFailed:   ClassificationPermanent,
	CodeResourceExhausted: ClassificationPermanent,
	CodeInternal:          ClassificationPermanent,
	CodeUnknown:           ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
