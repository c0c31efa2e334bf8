package errors

import "errors"

// asFileError returns a private copy of err as a *fileError.
// Errors outside this package become CodeUnknown errors wrapping the original.
func asFileError(err error) *fileError {
	var fe *fileError
	if errors.As(err, &fe) {
		return fe.clone()
	}

	return &fileError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "mode", "r+")
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	fe := asFileError(err)
	if fe.context == nil {
		fe.context = make(map[string]interface{}, 1)
	}
	fe.context[key] = value
	return fe
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	fe := asFileError(err)
	if len(ctx) == 0 {
		return fe
	}
	if fe.context == nil {
		fe.context = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		fe.context[k] = v
	}
	return fe
}

// WithClassification overrides the classification of an error.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	// A shared open makes a single attempt; contention is final.
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	fe := asFileError(err)
	fe.classification = classification
	return fe
}
