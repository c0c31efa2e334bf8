package errors

import (
	"fmt"
	"strings"
)

// fileError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type fileError struct {
	code           ErrorCode
	classification ErrorClassification
	op             string
	path           string
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] op path: message: cause", omitting empty parts.
func (e *fileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", e.code)
	if e.op != "" {
		b.WriteString(" " + e.op)
	}
	if e.path != "" {
		b.WriteString(" " + e.path)
	}
	if e.op != "" || e.path != "" {
		b.WriteString(":")
	}
	b.WriteString(" " + e.message)
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// Code returns the error code.
func (e *fileError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *fileError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *fileError) Message() string {
	return e.message
}

// Op returns the failing operation.
func (e *fileError) Op() string {
	return e.op
}

// Path returns the path the operation acted on.
func (e *fileError) Path() string {
	return e.path
}

// Context returns a copy of the context map.
// Returns nil if no context has been attached.
func (e *fileError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fileError) Unwrap() error {
	return e.cause
}

// clone returns a shallow copy with its own context map.
func (e *fileError) clone() *fileError {
	c := *e
	c.context = e.Context()
	return &c
}
