package exec

import (
	"fmt"
	"strings"
)

// ExecError reports a child process that could not be started or exited
// unsuccessfully.
type ExecError struct {
	// Command is the argument vector the child was started with.
	Command []string

	// ExitCode is the child's exit status, or -1 if it never ran or was
	// killed by a signal.
	ExitCode int

	// Stderr holds the tail of the child's standard error.
	Stderr string

	Err error
}

func (e *ExecError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q exited with status %d", strings.Join(e.Command, " "), e.ExitCode)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		fmt.Fprintf(&b, " (stderr: %s)", s)
	}
	return b.String()
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
