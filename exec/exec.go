package exec

import (
	"context"
	"io"
)

// Executor starts subprocesses whose standard streams are exposed as pipes.
// It provides a fluent API for configuring the process before it starts.
type Executor interface {
	// WithEnv sets environment variables for the process.
	// These are local settings that override any global environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the process.
	// This is a local setting that overrides any global working directory.
	WithDir(dir string) Executor

	// WithContext sets the context for the process.
	// The process is killed if the context is canceled before it exits.
	WithContext(ctx context.Context) Executor

	// WithInheritEnv inherits environment variables from the parent process.
	WithInheritEnv() Executor

	// WithStderr sets the writer that receives the process's stderr when
	// passthrough is enabled.
	WithStderr(w io.Writer) Executor

	// WithPassthrough streams stderr to the WithStderr writer (os.Stderr by
	// default) while also capturing it for ExecError.
	WithPassthrough() Executor

	// Start launches the process described by args and connects the pipes
	// selected by mode. The caller must Close the returned Pipe.
	Start(mode PipeMode, args ...string) (*Pipe, error)

	// Clone creates a copy of the executor with the same configuration.
	Clone() Executor
}

// PipeMode selects which of the child's standard streams a Pipe exposes.
type PipeMode int

const (
	// PipeRead connects the child's stdout for reading.
	PipeRead PipeMode = 1 << iota
	// PipeWrite connects the child's stdin for writing.
	PipeWrite
	// PipeReadWrite connects both.
	PipeReadWrite = PipeRead | PipeWrite
)

// String returns the popen-style spelling of the mode.
func (m PipeMode) String() string {
	switch m {
	case PipeRead:
		return "r"
	case PipeWrite:
		return "w"
	case PipeReadWrite:
		return "r+"
	default:
		return "invalid"
	}
}

func (m PipeMode) readable() bool { return m&PipeRead != 0 }
func (m PipeMode) writable() bool { return m&PipeWrite != 0 }

// Option is a function that configures a Command with global settings.
// These settings are applied at creation time and can be overridden by local settings.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the global context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}

// WithStderr returns an Option that sets the global stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithPassthrough returns an Option that globally enables stderr passthrough.
func WithPassthrough() Option {
	return func(c *Command) {
		c.config.globalPassthrough = true
	}
}
