package exec

import (
	"context"
	"io"
)

// CommandWrapper wraps an Executor to provide a command-specific interface.
// It prepends a command name (and optional fixed arguments) to every
// Start() call. A file handle in pipe mode uses a wrapper around "sh -c" so
// that its name is interpreted as a shell command line.
// CommandWrapper implements the Executor interface, allowing it to be used
// anywhere an Executor is expected.
type CommandWrapper struct {
	executor Executor
	cmd      []string
}

// NewWrapper creates a new CommandWrapper that prepends cmd and args to all
// Start() calls. The executor parameter can be any implementation of the
// Executor interface, including stubs for testing.
func NewWrapper(executor Executor, cmd string, args ...string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      append([]string{cmd}, args...),
	}
}

// Shell returns a wrapper that runs its single argument with "sh -c".
func Shell(executor Executor) *CommandWrapper {
	return NewWrapper(executor, "sh", "-c")
}

// WithEnv sets environment variables for the process.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the process.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the process.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithInheritEnv enables environment inheritance.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// WithStderr sets the stderr passthrough writer.
func (w *CommandWrapper) WithStderr(w2 io.Writer) Executor {
	w.executor = w.executor.WithStderr(w2)
	return w
}

// WithPassthrough enables stderr passthrough.
func (w *CommandWrapper) WithPassthrough() Executor {
	w.executor = w.executor.WithPassthrough()
	return w
}

// Start launches the wrapped command with args appended.
func (w *CommandWrapper) Start(mode PipeMode, args ...string) (*Pipe, error) {
	fullArgs := append(append([]string(nil), w.cmd...), args...)
	return w.executor.Start(mode, fullArgs...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      append([]string(nil), w.cmd...),
	}
}
