package exec

import (
	"context"
	"io"
	"os"
	osexec "os/exec"
)

// Command is the concrete implementation of the Executor interface.
type Command struct {
	config *config
	ctx    context.Context
	stderr io.Writer
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the process.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the process.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the process.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithInheritEnv enables environment inheritance.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStderr sets the stderr passthrough writer.
func (c *Command) WithStderr(w io.Writer) Executor {
	c.stderr = w
	return c
}

// WithPassthrough enables stderr passthrough.
func (c *Command) WithPassthrough() Executor {
	val := true
	c.config.localPassthrough = &val
	return c
}

// Start launches args[0] with the remaining arguments and returns a Pipe
// connected according to mode. Streams not selected by mode are discarded
// (stdout) or empty (stdin).
func (c *Command) Start(mode PipeMode, args ...string) (*Pipe, error) {
	defer c.config.resetLocal()

	if len(args) == 0 {
		return nil, &ExecError{Command: args, ExitCode: -1, Err: osexec.ErrNotFound}
	}
	if !mode.readable() && !mode.writable() {
		return nil, &ExecError{Command: args, ExitCode: -1, Err: ErrInvalidMode}
	}

	cmd := osexec.CommandContext(c.ctx, args[0], args[1:]...)

	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}

	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	for k, v := range c.config.effectiveEnv() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	p := &Pipe{
		cmd:    cmd,
		args:   args,
		mode:   mode,
		stderr: newOutputCapture(stderrLimit),
	}

	if c.config.effectivePassthrough() {
		cmd.Stderr = newMultiWriter(p.stderr, c.stderr)
	} else {
		cmd.Stderr = p.stderr
	}

	var err error
	if mode.readable() {
		if p.stdout, err = cmd.StdoutPipe(); err != nil {
			return nil, &ExecError{Command: args, ExitCode: -1, Err: err}
		}
	}
	if mode.writable() {
		if p.stdin, err = cmd.StdinPipe(); err != nil {
			return nil, &ExecError{Command: args, ExitCode: -1, Err: err}
		}
	}

	if err := cmd.Start(); err != nil {
		return nil, &ExecError{Command: args, ExitCode: -1, Err: err}
	}

	return p, nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config: c.config.clone(),
		ctx:    c.ctx,
		stderr: c.stderr,
	}
}
