package exec

import (
	"errors"
	"io"
	osexec "os/exec"
	"strings"
)

var (
	// ErrInvalidMode is returned by Start for a mode with neither direction.
	ErrInvalidMode = errors.New("pipe mode must read, write or both")

	// ErrNotReadable is returned by Read on a write-only pipe.
	ErrNotReadable = errors.New("pipe is not open for reading")

	// ErrNotWritable is returned by Write on a read-only pipe or after CloseWrite.
	ErrNotWritable = errors.New("pipe is not open for writing")
)

// Pipe is a running subprocess seen as a byte stream: reads come from its
// stdout and writes go to its stdin. A Pipe is not seekable.
type Pipe struct {
	cmd    *osexec.Cmd
	args   []string
	mode   PipeMode
	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr *outputCapture
	done   bool
	err    error
}

// Name returns the command line the pipe was started with.
func (p *Pipe) Name() string {
	return strings.Join(p.args, " ")
}

// Mode returns the directions the pipe was opened with.
func (p *Pipe) Mode() PipeMode {
	return p.mode
}

// Pid returns the child's process id.
func (p *Pipe) Pid() int {
	return p.cmd.Process.Pid
}

// Read reads from the child's stdout.
func (p *Pipe) Read(b []byte) (int, error) {
	if p.stdout == nil {
		return 0, ErrNotReadable
	}
	return p.stdout.Read(b)
}

// Write writes to the child's stdin.
func (p *Pipe) Write(b []byte) (int, error) {
	if p.stdin == nil {
		return 0, ErrNotWritable
	}
	return p.stdin.Write(b)
}

// CloseWrite closes the child's stdin so it observes end of input, while
// its stdout stays readable.
func (p *Pipe) CloseWrite() error {
	if p.stdin == nil {
		return nil
	}
	err := p.stdin.Close()
	p.stdin = nil
	return err
}

// Close closes both pipe ends and waits for the child to exit.
// A child that exits unsuccessfully yields an *ExecError carrying the exit
// code and the tail of its stderr. Close is idempotent.
func (p *Pipe) Close() error {
	if p.done {
		return p.err
	}
	p.done = true

	_ = p.CloseWrite()
	if p.stdout != nil {
		// Unread output is abandoned; a child still writing sees EPIPE.
		_ = p.stdout.Close()
	}

	if err := p.cmd.Wait(); err != nil {
		p.err = &ExecError{
			Command:  p.args,
			ExitCode: p.cmd.ProcessState.ExitCode(),
			Stderr:   p.stderr.String(),
			Err:      err,
		}
	}
	return p.err
}

// Stderr returns the stderr captured so far.
func (p *Pipe) Stderr() string {
	return p.stderr.String()
}
