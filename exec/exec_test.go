package exec

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStart_Read(t *testing.T) {
	p, err := New().Start(PipeRead, "echo", "hello world")
	require.NoError(t, err)

	out, err := io.ReadAll(p)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(out))
	assert.NoError(t, p.Close())
	assert.Greater(t, p.Pid(), 0)
	assert.Equal(t, "echo hello world", p.Name())
}

func TestStart_Write(t *testing.T) {
	dir := t.TempDir()
	p, err := New().WithDir(dir).Start(PipeWrite, "sh", "-c", "cat > out.txt")
	require.NoError(t, err)

	_, err = p.Write([]byte("piped\n"))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	check, err := New().WithDir(dir).Start(PipeRead, "cat", "out.txt")
	require.NoError(t, err)
	out, _ := io.ReadAll(check)
	require.NoError(t, check.Close())
	assert.Equal(t, "piped\n", string(out))
}

func TestStart_ReadWrite(t *testing.T) {
	p, err := New().Start(PipeReadWrite, "tr", "a-z", "A-Z")
	require.NoError(t, err)

	var out bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		defer p.CloseWrite()
		for _, line := range []string{"one\n", "two\n"} {
			if _, err := p.Write([]byte(line)); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		_, err := io.Copy(&out, p)
		return err
	})

	require.NoError(t, g.Wait())
	require.NoError(t, p.Close())
	assert.Equal(t, "ONE\nTWO\n", out.String())
}

func TestStart_DirectionErrors(t *testing.T) {
	r, err := New().Start(PipeRead, "true")
	require.NoError(t, err)
	_, err = r.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrNotWritable)
	require.NoError(t, r.Close())

	w, err := New().Start(PipeWrite, "cat")
	require.NoError(t, err)
	_, err = w.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrNotReadable)
	require.NoError(t, w.Close())
}

func TestStart_InvalidInput(t *testing.T) {
	_, err := New().Start(PipeRead)
	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, -1, execErr.ExitCode)

	_, err = New().Start(PipeMode(0), "true")
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = New().Start(PipeRead, "definitely-not-a-real-binary-xyz")
	require.ErrorAs(t, err, &execErr)
}

func TestClose_ExitFailure(t *testing.T) {
	p, err := New().Start(PipeRead, "sh", "-c", "echo oops >&2; exit 3")
	require.NoError(t, err)
	_, _ = io.ReadAll(p)

	err = p.Close()
	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 3, execErr.ExitCode)
	assert.Equal(t, "oops\n", execErr.Stderr)

	// Close is idempotent and keeps reporting the same failure.
	assert.Same(t, err, p.Close())
}

func TestClose_UnreadOutputDoesNotHang(t *testing.T) {
	p, err := New().Start(PipeRead, "sh", "-c", "yes | head -c 1000000")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		_ = p.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Close() did not return")
	}
}

func TestEnvLayering(t *testing.T) {
	ex := New(WithEnv(map[string]string{"A": "global", "B": "global"}))

	p, err := ex.WithEnv(map[string]string{"B": "local"}).Start(PipeRead, "sh", "-c", "echo $A-$B")
	require.NoError(t, err)
	out, _ := io.ReadAll(p)
	require.NoError(t, p.Close())
	assert.Equal(t, "global-local\n", string(out))

	// Local settings are cleared after Start.
	p, err = ex.Start(PipeRead, "sh", "-c", "echo $A-$B")
	require.NoError(t, err)
	out, _ = io.ReadAll(p)
	require.NoError(t, p.Close())
	assert.Equal(t, "global-global\n", string(out))
}

func TestPassthrough(t *testing.T) {
	var stderr bytes.Buffer
	p, err := New(WithStderr(&stderr)).WithPassthrough().Start(PipeRead, "sh", "-c", "echo warn >&2")
	require.NoError(t, err)
	_, _ = io.ReadAll(p)
	require.NoError(t, p.Close())

	assert.Equal(t, "warn\n", stderr.String())
	assert.Equal(t, "warn\n", p.Stderr())
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p, err := New(WithContext(ctx)).Start(PipeRead, "sleep", "30")
	require.NoError(t, err)

	cancel()
	err = p.Close()
	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
}

func TestClone(t *testing.T) {
	base := New(WithEnv(map[string]string{"X": "1"}))
	clone := base.Clone()
	base.WithEnv(map[string]string{"X": "2"})

	p, err := clone.Start(PipeRead, "sh", "-c", "echo $X")
	require.NoError(t, err)
	line, _ := bufio.NewReader(p).ReadString('\n')
	require.NoError(t, p.Close())
	assert.Equal(t, "1", strings.TrimSpace(line))
}

func TestOutputCapture_KeepsTail(t *testing.T) {
	oc := newOutputCapture(4)
	_, _ = oc.Write([]byte("abcdef"))
	_, _ = oc.Write([]byte("gh"))
	assert.Equal(t, "efgh", oc.String())
}

func TestPipeMode_String(t *testing.T) {
	assert.Equal(t, "r", PipeRead.String())
	assert.Equal(t, "w", PipeWrite.String())
	assert.Equal(t, "r+", PipeReadWrite.String())
	assert.Equal(t, "invalid", PipeMode(0).String())
}
