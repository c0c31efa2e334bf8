package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/fs/billy"
)

func TestPopen_Read(t *testing.T) {
	h := New("printf 'hi\\nthere\\n'")
	ok, err := h.Popen("r", DefaultBufferSize)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, h.IsPipe())
	assert.Equal(t, int64(-1), h.Position())
	assert.False(t, h.Rewind(), "pipes cannot seek")

	assert.Equal(t, []string{"hi", "there"}, h.ReadAll(Default))
	assert.True(t, h.EOF())
	require.NoError(t, h.Close())
	assert.False(t, h.IsPipe())
}

func TestPopen_Write(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	h := New("cat > '" + out + "'")
	_, err := h.Popen("w", 0)
	require.NoError(t, err)

	require.True(t, h.Writeln("piped"))
	_, ok := h.Readln(Default)
	assert.False(t, ok, "write-only pipe")
	require.NoError(t, h.Close())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "piped\n", string(data))
}

func TestPopen_ExitStatus(t *testing.T) {
	h := New("exit 3")
	_, err := h.Popen("r", 0)
	require.NoError(t, err)

	text, ok := h.Read(Default)
	assert.True(t, ok)
	assert.Empty(t, text)

	err = h.Close()
	require.Error(t, err)
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
	assert.False(t, h.IsOpen())
}

func TestPopen_InvalidMode(t *testing.T) {
	h := New("true")
	_, err := h.Popen("x", 0)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestPopen_ReadWrite(t *testing.T) {
	h := New("tr a-z A-Z")
	ok, err := h.PopenDefault()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "r+", h.Mode())

	require.True(t, h.Writeln("shout"))
	require.NoError(t, h.pipe.CloseWrite())
	line, ok := h.Readln(Default)
	require.True(t, ok)
	assert.Equal(t, "SHOUT", line)
	require.NoError(t, h.Close())
}

func TestRemove_KeepsFileWhenCloseFails(t *testing.T) {
	fsys := billy.NewLocal(billy.WithRoot(t.TempDir()))
	require.NoError(t, fsys.WriteFile("exit 3", []byte("keep"), 0o644))

	h := New("exit 3", WithFS(fsys))
	_, err := h.Popen("r", 0)
	require.NoError(t, err)

	ok, err := h.Remove()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(h.Err()))
	assert.False(t, h.IsOpen())

	exists, err := fsys.Exists("exit 3")
	require.NoError(t, err)
	assert.True(t, exists)
}
