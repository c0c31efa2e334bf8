package file

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/exec"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode     string
		flag     int
		read     bool
		write    bool
		truncate bool
	}{
		{"r", os.O_RDONLY, true, false, false},
		{"rb", os.O_RDONLY, true, false, false},
		{"r+", os.O_RDWR, true, true, false},
		{"w", os.O_WRONLY | os.O_CREATE, false, true, true},
		{"w+", os.O_RDWR | os.O_CREATE, true, true, true},
		{"wb+", os.O_RDWR | os.O_CREATE, true, true, true},
		{"a", os.O_WRONLY | os.O_CREATE | os.O_APPEND, false, true, false},
		{"a+", os.O_RDWR | os.O_CREATE | os.O_APPEND, true, true, false},
		{"we", os.O_WRONLY | os.O_CREATE | os.O_EXCL, false, true, false},
		{"w+e", os.O_RDWR | os.O_CREATE | os.O_EXCL, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			m, err := parseMode(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.flag, m.flag)
			assert.Equal(t, tt.read, m.read)
			assert.Equal(t, tt.write, m.write)
			assert.Equal(t, tt.truncate, m.truncate)
		})
	}
}

func TestParseMode_Invalid(t *testing.T) {
	for _, mode := range []string{"", "+", "b", "rw", "wa", "x", "r t"} {
		_, err := parseMode(mode)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err), "mode %q", mode)
	}
}

func TestPipeMode(t *testing.T) {
	for mode, want := range map[string]exec.PipeMode{
		"r":  exec.PipeRead,
		"w":  exec.PipeWrite,
		"a":  exec.PipeWrite,
		"r+": exec.PipeReadWrite,
		"w+": exec.PipeReadWrite,
	} {
		m, err := parseMode(mode)
		require.NoError(t, err)
		assert.Equal(t, want, m.pipeMode(), mode)
	}
}
