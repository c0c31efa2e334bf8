package file

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/scriptfile/codec"
	"github.com/jmgilman/scriptfile/fs/billy"
)

func TestWritelnRewindReadAll(t *testing.T) {
	h := openMem(t, billy.NewMemory(), "lines.txt", "w+")
	require.True(t, h.Writeln("hello"))
	require.True(t, h.Writeln("world"))
	require.True(t, h.Rewind())

	assert.Equal(t, []string{"hello", "world"}, h.ReadAll(Default))
	assert.True(t, h.EOF())

	_, ok := h.Readln(Default)
	assert.False(t, ok, "readln at end of file")
	require.True(t, h.Rewind())
	assert.False(t, h.EOF())
}

func TestReadln(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("crlf.txt", []byte("dos line\r\nlong line here\nlast"), 0o644))

	for _, bufSize := range []int{0, 16, DefaultBufferSize} {
		h := New("crlf.txt", WithFS(fsys))
		_, err := h.Open("r", true, bufSize)
		require.NoError(t, err)

		line, ok := h.Readln(Default)
		require.True(t, ok)
		assert.Equal(t, "dos line", line, "CRLF stripped")

		line, _ = h.Readln(5)
		assert.Equal(t, "long ", line, "maxLen bounds the line")
		line, _ = h.Readln(Default)
		assert.Equal(t, "line here", line)

		line, ok = h.Readln(Default)
		assert.True(t, ok)
		assert.Equal(t, "last", line, "unterminated final line")
		require.NoError(t, h.Close())
	}
}

func TestRead_Default(t *testing.T) {
	h := openMem(t, billy.NewMemory(), "r.txt", "w+")
	require.True(t, h.Write("abcdef", Default))
	require.True(t, h.SetPosition(2))

	text, ok := h.Read(Default)
	require.True(t, ok)
	assert.Equal(t, "cdef", text, "rest of the file")

	text, ok = h.Read(10)
	assert.True(t, ok)
	assert.Equal(t, "", text)
	assert.True(t, h.EOF())
}

func TestRead_HugeLength(t *testing.T) {
	h := openMem(t, billy.NewMemory(), "big.txt", "w+")
	require.True(t, h.Write("short", Default))
	require.True(t, h.Rewind())

	text, ok := h.Read(math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, "short", text)
	assert.True(t, h.EOF())
}

func TestETX(t *testing.T) {
	h := openMem(t, billy.NewMemory(), "rec.dat", "w+")
	h.SetETX(3)

	require.True(t, h.Write("abc", 6), "pads with etx")
	require.True(t, h.Write("toolong", 4), "cuts to length")
	require.True(t, h.Rewind())

	raw, ok := h.Read(Default)
	require.True(t, ok)
	assert.Equal(t, "abc", raw, "read stops at the first etx")

	h.SetETX(0)
	require.True(t, h.Rewind())
	raw, _ = h.Read(Default)
	assert.Equal(t, "abc\x03\x03\x03tool", raw)

	h.SetETX('!')
	require.True(t, h.Truncate(0))
	require.True(t, h.Writeln("before!after"))
	require.True(t, h.Rewind())
	line, _ := h.Readln(Default)
	assert.Equal(t, "before", line)
}

func TestCodecs(t *testing.T) {
	payload := "Binary\x00\xffpayload"
	for _, flags := range []codec.Flags{
		{Base64: true},
		{UUE: true},
		{YEnc: true},
		{ROT13: true},
		{ROT13: true, Base64: true},
		{UUE: true, YEnc: true, Base64: true},
	} {
		t.Run(flags.Encoding().String(), func(t *testing.T) {
			fsys := billy.NewMemory()
			h := openMem(t, fsys, "enc.dat", "w+")
			h.SetFlags(flags)

			encoded := string(flags.Encode([]byte(payload)))
			require.True(t, h.Write(encoded, Default))

			stored, err := fsys.ReadFile("enc.dat")
			require.NoError(t, err)
			assert.Equal(t, payload, string(stored), "stored bytes are plain")

			require.True(t, h.Rewind())
			text, ok := h.Read(Default)
			require.True(t, ok)
			assert.Equal(t, encoded, text, "reads return encoded text")
		})
	}
}

func TestWrite_DecodeFailure(t *testing.T) {
	fsys := billy.NewMemory()
	h := openMem(t, fsys, "bad.dat", "w+")
	h.SetFlags(codec.Flags{Base64: true})

	assert.False(t, h.Write("***not base64***", Default))
	assert.Error(t, h.Err())
	assert.Equal(t, int64(0), h.Length(), "nothing written")
	assert.True(t, h.IsOpen())
}

func TestROT13Lines(t *testing.T) {
	fsys := billy.NewMemory()
	h := openMem(t, fsys, "rot.txt", "w+")
	h.SetFlags(codec.Flags{ROT13: true, Base64: true})

	require.True(t, h.Writeln("Hello"))
	data, _ := fsys.ReadFile("rot.txt")
	assert.Equal(t, "Uryyb\n", string(data), "lines skip the encodings")

	require.True(t, h.Rewind())
	line, _ := h.Readln(Default)
	assert.Equal(t, "Hello", line)
}

func TestWriteAllPrintf(t *testing.T) {
	fsys := billy.NewMemory()
	h := openMem(t, fsys, "all.txt", "w+")

	require.True(t, h.WriteAll([]string{"a", "b"}))
	n, err := h.Printf("%s=%d\n", "n", 42)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	data, _ := fsys.ReadFile("all.txt")
	assert.Equal(t, "a\nb\nn=42\n", string(data))

	require.NoError(t, h.Close())
	_, err = h.Printf("x")
	assert.Error(t, err)
	assert.False(t, h.WriteAll([]string{"c"}))
}

func TestWrite_ReadOnly(t *testing.T) {
	fsys := billy.NewLocal(billy.WithRoot(t.TempDir()))
	require.NoError(t, fsys.WriteFile("ro.txt", []byte("x"), 0o644))
	h := New("ro.txt", WithFS(fsys))
	_, err := h.Open("r", true, 0)
	require.NoError(t, err)
	defer h.Close()

	assert.False(t, h.Writeln("nope"))
	assert.NotZero(t, h.ErrorNumber())
	require.True(t, h.ClearError())
	assert.Zero(t, h.ErrorNumber())
	assert.Nil(t, h.Err())
	assert.True(t, strings.HasPrefix(h.Mode(), "r"))
}
