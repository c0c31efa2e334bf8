package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/scriptfile/errors"
	"github.com/jmgilman/scriptfile/fs/billy"
	"github.com/jmgilman/scriptfile/value"
)

func ptr(s string) *string { return &s }

func TestIniValues(t *testing.T) {
	fsys := billy.NewMemory()
	h := openMem(t, fsys, "app.ini", "w+")

	ok, err := h.IniSetValue(nil, "port", value.Int(8080))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = h.IniSetValue(ptr("db"), "host", value.String("localhost"))
	require.NoError(t, err)
	require.True(t, ok)

	v, err := h.IniGetValue(nil, "port", value.Int(0))
	require.NoError(t, err)
	assert.Equal(t, int64(8080), v.Int())
	assert.Equal(t, value.KindInt, v.Kind())

	v, _ = h.IniGetValue(ptr("DB"), "HOST", value.Undefined)
	assert.Equal(t, "localhost", v.String(), "lookups ignore case")

	v, _ = h.IniGetValue(ptr("db"), "missing", value.Bool(true))
	assert.True(t, v.Bool(), "default for a missing key")

	data, _ := fsys.ReadFile("app.ini")
	assert.Equal(t, "port = 8080\n\n[db]\nhost = localhost\n", string(data))

	keys, err := h.IniGetKeys(ptr("db"))
	require.NoError(t, err)
	assert.Equal(t, []string{"host"}, keys)
}

func TestIniSections(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("s.ini", []byte("[srv1]\na=1\n[srv2]\na=2\n[other]\nb=3\n"), 0o644))
	h := openMem(t, fsys, "s.ini", "r+")

	sections, err := h.IniGetSections("srv")
	require.NoError(t, err)
	assert.Equal(t, []string{"srv1", "srv2"}, sections)

	all, _ := h.IniGetSections("")
	assert.Len(t, all, 3)

	ok, err := h.IniRemoveSection(ptr("srv1"))
	require.NoError(t, err)
	assert.True(t, ok)
	sections, _ = h.IniGetSections("srv")
	assert.Equal(t, []string{"srv2"}, sections)
}

func TestIniRemoveKey_AbsentLeavesFileUntouched(t *testing.T) {
	fsys := billy.NewMemory()
	original := "; settings\r\n[a]\r\nx = 1\r\n"
	require.NoError(t, fsys.WriteFile("keep.ini", []byte(original), 0o644))
	h := openMem(t, fsys, "keep.ini", "r+")

	ok, err := h.IniRemoveKey(ptr("a"), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, _ = h.IniRemoveSection(ptr("nope"))
	assert.False(t, ok)

	data, _ := fsys.ReadFile("keep.ini")
	assert.Equal(t, original, string(data))

	ok, _ = h.IniRemoveKey(ptr("a"), "X")
	assert.True(t, ok)
	data, _ = fsys.ReadFile("keep.ini")
	assert.Equal(t, "; settings\r\n[a]\r\n", string(data), "comments and line endings survive")
}

func TestIniShrinkingRewriteTruncates(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("big.ini", []byte("[a]\nkey=a-rather-long-value\n"), 0o644))
	h := openMem(t, fsys, "big.ini", "r+")

	_, err := h.IniSetValue(ptr("a"), "key", value.String("v"))
	require.NoError(t, err)
	data, _ := fsys.ReadFile("big.ini")
	assert.Equal(t, "[a]\nkey = v\n", string(data))
	assert.Equal(t, int64(len(data)), h.Length())
}

func TestIniObjects(t *testing.T) {
	fsys := billy.NewMemory()
	h := openMem(t, fsys, "obj.ini", "w+")

	ok, err := h.IniSetAllObjects([]map[string]value.Value{
		{"name": value.String("alpha"), "port": value.Int(1), "tls": value.Bool(true)},
		{"name": value.String("beta"), "port": value.Int(2)},
		{"port": value.Int(3)},
	}, "")
	require.NoError(t, err)
	require.True(t, ok)

	data, _ := fsys.ReadFile("obj.ini")
	assert.Equal(t, "[alpha]\nport = 1\ntls = true\n\n[beta]\nport = 2\n", string(data))

	objs, err := h.IniGetAllObjects("id", "al")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "pha", objs[0]["id"].String())
	assert.Equal(t, int64(1), objs[0]["port"].Int())
	assert.True(t, objs[0]["tls"].Bool())

	obj, found, err := h.IniGetObject(ptr("beta"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]value.Value{"port": value.Int(2)}, obj)

	_, found, _ = h.IniGetObject(ptr("gamma"))
	assert.False(t, found)

	ok, err = h.IniSetObject(ptr("gamma"), map[string]value.Value{"ratio": value.Float(0.5)})
	require.NoError(t, err)
	assert.True(t, ok)
	obj, found, _ = h.IniGetObject(ptr("gamma"))
	assert.True(t, found)
	assert.Equal(t, 0.5, obj["ratio"].Float())
}

func TestIniInvalidInput(t *testing.T) {
	fsys := billy.NewMemory()
	h := openMem(t, fsys, "bad.ini", "w+")

	_, err := h.IniSetValue(nil, "", value.Int(1))
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	_, err = h.IniGetValue(nil, "", value.Undefined)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	ok, _ := h.IniSetValue(nil, "a=b", value.Int(1))
	assert.False(t, ok)
	data, _ := fsys.ReadFile("bad.ini")
	assert.Empty(t, data, "failed mutation writes nothing")
}

func TestIniClosed(t *testing.T) {
	h := New("closed.ini", WithFS(billy.NewMemory()))
	v, err := h.IniGetValue(nil, "k", value.String("dflt"))
	assert.NoError(t, err)
	assert.Equal(t, "dflt", v.String())

	ok, _ := h.IniSetValue(nil, "k", value.Int(1))
	assert.False(t, ok)
	sections, _ := h.IniGetSections("")
	assert.Nil(t, sections)
}

func TestIniAppendModeRefusesRewrite(t *testing.T) {
	fsys := billy.NewLocal(billy.WithRoot(t.TempDir()))
	original := "[a]\nkey=a-rather-long-value\nother=1\n"
	require.NoError(t, fsys.WriteFile("log.ini", []byte(original), 0o644))
	h := openMem(t, fsys, "log.ini", "a+")

	ok, err := h.IniSetValue(ptr("a"), "key", value.String("v"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, errors.CodeUnsupported, errors.GetCode(h.Err()))

	ok, _ = h.IniRemoveKey(ptr("a"), "other")
	assert.False(t, ok)

	data, _ := fsys.ReadFile("log.ini")
	assert.Equal(t, original, string(data), "file untouched")

	v, err := h.IniGetValue(ptr("a"), "key", value.String(""))
	require.NoError(t, err)
	assert.Equal(t, "a-rather-long-value", v.String(), "reads still work")
	v, _ = h.IniGetValue(ptr("a"), "other", value.Int(0))
	assert.Equal(t, int64(1), v.Int())
}
