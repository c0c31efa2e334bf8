package billy

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/scriptfile/fs/core"
)

func TestFile_Descriptor(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		fsys := NewMemory()
		f, err := fsys.OpenFile("m.txt", os.O_RDWR|os.O_CREATE, 0o644)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, int64(-1), f.(core.Descriptor).Descriptor())
	})

	t.Run("local", func(t *testing.T) {
		fsys := NewLocal(WithRoot(t.TempDir()))
		f, err := fsys.OpenFile("l.txt", os.O_RDWR|os.O_CREATE, 0o644)
		require.NoError(t, err)
		defer f.Close()

		assert.GreaterOrEqual(t, f.(core.Descriptor).Descriptor(), int64(0))
	})
}

func TestFile_NameAndStat(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("dir/data.bin", []byte{1, 2, 3}, 0o644))

	f, err := fsys.OpenFile("dir/data.bin", os.O_RDONLY, 0)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "dir/data.bin", f.Name())
	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())
}

func TestFile_TruncateKeepsOffset(t *testing.T) {
	fsys := NewLocal(WithRoot(t.TempDir()))
	require.NoError(t, fsys.WriteFile("t.txt", []byte("abcdef"), 0o644))

	f, err := fsys.OpenFile("t.txt", os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Seek(5, io.SeekStart)
	require.NoError(t, err)
	require.NoError(t, f.(core.Truncater).Truncate(2))

	pos, err := f.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)
}

func TestFile_LockConversion(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("c.txt", nil, 0o644))

	a, err := fsys.OpenFile("c.txt", os.O_RDWR, 0)
	require.NoError(t, err)
	defer a.Close()
	b, err := fsys.OpenFile("c.txt", os.O_RDWR, 0)
	require.NoError(t, err)
	defer b.Close()

	la, lb := a.(core.Locker), b.(core.Locker)
	require.NoError(t, la.TryLock(core.LockExclusive))
	require.NoError(t, la.TryLock(core.LockShared))
	require.NoError(t, lb.TryLock(core.LockShared))
	require.ErrorIs(t, la.TryLock(core.LockExclusive), core.ErrLocked)
}

func TestFile_RangeToEndOfFile(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("r.txt", []byte("0123"), 0o644))

	a, err := fsys.OpenFile("r.txt", os.O_RDWR, 0)
	require.NoError(t, err)
	defer a.Close()
	b, err := fsys.OpenFile("r.txt", os.O_RDWR, 0)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.(core.Locker).LockRange(2, 0))
	require.ErrorIs(t, b.(core.Locker).LockRange(1000, 1), core.ErrLocked)
	require.NoError(t, b.(core.Locker).LockRange(0, 2))
}

func TestLockTable_PrunesEmptyEntries(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.WriteFile("p.txt", nil, 0o644))

	f, err := fsys.OpenFile("p.txt", os.O_RDWR, 0)
	require.NoError(t, err)
	key := f.(*File).key

	require.NoError(t, f.(core.Locker).LockRange(0, 1))
	require.NoError(t, f.(core.Locker).TryLock(core.LockShared))
	require.NoError(t, f.Close())

	locks.mu.Lock()
	_, ok := locks.entries[key]
	locks.mu.Unlock()
	assert.False(t, ok)
}
