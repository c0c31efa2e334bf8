package fstest

import (
	"errors"
	"os"
	"testing"

	"github.com/jmgilman/scriptfile/fs/core"
)

// TestLocker tests the advisory lock contract between two handles of the
// same file. Skips if files don't implement core.Locker.
func TestLocker(t *testing.T, filesystem core.FS, config FSTestConfig) {
	mustWrite(t, filesystem, "locked.txt", []byte("0123456789"))

	pair := func(t *testing.T) (core.Locker, core.Locker) {
		t.Helper()
		var lockers [2]core.Locker
		for i := range lockers {
			f, err := filesystem.OpenFile("locked.txt", os.O_RDWR, 0o644)
			if err != nil {
				t.Fatalf("OpenFile(locked.txt): got error %v, want nil", err)
			}
			t.Cleanup(func() { _ = f.Close() })

			l, ok := f.(core.Locker)
			if !ok {
				t.Skip("Locker not supported")
			}
			lockers[i] = l
		}
		return lockers[0], lockers[1]
	}

	config.run(t, "Locker", "ExclusiveExcludes", func(t *testing.T) {
		a, b := pair(t)
		if err := a.TryLock(core.LockExclusive); err != nil {
			t.Fatalf("TryLock(exclusive): got error %v, want nil", err)
		}
		if err := b.TryLock(core.LockShared); !errors.Is(err, core.ErrLocked) {
			t.Errorf("TryLock(shared) while held exclusive: got %v, want core.ErrLocked", err)
		}
		if err := a.Unlock(); err != nil {
			t.Fatalf("Unlock(): got error %v, want nil", err)
		}
		if err := b.TryLock(core.LockExclusive); err != nil {
			t.Errorf("TryLock(exclusive) after release: got error %v, want nil", err)
		}
	})

	config.run(t, "Locker", "SharedCoexist", func(t *testing.T) {
		a, b := pair(t)
		if err := a.TryLock(core.LockShared); err != nil {
			t.Fatalf("TryLock(shared): got error %v, want nil", err)
		}
		if err := b.TryLock(core.LockShared); err != nil {
			t.Errorf("second TryLock(shared): got error %v, want nil", err)
		}
		if err := b.TryLock(core.LockExclusive); !errors.Is(err, core.ErrLocked) {
			t.Errorf("TryLock(exclusive) while shared: got %v, want core.ErrLocked", err)
		}
	})

	config.run(t, "Locker", "ReleasedOnClose", func(t *testing.T) {
		f, err := filesystem.OpenFile("locked.txt", os.O_RDWR, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(locked.txt): got error %v, want nil", err)
		}
		l, ok := f.(core.Locker)
		if !ok {
			_ = f.Close()
			t.Skip("Locker not supported")
		}
		if err := l.TryLock(core.LockExclusive); err != nil {
			t.Fatalf("TryLock(exclusive): got error %v, want nil", err)
		}
		_ = f.Close()

		_, b := pair(t)
		if err := b.TryLock(core.LockExclusive); err != nil {
			t.Errorf("TryLock(exclusive) after Close: got error %v, want nil", err)
		}
	})

	config.run(t, "Locker", "RangeOverlap", func(t *testing.T) {
		a, b := pair(t)
		if err := a.LockRange(2, 4); err != nil {
			t.Fatalf("LockRange(2, 4): got error %v, want nil", err)
		}
		if err := b.LockRange(5, 2); !errors.Is(err, core.ErrLocked) {
			t.Errorf("LockRange(5, 2) overlapping: got %v, want core.ErrLocked", err)
		}
		if err := b.LockRange(6, 2); err != nil {
			t.Errorf("LockRange(6, 2) adjacent: got error %v, want nil", err)
		}
		if err := a.UnlockRange(2, 4); err != nil {
			t.Fatalf("UnlockRange(2, 4): got error %v, want nil", err)
		}
		if err := b.LockRange(0, 6); err != nil {
			t.Errorf("LockRange(0, 6) after release: got error %v, want nil", err)
		}
	})

	config.run(t, "Locker", "UnlockNotHeld", func(t *testing.T) {
		a, _ := pair(t)
		if err := a.UnlockRange(0, 1); !errors.Is(err, core.ErrNotLocked) {
			t.Errorf("UnlockRange(0, 1) not held: got %v, want core.ErrNotLocked", err)
		}
	})
}
