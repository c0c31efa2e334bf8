package billy

import (
	"math"
	"sync"

	"github.com/jmgilman/scriptfile/fs/core"
)

// locks tracks every lock taken through this package. It arbitrates between
// handles of the same process; lock_flock.go and lock_ofd_linux.go add the
// kernel locks that exclude other processes.
var locks = &lockTable{entries: make(map[string]*lockEntry)}

type lockTable struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	shared    map[*File]struct{}
	exclusive *File
	ranges    []byteRange
}

// byteRange is a locked region; length 0 extends to infinity.
type byteRange struct {
	owner  *File
	offset int64
	length int64
}

func (r byteRange) end() int64 {
	if r.length == 0 {
		return math.MaxInt64
	}
	return r.offset + r.length
}

func (r byteRange) overlaps(o byteRange) bool {
	return r.offset < o.end() && o.offset < r.end()
}

func (t *lockTable) entry(key string) *lockEntry {
	e, ok := t.entries[key]
	if !ok {
		e = &lockEntry{shared: make(map[*File]struct{})}
		t.entries[key] = e
	}
	return e
}

// prune drops an entry nobody holds anything on.
func (t *lockTable) prune(key string, e *lockEntry) {
	if e.exclusive == nil && len(e.shared) == 0 && len(e.ranges) == 0 {
		delete(t.entries, key)
	}
}

func (t *lockTable) tryLock(key string, f *File, mode core.LockMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(key)
	if e.exclusive != nil && e.exclusive != f {
		return core.ErrLocked
	}
	if mode == core.LockExclusive {
		for holder := range e.shared {
			if holder != f {
				return core.ErrLocked
			}
		}
		delete(e.shared, f)
		e.exclusive = f
		return nil
	}

	e.exclusive = nil
	e.shared[f] = struct{}{}
	return nil
}

func (t *lockTable) unlock(key string, f *File) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		return
	}
	if e.exclusive == f {
		e.exclusive = nil
	}
	delete(e.shared, f)
	t.prune(key, e)
}

func (t *lockTable) lockRange(key string, r byteRange) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(key)
	for _, held := range e.ranges {
		if held.owner != r.owner && held.overlaps(r) {
			return core.ErrLocked
		}
	}
	e.ranges = append(e.ranges, r)
	return nil
}

func (t *lockTable) unlockRange(key string, r byteRange) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		return core.ErrNotLocked
	}
	for i, held := range e.ranges {
		if held == r {
			e.ranges = append(e.ranges[:i], e.ranges[i+1:]...)
			t.prune(key, e)
			return nil
		}
	}
	return core.ErrNotLocked
}

// release drops every lock f holds on key.
func (t *lockTable) release(key string, f *File) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		return
	}
	if e.exclusive == f {
		e.exclusive = nil
	}
	delete(e.shared, f)

	kept := e.ranges[:0]
	for _, r := range e.ranges {
		if r.owner != f {
			kept = append(kept, r)
		}
	}
	e.ranges = kept
	t.prune(key, e)
}

// TryLock acquires a whole-file lock without blocking.
// Contention with another handle, in this process or (for local files)
// another process, returns core.ErrLocked.
func (f *File) TryLock(mode core.LockMode) error {
	if err := locks.tryLock(f.key, f, mode); err != nil {
		return err
	}
	if fd, ok := f.fd(); ok {
		if err := osTryLock(fd, mode); err != nil {
			locks.unlock(f.key, f)
			return err
		}
	}
	return nil
}

// Unlock releases the whole-file lock.
func (f *File) Unlock() error {
	locks.unlock(f.key, f)
	if fd, ok := f.fd(); ok {
		return osUnlock(fd)
	}
	return nil
}

// LockRange exclusively locks length bytes at offset. A length of 0 locks
// from offset to the end of the file, including bytes appended later.
func (f *File) LockRange(offset, length int64) error {
	r := byteRange{owner: f, offset: offset, length: length}
	if err := locks.lockRange(f.key, r); err != nil {
		return err
	}
	if fd, ok := f.fd(); ok {
		if err := osLockRange(fd, offset, length, true); err != nil {
			_ = locks.unlockRange(f.key, r)
			return err
		}
	}
	return nil
}

// UnlockRange releases a range locked by LockRange with the same offset
// and length. Unlocking a range f does not hold returns core.ErrNotLocked.
func (f *File) UnlockRange(offset, length int64) error {
	if err := locks.unlockRange(f.key, byteRange{owner: f, offset: offset, length: length}); err != nil {
		return err
	}
	if fd, ok := f.fd(); ok {
		return osLockRange(fd, offset, length, false)
	}
	return nil
}
