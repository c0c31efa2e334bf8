package billy

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/scriptfile/fs/core"
)

// osLockRange uses open file description locks so that two handles of the
// same process conflict the way two processes do.
func osLockRange(fd uintptr, offset, length int64, lock bool) error {
	lk := unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: io.SeekStart,
		Start:  offset,
		Len:    length,
	}
	if !lock {
		lk.Type = unix.F_UNLCK
	}

	err := unix.FcntlFlock(fd, unix.F_OFD_SETLK, &lk)
	if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EACCES) {
		return core.ErrLocked
	}
	return err
}
