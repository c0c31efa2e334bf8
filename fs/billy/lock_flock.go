//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package billy

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/scriptfile/fs/core"
)

func osTryLock(fd uintptr, mode core.LockMode) error {
	how := unix.LOCK_SH
	if mode == core.LockExclusive {
		how = unix.LOCK_EX
	}

	err := unix.Flock(int(fd), how|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) {
		return core.ErrLocked
	}
	return err
}

func osUnlock(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_UN)
}
