//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package billy

import "github.com/jmgilman/scriptfile/fs/core"

// Platforms without flock rely on the in-process lock table alone.

func osTryLock(uintptr, core.LockMode) error { return nil }

func osUnlock(uintptr) error { return nil }
